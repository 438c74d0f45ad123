package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/catalog"
)

func (c *Cli) runProducts(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products", flag.ContinueOnError)
	category := fs.String("category", "all", "Filter by exact category name")
	sortFlag := fs.String("sort", "none", "Price sort: none, asc or desc")
	page := fs.Int("page", 1, "Page number")
	refresh := fs.Bool("refresh", false, "Drop cached catalog data before listing")

	if err := fs.Parse(args); err != nil {
		return err
	}

	sortOrder, err := catalog.ParseSortOrder(*sortFlag)
	if err != nil {
		return err
	}

	if *refresh {
		c.catalog.Refresh()
	}

	view, err := c.catalog.Browse(ctx, catalog.Query{
		Category: *category,
		Sort:     sortOrder,
		Page:     *page,
	})
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	if view.Total == 0 {
		c.io.Println("No products found")
		return nil
	}

	c.io.Printf("%-15s %-9s %-22s %s\n", "ID", "PRICE", "CATEGORY", "TITLE")
	for _, p := range view.Items {
		c.io.Printf("%-15s %-9s %-22s %s\n",
			string(p.ID), formatPrice(p.Price), truncate(p.Category, 22), truncate(p.Title, 50))
	}
	c.io.Println()
	c.io.Printf("Page %d of %d (%d products)\n", view.Page, view.TotalPages, view.Total)

	return nil
}

func (c *Cli) runShow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront show <id>")
	}
	id := args[0]

	p, err := c.catalog.Resolve(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			// Товар мог быть локальным и удаленным из локального списка
			return fmt.Errorf("product %s not found: it does not exist on the catalog API (it may be a locally created item that was removed)", id)
		}
		return err
	}

	c.io.Printf("Title:       %s\n", p.Title)
	c.io.Printf("ID:          %s\n", string(p.ID))
	c.io.Printf("Price:       %s\n", formatPrice(p.Price))
	c.io.Printf("Category:    %s\n", p.Category)
	c.io.Printf("Image:       %s\n", p.Image)
	c.io.Println()
	c.io.Println(p.Description)

	return nil
}

func (c *Cli) runCategories(ctx context.Context) error {
	categories, err := c.catalog.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	for _, name := range categories {
		c.io.Println(name)
	}
	return nil
}
