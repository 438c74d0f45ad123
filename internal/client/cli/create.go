package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/storefront/internal/validation"
)

func (c *Cli) runCreate(ctx context.Context) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	c.io.Println("=== Create Product ===")
	c.io.Println()

	// Категории нужны для выбора: без них форма не имеет смысла
	categories, err := c.catalog.Categories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}

	description, err := c.io.ReadInput("Description: ")
	if err != nil {
		return fmt.Errorf("failed to read description: %w", err)
	}

	price, err := c.io.ReadInput("Price: ")
	if err != nil {
		return fmt.Errorf("failed to read price: %w", err)
	}

	c.io.Println()
	c.io.Println("Categories:")
	for i, name := range categories {
		c.io.Printf("  %d. %s\n", i+1, name)
	}
	choice, err := c.io.ReadInput("Category number: ")
	if err != nil {
		return fmt.Errorf("failed to read category: %w", err)
	}

	var category string
	if n, convErr := strconv.Atoi(choice); convErr == nil && n >= 1 && n <= len(categories) {
		category = categories[n-1]
	}

	image, err := c.io.ReadInput("Image URL: ")
	if err != nil {
		return fmt.Errorf("failed to read image URL: %w", err)
	}

	// Валидация блокирует отправку целиком: до API невалидная форма
	// не доходит
	form := validation.ProductForm{
		Title:       title,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
	}

	c.io.Println()
	c.io.Println("Creating...")

	p, err := c.catalog.Create(ctx, form)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Product created successfully!")
	c.io.Printf("ID:    %s\n", string(p.ID))
	c.io.Printf("Title: %s\n", p.Title)
	c.io.Println()
	c.io.Println("It is stored locally and will appear at the top of 'storefront products'.")

	return nil
}
