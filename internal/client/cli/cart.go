package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if err := c.requireAuth(ctx); err != nil {
		return err
	}

	if len(args) == 0 {
		return fmt.Errorf("usage: storefront cart <add|remove|qty|list|clear>")
	}

	switch args[0] {
	case "add":
		return c.runCartAdd(ctx, args[1:])
	case "remove":
		return c.runCartRemove(ctx, args[1:])
	case "qty":
		return c.runCartSetQuantity(ctx, args[1:])
	case "list":
		return c.runCartList()
	case "clear":
		return c.runCartClear(ctx)
	default:
		return fmt.Errorf("unknown cart command: %s", args[0])
	}
}

func (c *Cli) runCartAdd(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: storefront cart add <id> [qty]")
	}
	id := args[0]

	qty := 1
	if len(args) == 2 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("quantity must be a positive integer")
		}
		qty = n
	}

	// Снимок товара берется через стратегию разрешения: локальный товар
	// попадает в корзину без сетевого вызова
	p, err := c.catalog.Resolve(ctx, id)
	if err != nil {
		return err
	}

	if err := c.cartStore.Add(ctx, p, qty); err != nil {
		return err
	}

	c.io.Printf("✓ Added %d x %s\n", qty, p.Title)
	c.io.Printf("Cart: %d item(s), total %s\n", c.cartStore.Count(), formatPrice(c.cartStore.Total()))

	return nil
}

func (c *Cli) runCartRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: storefront cart remove <id>")
	}

	if err := c.cartStore.Remove(ctx, args[0]); err != nil {
		return err
	}

	c.io.Printf("✓ Removed %s from cart\n", args[0])
	return nil
}

func (c *Cli) runCartSetQuantity(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: storefront cart qty <id> <n>")
	}

	if err := c.cartStore.SetQuantity(ctx, args[0], args[1]); err != nil {
		return err
	}

	return c.runCartList()
}

func (c *Cli) runCartList() error {
	lines := c.cartStore.List()
	if len(lines) == 0 {
		c.io.Println("Cart is empty")
		return nil
	}

	c.io.Printf("%-15s %-4s %-9s %-9s %s\n", "ID", "QTY", "PRICE", "SUM", "TITLE")
	for _, line := range lines {
		sum := line.Product.Price * float64(line.Quantity)
		c.io.Printf("%-15s %-4d %-9s %-9s %s\n",
			string(line.Product.ID), line.Quantity,
			formatPrice(line.Product.Price), formatPrice(sum),
			truncate(line.Product.Title, 45))
	}
	c.io.Println()
	c.io.Printf("Total: %s (%d item(s))\n", formatPrice(c.cartStore.Total()), c.cartStore.Count())

	return nil
}

func (c *Cli) runCartClear(ctx context.Context) error {
	if err := c.cartStore.Clear(ctx); err != nil {
		return err
	}

	c.io.Println("✓ Cart cleared")
	return nil
}
