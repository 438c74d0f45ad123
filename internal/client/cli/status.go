package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	authed, err := c.sessions.IsAuthed(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !authed {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'storefront login' to authenticate.")
		return nil
	}

	current, err := c.sessions.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", current.Username)

	// Состояние корзины как краткая сводка
	count := c.cartStore.Count()
	if count > 0 {
		c.io.Println()
		c.io.Printf("Cart: %d item(s), total %s\n", count, formatPrice(c.cartStore.Total()))
	}

	return nil
}
