package cli

import (
	"context"
	"fmt"
)

// Run dispatches one command invocation.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "products":
		return c.runProducts(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "categories":
		return c.runCategories(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "create":
		return c.runCreate(ctx)
	case "cart":
		return c.runCart(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}
