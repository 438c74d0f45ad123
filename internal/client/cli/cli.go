// Package cli implements the storefront commands: catalog browsing,
// product detail, product creation, the cart and the login gate.
package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/storefront/internal/client/cart"
	"github.com/iudanet/storefront/internal/client/catalog"
	"github.com/iudanet/storefront/internal/client/iocli"
	"github.com/iudanet/storefront/internal/client/session"
)

type Cli struct {
	io          iocli.IO
	sessions    *session.Store
	authService *session.Service
	cartStore   *cart.Store
	catalog     *catalog.Service
}

func New(io iocli.IO, sessions *session.Store, authService *session.Service, cartStore *cart.Store, catalogService *catalog.Service) *Cli {
	return &Cli{
		io:          io,
		sessions:    sessions,
		authService: authService,
		cartStore:   cartStore,
		catalog:     catalogService,
	}
}

// requireAuth guards the protected commands (create, cart). The gate is
// purely token presence: validity is the remote API's problem.
func (c *Cli) requireAuth(ctx context.Context) error {
	authed, err := c.sessions.IsAuthed(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !authed {
		return fmt.Errorf("not authenticated. Please run 'storefront login' first")
	}
	return nil
}

func PrintUsage() {
	fmt.Println("Storefront Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  storefront [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Catalog API URL (default: https://fakestoreapi.com,")
	fmt.Println("                 also read from STOREFRONT_API_URL)")
	fmt.Println("  --db PATH      Path to local database (default: storefront.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  products                List products (--category, --sort, --page, --refresh)")
	fmt.Println("  show <id>               Show product details")
	fmt.Println("  categories              List catalog categories")
	fmt.Println("  login                   Login to the catalog API")
	fmt.Println("  logout                  Logout")
	fmt.Println("  status                  Show session status")
	fmt.Println("  create                  Create a product (requires login)")
	fmt.Println("  cart add <id> [qty]     Add product to cart (requires login)")
	fmt.Println("  cart remove <id>        Remove product from cart")
	fmt.Println("  cart qty <id> <n>       Set line quantity")
	fmt.Println("  cart list               Show cart contents")
	fmt.Println("  cart clear              Empty the cart")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  storefront products --category jewelery --sort desc --page 2")
	fmt.Println("  storefront show 7")
	fmt.Println("  storefront login")
	fmt.Println("  storefront cart add 7 2")
	fmt.Println("  storefront --server https://fakestoreapi.com products")
}
