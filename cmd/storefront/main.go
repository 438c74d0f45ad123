package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/storefront/internal/client/api"
	"github.com/iudanet/storefront/internal/client/cart"
	"github.com/iudanet/storefront/internal/client/catalog"
	"github.com/iudanet/storefront/internal/client/cli"
	"github.com/iudanet/storefront/internal/client/iocli"
	"github.com/iudanet/storefront/internal/client/products"
	"github.com/iudanet/storefront/internal/client/querycache"
	"github.com/iudanet/storefront/internal/client/session"
	"github.com/iudanet/storefront/internal/client/storage/boltdb"
)

const defaultServerURL = "https://fakestoreapi.com"

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServer(), "Catalog API URL")
	dbPath := flag.String("db", "storefront.db", "Path to local database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	ctx := context.Background()

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	sessions := session.New(boltStorage)

	// Client id нужен до создания API клиента: он уходит в заголовок
	// каждого запроса
	clientID, err := sessions.ClientID(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init client id: %v\n", err)
		os.Exit(1)
	}

	apiClient := api.NewClient(*serverURL, clientID)
	authService := session.NewService(apiClient, sessions)

	cartStore, err := cart.New(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load cart: %v\n", err)
		os.Exit(1)
	}

	local, err := products.New(ctx, boltStorage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load local products: %v\n", err)
		os.Exit(1)
	}

	catalogService := catalog.NewService(apiClient, querycache.New(), local)

	c := cli.New(iocli.NewStdio(), sessions, authService, cartStore, catalogService)
	if err := c.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// defaultServer позволяет переопределить адрес API через окружение,
// флаг --server имеет приоритет над переменной
func defaultServer() string {
	if url := os.Getenv("STOREFRONT_API_URL"); url != "" {
		return url
	}
	return defaultServerURL
}

func printVersion() {
	fmt.Printf("Storefront Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
