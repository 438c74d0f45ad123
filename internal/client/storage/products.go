package storage

import (
	"context"

	"github.com/iudanet/storefront/internal/models"
)

// LocalProductsStorage defines interface for persisting locally created
// products. The stored document is a plain sequence of products, newest
// first; the dedup-by-id invariant is enforced by the domain store, not
// here.
type LocalProductsStorage interface {
	// SaveLocalProducts stores the full list, replacing the previous one
	SaveLocalProducts(ctx context.Context, products []models.Product) error

	// GetLocalProducts retrieves the stored list.
	// A missing or unreadable document yields an empty list, not an error.
	GetLocalProducts(ctx context.Context) ([]models.Product, error)
}
