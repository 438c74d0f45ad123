package boltdb

import (
	"context"

	"github.com/iudanet/storefront/internal/client/storage"
	"github.com/iudanet/storefront/internal/models"
)

var localProductsKey = []byte("current")

// Compile-time checks that Storage implements the storage interfaces
var (
	_ storage.SessionStorage       = (*Storage)(nil)
	_ storage.CartStorage          = (*Storage)(nil)
	_ storage.LocalProductsStorage = (*Storage)(nil)
)

// SaveLocalProducts stores the full local products list
func (s *Storage) SaveLocalProducts(ctx context.Context, products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	return s.saveDocument(bucketLocalProducts, localProductsKey, products)
}

// GetLocalProducts retrieves the stored local products list.
// A missing or corrupt document yields an empty list.
func (s *Storage) GetLocalProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product

	found, err := s.loadDocument(bucketLocalProducts, localProductsKey, &products)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Product{}, nil
	}

	return products, nil
}
