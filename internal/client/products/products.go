// Package products implements the store of locally created products: the
// client-authored half of the catalog, persisted independently of the
// remote one and never known to the server.
package products

import (
	"context"
	"fmt"

	"github.com/iudanet/storefront/internal/client/storage"
	"github.com/iudanet/storefront/internal/models"
)

// Store owns the list of locally created products, newest first.
//
// Ids are generated by the caller at creation time (millisecond
// timestamps); the store only enforces the no-duplicate-id invariant
// defensively: inserting an id that already exists is a silent no-op,
// first write wins.
type Store struct {
	storage storage.LocalProductsStorage
	list    []models.Product
}

// New creates the local products store, loading persisted state.
func New(ctx context.Context, productsStorage storage.LocalProductsStorage) (*Store, error) {
	list, err := productsStorage.GetLocalProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load local products: %w", err)
	}

	return &Store{
		storage: productsStorage,
		list:    list,
	}, nil
}

// Add prepends a product to the list. A product whose id is already
// present is silently ignored.
func (s *Store) Add(ctx context.Context, p models.Product) error {
	for _, existing := range s.list {
		if existing.ID == p.ID {
			return nil
		}
	}

	s.list = append([]models.Product{p}, s.list...)
	return s.persist(ctx)
}

// GetByID returns the local product with the given id (string-compared).
// Returns storage.ErrLocalProductNotFound when absent.
func (s *Store) GetByID(id string) (models.Product, error) {
	for _, p := range s.list {
		if string(p.ID) == id {
			return p, nil
		}
	}
	return models.Product{}, storage.ErrLocalProductNotFound
}

// List returns a copy of the local products, newest first.
func (s *Store) List() []models.Product {
	list := make([]models.Product, len(s.list))
	copy(list, s.list)
	return list
}

// Clear empties the list.
func (s *Store) Clear(ctx context.Context) error {
	s.list = []models.Product{}
	return s.persist(ctx)
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.storage.SaveLocalProducts(ctx, s.list); err != nil {
		return fmt.Errorf("failed to save local products: %w", err)
	}
	return nil
}
