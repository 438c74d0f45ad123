package boltdb

import (
	"context"
	"fmt"

	"github.com/iudanet/storefront/internal/client/storage"
)

var cartKey = []byte("current")

// SaveCart stores the full cart document
func (s *Storage) SaveCart(ctx context.Context, state *storage.CartState) error {
	if state == nil {
		return fmt.Errorf("cart state is nil")
	}
	return s.saveDocument(bucketCart, cartKey, state)
}

// GetCart retrieves the stored cart document.
// A missing or corrupt document yields an empty cart.
func (s *Storage) GetCart(ctx context.Context) (*storage.CartState, error) {
	state := storage.NewCartState()

	found, err := s.loadDocument(bucketCart, cartKey, state)
	if err != nil {
		return nil, err
	}
	if !found {
		return storage.NewCartState(), nil
	}

	state.Normalize()
	return state, nil
}
