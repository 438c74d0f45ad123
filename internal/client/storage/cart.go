package storage

import (
	"context"

	"github.com/iudanet/storefront/internal/models"
)

// CartLine is one cart entry: the full product snapshot captured at the
// moment of adding, plus a quantity. The snapshot is never refreshed if
// the remote product changes later.
type CartLine struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"` // always >= 1
}

// CartState is the persisted cart document. Items is keyed by product id
// in string form, at most one line per id. Order lists the ids in
// insertion order; maps carry no order of their own, so it is stored
// explicitly and reconciled against Items on load.
type CartState struct {
	Items map[string]CartLine `json:"items"`
	Order []string            `json:"order"`
}

// NewCartState returns an empty cart document.
func NewCartState() *CartState {
	return &CartState{Items: make(map[string]CartLine)}
}

// Normalize reconciles Order with Items after loading from storage:
// ids without a matching line are dropped, lines missing from Order are
// appended. A nil Items map is replaced with an empty one.
func (s *CartState) Normalize() {
	if s.Items == nil {
		s.Items = make(map[string]CartLine)
	}

	seen := make(map[string]bool, len(s.Order))
	order := s.Order[:0]
	for _, id := range s.Order {
		if _, ok := s.Items[id]; ok && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	for id := range s.Items {
		if !seen[id] {
			order = append(order, id)
		}
	}
	s.Order = order
}

// CartStorage defines interface for persisting the cart document
type CartStorage interface {
	// SaveCart stores the full cart document (write-through: callers
	// persist on every mutation)
	SaveCart(ctx context.Context, state *CartState) error

	// GetCart retrieves the stored cart document.
	// A missing or unreadable document yields an empty cart, not an error.
	GetCart(ctx context.Context) (*CartState, error)
}
