// Package cart implements the client-owned shopping cart: a mapping of
// product id to {product snapshot, quantity}, persisted write-through so
// that any read after a mutation observes it, across reloads included.
package cart

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iudanet/storefront/internal/client/storage"
	"github.com/iudanet/storefront/internal/models"
)

// Store owns the cart state. It is constructed once at application start
// and passed by reference to whichever layer needs it; all mutations are
// synchronous and persist the full document before returning.
type Store struct {
	storage storage.CartStorage
	state   *storage.CartState
}

// New creates the cart store, loading persisted state from storage.
func New(ctx context.Context, cartStorage storage.CartStorage) (*Store, error) {
	state, err := cartStorage.GetCart(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return &Store{
		storage: cartStorage,
		state:   state,
	}, nil
}

// Add puts qty units of product into the cart. If a line for the product
// already exists its quantity is increased; otherwise a new line is
// appended with the product snapshot captured now.
func (s *Store) Add(ctx context.Context, product models.Product, qty int) error {
	if qty < 1 {
		qty = 1
	}

	id := string(product.ID)
	if line, ok := s.state.Items[id]; ok {
		line.Quantity += qty
		s.state.Items[id] = line
	} else {
		s.state.Items[id] = storage.CartLine{Product: product, Quantity: qty}
		s.state.Order = append(s.state.Order, id)
	}

	return s.persist(ctx)
}

// Remove deletes the line for productID. Removing an absent id is a no-op.
func (s *Store) Remove(ctx context.Context, productID string) error {
	if _, ok := s.state.Items[productID]; !ok {
		return nil
	}

	delete(s.state.Items, productID)
	for i, id := range s.state.Order {
		if id == productID {
			s.state.Order = append(s.state.Order[:i], s.state.Order[i+1:]...)
			break
		}
	}

	return s.persist(ctx)
}

// SetQuantity replaces the quantity of an existing line. The raw value is
// parsed as a number and clamped to a minimum of 1: non-numeric input and
// values below 1 both coerce to 1. The line is never removed here;
// removal is only ever the explicit Remove operation. Absent id is a
// no-op.
func (s *Store) SetQuantity(ctx context.Context, productID, raw string) error {
	line, ok := s.state.Items[productID]
	if !ok {
		return nil
	}

	qty := 1
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && n > 1 {
		qty = n
	}

	line.Quantity = qty
	s.state.Items[productID] = line

	return s.persist(ctx)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) error {
	s.state = storage.NewCartState()
	return s.persist(ctx)
}

// List returns the cart lines in insertion order.
func (s *Store) List() []storage.CartLine {
	lines := make([]storage.CartLine, 0, len(s.state.Order))
	for _, id := range s.state.Order {
		lines = append(lines, s.state.Items[id])
	}
	return lines
}

// Total returns the sum of price*quantity over all lines. Prices are the
// snapshots captured at add-time.
func (s *Store) Total() float64 {
	var total float64
	for _, line := range s.state.Items {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// Count returns the sum of quantities over all lines.
func (s *Store) Count() int {
	var count int
	for _, line := range s.state.Items {
		count += line.Quantity
	}
	return count
}

func (s *Store) persist(ctx context.Context) error {
	if err := s.storage.SaveCart(ctx, s.state); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}
