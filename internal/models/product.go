package models

import (
	"encoding/json"
	"fmt"
)

// ID is a product identifier. The remote catalog sends numeric ids while
// locally created products use string ids (millisecond timestamps), so the
// JSON decoder accepts both forms and everything downstream compares ids
// as strings.
type ID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	// Числовой id: декодируем через json.Number, чтобы не потерять точность
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid product id %s: %w", string(data), err)
	}
	*id = ID(n.String())
	return nil
}

// Product represents a single catalog item.
//
// Provenance is positional, not a field: a product fetched from the remote
// catalog is remote, a product held by the local products store is local.
// Identity is by ID, compared as string across both domains.
type Product struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Price       float64 `json:"price"`
}
