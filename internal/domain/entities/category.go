package entities

import "strings"

// SupplyType is the top-level classifier applied to categories, catalog items
// and demand items. It must stay consistent across a referenced chain.
type SupplyType string

const (
	SupplyTypeProduct SupplyType = "PRODUTO"
	SupplyTypeService SupplyType = "SERVICO"
	SupplyTypeVenue   SupplyType = "ESPACO"
)

// Valid reports whether t is one of the three known supply types.
func (t SupplyType) Valid() bool {
	switch t {
	case SupplyTypeProduct, SupplyTypeService, SupplyTypeVenue:
		return true
	}
	return false
}

// Category groups catalog items and demand items (table categoria).
// Name+SupplyType is unique, compared case-insensitively after trimming.
type Category struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	SupplyType  SupplyType `json:"supply_type"`
	Description string     `json:"description,omitempty"`
	Active      bool       `json:"active"`
}

// NormalizedCategoryName is the canonical form used for the uniqueness check.
func NormalizedCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
