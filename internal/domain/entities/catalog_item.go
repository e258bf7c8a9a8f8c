package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CatalogItem is something a supplier offers (table item). Its supply type
// must equal the supply type of its category.
type CatalogItem struct {
	ID           uint            `json:"id"`
	SupplierID   uint            `json:"supplier_id"`
	SupplyType   SupplyType      `json:"supply_type"`
	CategoryID   uint            `json:"category_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Observations string          `json:"observations,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}
