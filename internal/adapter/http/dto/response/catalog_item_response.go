package response

import (
	"time"

	"casamenteiro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type CatalogItemResponse struct {
	ID           uint            `json:"id"`
	SupplierID   uint            `json:"supplier_id"`
	SupplyType   string          `json:"supply_type"`
	CategoryID   uint            `json:"category_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Observations string          `json:"observations,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

func FromCatalogItem(it entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:           it.ID,
		SupplierID:   it.SupplierID,
		SupplyType:   string(it.SupplyType),
		CategoryID:   it.CategoryID,
		Name:         it.Name,
		Description:  it.Description,
		UnitPrice:    it.UnitPrice,
		Observations: it.Observations,
		Active:       it.Active,
		CreatedAt:    it.CreatedAt,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromCatalogItem(it))
	}
	return out
}
