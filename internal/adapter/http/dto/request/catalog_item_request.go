package request

import "github.com/shopspring/decimal"

type CatalogItemRequest struct {
	SupplierID   uint            `json:"supplier_id"`
	SupplyType   string          `json:"supply_type" binding:"required"`
	CategoryID   uint            `json:"category_id" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Observations string          `json:"observations"`
}
