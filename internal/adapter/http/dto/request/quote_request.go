package request

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuoteItemRequest struct {
	DemandItemID  uint             `json:"demand_item_id" binding:"required"`
	CatalogItemID uint             `json:"catalog_item_id" binding:"required"`
	Quantity      int              `json:"quantity" binding:"required"`
	UnitPrice     decimal.Decimal  `json:"unit_price"`
	Discount      *decimal.Decimal `json:"discount"`
	Observations  string           `json:"observations"`
}

type CreateQuoteRequest struct {
	DemandID     uint               `json:"demand_id" binding:"required"`
	SupplierID   uint               `json:"supplier_id" binding:"required"`
	Validity     *time.Time         `json:"validity"`
	Observations string             `json:"observations"`
	Items        []QuoteItemRequest `json:"items"`
}

// QuoteItemDecisionRequest identifies who is accepting or rejecting a line.
type QuoteItemDecisionRequest struct {
	ActorID uint   `json:"actor_id" binding:"required"`
	Reason  string `json:"reason"`
}
