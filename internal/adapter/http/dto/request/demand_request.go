package request

import "github.com/shopspring/decimal"

type DemandItemRequest struct {
	SupplyType   string           `json:"supply_type" binding:"required"`
	CategoryID   uint             `json:"category_id" binding:"required"`
	Description  string           `json:"description" binding:"required"`
	Quantity     int              `json:"quantity" binding:"required"`
	MaxPrice     *decimal.Decimal `json:"max_price"`
	Observations string           `json:"observations"`
}

type CreateDemandRequest struct {
	CoupleID         uint                `json:"couple_id" binding:"required"`
	Description      string              `json:"description" binding:"required"`
	TotalBudget      *decimal.Decimal    `json:"total_budget"`
	DeliveryDeadline string              `json:"delivery_deadline"`
	Observations     string              `json:"observations"`
	Items            []DemandItemRequest `json:"items" binding:"required"`
}

type TransitionDemandRequest struct {
	Status string `json:"status" binding:"required"`
}
