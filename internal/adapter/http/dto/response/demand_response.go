package response

import (
	"time"

	"casamenteiro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type DemandResponse struct {
	ID               uint             `json:"id"`
	CoupleID         uint             `json:"couple_id"`
	Description      string           `json:"description"`
	TotalBudget      *decimal.Decimal `json:"total_budget,omitempty"`
	DeliveryDeadline string           `json:"delivery_deadline,omitempty"`
	Status           string           `json:"status"`
	Observations     string           `json:"observations,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

type DemandItemResponse struct {
	ID           uint             `json:"id"`
	DemandID     uint             `json:"demand_id"`
	SupplyType   string           `json:"supply_type"`
	CategoryID   uint             `json:"category_id"`
	Description  string           `json:"description"`
	Quantity     int              `json:"quantity"`
	MaxPrice     *decimal.Decimal `json:"max_price,omitempty"`
	Observations string           `json:"observations,omitempty"`
}

// DemandFulfillmentResponse carries the coverage percentage of a demand.
type DemandFulfillmentResponse struct {
	DemandID           uint            `json:"demand_id"`
	FulfillmentPercent decimal.Decimal `json:"fulfillment_percent"`
}

func FromDemand(d entities.Demand) DemandResponse {
	return DemandResponse{
		ID:               d.ID,
		CoupleID:         d.CoupleID,
		Description:      d.Description,
		TotalBudget:      d.TotalBudget,
		DeliveryDeadline: d.DeliveryDeadline,
		Status:           string(d.Status),
		Observations:     d.Observations,
		CreatedAt:        d.CreatedAt,
	}
}

func FromDemands(ds []entities.Demand) []DemandResponse {
	out := make([]DemandResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDemand(d))
	}
	return out
}

func FromDemandItem(it entities.DemandItem) DemandItemResponse {
	return DemandItemResponse{
		ID:           it.ID,
		DemandID:     it.DemandID,
		SupplyType:   string(it.SupplyType),
		CategoryID:   it.CategoryID,
		Description:  it.Description,
		Quantity:     it.Quantity,
		MaxPrice:     it.MaxPrice,
		Observations: it.Observations,
	}
}

func FromDemandItems(items []entities.DemandItem) []DemandItemResponse {
	out := make([]DemandItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromDemandItem(it))
	}
	return out
}
