package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// DemandStatus is the demand lifecycle. A demand is created ACTIVE and moves
// monotonically to FINISHED or CANCELLED; there is no way back.
type DemandStatus string

const (
	DemandStatusActive    DemandStatus = "ATIVA"
	DemandStatusFinished  DemandStatus = "FINALIZADA"
	DemandStatusCancelled DemandStatus = "CANCELADA"
)

// Valid reports whether s is a known demand status.
func (s DemandStatus) Valid() bool {
	switch s {
	case DemandStatusActive, DemandStatusFinished, DemandStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the edge s -> target is allowed.
// Same-state transitions are handled by callers as no-ops.
func (s DemandStatus) CanTransitionTo(target DemandStatus) bool {
	return s == DemandStatusActive &&
		(target == DemandStatusFinished || target == DemandStatusCancelled)
}

// Demand is a couple's request-for-quote bundle (table demanda). It owns its
// DemandItems exclusively; deleting a demand cascades to items and quotes.
type Demand struct {
	ID               uint             `json:"id"`
	CoupleID         uint             `json:"couple_id"`
	Description      string           `json:"description"`
	TotalBudget      *decimal.Decimal `json:"total_budget,omitempty"`
	DeliveryDeadline string           `json:"delivery_deadline,omitempty"`
	Status           DemandStatus     `json:"status"`
	Observations     string           `json:"observations,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// DemandItem is one free-text line in a demand (table item_demanda). It is
// deliberately NOT linked to any catalog item: the supplier decides at
// quote-creation time which catalog item fulfils the request.
type DemandItem struct {
	ID           uint             `json:"id"`
	DemandID     uint             `json:"demand_id"`
	SupplyType   SupplyType       `json:"supply_type"`
	CategoryID   uint             `json:"category_id"`
	Description  string           `json:"description"`
	Quantity     int              `json:"quantity"`
	MaxPrice     *decimal.Decimal `json:"max_price,omitempty"`
	Observations string           `json:"observations,omitempty"`
}
