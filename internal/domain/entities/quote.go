package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteItemStatus is the per-line lifecycle. PENDING is the only non-terminal
// state; ACCEPTED and REJECTED are final.
type QuoteItemStatus string

const (
	QuoteItemStatusPending  QuoteItemStatus = "PENDENTE"
	QuoteItemStatusAccepted QuoteItemStatus = "ACEITO"
	QuoteItemStatusRejected QuoteItemStatus = "REJEITADO"
)

// QuoteStatus is the aggregate status of a quote, always derived from the
// statuses of its items and cached on the quote row.
type QuoteStatus string

const (
	QuoteStatusPending           QuoteStatus = "PENDENTE"
	QuoteStatusAccepted          QuoteStatus = "ACEITO"
	QuoteStatusRejected          QuoteStatus = "REJEITADO"
	QuoteStatusPartiallyAccepted QuoteStatus = "PARCIALMENTE_ACEITO"
)

// Quote is a supplier's proposal for a demand (table orcamento). Status and
// TotalValue are derived fields, recomputed on every write touching items.
type Quote struct {
	ID           uint            `json:"id"`
	DemandID     uint            `json:"demand_id"`
	SupplierID   uint            `json:"supplier_id"`
	Validity     *time.Time      `json:"validity,omitempty"`
	Observations string          `json:"observations,omitempty"`
	Status       QuoteStatus     `json:"status"`
	TotalValue   decimal.Decimal `json:"total_value"`
	CreatedAt    time.Time       `json:"created_at"`
}

// QuoteItem is one priced line in a quote (table item_orcamento), binding a
// demand item to a catalog item of the quoting supplier.
type QuoteItem struct {
	ID              uint             `json:"id"`
	QuoteID         uint             `json:"quote_id"`
	DemandItemID    uint             `json:"demand_item_id"`
	CatalogItemID   uint             `json:"catalog_item_id"`
	Quantity        int              `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	Discount        *decimal.Decimal `json:"discount,omitempty"`
	Observations    string           `json:"observations,omitempty"`
	Status          QuoteItemStatus  `json:"status"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
}

// LineTotal is quantity*unit minus the absolute discount, clamped at zero.
func (qi QuoteItem) LineTotal() decimal.Decimal {
	total := qi.UnitPrice.Mul(decimal.NewFromInt(int64(qi.Quantity)))
	if qi.Discount != nil {
		total = total.Sub(*qi.Discount)
	}
	if total.IsNegative() {
		return decimal.Zero
	}
	return total
}

// DeriveQuoteStatus computes the aggregate status from the multiset of item
// statuses. It is the single source of truth for the cached Quote.Status:
//
//	no items / all pending          -> PENDING
//	all accepted                    -> ACCEPTED
//	all rejected                    -> REJECTED
//	some accepted, some not         -> PARTIALLY_ACCEPTED
//	no accepted, pending + rejected -> PENDING
func DeriveQuoteStatus(statuses []QuoteItemStatus) QuoteStatus {
	if len(statuses) == 0 {
		return QuoteStatusPending
	}
	var accepted, rejected int
	for _, s := range statuses {
		switch s {
		case QuoteItemStatusAccepted:
			accepted++
		case QuoteItemStatusRejected:
			rejected++
		}
	}
	switch {
	case accepted == len(statuses):
		return QuoteStatusAccepted
	case rejected == len(statuses):
		return QuoteStatusRejected
	case accepted > 0:
		return QuoteStatusPartiallyAccepted
	default:
		return QuoteStatusPending
	}
}

// QuoteTotal sums the line totals of accepted items only. Pending and
// rejected lines contribute zero.
func QuoteTotal(items []QuoteItem) decimal.Decimal {
	total := decimal.Zero
	for _, qi := range items {
		if qi.Status == QuoteItemStatusAccepted {
			total = total.Add(qi.LineTotal())
		}
	}
	return total
}

// FulfillmentPercent is 100*covered/total with two fractional digits
// (half-up), where covered counts demand items having at least one accepted
// quote item. Zero when the demand has no items.
func FulfillmentPercent(totalItems, coveredItems int) decimal.Decimal {
	if totalItems <= 0 {
		return decimal.Zero.Round(2)
	}
	return decimal.NewFromInt(int64(coveredItems) * 100).
		Div(decimal.NewFromInt(int64(totalItems))).
		Round(2)
}
