package response

import (
	"time"

	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase"

	"github.com/shopspring/decimal"
)

type QuoteResponse struct {
	ID           uint            `json:"id"`
	DemandID     uint            `json:"demand_id"`
	SupplierID   uint            `json:"supplier_id"`
	Validity     *time.Time      `json:"validity,omitempty"`
	Observations string          `json:"observations,omitempty"`
	Status       string          `json:"status"`
	TotalValue   decimal.Decimal `json:"total_value"`
	CreatedAt    time.Time       `json:"created_at"`
}

type QuoteItemResponse struct {
	ID              uint             `json:"id"`
	QuoteID         uint             `json:"quote_id"`
	DemandItemID    uint             `json:"demand_item_id"`
	CatalogItemID   uint             `json:"catalog_item_id"`
	Quantity        int              `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unit_price"`
	Discount        *decimal.Decimal `json:"discount,omitempty"`
	LineTotal       decimal.Decimal  `json:"line_total"`
	Observations    string           `json:"observations,omitempty"`
	Status          string           `json:"status"`
	RejectionReason string           `json:"rejection_reason,omitempty"`
}

type QuoteWithItemsResponse struct {
	Quote QuoteResponse       `json:"quote"`
	Items []QuoteItemResponse `json:"items"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:           q.ID,
		DemandID:     q.DemandID,
		SupplierID:   q.SupplierID,
		Validity:     q.Validity,
		Observations: q.Observations,
		Status:       string(q.Status),
		TotalValue:   q.TotalValue,
		CreatedAt:    q.CreatedAt,
	}
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}

func FromQuoteItem(qi entities.QuoteItem) QuoteItemResponse {
	return QuoteItemResponse{
		ID:              qi.ID,
		QuoteID:         qi.QuoteID,
		DemandItemID:    qi.DemandItemID,
		CatalogItemID:   qi.CatalogItemID,
		Quantity:        qi.Quantity,
		UnitPrice:       qi.UnitPrice,
		Discount:        qi.Discount,
		LineTotal:       qi.LineTotal(),
		Observations:    qi.Observations,
		Status:          string(qi.Status),
		RejectionReason: qi.RejectionReason,
	}
}

func FromQuoteWithItems(qw usecase.QuoteWithItems) QuoteWithItemsResponse {
	items := make([]QuoteItemResponse, 0, len(qw.Items))
	for _, qi := range qw.Items {
		items = append(items, FromQuoteItem(qi))
	}
	return QuoteWithItemsResponse{Quote: FromQuote(qw.Quote), Items: items}
}
