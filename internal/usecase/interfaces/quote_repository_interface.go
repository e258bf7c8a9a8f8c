package interfaces

import (
	"context"

	"casamenteiro/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IQuoteRepository abstracts persistence for quotes and their items (tables
// orcamento and item_orcamento).
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote, items []entities.QuoteItem) (entities.Quote, error)
	GetByID(ctx context.Context, id uint) (entities.Quote, error)
	ListByDemand(ctx context.Context, demandID uint) ([]entities.Quote, error)
	ListBySupplier(ctx context.Context, supplierID uint, page, size int) ([]entities.Quote, error)
	ListByCouple(ctx context.Context, coupleID uint) ([]entities.Quote, error)
	ListByStatus(ctx context.Context, status entities.QuoteStatus, page, size int) ([]entities.Quote, error)
	ListBySupplierAndDemand(ctx context.Context, supplierID, demandID uint) ([]entities.Quote, error)
	// UpdateDerived persists the recomputed cached aggregate status and total.
	UpdateDerived(ctx context.Context, quoteID uint, status entities.QuoteStatus, total decimal.Decimal) (entities.Quote, error)
	DeleteByDemand(ctx context.Context, demandID uint) error

	GetItemByID(ctx context.Context, itemID uint) (entities.QuoteItem, error)
	ListItemsByQuote(ctx context.Context, quoteID uint) ([]entities.QuoteItem, error)
	// ListQuoteIDsByDemandItem reports the quotes carrying a line for the
	// demand item, so callers mutating demand items can recompute their
	// cached derived fields.
	ListQuoteIDsByDemandItem(ctx context.Context, demandItemID uint) ([]uint, error)
	AddItem(ctx context.Context, item entities.QuoteItem) (entities.QuoteItem, error)
	UpdateItem(ctx context.Context, item entities.QuoteItem) (entities.QuoteItem, error)
	RemoveItem(ctx context.Context, itemID uint) error
	UpdateItemStatus(ctx context.Context, itemID uint, status entities.QuoteItemStatus, rejectionReason string) (entities.QuoteItem, error)
	// CountAcceptedForDemandItem backs the one-accepted-per-demand-item rule;
	// it must be read inside the same transaction as the status write.
	CountAcceptedForDemandItem(ctx context.Context, demandItemID uint) (int64, error)
}
