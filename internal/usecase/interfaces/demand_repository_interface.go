package interfaces

import (
	"context"

	"casamenteiro/internal/domain/entities"
)

// IDemandRepository abstracts persistence for demands and their items
// (tables demanda and item_demanda). A demand owns its items exclusively;
// Delete cascades to items, quotes and quote items.
type IDemandRepository interface {
	Create(ctx context.Context, d entities.Demand, items []entities.DemandItem) (entities.Demand, error)
	GetByID(ctx context.Context, id uint) (entities.Demand, error)
	UpdateStatus(ctx context.Context, id uint, status entities.DemandStatus) (entities.Demand, error)
	Delete(ctx context.Context, id uint) error
	ListByCouple(ctx context.Context, coupleID uint) ([]entities.Demand, error)
	Search(ctx context.Context, term string) ([]entities.Demand, error)
	// ListActiveByCategories returns ACTIVE demands having at least one item
	// in any of the given categories, most recent first (created-at DESC,
	// id DESC tie-break).
	ListActiveByCategories(ctx context.Context, categoryIDs []uint, page, size int) ([]entities.Demand, error)

	AddItem(ctx context.Context, item entities.DemandItem) (entities.DemandItem, error)
	UpdateItem(ctx context.Context, item entities.DemandItem) (entities.DemandItem, error)
	RemoveItem(ctx context.Context, itemID uint) error
	GetItemByID(ctx context.Context, itemID uint) (entities.DemandItem, error)
	ListItemsByDemand(ctx context.Context, demandID uint) ([]entities.DemandItem, error)
	CountItemsByDemand(ctx context.Context, demandID uint) (int64, error)
	// CountItemsWithAcceptedQuote counts the demand's items having at least
	// one ACCEPTED quote item, for the fulfillment percentage.
	CountItemsWithAcceptedQuote(ctx context.Context, demandID uint) (int64, error)
}
