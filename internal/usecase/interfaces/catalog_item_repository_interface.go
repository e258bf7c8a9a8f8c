package interfaces

import (
	"context"

	"casamenteiro/internal/domain/entities"
)

// CatalogItemFilter narrows catalog listings. Nil fields mean "any".
type CatalogItemFilter struct {
	SupplyType *entities.SupplyType
	CategoryID *uint
	Active     *bool
}

// ICatalogItemRepository abstracts persistence for catalog items (table item).
type ICatalogItemRepository interface {
	Create(ctx context.Context, it entities.CatalogItem) (entities.CatalogItem, error)
	Update(ctx context.Context, it entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id uint) (entities.CatalogItem, error)
	GetBySupplierAndName(ctx context.Context, supplierID uint, name string) (entities.CatalogItem, error)
	SetActive(ctx context.Context, id uint, active bool) (entities.CatalogItem, error)
	ListBySupplier(ctx context.Context, supplierID uint) ([]entities.CatalogItem, error)
	// Search matches the term against name, description and observations.
	Search(ctx context.Context, term string) ([]entities.CatalogItem, error)
	List(ctx context.Context, filter CatalogItemFilter, page, size int) ([]entities.CatalogItem, error)
	// CountActiveByCategory backs the category-in-use deactivation guard.
	CountActiveByCategory(ctx context.Context, categoryID uint) (int64, error)
	// ActiveCategoryIDsBySupplier is the supplier's active category set used
	// by demand visibility.
	ActiveCategoryIDsBySupplier(ctx context.Context, supplierID uint) ([]uint, error)
}
