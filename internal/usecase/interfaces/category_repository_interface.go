package interfaces

import (
	"context"

	"casamenteiro/internal/domain/entities"
)

// CategoryFilter narrows category listings. Nil fields mean "any".
type CategoryFilter struct {
	SupplyType *entities.SupplyType
	Active     *bool
}

// ICategoryRepository abstracts persistence for categories (table categoria).
type ICategoryRepository interface {
	Create(ctx context.Context, c entities.Category) (entities.Category, error)
	Update(ctx context.Context, c entities.Category) (entities.Category, error)
	GetByID(ctx context.Context, id uint) (entities.Category, error)
	// GetByNormalizedName resolves by the case-insensitive trimmed name plus
	// supply type, backing the name+type uniqueness rule.
	GetByNormalizedName(ctx context.Context, name string, supplyType entities.SupplyType) (entities.Category, error)
	SetActive(ctx context.Context, id uint, active bool) (entities.Category, error)
	List(ctx context.Context, filter CategoryFilter, page, size int) ([]entities.Category, error)
}
