package interfaces

import (
	"context"

	"casamenteiro/internal/domain/entities"
)

// ICoupleRepository abstracts persistence for couples (table casal).
type ICoupleRepository interface {
	Create(ctx context.Context, c entities.Couple) (entities.Couple, error)
	GetByID(ctx context.Context, id uint) (entities.Couple, error)
	GetByMember(ctx context.Context, personID uint) (entities.Couple, error)
	Update(ctx context.Context, c entities.Couple) (entities.Couple, error)
	Delete(ctx context.Context, id uint) error
}
