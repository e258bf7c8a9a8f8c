package repository

import (
	"context"

	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CategoryGormRepository persists categories (table categoria). The
// normalized name column backs the case-insensitive name+type uniqueness.
type CategoryGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICategoryRepository = (*CategoryGormRepository)(nil)

func NewCategoryGormRepository(db *gorm.DB) *CategoryGormRepository {
	return &CategoryGormRepository{db: db}
}

func (r *CategoryGormRepository) Create(ctx context.Context, c entities.Category) (entities.Category, error) {
	m := CategoryModel{
		Name:           c.Name,
		NormalizedName: entities.NormalizedCategoryName(c.Name),
		SupplyType:     string(c.SupplyType),
		Description:    c.Description,
		Active:         c.Active,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Category{}, wrapErr(err)
	}
	return toCategoryEntity(m), nil
}

func (r *CategoryGormRepository) Update(ctx context.Context, c entities.Category) (entities.Category, error) {
	updates := map[string]interface{}{
		"nome":             c.Name,
		"nome_normalizado": entities.NormalizedCategoryName(c.Name),
		"descricao":        c.Description,
	}
	if err := r.db.WithContext(ctx).Model(&CategoryModel{}).Where("id = ?", c.ID).Updates(updates).Error; err != nil {
		return entities.Category{}, wrapErr(err)
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CategoryGormRepository) GetByID(ctx context.Context, id uint) (entities.Category, error) {
	var m CategoryModel
	found, err := firstErr(r.db.WithContext(ctx).First(&m, id).Error)
	if err != nil || !found {
		return entities.Category{}, err
	}
	return toCategoryEntity(m), nil
}

func (r *CategoryGormRepository) GetByNormalizedName(ctx context.Context, name string, supplyType entities.SupplyType) (entities.Category, error) {
	var m CategoryModel
	found, err := firstErr(r.db.WithContext(ctx).
		Where("nome_normalizado = ? AND tipo_fornecimento = ?", entities.NormalizedCategoryName(name), string(supplyType)).
		First(&m).Error)
	if err != nil || !found {
		return entities.Category{}, err
	}
	return toCategoryEntity(m), nil
}

func (r *CategoryGormRepository) SetActive(ctx context.Context, id uint, active bool) (entities.Category, error) {
	if err := r.db.WithContext(ctx).Model(&CategoryModel{}).Where("id = ?", id).Update("ativo", active).Error; err != nil {
		return entities.Category{}, wrapErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *CategoryGormRepository) List(ctx context.Context, filter interfaces.CategoryFilter, page, size int) ([]entities.Category, error) {
	q := r.db.WithContext(ctx).Model(&CategoryModel{})
	if filter.SupplyType != nil {
		q = q.Where("tipo_fornecimento = ?", string(*filter.SupplyType))
	}
	if filter.Active != nil {
		q = q.Where("ativo = ?", *filter.Active)
	}

	rows := make([]CategoryModel, 0)
	if err := q.Order("nome_normalizado").Offset(offset(page, size)).Limit(size).Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}

	result := make([]entities.Category, 0, len(rows))
	for _, m := range rows {
		result = append(result, toCategoryEntity(m))
	}
	return result, nil
}
