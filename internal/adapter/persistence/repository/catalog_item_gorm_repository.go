package repository

import (
	"context"

	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CatalogItemGormRepository persists supplier catalog items (table item).
type CatalogItemGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICatalogItemRepository = (*CatalogItemGormRepository)(nil)

func NewCatalogItemGormRepository(db *gorm.DB) *CatalogItemGormRepository {
	return &CatalogItemGormRepository{db: db}
}

func (r *CatalogItemGormRepository) Create(ctx context.Context, it entities.CatalogItem) (entities.CatalogItem, error) {
	m := CatalogItemModel{
		SupplierID:   it.SupplierID,
		SupplyType:   string(it.SupplyType),
		CategoryID:   it.CategoryID,
		Name:         it.Name,
		Description:  it.Description,
		UnitPrice:    it.UnitPrice,
		Observations: it.Observations,
		Active:       it.Active,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.CatalogItem{}, wrapErr(err)
	}
	return toCatalogItemEntity(m), nil
}

func (r *CatalogItemGormRepository) Update(ctx context.Context, it entities.CatalogItem) (entities.CatalogItem, error) {
	updates := map[string]interface{}{
		"tipo":         string(it.SupplyType),
		"id_categoria": it.CategoryID,
		"nome":         it.Name,
		"descricao":    it.Description,
		"preco":        it.UnitPrice,
		"observacoes":  it.Observations,
	}
	if err := r.db.WithContext(ctx).Model(&CatalogItemModel{}).Where("id = ?", it.ID).Updates(updates).Error; err != nil {
		return entities.CatalogItem{}, wrapErr(err)
	}
	return r.GetByID(ctx, it.ID)
}

func (r *CatalogItemGormRepository) GetByID(ctx context.Context, id uint) (entities.CatalogItem, error) {
	var m CatalogItemModel
	found, err := firstErr(r.db.WithContext(ctx).First(&m, id).Error)
	if err != nil || !found {
		return entities.CatalogItem{}, err
	}
	return toCatalogItemEntity(m), nil
}

func (r *CatalogItemGormRepository) GetBySupplierAndName(ctx context.Context, supplierID uint, name string) (entities.CatalogItem, error) {
	var m CatalogItemModel
	found, err := firstErr(r.db.WithContext(ctx).
		Where("id_fornecedor = ? AND lower(nome) = lower(?)", supplierID, name).
		First(&m).Error)
	if err != nil || !found {
		return entities.CatalogItem{}, err
	}
	return toCatalogItemEntity(m), nil
}

func (r *CatalogItemGormRepository) SetActive(ctx context.Context, id uint, active bool) (entities.CatalogItem, error) {
	if err := r.db.WithContext(ctx).Model(&CatalogItemModel{}).Where("id = ?", id).Update("ativo", active).Error; err != nil {
		return entities.CatalogItem{}, wrapErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *CatalogItemGormRepository) ListBySupplier(ctx context.Context, supplierID uint) ([]entities.CatalogItem, error) {
	rows := make([]CatalogItemModel, 0)
	if err := r.db.WithContext(ctx).
		Where("id_fornecedor = ?", supplierID).
		Order("nome").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toCatalogItemEntities(rows), nil
}

func (r *CatalogItemGormRepository) Search(ctx context.Context, term string) ([]entities.CatalogItem, error) {
	like := "%" + term + "%"
	rows := make([]CatalogItemModel, 0)
	if err := r.db.WithContext(ctx).
		Where("ativo = ?", true).
		Where("nome LIKE ? OR descricao LIKE ? OR observacoes LIKE ?", like, like, like).
		Order("nome").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toCatalogItemEntities(rows), nil
}

func (r *CatalogItemGormRepository) List(ctx context.Context, filter interfaces.CatalogItemFilter, page, size int) ([]entities.CatalogItem, error) {
	q := r.db.WithContext(ctx).Model(&CatalogItemModel{})
	if filter.SupplyType != nil {
		q = q.Where("tipo = ?", string(*filter.SupplyType))
	}
	if filter.CategoryID != nil {
		q = q.Where("id_categoria = ?", *filter.CategoryID)
	}
	if filter.Active != nil {
		q = q.Where("ativo = ?", *filter.Active)
	}

	rows := make([]CatalogItemModel, 0)
	if err := q.Order("nome").Offset(offset(page, size)).Limit(size).Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toCatalogItemEntities(rows), nil
}

func (r *CatalogItemGormRepository) CountActiveByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CatalogItemModel{}).
		Where("id_categoria = ? AND ativo = ?", categoryID, true).
		Count(&count).Error
	return count, wrapErr(err)
}

func (r *CatalogItemGormRepository) ActiveCategoryIDsBySupplier(ctx context.Context, supplierID uint) ([]uint, error) {
	ids := make([]uint, 0)
	err := r.db.WithContext(ctx).Model(&CatalogItemModel{}).
		Where("id_fornecedor = ? AND ativo = ?", supplierID, true).
		Distinct().
		Pluck("id_categoria", &ids).Error
	if err != nil {
		return nil, wrapErr(err)
	}
	return ids, nil
}

func toCatalogItemEntities(rows []CatalogItemModel) []entities.CatalogItem {
	result := make([]entities.CatalogItem, 0, len(rows))
	for _, m := range rows {
		result = append(result, toCatalogItemEntity(m))
	}
	return result
}
