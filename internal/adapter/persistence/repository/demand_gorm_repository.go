package repository

import (
	"context"

	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// DemandGormRepository persists demands and their items (tables demanda and
// item_demanda). Deleting a demand relies on the schema's ON DELETE CASCADE
// for item rows.
type DemandGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IDemandRepository = (*DemandGormRepository)(nil)

func NewDemandGormRepository(db *gorm.DB) *DemandGormRepository {
	return &DemandGormRepository{db: db}
}

func (r *DemandGormRepository) Create(ctx context.Context, d entities.Demand, items []entities.DemandItem) (entities.Demand, error) {
	m := DemandModel{
		CoupleID:         d.CoupleID,
		Description:      d.Description,
		TotalBudget:      d.TotalBudget,
		DeliveryDeadline: d.DeliveryDeadline,
		Status:           string(entities.DemandStatusActive),
		Observations:     d.Observations,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, it := range items {
			row := demandItemModel(it)
			row.DemandID = m.ID
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Demand{}, wrapErr(err)
	}
	return toDemandEntity(m), nil
}

func (r *DemandGormRepository) GetByID(ctx context.Context, id uint) (entities.Demand, error) {
	var m DemandModel
	found, err := firstErr(r.db.WithContext(ctx).First(&m, id).Error)
	if err != nil || !found {
		return entities.Demand{}, err
	}
	return toDemandEntity(m), nil
}

func (r *DemandGormRepository) UpdateStatus(ctx context.Context, id uint, status entities.DemandStatus) (entities.Demand, error) {
	if err := r.db.WithContext(ctx).Model(&DemandModel{}).Where("id = ?", id).Update("status", string(status)).Error; err != nil {
		return entities.Demand{}, wrapErr(err)
	}
	return r.GetByID(ctx, id)
}

func (r *DemandGormRepository) Delete(ctx context.Context, id uint) error {
	return wrapErr(r.db.WithContext(ctx).Delete(&DemandModel{}, id).Error)
}

func (r *DemandGormRepository) ListByCouple(ctx context.Context, coupleID uint) ([]entities.Demand, error) {
	rows := make([]DemandModel, 0)
	if err := r.db.WithContext(ctx).
		Where("id_casal = ?", coupleID).
		Order("data_criacao DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toDemandEntities(rows), nil
}

func (r *DemandGormRepository) Search(ctx context.Context, term string) ([]entities.Demand, error) {
	like := "%" + term + "%"
	rows := make([]DemandModel, 0)
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.DemandStatusActive)).
		Where("descricao LIKE ? OR observacoes LIKE ?", like, like).
		Order("data_criacao DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toDemandEntities(rows), nil
}

func (r *DemandGormRepository) ListActiveByCategories(ctx context.Context, categoryIDs []uint, page, size int) ([]entities.Demand, error) {
	rows := make([]DemandModel, 0)
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.DemandStatusActive)).
		Where("id IN (?)", r.db.Model(&DemandItemModel{}).Distinct("id_demanda").Where("id_categoria IN ?", categoryIDs)).
		Order("data_criacao DESC, id DESC").
		Offset(offset(page, size)).Limit(size).
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toDemandEntities(rows), nil
}

func (r *DemandGormRepository) AddItem(ctx context.Context, item entities.DemandItem) (entities.DemandItem, error) {
	m := demandItemModel(item)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.DemandItem{}, wrapErr(err)
	}
	return toDemandItemEntity(m), nil
}

func (r *DemandGormRepository) UpdateItem(ctx context.Context, item entities.DemandItem) (entities.DemandItem, error) {
	updates := map[string]interface{}{
		"tipo":         string(item.SupplyType),
		"id_categoria": item.CategoryID,
		"descricao":    item.Description,
		"quantidade":   item.Quantity,
		"preco_maximo": item.MaxPrice,
		"observacoes":  item.Observations,
	}
	if err := r.db.WithContext(ctx).Model(&DemandItemModel{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
		return entities.DemandItem{}, wrapErr(err)
	}
	return r.GetItemByID(ctx, item.ID)
}

func (r *DemandGormRepository) RemoveItem(ctx context.Context, itemID uint) error {
	return wrapErr(r.db.WithContext(ctx).Delete(&DemandItemModel{}, itemID).Error)
}

func (r *DemandGormRepository) GetItemByID(ctx context.Context, itemID uint) (entities.DemandItem, error) {
	var m DemandItemModel
	found, err := firstErr(r.db.WithContext(ctx).First(&m, itemID).Error)
	if err != nil || !found {
		return entities.DemandItem{}, err
	}
	return toDemandItemEntity(m), nil
}

func (r *DemandGormRepository) ListItemsByDemand(ctx context.Context, demandID uint) ([]entities.DemandItem, error) {
	rows := make([]DemandItemModel, 0)
	if err := r.db.WithContext(ctx).
		Where("id_demanda = ?", demandID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	result := make([]entities.DemandItem, 0, len(rows))
	for _, m := range rows {
		result = append(result, toDemandItemEntity(m))
	}
	return result, nil
}

func (r *DemandGormRepository) CountItemsByDemand(ctx context.Context, demandID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DemandItemModel{}).
		Where("id_demanda = ?", demandID).
		Count(&count).Error
	return count, wrapErr(err)
}

func (r *DemandGormRepository) CountItemsWithAcceptedQuote(ctx context.Context, demandID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DemandItemModel{}).
		Where("id_demanda = ?", demandID).
		Where("id IN (?)", r.db.Model(&QuoteItemModel{}).
			Distinct("id_item_demanda").
			Where("status = ?", string(entities.QuoteItemStatusAccepted))).
		Count(&count).Error
	return count, wrapErr(err)
}

func demandItemModel(it entities.DemandItem) DemandItemModel {
	return DemandItemModel{
		ID:           it.ID,
		DemandID:     it.DemandID,
		SupplyType:   string(it.SupplyType),
		CategoryID:   it.CategoryID,
		Description:  it.Description,
		Quantity:     it.Quantity,
		MaxPrice:     it.MaxPrice,
		Observations: it.Observations,
	}
}

func toDemandEntities(rows []DemandModel) []entities.Demand {
	result := make([]entities.Demand, 0, len(rows))
	for _, m := range rows {
		result = append(result, toDemandEntity(m))
	}
	return result
}
