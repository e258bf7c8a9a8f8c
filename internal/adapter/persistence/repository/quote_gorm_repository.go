package repository

import (
	"context"

	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// QuoteGormRepository persists quotes and their items (tables orcamento and
// item_orcamento).
type QuoteGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IQuoteRepository = (*QuoteGormRepository)(nil)

func NewQuoteGormRepository(db *gorm.DB) *QuoteGormRepository {
	return &QuoteGormRepository{db: db}
}

func (r *QuoteGormRepository) Create(ctx context.Context, q entities.Quote, items []entities.QuoteItem) (entities.Quote, error) {
	m := QuoteModel{
		DemandID:     q.DemandID,
		SupplierID:   q.SupplierID,
		Validity:     q.Validity,
		Observations: q.Observations,
		Status:       string(q.Status),
		TotalValue:   q.TotalValue,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		for _, it := range items {
			row := quoteItemModel(it)
			row.QuoteID = m.ID
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return entities.Quote{}, wrapErr(err)
	}
	return toQuoteEntity(m), nil
}

func (r *QuoteGormRepository) GetByID(ctx context.Context, id uint) (entities.Quote, error) {
	var m QuoteModel
	found, err := firstErr(r.db.WithContext(ctx).First(&m, id).Error)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return toQuoteEntity(m), nil
}

func (r *QuoteGormRepository) ListByDemand(ctx context.Context, demandID uint) ([]entities.Quote, error) {
	rows := make([]QuoteModel, 0)
	if err := r.db.WithContext(ctx).
		Where("id_demanda = ?", demandID).
		Order("data_hora_cadastro DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toQuoteEntities(rows), nil
}

func (r *QuoteGormRepository) ListBySupplier(ctx context.Context, supplierID uint, page, size int) ([]entities.Quote, error) {
	rows := make([]QuoteModel, 0)
	if err := r.db.WithContext(ctx).
		Where("id_fornecedor = ?", supplierID).
		Order("data_hora_cadastro DESC, id DESC").
		Offset(offset(page, size)).Limit(size).
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toQuoteEntities(rows), nil
}

func (r *QuoteGormRepository) ListByCouple(ctx context.Context, coupleID uint) ([]entities.Quote, error) {
	rows := make([]QuoteModel, 0)
	if err := r.db.WithContext(ctx).Model(&QuoteModel{}).
		Joins("JOIN demanda ON demanda.id = orcamento.id_demanda").
		Where("demanda.id_casal = ?", coupleID).
		Order("orcamento.data_hora_cadastro DESC, orcamento.id DESC").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toQuoteEntities(rows), nil
}

func (r *QuoteGormRepository) ListByStatus(ctx context.Context, status entities.QuoteStatus, page, size int) ([]entities.Quote, error) {
	rows := make([]QuoteModel, 0)
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("data_hora_cadastro DESC, id DESC").
		Offset(offset(page, size)).Limit(size).
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toQuoteEntities(rows), nil
}

func (r *QuoteGormRepository) ListBySupplierAndDemand(ctx context.Context, supplierID, demandID uint) ([]entities.Quote, error) {
	rows := make([]QuoteModel, 0)
	if err := r.db.WithContext(ctx).
		Where("id_fornecedor = ? AND id_demanda = ?", supplierID, demandID).
		Order("data_hora_cadastro DESC, id DESC").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	return toQuoteEntities(rows), nil
}

func (r *QuoteGormRepository) UpdateDerived(ctx context.Context, quoteID uint, status entities.QuoteStatus, total decimal.Decimal) (entities.Quote, error) {
	updates := map[string]interface{}{
		"status":      string(status),
		"valor_total": total,
	}
	if err := r.db.WithContext(ctx).Model(&QuoteModel{}).Where("id = ?", quoteID).Updates(updates).Error; err != nil {
		return entities.Quote{}, wrapErr(err)
	}
	return r.GetByID(ctx, quoteID)
}

func (r *QuoteGormRepository) DeleteByDemand(ctx context.Context, demandID uint) error {
	return wrapErr(r.db.WithContext(ctx).
		Where("id_demanda = ?", demandID).
		Delete(&QuoteModel{}).Error)
}

func (r *QuoteGormRepository) GetItemByID(ctx context.Context, itemID uint) (entities.QuoteItem, error) {
	var m QuoteItemModel
	found, err := firstErr(r.db.WithContext(ctx).First(&m, itemID).Error)
	if err != nil || !found {
		return entities.QuoteItem{}, err
	}
	return toQuoteItemEntity(m), nil
}

func (r *QuoteGormRepository) ListItemsByQuote(ctx context.Context, quoteID uint) ([]entities.QuoteItem, error) {
	rows := make([]QuoteItemModel, 0)
	if err := r.db.WithContext(ctx).
		Where("id_orcamento = ?", quoteID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, wrapErr(err)
	}
	result := make([]entities.QuoteItem, 0, len(rows))
	for _, m := range rows {
		result = append(result, toQuoteItemEntity(m))
	}
	return result, nil
}

func (r *QuoteGormRepository) ListQuoteIDsByDemandItem(ctx context.Context, demandItemID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.db.WithContext(ctx).
		Model(&QuoteItemModel{}).
		Distinct().
		Where("id_item_demanda = ?", demandItemID).
		Pluck("id_orcamento", &ids).Error; err != nil {
		return nil, wrapErr(err)
	}
	return ids, nil
}

func (r *QuoteGormRepository) AddItem(ctx context.Context, item entities.QuoteItem) (entities.QuoteItem, error) {
	m := quoteItemModel(item)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.QuoteItem{}, wrapErr(err)
	}
	return toQuoteItemEntity(m), nil
}

func (r *QuoteGormRepository) UpdateItem(ctx context.Context, item entities.QuoteItem) (entities.QuoteItem, error) {
	updates := map[string]interface{}{
		"id_item":        item.CatalogItemID,
		"quantidade":     item.Quantity,
		"preco_unitario": item.UnitPrice,
		"desconto":       item.Discount,
		"observacoes":    item.Observations,
	}
	if err := r.db.WithContext(ctx).Model(&QuoteItemModel{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
		return entities.QuoteItem{}, wrapErr(err)
	}
	return r.GetItemByID(ctx, item.ID)
}

func (r *QuoteGormRepository) RemoveItem(ctx context.Context, itemID uint) error {
	return wrapErr(r.db.WithContext(ctx).Delete(&QuoteItemModel{}, itemID).Error)
}

func (r *QuoteGormRepository) UpdateItemStatus(ctx context.Context, itemID uint, status entities.QuoteItemStatus, rejectionReason string) (entities.QuoteItem, error) {
	updates := map[string]interface{}{
		"status":          string(status),
		"motivo_rejeicao": rejectionReason,
	}
	if err := r.db.WithContext(ctx).Model(&QuoteItemModel{}).Where("id = ?", itemID).Updates(updates).Error; err != nil {
		return entities.QuoteItem{}, wrapErr(err)
	}
	return r.GetItemByID(ctx, itemID)
}

func (r *QuoteGormRepository) CountAcceptedForDemandItem(ctx context.Context, demandItemID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&QuoteItemModel{}).
		Where("id_item_demanda = ? AND status = ?", demandItemID, string(entities.QuoteItemStatusAccepted)).
		Count(&count).Error
	return count, wrapErr(err)
}

func quoteItemModel(it entities.QuoteItem) QuoteItemModel {
	status := it.Status
	if status == "" {
		status = entities.QuoteItemStatusPending
	}
	return QuoteItemModel{
		ID:              it.ID,
		QuoteID:         it.QuoteID,
		DemandItemID:    it.DemandItemID,
		CatalogItemID:   it.CatalogItemID,
		Quantity:        it.Quantity,
		UnitPrice:       it.UnitPrice,
		Discount:        it.Discount,
		Observations:    it.Observations,
		Status:          string(status),
		RejectionReason: it.RejectionReason,
	}
}

func toQuoteEntities(rows []QuoteModel) []entities.Quote {
	result := make([]entities.Quote, 0, len(rows))
	for _, m := range rows {
		result = append(result, toQuoteEntity(m))
	}
	return result
}
