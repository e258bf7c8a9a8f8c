package repository

import (
	"context"

	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// CoupleGormRepository persists couples (table casal).
type CoupleGormRepository struct {
	db *gorm.DB
}

var _ interfaces.ICoupleRepository = (*CoupleGormRepository)(nil)

func NewCoupleGormRepository(db *gorm.DB) *CoupleGormRepository {
	return &CoupleGormRepository{db: db}
}

func (r *CoupleGormRepository) Create(ctx context.Context, c entities.Couple) (entities.Couple, error) {
	m := CoupleModel{
		EngagedAID:   c.EngagedAID,
		EngagedBID:   c.EngagedBID,
		CeremonyDate: c.CeremonyDate,
		CeremonyCity: c.CeremonyCity,
		GuestCount:   c.GuestCount,
		BudgetBand:   c.BudgetBand,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Couple{}, wrapErr(err)
	}
	return toCoupleEntity(m), nil
}

func (r *CoupleGormRepository) GetByID(ctx context.Context, id uint) (entities.Couple, error) {
	var m CoupleModel
	found, err := firstErr(r.db.WithContext(ctx).First(&m, id).Error)
	if err != nil || !found {
		return entities.Couple{}, err
	}
	return toCoupleEntity(m), nil
}

func (r *CoupleGormRepository) GetByMember(ctx context.Context, personID uint) (entities.Couple, error) {
	var m CoupleModel
	found, err := firstErr(r.db.WithContext(ctx).
		Where("id_noivo1 = ? OR id_noivo2 = ?", personID, personID).
		First(&m).Error)
	if err != nil || !found {
		return entities.Couple{}, err
	}
	return toCoupleEntity(m), nil
}

func (r *CoupleGormRepository) Update(ctx context.Context, c entities.Couple) (entities.Couple, error) {
	updates := map[string]interface{}{
		"data_casamento":     c.CeremonyDate,
		"local_previsto":     c.CeremonyCity,
		"numero_convidados":  c.GuestCount,
		"orcamento_estimado": c.BudgetBand,
	}
	if err := r.db.WithContext(ctx).Model(&CoupleModel{}).Where("id = ?", c.ID).Updates(updates).Error; err != nil {
		return entities.Couple{}, wrapErr(err)
	}
	return r.GetByID(ctx, c.ID)
}

func (r *CoupleGormRepository) Delete(ctx context.Context, id uint) error {
	return wrapErr(r.db.WithContext(ctx).Delete(&CoupleModel{}, id).Error)
}
