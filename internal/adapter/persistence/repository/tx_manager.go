package repository

import (
	"context"

	"casamenteiro/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// GormTxManager runs use-case units of work inside a single database
// transaction, handing the callback repositories bound to that transaction.
type GormTxManager struct {
	db *gorm.DB
}

var _ interfaces.ITxManager = (*GormTxManager)(nil)

func NewGormTxManager(db *gorm.DB) *GormTxManager {
	return &GormTxManager{db: db}
}

func (m *GormTxManager) WithinTx(ctx context.Context, fn func(tx interfaces.TxRepositories) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(interfaces.TxRepositories{
			Persons:      NewPersonGormRepository(tx),
			Couples:      NewCoupleGormRepository(tx),
			Categories:   NewCategoryGormRepository(tx),
			CatalogItems: NewCatalogItemGormRepository(tx),
			Demands:      NewDemandGormRepository(tx),
			Quotes:       NewQuoteGormRepository(tx),
		})
	})
	if err != nil {
		return wrapTxErr(err)
	}
	return nil
}

// wrapTxErr keeps domain errors raised inside the callback intact and wraps
// only raw infrastructure failures.
func wrapTxErr(err error) error {
	if isDomainErr(err) {
		return err
	}
	return wrapErr(err)
}
