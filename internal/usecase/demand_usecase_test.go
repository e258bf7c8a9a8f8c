package usecase

import (
	"context"
	"errors"
	"testing"

	"casamenteiro/internal/domain/domainerr"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"
	mock_interfaces "casamenteiro/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// demandMocks bundles the mocks a DemandUseCase needs, with the tx manager
// stubbed to run the callback against the same mocks.
type demandMocks struct {
	demands    *mock_interfaces.MockIDemandRepository
	couples    *mock_interfaces.MockICoupleRepository
	categories *mock_interfaces.MockICategoryRepository
	catalog    *mock_interfaces.MockICatalogItemRepository
	persons    *mock_interfaces.MockIPersonRepository
	quotes     *mock_interfaces.MockIQuoteRepository
	tx         *mock_interfaces.MockITxManager
}

func newDemandMocks(ctrl *gomock.Controller) demandMocks {
	return demandMocks{
		demands:    mock_interfaces.NewMockIDemandRepository(ctrl),
		couples:    mock_interfaces.NewMockICoupleRepository(ctrl),
		categories: mock_interfaces.NewMockICategoryRepository(ctrl),
		catalog:    mock_interfaces.NewMockICatalogItemRepository(ctrl),
		persons:    mock_interfaces.NewMockIPersonRepository(ctrl),
		quotes:     mock_interfaces.NewMockIQuoteRepository(ctrl),
		tx:         mock_interfaces.NewMockITxManager(ctrl),
	}
}

func (m demandMocks) useCase() *DemandUseCase {
	return NewDemandUseCase(m.demands, m.couples, m.categories, m.catalog, m.persons, m.tx)
}

func (m demandMocks) repos() interfaces.TxRepositories {
	return interfaces.TxRepositories{
		Persons:      m.persons,
		Couples:      m.couples,
		Categories:   m.categories,
		CatalogItems: m.catalog,
		Demands:      m.demands,
		Quotes:       m.quotes,
	}
}

func (m demandMocks) expectTx() {
	m.tx.EXPECT().WithinTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, fn func(tx interfaces.TxRepositories) error) error {
			return fn(m.repos())
		},
	)
}

func TestDemandUseCase_CreateDemand(t *testing.T) {
	item := func() DemandItemInput {
		return DemandItemInput{
			SupplyType:  entities.SupplyTypeService,
			CategoryID:  4,
			Description: "Buffet para 100 convidados",
			Quantity:    1,
		}
	}

	t.Run("blank description", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateDemand(context.Background(), CreateDemandInput{Items: []DemandItemInput{item()}})
		if domainerr.KindOf(err) != domainerr.KindValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("no items", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.CreateDemand(context.Background(), CreateDemandInput{CoupleID: 1, Description: "Casamento"})
		if !errors.Is(err, domainerr.ValidationReason(domainerr.ReasonNoItems, "")) {
			t.Fatalf("expected no-items validation, got %v", err)
		}
	})

	t.Run("couple not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.couples.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Couple{}, nil)

		_, err := uc.CreateDemand(context.Background(), CreateDemandInput{
			CoupleID: 1, Description: "Casamento", Items: []DemandItemInput{item()},
		})
		if domainerr.KindOf(err) != domainerr.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("item category type mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.couples.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Couple{ID: 1, EngagedAID: 2}, nil)
		m.categories.EXPECT().GetByID(gomock.Any(), uint(4)).
			Return(entities.Category{ID: 4, SupplyType: entities.SupplyTypeProduct}, nil)

		_, err := uc.CreateDemand(context.Background(), CreateDemandInput{
			CoupleID: 1, Description: "Casamento", Items: []DemandItemInput{item()},
		})
		if !errors.Is(err, domainerr.Constraint(domainerr.ReasonCategoryTypeMismatch, "")) {
			t.Fatalf("expected type-mismatch constraint, got %v", err)
		}
	})

	t.Run("success creates atomically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.couples.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Couple{ID: 1, EngagedAID: 2}, nil)
		m.categories.EXPECT().GetByID(gomock.Any(), uint(4)).
			Return(entities.Category{ID: 4, SupplyType: entities.SupplyTypeService}, nil)
		m.expectTx()
		m.demands.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Demand{}), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.Demand, items []entities.DemandItem) (entities.Demand, error) {
				if d.Status != entities.DemandStatusActive || len(items) != 1 {
					t.Fatalf("unexpected demand: %+v items=%d", d, len(items))
				}
				d.ID = 30
				return d, nil
			},
		)

		res, err := uc.CreateDemand(context.Background(), CreateDemandInput{
			CoupleID: 1, Description: "Casamento", Items: []DemandItemInput{item()},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 30 {
			t.Fatalf("expected generated id, got %+v", res)
		}
	})
}

func TestDemandUseCase_TransitionDemand(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc := NewDemandUseCase(nil, nil, nil, nil, nil, nil)
		_, err := uc.TransitionDemand(context.Background(), 1, "ADIADA")
		if domainerr.KindOf(err) != domainerr.KindValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("same state is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusFinished}, nil)

		res, err := uc.TransitionDemand(context.Background(), 1, entities.DemandStatusFinished)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DemandStatusFinished {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("terminal states are frozen", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusCancelled}, nil)

		_, err := uc.TransitionDemand(context.Background(), 1, entities.DemandStatusFinished)
		if domainerr.KindOf(err) != domainerr.KindIllegalTransition {
			t.Fatalf("expected illegal transition, got %v", err)
		}
	})

	t.Run("active to finished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().UpdateStatus(gomock.Any(), uint(1), entities.DemandStatusFinished).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusFinished}, nil)

		res, err := uc.TransitionDemand(context.Background(), 1, entities.DemandStatusFinished)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.DemandStatusFinished {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestDemandUseCase_DeleteDemand(t *testing.T) {
	t.Run("cascades to quotes in one transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.expectTx()
		m.quotes.EXPECT().DeleteByDemand(gomock.Any(), uint(1)).Return(nil)
		m.demands.EXPECT().Delete(gomock.Any(), uint(1)).Return(nil)

		if err := uc.DeleteDemand(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("quote deletion failure aborts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.expectTx()
		m.quotes.EXPECT().DeleteByDemand(gomock.Any(), uint(1)).Return(errors.New("db"))

		err := uc.DeleteDemand(context.Background(), 1)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestDemandUseCase_Items(t *testing.T) {
	t.Run("add to inactive demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusFinished}, nil)

		_, err := uc.AddDemandItem(context.Background(), 1, DemandItemInput{})
		if !errors.Is(err, domainerr.IllegalState(domainerr.ReasonDemandNotActive, "")) {
			t.Fatalf("expected demand-not-active illegal state, got %v", err)
		}
	})

	t.Run("update rejects item from another demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().GetItemByID(gomock.Any(), uint(50)).
			Return(entities.DemandItem{ID: 50, DemandID: 2}, nil)

		_, err := uc.UpdateDemandItem(context.Background(), 1, 50, DemandItemInput{})
		if domainerr.KindOf(err) != domainerr.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("remove refuses to empty the demand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().GetItemByID(gomock.Any(), uint(50)).
			Return(entities.DemandItem{ID: 50, DemandID: 1}, nil)
		m.expectTx()
		m.demands.EXPECT().CountItemsByDemand(gomock.Any(), uint(1)).Return(int64(1), nil)

		err := uc.RemoveDemandItem(context.Background(), 1, 50)
		if !errors.Is(err, domainerr.ValidationReason(domainerr.ReasonNoItems, "")) {
			t.Fatalf("expected no-items validation, got %v", err)
		}
	})

	t.Run("update freezes category while quote items reference the item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().GetItemByID(gomock.Any(), uint(50)).
			Return(entities.DemandItem{ID: 50, DemandID: 1, SupplyType: entities.SupplyTypeService, CategoryID: 4}, nil)
		m.categories.EXPECT().GetByID(gomock.Any(), uint(5)).
			Return(entities.Category{ID: 5, SupplyType: entities.SupplyTypeProduct, Active: true}, nil)
		m.expectTx()
		m.quotes.EXPECT().ListQuoteIDsByDemandItem(gomock.Any(), uint(50)).Return([]uint{81}, nil)

		_, err := uc.UpdateDemandItem(context.Background(), 1, 50, DemandItemInput{
			SupplyType:  entities.SupplyTypeProduct,
			CategoryID:  5,
			Description: "Arranjos",
			Quantity:    1,
		})
		if !errors.Is(err, domainerr.Constraint(domainerr.ReasonDemandItemQuoted, "")) {
			t.Fatalf("expected demand-item-quoted constraint, got %v", err)
		}
	})

	t.Run("update without retyping skips the quote check", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().GetItemByID(gomock.Any(), uint(50)).
			Return(entities.DemandItem{ID: 50, DemandID: 1, SupplyType: entities.SupplyTypeService, CategoryID: 4}, nil)
		m.categories.EXPECT().GetByID(gomock.Any(), uint(4)).
			Return(entities.Category{ID: 4, SupplyType: entities.SupplyTypeService, Active: true}, nil)
		m.expectTx()
		m.demands.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, item entities.DemandItem) (entities.DemandItem, error) {
				if item.Description != "Buffet para 120" || item.Quantity != 2 {
					t.Fatalf("unexpected item: %+v", item)
				}
				return item, nil
			},
		)

		_, err := uc.UpdateDemandItem(context.Background(), 1, 50, DemandItemInput{
			SupplyType:  entities.SupplyTypeService,
			CategoryID:  4,
			Description: "Buffet para 120",
			Quantity:    2,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("remove success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().GetItemByID(gomock.Any(), uint(50)).
			Return(entities.DemandItem{ID: 50, DemandID: 1}, nil)
		m.expectTx()
		m.demands.EXPECT().CountItemsByDemand(gomock.Any(), uint(1)).Return(int64(3), nil)
		m.quotes.EXPECT().ListQuoteIDsByDemandItem(gomock.Any(), uint(50)).Return([]uint{}, nil)
		m.demands.EXPECT().RemoveItem(gomock.Any(), uint(50)).Return(nil)

		if err := uc.RemoveDemandItem(context.Background(), 1, 50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("remove recomputes quotes that carried the item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().GetItemByID(gomock.Any(), uint(50)).
			Return(entities.DemandItem{ID: 50, DemandID: 1}, nil)
		m.expectTx()
		m.demands.EXPECT().CountItemsByDemand(gomock.Any(), uint(1)).Return(int64(3), nil)
		m.quotes.EXPECT().ListQuoteIDsByDemandItem(gomock.Any(), uint(50)).Return([]uint{81}, nil)
		m.demands.EXPECT().RemoveItem(gomock.Any(), uint(50)).Return(nil)
		// The quote's remaining line is pending, so the cached accepted total
		// drops to zero.
		m.quotes.EXPECT().ListItemsByQuote(gomock.Any(), uint(81)).Return([]entities.QuoteItem{
			{ID: 61, QuoteID: 81, Quantity: 1, UnitPrice: price("100.00"), Status: entities.QuoteItemStatusPending},
		}, nil)
		m.quotes.EXPECT().UpdateDerived(gomock.Any(), uint(81), entities.QuoteStatusPending, decimal.Zero).
			Return(entities.Quote{ID: 81, Status: entities.QuoteStatusPending}, nil)

		if err := uc.RemoveDemandItem(context.Background(), 1, 50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDemandUseCase_DemandsVisibleToSupplier(t *testing.T) {
	t.Run("not a supplier", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.persons.EXPECT().GetByID(gomock.Any(), uint(7)).Return(entities.Person{ID: 7, Role: entities.RoleEngaged}, nil)

		_, err := uc.DemandsVisibleToSupplier(context.Background(), 7, 1, 20)
		if !errors.Is(err, domainerr.Authorization(domainerr.ReasonNotASupplier, "")) {
			t.Fatalf("expected not-a-supplier authorization error, got %v", err)
		}
	})

	t.Run("no active categories yields empty page", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.persons.EXPECT().GetByID(gomock.Any(), uint(7)).Return(entities.Person{ID: 7, Role: entities.RoleSupplier}, nil)
		m.catalog.EXPECT().ActiveCategoryIDsBySupplier(gomock.Any(), uint(7)).Return(nil, nil)

		res, err := uc.DemandsVisibleToSupplier(context.Background(), 7, 1, 20)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 0 {
			t.Fatalf("expected empty list, got %+v", res)
		}
	})

	t.Run("filters by supplier categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.persons.EXPECT().GetByID(gomock.Any(), uint(7)).Return(entities.Person{ID: 7, Role: entities.RoleSupplier}, nil)
		m.catalog.EXPECT().ActiveCategoryIDsBySupplier(gomock.Any(), uint(7)).Return([]uint{4, 5}, nil)
		m.demands.EXPECT().ListActiveByCategories(gomock.Any(), []uint{4, 5}, 1, 20).
			Return([]entities.Demand{{ID: 30, Status: entities.DemandStatusActive}}, nil)

		res, err := uc.DemandsVisibleToSupplier(context.Background(), 7, 0, 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != 30 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestDemandUseCase_GetDemandFulfillment(t *testing.T) {
	t.Run("one of three covered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().CountItemsByDemand(gomock.Any(), uint(1)).Return(int64(3), nil)
		m.demands.EXPECT().CountItemsWithAcceptedQuote(gomock.Any(), uint(1)).Return(int64(1), nil)

		pct, err := uc.GetDemandFulfillment(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !pct.Equal(decimal.RequireFromString("33.33")) {
			t.Fatalf("expected 33.33, got %s", pct)
		}
	})

	t.Run("all covered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newDemandMocks(ctrl)
		uc := m.useCase()

		m.demands.EXPECT().GetByID(gomock.Any(), uint(1)).
			Return(entities.Demand{ID: 1, Status: entities.DemandStatusActive}, nil)
		m.demands.EXPECT().CountItemsByDemand(gomock.Any(), uint(1)).Return(int64(2), nil)
		m.demands.EXPECT().CountItemsWithAcceptedQuote(gomock.Any(), uint(1)).Return(int64(2), nil)

		pct, err := uc.GetDemandFulfillment(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !pct.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("expected 100, got %s", pct)
		}
	})
}
