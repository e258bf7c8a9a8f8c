package usecase

import (
	"context"
	"errors"
	"testing"

	"casamenteiro/internal/domain/domainerr"
	"casamenteiro/internal/domain/entities"
	mock_interfaces "casamenteiro/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCoupleUseCase_CreateCouple(t *testing.T) {
	t.Run("missing engaged a", func(t *testing.T) {
		uc := NewCoupleUseCase(nil, nil)
		_, err := uc.CreateCouple(context.Background(), CreateCoupleInput{})
		if domainerr.KindOf(err) != domainerr.KindValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("same person twice", func(t *testing.T) {
		uc := NewCoupleUseCase(nil, nil)
		b := uint(7)
		_, err := uc.CreateCouple(context.Background(), CreateCoupleInput{EngagedAID: 7, EngagedBID: &b})
		if !errors.Is(err, domainerr.ValidationReason(domainerr.ReasonSamePerson, "")) {
			t.Fatalf("expected same-person validation, got %v", err)
		}
	})

	t.Run("negative guest count", func(t *testing.T) {
		uc := NewCoupleUseCase(nil, nil)
		guests := -1
		_, err := uc.CreateCouple(context.Background(), CreateCoupleInput{EngagedAID: 1, GuestCount: &guests})
		if domainerr.KindOf(err) != domainerr.KindValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})

	t.Run("person not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		persons := mock_interfaces.NewMockIPersonRepository(ctrl)
		uc := NewCoupleUseCase(couples, persons)

		persons.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Person{}, nil)

		_, err := uc.CreateCouple(context.Background(), CreateCoupleInput{EngagedAID: 1})
		if domainerr.KindOf(err) != domainerr.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("member is not engaged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		persons := mock_interfaces.NewMockIPersonRepository(ctrl)
		uc := NewCoupleUseCase(couples, persons)

		persons.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Person{ID: 1, Role: entities.RoleSupplier}, nil)

		_, err := uc.CreateCouple(context.Background(), CreateCoupleInput{EngagedAID: 1})
		if !errors.Is(err, domainerr.Authorization(domainerr.ReasonNotEngaged, "")) {
			t.Fatalf("expected not-engaged authorization error, got %v", err)
		}
	})

	t.Run("member already bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		persons := mock_interfaces.NewMockIPersonRepository(ctrl)
		uc := NewCoupleUseCase(couples, persons)

		persons.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Person{ID: 1, Role: entities.RoleEngaged}, nil)
		couples.EXPECT().GetByMember(gomock.Any(), uint(1)).Return(entities.Couple{ID: 9, EngagedAID: 1}, nil)

		_, err := uc.CreateCouple(context.Background(), CreateCoupleInput{EngagedAID: 1})
		if !errors.Is(err, domainerr.BusinessRule(domainerr.ReasonEngagedAlreadyBound, "")) {
			t.Fatalf("expected already-bound business rule, got %v", err)
		}
	})

	t.Run("success with both members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		persons := mock_interfaces.NewMockIPersonRepository(ctrl)
		uc := NewCoupleUseCase(couples, persons)

		persons.EXPECT().GetByID(gomock.Any(), uint(1)).Return(entities.Person{ID: 1, Role: entities.RoleEngaged}, nil)
		persons.EXPECT().GetByID(gomock.Any(), uint(2)).Return(entities.Person{ID: 2, Role: entities.RoleEngaged}, nil)
		couples.EXPECT().GetByMember(gomock.Any(), uint(1)).Return(entities.Couple{}, nil)
		couples.EXPECT().GetByMember(gomock.Any(), uint(2)).Return(entities.Couple{}, nil)
		couples.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Couple{})).DoAndReturn(
			func(_ context.Context, c entities.Couple) (entities.Couple, error) {
				if c.EngagedAID != 1 || c.EngagedBID == nil || *c.EngagedBID != 2 {
					t.Fatalf("unexpected couple: %+v", c)
				}
				c.ID = 10
				return c, nil
			},
		)

		b := uint(2)
		res, err := uc.CreateCouple(context.Background(), CreateCoupleInput{EngagedAID: 1, EngagedBID: &b, CeremonyCity: "Recife"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 10 {
			t.Fatalf("expected generated id, got %+v", res)
		}
	})
}

func TestCoupleUseCase_UpdateCouple(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		uc := NewCoupleUseCase(couples, nil)

		couples.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Couple{}, nil)

		_, err := uc.UpdateCouple(context.Background(), 5, UpdateCoupleInput{})
		if domainerr.KindOf(err) != domainerr.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("success keeps membership", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		uc := NewCoupleUseCase(couples, nil)

		couples.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Couple{ID: 5, EngagedAID: 1, CeremonyCity: "Olinda"}, nil)
		couples.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Couple{})).DoAndReturn(
			func(_ context.Context, c entities.Couple) (entities.Couple, error) {
				if c.EngagedAID != 1 || c.CeremonyCity != "Recife" {
					t.Fatalf("unexpected couple: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.UpdateCouple(context.Background(), 5, UpdateCoupleInput{CeremonyCity: "Recife"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.CeremonyCity != "Recife" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestCoupleUseCase_DeleteCouple(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		uc := NewCoupleUseCase(couples, nil)

		couples.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Couple{}, nil)

		err := uc.DeleteCouple(context.Background(), 5)
		if domainerr.KindOf(err) != domainerr.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		uc := NewCoupleUseCase(couples, nil)

		couples.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Couple{ID: 5, EngagedAID: 1}, nil)
		couples.EXPECT().Delete(gomock.Any(), uint(5)).Return(nil)

		if err := uc.DeleteCouple(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCoupleUseCase_Getters(t *testing.T) {
	t.Run("GetByID repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		uc := NewCoupleUseCase(couples, nil)

		couples.EXPECT().GetByID(gomock.Any(), uint(5)).Return(entities.Couple{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), 5)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("GetByMember not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		uc := NewCoupleUseCase(couples, nil)

		couples.EXPECT().GetByMember(gomock.Any(), uint(3)).Return(entities.Couple{}, nil)

		_, err := uc.GetByMember(context.Background(), 3)
		if domainerr.KindOf(err) != domainerr.KindNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("GetByMember success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		couples := mock_interfaces.NewMockICoupleRepository(ctrl)
		uc := NewCoupleUseCase(couples, nil)

		couples.EXPECT().GetByMember(gomock.Any(), uint(3)).Return(entities.Couple{ID: 5, EngagedAID: 3}, nil)

		res, err := uc.GetByMember(context.Background(), 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != 5 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
