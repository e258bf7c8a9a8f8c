package usecase

import (
	"context"
	"time"

	"casamenteiro/internal/domain/domainerr"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"
)

// CreateCoupleInput carries the fields accepted when forming a couple.
type CreateCoupleInput struct {
	EngagedAID   uint
	EngagedBID   *uint
	CeremonyDate *time.Time
	CeremonyCity string
	GuestCount   *int
	BudgetBand   string
}

// UpdateCoupleInput carries the ceremony metadata that may change after
// creation. Membership is immutable.
type UpdateCoupleInput struct {
	CeremonyDate *time.Time
	CeremonyCity string
	GuestCount   *int
	BudgetBand   string
}

// ICoupleUseCase exposes couple operations.
type ICoupleUseCase interface {
	CreateCouple(ctx context.Context, in CreateCoupleInput) (entities.Couple, error)
	UpdateCouple(ctx context.Context, id uint, in UpdateCoupleInput) (entities.Couple, error)
	DeleteCouple(ctx context.Context, id uint) error
	GetByID(ctx context.Context, id uint) (entities.Couple, error)
	GetByMember(ctx context.Context, personID uint) (entities.Couple, error)
}

type CoupleUseCase struct {
	couples interfaces.ICoupleRepository
	persons interfaces.IPersonRepository
}

var _ ICoupleUseCase = (*CoupleUseCase)(nil)

func NewCoupleUseCase(couples interfaces.ICoupleRepository, persons interfaces.IPersonRepository) *CoupleUseCase {
	return &CoupleUseCase{couples: couples, persons: persons}
}

func (u *CoupleUseCase) CreateCouple(ctx context.Context, in CreateCoupleInput) (entities.Couple, error) {
	if in.EngagedAID == 0 {
		return entities.Couple{}, domainerr.Validation("engaged_a_id", "engaged person is required")
	}
	if in.EngagedBID != nil && *in.EngagedBID == in.EngagedAID {
		return entities.Couple{}, domainerr.ValidationReason(domainerr.ReasonSamePerson, "a couple cannot be formed by the same person twice")
	}
	if in.GuestCount != nil && *in.GuestCount < 0 {
		return entities.Couple{}, domainerr.Validation("guest_count", "guest count cannot be negative")
	}

	members := []uint{in.EngagedAID}
	if in.EngagedBID != nil {
		members = append(members, *in.EngagedBID)
	}
	for _, personID := range members {
		person, err := u.persons.GetByID(ctx, personID)
		if err != nil {
			return entities.Couple{}, err
		}
		if person.ID == 0 {
			return entities.Couple{}, domainerr.NotFound("person", personID)
		}
		if person.Role != entities.RoleEngaged {
			return entities.Couple{}, domainerr.Authorization(domainerr.ReasonNotEngaged, "only engaged persons may belong to a couple")
		}
		existing, err := u.couples.GetByMember(ctx, personID)
		if err != nil {
			return entities.Couple{}, err
		}
		if existing.ID != 0 {
			return entities.Couple{}, domainerr.BusinessRule(domainerr.ReasonEngagedAlreadyBound, "person already belongs to a couple")
		}
	}

	c := entities.Couple{
		EngagedAID:   in.EngagedAID,
		EngagedBID:   in.EngagedBID,
		CeremonyDate: in.CeremonyDate,
		CeremonyCity: in.CeremonyCity,
		GuestCount:   in.GuestCount,
		BudgetBand:   in.BudgetBand,
	}
	return u.couples.Create(ctx, c)
}

func (u *CoupleUseCase) UpdateCouple(ctx context.Context, id uint, in UpdateCoupleInput) (entities.Couple, error) {
	if in.GuestCount != nil && *in.GuestCount < 0 {
		return entities.Couple{}, domainerr.Validation("guest_count", "guest count cannot be negative")
	}

	c, err := u.couples.GetByID(ctx, id)
	if err != nil {
		return entities.Couple{}, err
	}
	if c.ID == 0 {
		return entities.Couple{}, domainerr.NotFound("couple", id)
	}

	c.CeremonyDate = in.CeremonyDate
	c.CeremonyCity = in.CeremonyCity
	c.GuestCount = in.GuestCount
	c.BudgetBand = in.BudgetBand
	return u.couples.Update(ctx, c)
}

func (u *CoupleUseCase) DeleteCouple(ctx context.Context, id uint) error {
	c, err := u.couples.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c.ID == 0 {
		return domainerr.NotFound("couple", id)
	}
	return u.couples.Delete(ctx, id)
}

func (u *CoupleUseCase) GetByID(ctx context.Context, id uint) (entities.Couple, error) {
	c, err := u.couples.GetByID(ctx, id)
	if err != nil {
		return entities.Couple{}, err
	}
	if c.ID == 0 {
		return entities.Couple{}, domainerr.NotFound("couple", id)
	}
	return c, nil
}

func (u *CoupleUseCase) GetByMember(ctx context.Context, personID uint) (entities.Couple, error) {
	c, err := u.couples.GetByMember(ctx, personID)
	if err != nil {
		return entities.Couple{}, err
	}
	if c.ID == 0 {
		return entities.Couple{}, domainerr.NotFound("couple for person", personID)
	}
	return c, nil
}
