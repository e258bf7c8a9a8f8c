package response

import (
	"time"

	"casamenteiro/internal/domain/entities"
)

type CoupleResponse struct {
	ID           uint       `json:"id"`
	EngagedAID   uint       `json:"engaged_a_id"`
	EngagedBID   *uint      `json:"engaged_b_id,omitempty"`
	CeremonyDate *time.Time `json:"ceremony_date,omitempty"`
	CeremonyCity string     `json:"ceremony_city,omitempty"`
	GuestCount   *int       `json:"guest_count,omitempty"`
	BudgetBand   string     `json:"budget_band,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func FromCouple(c entities.Couple) CoupleResponse {
	return CoupleResponse{
		ID:           c.ID,
		EngagedAID:   c.EngagedAID,
		EngagedBID:   c.EngagedBID,
		CeremonyDate: c.CeremonyDate,
		CeremonyCity: c.CeremonyCity,
		GuestCount:   c.GuestCount,
		BudgetBand:   c.BudgetBand,
		CreatedAt:    c.CreatedAt,
	}
}
