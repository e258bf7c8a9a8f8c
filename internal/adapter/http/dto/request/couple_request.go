package request

import "time"

type CreateCoupleRequest struct {
	EngagedAID   uint       `json:"engaged_a_id" binding:"required"`
	EngagedBID   *uint      `json:"engaged_b_id"`
	CeremonyDate *time.Time `json:"ceremony_date"`
	CeremonyCity string     `json:"ceremony_city"`
	GuestCount   *int       `json:"guest_count"`
	BudgetBand   string     `json:"budget_band"`
}

type UpdateCoupleRequest struct {
	CeremonyDate *time.Time `json:"ceremony_date"`
	CeremonyCity string     `json:"ceremony_city"`
	GuestCount   *int       `json:"guest_count"`
	BudgetBand   string     `json:"budget_band"`
}
