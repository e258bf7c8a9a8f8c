package entities

import "time"

// Couple binds one or two engaged persons plus ceremony metadata
// (table casal). EngagedBID is optional; when present it must differ from
// EngagedAID, and each engaged person belongs to at most one couple.
type Couple struct {
	ID           uint       `json:"id"`
	EngagedAID   uint       `json:"engaged_a_id"`
	EngagedBID   *uint      `json:"engaged_b_id,omitempty"`
	CeremonyDate *time.Time `json:"ceremony_date,omitempty"`
	CeremonyCity string     `json:"ceremony_city,omitempty"`
	GuestCount   *int       `json:"guest_count,omitempty"`
	BudgetBand   string     `json:"budget_band,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// HasMember reports whether the given person is one of the engaged.
func (c Couple) HasMember(personID uint) bool {
	if c.EngagedAID == personID {
		return true
	}
	return c.EngagedBID != nil && *c.EngagedBID == personID
}
