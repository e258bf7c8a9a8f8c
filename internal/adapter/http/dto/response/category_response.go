package response

import "casamenteiro/internal/domain/entities"

type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	SupplyType  string `json:"supply_type"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

func FromCategory(c entities.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		SupplyType:  string(c.SupplyType),
		Description: c.Description,
		Active:      c.Active,
	}
}

func FromCategories(cs []entities.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategory(c))
	}
	return out
}
