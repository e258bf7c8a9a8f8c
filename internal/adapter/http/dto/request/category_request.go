package request

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	SupplyType  string `json:"supply_type" binding:"required"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
