package entities

import "time"

// Role discriminates what a person may do in the marketplace. Only engaged
// persons can belong to a couple; only suppliers can own catalog items or
// author quotes.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEngaged  Role = "NOIVO"
	RoleSupplier Role = "FORNECEDOR"
)

// Person is a marketplace user (table usuario).
type Person struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SupplierProfile is the supplier half of the usuario/fornecedor same-id
// split. It only exists for persons with RoleSupplier.
type SupplierProfile struct {
	PersonID    uint   `json:"person_id"`
	CompanyName string `json:"company_name"`
	CNPJ        string `json:"cnpj"`
	Description string `json:"description"`
	Verified    bool   `json:"verified"`
}

// Supplier composes the person record with its supplier profile. Queries that
// used to return both table halves now return this.
type Supplier struct {
	Person  Person          `json:"person"`
	Profile SupplierProfile `json:"profile"`
}
