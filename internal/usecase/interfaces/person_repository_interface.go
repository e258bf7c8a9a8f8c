package interfaces

import (
	"context"

	"casamenteiro/internal/domain/entities"
)

// IPersonRepository abstracts persistence for persons and the supplier
// profile half of the usuario/fornecedor same-id split.
//
// Lookups return the zero value with a nil error when the row is missing;
// use cases translate that into the not-found kind.
type IPersonRepository interface {
	Create(ctx context.Context, p entities.Person) (entities.Person, error)
	GetByID(ctx context.Context, id uint) (entities.Person, error)
	GetByEmail(ctx context.Context, email string) (entities.Person, error)
	CreateSupplier(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	GetSupplier(ctx context.Context, personID uint) (entities.Supplier, error)
	GetSupplierByCNPJ(ctx context.Context, cnpj string) (entities.Supplier, error)
}
