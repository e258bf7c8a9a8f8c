package repository

import (
	"context"

	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// PersonGormRepository persists persons and supplier profiles over the
// historical usuario/fornecedor same-id split.
type PersonGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPersonRepository = (*PersonGormRepository)(nil)

func NewPersonGormRepository(db *gorm.DB) *PersonGormRepository {
	return &PersonGormRepository{db: db}
}

func (r *PersonGormRepository) Create(ctx context.Context, p entities.Person) (entities.Person, error) {
	m := PersonModel{Name: p.Name, Email: p.Email, Phone: p.Phone, Role: string(p.Role)}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Person{}, wrapErr(err)
	}
	return toPersonEntity(m), nil
}

func (r *PersonGormRepository) GetByID(ctx context.Context, id uint) (entities.Person, error) {
	var m PersonModel
	found, err := firstErr(r.db.WithContext(ctx).First(&m, id).Error)
	if err != nil || !found {
		return entities.Person{}, err
	}
	return toPersonEntity(m), nil
}

func (r *PersonGormRepository) GetByEmail(ctx context.Context, email string) (entities.Person, error) {
	var m PersonModel
	found, err := firstErr(r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error)
	if err != nil || !found {
		return entities.Person{}, err
	}
	return toPersonEntity(m), nil
}

func (r *PersonGormRepository) CreateSupplier(ctx context.Context, s entities.Supplier) (entities.Supplier, error) {
	person := PersonModel{
		Name:  s.Person.Name,
		Email: s.Person.Email,
		Phone: s.Person.Phone,
		Role:  string(entities.RoleSupplier),
	}
	if err := r.db.WithContext(ctx).Create(&person).Error; err != nil {
		return entities.Supplier{}, wrapErr(err)
	}

	profile := SupplierProfileModel{
		PersonID:    person.ID,
		CompanyName: s.Profile.CompanyName,
		CNPJ:        s.Profile.CNPJ,
		Description: s.Profile.Description,
		Verified:    s.Profile.Verified,
	}
	if err := r.db.WithContext(ctx).Create(&profile).Error; err != nil {
		return entities.Supplier{}, wrapErr(err)
	}
	return composeSupplier(person, profile), nil
}

func (r *PersonGormRepository) GetSupplier(ctx context.Context, personID uint) (entities.Supplier, error) {
	var profile SupplierProfileModel
	found, err := firstErr(r.db.WithContext(ctx).First(&profile, personID).Error)
	if err != nil || !found {
		return entities.Supplier{}, err
	}
	return r.loadSupplier(ctx, profile)
}

func (r *PersonGormRepository) GetSupplierByCNPJ(ctx context.Context, cnpj string) (entities.Supplier, error) {
	var profile SupplierProfileModel
	found, err := firstErr(r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&profile).Error)
	if err != nil || !found {
		return entities.Supplier{}, err
	}
	return r.loadSupplier(ctx, profile)
}

func (r *PersonGormRepository) loadSupplier(ctx context.Context, profile SupplierProfileModel) (entities.Supplier, error) {
	var person PersonModel
	found, err := firstErr(r.db.WithContext(ctx).First(&person, profile.PersonID).Error)
	if err != nil || !found {
		return entities.Supplier{}, err
	}
	return composeSupplier(person, profile), nil
}

func composeSupplier(person PersonModel, profile SupplierProfileModel) entities.Supplier {
	return entities.Supplier{
		Person: toPersonEntity(person),
		Profile: entities.SupplierProfile{
			PersonID:    profile.PersonID,
			CompanyName: profile.CompanyName,
			CNPJ:        profile.CNPJ,
			Description: profile.Description,
			Verified:    profile.Verified,
		},
	}
}
