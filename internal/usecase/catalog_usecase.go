package usecase

import (
	"context"
	"strings"

	"casamenteiro/internal/domain/domainerr"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// CreateCategoryInput carries the fields accepted when creating a category.
type CreateCategoryInput struct {
	Name        string
	SupplyType  entities.SupplyType
	Description string
}

// CatalogItemInput carries the mutable fields of a catalog item.
type CatalogItemInput struct {
	SupplierID   uint
	SupplyType   entities.SupplyType
	CategoryID   uint
	Name         string
	Description  string
	UnitPrice    decimal.Decimal
	Observations string
}

// ICatalogUseCase exposes category and catalog item operations.
type ICatalogUseCase interface {
	CreateCategory(ctx context.Context, in CreateCategoryInput) (entities.Category, error)
	UpdateCategory(ctx context.Context, id uint, name, description string) (entities.Category, error)
	DeactivateCategory(ctx context.Context, id uint) (entities.Category, error)
	GetCategory(ctx context.Context, id uint) (entities.Category, error)
	ListCategories(ctx context.Context, filter interfaces.CategoryFilter, page, size int) ([]entities.Category, error)

	CreateCatalogItem(ctx context.Context, in CatalogItemInput) (entities.CatalogItem, error)
	UpdateCatalogItem(ctx context.Context, id uint, in CatalogItemInput) (entities.CatalogItem, error)
	DeactivateCatalogItem(ctx context.Context, id uint) (entities.CatalogItem, error)
	GetCatalogItem(ctx context.Context, id uint) (entities.CatalogItem, error)
	ListCatalogItemsBySupplier(ctx context.Context, supplierID uint) ([]entities.CatalogItem, error)
	SearchCatalogItems(ctx context.Context, term string) ([]entities.CatalogItem, error)
	ListCatalogItems(ctx context.Context, filter interfaces.CatalogItemFilter, page, size int) ([]entities.CatalogItem, error)
}

type CatalogUseCase struct {
	categories interfaces.ICategoryRepository
	items      interfaces.ICatalogItemRepository
	persons    interfaces.IPersonRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(
	categories interfaces.ICategoryRepository,
	items interfaces.ICatalogItemRepository,
	persons interfaces.IPersonRepository,
) *CatalogUseCase {
	return &CatalogUseCase{categories: categories, items: items, persons: persons}
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, in CreateCategoryInput) (entities.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entities.Category{}, domainerr.Validation("name", "category name is required")
	}
	if !in.SupplyType.Valid() {
		return entities.Category{}, domainerr.Validation("supply_type", "unknown supply type")
	}

	existing, err := u.categories.GetByNormalizedName(ctx, name, in.SupplyType)
	if err != nil {
		return entities.Category{}, err
	}
	if existing.ID != 0 {
		return entities.Category{}, domainerr.Constraint(domainerr.ReasonCategoryNameTaken, "a category with this name and supply type already exists")
	}

	return u.categories.Create(ctx, entities.Category{
		Name:        name,
		SupplyType:  in.SupplyType,
		Description: in.Description,
		Active:      true,
	})
}

func (u *CatalogUseCase) UpdateCategory(ctx context.Context, id uint, name, description string) (entities.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Category{}, domainerr.Validation("name", "category name is required")
	}

	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == 0 {
		return entities.Category{}, domainerr.NotFound("category", id)
	}

	if entities.NormalizedCategoryName(name) != entities.NormalizedCategoryName(c.Name) {
		existing, err := u.categories.GetByNormalizedName(ctx, name, c.SupplyType)
		if err != nil {
			return entities.Category{}, err
		}
		if existing.ID != 0 && existing.ID != id {
			return entities.Category{}, domainerr.Constraint(domainerr.ReasonCategoryNameTaken, "a category with this name and supply type already exists")
		}
	}

	c.Name = name
	c.Description = description
	return u.categories.Update(ctx, c)
}

func (u *CatalogUseCase) DeactivateCategory(ctx context.Context, id uint) (entities.Category, error) {
	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == 0 {
		return entities.Category{}, domainerr.NotFound("category", id)
	}

	inUse, err := u.items.CountActiveByCategory(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if inUse > 0 {
		return entities.Category{}, domainerr.Constraint(domainerr.ReasonCategoryInUse, "category is referenced by active catalog items")
	}

	return u.categories.SetActive(ctx, id, false)
}

func (u *CatalogUseCase) GetCategory(ctx context.Context, id uint) (entities.Category, error) {
	c, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if c.ID == 0 {
		return entities.Category{}, domainerr.NotFound("category", id)
	}
	return c, nil
}

func (u *CatalogUseCase) ListCategories(ctx context.Context, filter interfaces.CategoryFilter, page, size int) ([]entities.Category, error) {
	page, size = normalizePage(page, size)
	return u.categories.List(ctx, filter, page, size)
}

func (u *CatalogUseCase) CreateCatalogItem(ctx context.Context, in CatalogItemInput) (entities.CatalogItem, error) {
	if err := u.validateCatalogItemInput(ctx, in); err != nil {
		return entities.CatalogItem{}, err
	}

	return u.items.Create(ctx, entities.CatalogItem{
		SupplierID:   in.SupplierID,
		SupplyType:   in.SupplyType,
		CategoryID:   in.CategoryID,
		Name:         strings.TrimSpace(in.Name),
		Description:  in.Description,
		UnitPrice:    in.UnitPrice,
		Observations: in.Observations,
		Active:       true,
	})
}

func (u *CatalogUseCase) UpdateCatalogItem(ctx context.Context, id uint, in CatalogItemInput) (entities.CatalogItem, error) {
	it, err := u.items.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if it.ID == 0 {
		return entities.CatalogItem{}, domainerr.NotFound("catalog item", id)
	}

	in.SupplierID = it.SupplierID
	if err := u.validateCatalogItemInput(ctx, in); err != nil {
		return entities.CatalogItem{}, err
	}

	it.SupplyType = in.SupplyType
	it.CategoryID = in.CategoryID
	it.Name = strings.TrimSpace(in.Name)
	it.Description = in.Description
	it.UnitPrice = in.UnitPrice
	it.Observations = in.Observations
	return u.items.Update(ctx, it)
}

func (u *CatalogUseCase) DeactivateCatalogItem(ctx context.Context, id uint) (entities.CatalogItem, error) {
	it, err := u.items.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if it.ID == 0 {
		return entities.CatalogItem{}, domainerr.NotFound("catalog item", id)
	}
	return u.items.SetActive(ctx, id, false)
}

func (u *CatalogUseCase) GetCatalogItem(ctx context.Context, id uint) (entities.CatalogItem, error) {
	it, err := u.items.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if it.ID == 0 {
		return entities.CatalogItem{}, domainerr.NotFound("catalog item", id)
	}
	return it, nil
}

func (u *CatalogUseCase) ListCatalogItemsBySupplier(ctx context.Context, supplierID uint) ([]entities.CatalogItem, error) {
	return u.items.ListBySupplier(ctx, supplierID)
}

func (u *CatalogUseCase) SearchCatalogItems(ctx context.Context, term string) ([]entities.CatalogItem, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domainerr.Validation("term", "search term is required")
	}
	return u.items.Search(ctx, term)
}

func (u *CatalogUseCase) ListCatalogItems(ctx context.Context, filter interfaces.CatalogItemFilter, page, size int) ([]entities.CatalogItem, error) {
	page, size = normalizePage(page, size)
	return u.items.List(ctx, filter, page, size)
}

func (u *CatalogUseCase) validateCatalogItemInput(ctx context.Context, in CatalogItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return domainerr.Validation("name", "item name is required")
	}
	if !in.SupplyType.Valid() {
		return domainerr.Validation("supply_type", "unknown supply type")
	}
	if in.UnitPrice.IsNegative() {
		return domainerr.Validation("price", "unit price cannot be negative")
	}

	person, err := u.persons.GetByID(ctx, in.SupplierID)
	if err != nil {
		return err
	}
	if person.ID == 0 {
		return domainerr.NotFound("supplier", in.SupplierID)
	}
	if person.Role != entities.RoleSupplier {
		return domainerr.Authorization(domainerr.ReasonNotASupplier, "only suppliers may own catalog items")
	}

	category, err := u.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if category.ID == 0 {
		return domainerr.NotFound("category", in.CategoryID)
	}
	if category.SupplyType != in.SupplyType {
		return domainerr.Constraint(domainerr.ReasonCategoryTypeMismatch, "catalog item supply type must match its category")
	}
	return nil
}

// normalizePage clamps pagination parameters to sane bounds.
func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	return page, size
}
