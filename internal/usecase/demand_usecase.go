package usecase

import (
	"context"
	"strings"

	"casamenteiro/internal/domain/domainerr"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// DemandItemInput carries one requested line of a demand.
type DemandItemInput struct {
	SupplyType   entities.SupplyType
	CategoryID   uint
	Description  string
	Quantity     int
	MaxPrice     *decimal.Decimal
	Observations string
}

// CreateDemandInput carries a demand plus its initial item list.
type CreateDemandInput struct {
	CoupleID         uint
	Description      string
	TotalBudget      *decimal.Decimal
	DeliveryDeadline string
	Observations     string
	Items            []DemandItemInput
}

// IDemandUseCase exposes demand operations, including the supplier-facing
// visibility listing and the fulfillment percentage.
type IDemandUseCase interface {
	CreateDemand(ctx context.Context, in CreateDemandInput) (entities.Demand, error)
	GetDemand(ctx context.Context, id uint) (entities.Demand, error)
	ListDemandsByCouple(ctx context.Context, coupleID uint) ([]entities.Demand, error)
	SearchDemands(ctx context.Context, term string) ([]entities.Demand, error)
	TransitionDemand(ctx context.Context, id uint, target entities.DemandStatus) (entities.Demand, error)
	DeleteDemand(ctx context.Context, id uint) error

	AddDemandItem(ctx context.Context, demandID uint, in DemandItemInput) (entities.DemandItem, error)
	UpdateDemandItem(ctx context.Context, demandID, itemID uint, in DemandItemInput) (entities.DemandItem, error)
	RemoveDemandItem(ctx context.Context, demandID, itemID uint) error
	ListDemandItems(ctx context.Context, demandID uint) ([]entities.DemandItem, error)

	DemandsVisibleToSupplier(ctx context.Context, supplierID uint, page, size int) ([]entities.Demand, error)
	GetDemandFulfillment(ctx context.Context, demandID uint) (decimal.Decimal, error)
}

type DemandUseCase struct {
	demands    interfaces.IDemandRepository
	couples    interfaces.ICoupleRepository
	categories interfaces.ICategoryRepository
	catalog    interfaces.ICatalogItemRepository
	persons    interfaces.IPersonRepository
	tx         interfaces.ITxManager
}

var _ IDemandUseCase = (*DemandUseCase)(nil)

func NewDemandUseCase(
	demands interfaces.IDemandRepository,
	couples interfaces.ICoupleRepository,
	categories interfaces.ICategoryRepository,
	catalog interfaces.ICatalogItemRepository,
	persons interfaces.IPersonRepository,
	tx interfaces.ITxManager,
) *DemandUseCase {
	return &DemandUseCase{
		demands:    demands,
		couples:    couples,
		categories: categories,
		catalog:    catalog,
		persons:    persons,
		tx:         tx,
	}
}

func (u *DemandUseCase) CreateDemand(ctx context.Context, in CreateDemandInput) (entities.Demand, error) {
	if strings.TrimSpace(in.Description) == "" {
		return entities.Demand{}, domainerr.Validation("description", "demand description is required")
	}
	if len(in.Items) == 0 {
		return entities.Demand{}, domainerr.ValidationReason(domainerr.ReasonNoItems, "a demand needs at least one item")
	}
	if in.TotalBudget != nil && in.TotalBudget.IsNegative() {
		return entities.Demand{}, domainerr.Validation("total_budget", "budget cannot be negative")
	}

	couple, err := u.couples.GetByID(ctx, in.CoupleID)
	if err != nil {
		return entities.Demand{}, err
	}
	if couple.ID == 0 {
		return entities.Demand{}, domainerr.NotFound("couple", in.CoupleID)
	}

	items := make([]entities.DemandItem, 0, len(in.Items))
	for _, itemIn := range in.Items {
		if err := u.validateDemandItem(ctx, itemIn); err != nil {
			return entities.Demand{}, err
		}
		items = append(items, entities.DemandItem{
			SupplyType:   itemIn.SupplyType,
			CategoryID:   itemIn.CategoryID,
			Description:  strings.TrimSpace(itemIn.Description),
			Quantity:     itemIn.Quantity,
			MaxPrice:     itemIn.MaxPrice,
			Observations: itemIn.Observations,
		})
	}

	d := entities.Demand{
		CoupleID:         in.CoupleID,
		Description:      strings.TrimSpace(in.Description),
		TotalBudget:      in.TotalBudget,
		DeliveryDeadline: in.DeliveryDeadline,
		Observations:     in.Observations,
		Status:           entities.DemandStatusActive,
	}

	var created entities.Demand
	err = u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		var txErr error
		created, txErr = tx.Demands.Create(ctx, d, items)
		return txErr
	})
	if err != nil {
		return entities.Demand{}, err
	}
	return created, nil
}

func (u *DemandUseCase) GetDemand(ctx context.Context, id uint) (entities.Demand, error) {
	d, err := u.demands.GetByID(ctx, id)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.ID == 0 {
		return entities.Demand{}, domainerr.NotFound("demand", id)
	}
	return d, nil
}

func (u *DemandUseCase) ListDemandsByCouple(ctx context.Context, coupleID uint) ([]entities.Demand, error) {
	return u.demands.ListByCouple(ctx, coupleID)
}

func (u *DemandUseCase) SearchDemands(ctx context.Context, term string) ([]entities.Demand, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, domainerr.Validation("term", "search term is required")
	}
	return u.demands.Search(ctx, term)
}

// TransitionDemand applies the lifecycle edges ACTIVE->FINISHED and
// ACTIVE->CANCELLED. Transitioning to the current state is a no-op.
func (u *DemandUseCase) TransitionDemand(ctx context.Context, id uint, target entities.DemandStatus) (entities.Demand, error) {
	if !target.Valid() {
		return entities.Demand{}, domainerr.Validation("status", "unknown demand status")
	}

	d, err := u.demands.GetByID(ctx, id)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.ID == 0 {
		return entities.Demand{}, domainerr.NotFound("demand", id)
	}
	if d.Status == target {
		return d, nil
	}
	if !d.Status.CanTransitionTo(target) {
		return entities.Demand{}, domainerr.IllegalTransition("demand cannot move from " + string(d.Status) + " to " + string(target))
	}
	return u.demands.UpdateStatus(ctx, id, target)
}

// DeleteDemand removes the demand, its items, every quote on the demand and
// their items, atomically.
func (u *DemandUseCase) DeleteDemand(ctx context.Context, id uint) error {
	d, err := u.demands.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d.ID == 0 {
		return domainerr.NotFound("demand", id)
	}

	return u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		if err := tx.Quotes.DeleteByDemand(ctx, id); err != nil {
			return err
		}
		return tx.Demands.Delete(ctx, id)
	})
}

func (u *DemandUseCase) AddDemandItem(ctx context.Context, demandID uint, in DemandItemInput) (entities.DemandItem, error) {
	if _, err := u.requireActiveDemand(ctx, demandID); err != nil {
		return entities.DemandItem{}, err
	}
	if err := u.validateDemandItem(ctx, in); err != nil {
		return entities.DemandItem{}, err
	}
	return u.demands.AddItem(ctx, entities.DemandItem{
		DemandID:     demandID,
		SupplyType:   in.SupplyType,
		CategoryID:   in.CategoryID,
		Description:  strings.TrimSpace(in.Description),
		Quantity:     in.Quantity,
		MaxPrice:     in.MaxPrice,
		Observations: in.Observations,
	})
}

func (u *DemandUseCase) UpdateDemandItem(ctx context.Context, demandID, itemID uint, in DemandItemInput) (entities.DemandItem, error) {
	if _, err := u.requireActiveDemand(ctx, demandID); err != nil {
		return entities.DemandItem{}, err
	}
	item, err := u.demands.GetItemByID(ctx, itemID)
	if err != nil {
		return entities.DemandItem{}, err
	}
	if item.ID == 0 || item.DemandID != demandID {
		return entities.DemandItem{}, domainerr.NotFound("demand item", itemID)
	}
	if err := u.validateDemandItem(ctx, in); err != nil {
		return entities.DemandItem{}, err
	}
	retyped := in.SupplyType != item.SupplyType || in.CategoryID != item.CategoryID

	item.SupplyType = in.SupplyType
	item.CategoryID = in.CategoryID
	item.Description = strings.TrimSpace(in.Description)
	item.Quantity = in.Quantity
	item.MaxPrice = in.MaxPrice
	item.Observations = in.Observations

	var updated entities.DemandItem
	err = u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		if retyped {
			// Quote lines are matched against the item's category and supply
			// type at creation; changing either would invalidate them.
			quoteIDs, err := tx.Quotes.ListQuoteIDsByDemandItem(ctx, itemID)
			if err != nil {
				return err
			}
			if len(quoteIDs) > 0 {
				return domainerr.Constraint(domainerr.ReasonDemandItemQuoted, "category and supply type cannot change while quote items reference the demand item")
			}
		}
		updated, err = tx.Demands.UpdateItem(ctx, item)
		return err
	})
	if err != nil {
		return entities.DemandItem{}, err
	}
	return updated, nil
}

func (u *DemandUseCase) RemoveDemandItem(ctx context.Context, demandID, itemID uint) error {
	if _, err := u.requireActiveDemand(ctx, demandID); err != nil {
		return err
	}
	item, err := u.demands.GetItemByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item.ID == 0 || item.DemandID != demandID {
		return domainerr.NotFound("demand item", itemID)
	}

	return u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		count, err := tx.Demands.CountItemsByDemand(ctx, demandID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return domainerr.ValidationReason(domainerr.ReasonNoItems, "a demand cannot be left without items")
		}
		quoteIDs, err := tx.Quotes.ListQuoteIDsByDemandItem(ctx, itemID)
		if err != nil {
			return err
		}
		if err := tx.Demands.RemoveItem(ctx, itemID); err != nil {
			return err
		}
		// Removal cascades away the item's quote lines; the owning quotes'
		// cached status and total must follow.
		for _, quoteID := range quoteIDs {
			if err := refreshDerived(ctx, tx, quoteID); err != nil {
				return err
			}
		}
		return nil
	})
}

func (u *DemandUseCase) ListDemandItems(ctx context.Context, demandID uint) ([]entities.DemandItem, error) {
	if _, err := u.GetDemand(ctx, demandID); err != nil {
		return nil, err
	}
	return u.demands.ListItemsByDemand(ctx, demandID)
}

// DemandsVisibleToSupplier lists the ACTIVE demands having at least one item
// in a category the supplier has active catalog items in. The supplier's
// category set is computed once, then demands are filtered against it.
func (u *DemandUseCase) DemandsVisibleToSupplier(ctx context.Context, supplierID uint, page, size int) ([]entities.Demand, error) {
	person, err := u.persons.GetByID(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if person.ID == 0 {
		return nil, domainerr.NotFound("supplier", supplierID)
	}
	if person.Role != entities.RoleSupplier {
		return nil, domainerr.Authorization(domainerr.ReasonNotASupplier, "only suppliers can browse demands")
	}

	categoryIDs, err := u.catalog.ActiveCategoryIDsBySupplier(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if len(categoryIDs) == 0 {
		return []entities.Demand{}, nil
	}

	page, size = normalizePage(page, size)
	return u.demands.ListActiveByCategories(ctx, categoryIDs, page, size)
}

// GetDemandFulfillment is the percentage of the demand's items with at least
// one accepted quote item, with two fractional digits.
func (u *DemandUseCase) GetDemandFulfillment(ctx context.Context, demandID uint) (decimal.Decimal, error) {
	if _, err := u.GetDemand(ctx, demandID); err != nil {
		return decimal.Zero, err
	}

	total, err := u.demands.CountItemsByDemand(ctx, demandID)
	if err != nil {
		return decimal.Zero, err
	}
	covered, err := u.demands.CountItemsWithAcceptedQuote(ctx, demandID)
	if err != nil {
		return decimal.Zero, err
	}
	return entities.FulfillmentPercent(int(total), int(covered)), nil
}

func (u *DemandUseCase) requireActiveDemand(ctx context.Context, demandID uint) (entities.Demand, error) {
	d, err := u.demands.GetByID(ctx, demandID)
	if err != nil {
		return entities.Demand{}, err
	}
	if d.ID == 0 {
		return entities.Demand{}, domainerr.NotFound("demand", demandID)
	}
	if d.Status != entities.DemandStatusActive {
		return entities.Demand{}, domainerr.IllegalState(domainerr.ReasonDemandNotActive, "demand is not active")
	}
	return d, nil
}

func (u *DemandUseCase) validateDemandItem(ctx context.Context, in DemandItemInput) error {
	if strings.TrimSpace(in.Description) == "" {
		return domainerr.Validation("description", "item description is required")
	}
	if in.Quantity < 1 {
		return domainerr.Validation("quantity", "quantity must be at least 1")
	}
	if !in.SupplyType.Valid() {
		return domainerr.Validation("supply_type", "unknown supply type")
	}
	if in.MaxPrice != nil && in.MaxPrice.IsNegative() {
		return domainerr.Validation("max_price", "max price cannot be negative")
	}

	category, err := u.categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if category.ID == 0 {
		return domainerr.NotFound("category", in.CategoryID)
	}
	if category.SupplyType != in.SupplyType {
		return domainerr.Constraint(domainerr.ReasonCategoryTypeMismatch, "demand item supply type must match its category")
	}
	return nil
}
