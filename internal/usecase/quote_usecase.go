package usecase

import (
	"context"
	"time"

	"casamenteiro/internal/domain/domainerr"
	"casamenteiro/internal/domain/entities"
	"casamenteiro/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// QuoteItemInput carries one proposed line of a quote.
type QuoteItemInput struct {
	DemandItemID  uint
	CatalogItemID uint
	Quantity      int
	UnitPrice     decimal.Decimal
	Discount      *decimal.Decimal
	Observations  string
}

// CreateQuoteInput carries a quote plus its proposed items.
type CreateQuoteInput struct {
	DemandID     uint
	SupplierID   uint
	Validity     *time.Time
	Observations string
	Items        []QuoteItemInput
}

// QuoteWithItems is the read model for a quote: the cached derived fields on
// the quote row plus its current items.
type QuoteWithItems struct {
	Quote entities.Quote       `json:"quote"`
	Items []entities.QuoteItem `json:"items"`
}

// IQuoteUseCase exposes quote operations: the atomic creation protocol, the
// per-item accept/reject transitions and the listings.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetQuoteWithItems(ctx context.Context, quoteID uint) (QuoteWithItems, error)
	AcceptQuoteItem(ctx context.Context, quoteItemID, actorID uint) error
	RejectQuoteItem(ctx context.Context, quoteItemID, actorID uint, reason string) error
	UpdateQuoteItem(ctx context.Context, quoteItemID uint, in QuoteItemInput) (entities.QuoteItem, error)
	AddQuoteItem(ctx context.Context, quoteID uint, in QuoteItemInput) (entities.QuoteItem, error)
	RemoveQuoteItem(ctx context.Context, quoteID, quoteItemID uint) error
	ListQuotesForDemand(ctx context.Context, demandID uint) ([]entities.Quote, error)
	ListQuotesBySupplier(ctx context.Context, supplierID uint, page, size int) ([]entities.Quote, error)
	ListQuotesByCouple(ctx context.Context, coupleID uint) ([]entities.Quote, error)
	ListQuotesByStatus(ctx context.Context, status entities.QuoteStatus, page, size int) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	quotes  interfaces.IQuoteRepository
	demands interfaces.IDemandRepository
	couples interfaces.ICoupleRepository
	persons interfaces.IPersonRepository
	tx      interfaces.ITxManager
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	quotes interfaces.IQuoteRepository,
	demands interfaces.IDemandRepository,
	couples interfaces.ICoupleRepository,
	persons interfaces.IPersonRepository,
	tx interfaces.ITxManager,
) *QuoteUseCase {
	return &QuoteUseCase{
		quotes:  quotes,
		demands: demands,
		couples: couples,
		persons: persons,
		tx:      tx,
	}
}

// CreateQuote validates and persists a quote with its items atomically:
// either everything passes and the quote lands with all items PENDING and
// derived fields computed, or nothing is written.
func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	var created entities.Quote

	err := u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		demand, err := tx.Demands.GetByID(ctx, in.DemandID)
		if err != nil {
			return err
		}
		if demand.ID == 0 {
			return domainerr.NotFound("demand", in.DemandID)
		}
		if demand.Status != entities.DemandStatusActive {
			return domainerr.IllegalState(domainerr.ReasonDemandNotActive, "quotes can only target active demands")
		}

		supplier, err := tx.Persons.GetByID(ctx, in.SupplierID)
		if err != nil {
			return err
		}
		if supplier.ID == 0 {
			return domainerr.NotFound("supplier", in.SupplierID)
		}
		if supplier.Role != entities.RoleSupplier {
			return domainerr.Authorization(domainerr.ReasonNotASupplier, "only suppliers may author quotes")
		}

		// Re-quote rule: a new quote by the same supplier on the same demand
		// is only allowed once every prior one is fully rejected.
		prior, err := tx.Quotes.ListBySupplierAndDemand(ctx, in.SupplierID, in.DemandID)
		if err != nil {
			return err
		}
		for _, q := range prior {
			if q.Status != entities.QuoteStatusRejected {
				return domainerr.BusinessRule(domainerr.ReasonOpenQuoteExists, "supplier already has an open quote for this demand")
			}
		}

		demandItems, err := tx.Demands.ListItemsByDemand(ctx, in.DemandID)
		if err != nil {
			return err
		}
		itemsByID := make(map[uint]entities.DemandItem, len(demandItems))
		for _, di := range demandItems {
			itemsByID[di.ID] = di
		}

		seen := make(map[uint]bool, len(in.Items))
		items := make([]entities.QuoteItem, 0, len(in.Items))
		for _, itemIn := range in.Items {
			if seen[itemIn.DemandItemID] {
				return domainerr.Constraint(domainerr.ReasonDemandItemAlreadyQuoted, "a quote may carry one item per demand item")
			}
			seen[itemIn.DemandItemID] = true

			di, ok := itemsByID[itemIn.DemandItemID]
			if !ok {
				return domainerr.Constraint(domainerr.ReasonDemandItemOutsideDemand, "demand item does not belong to the quoted demand")
			}
			qi, err := buildQuoteItem(ctx, tx, in.SupplierID, di, itemIn)
			if err != nil {
				return err
			}
			items = append(items, qi)
		}

		statuses := make([]entities.QuoteItemStatus, len(items))
		for i, qi := range items {
			statuses[i] = qi.Status
		}

		q := entities.Quote{
			DemandID:     in.DemandID,
			SupplierID:   in.SupplierID,
			Validity:     in.Validity,
			Observations: in.Observations,
			Status:       entities.DeriveQuoteStatus(statuses),
			TotalValue:   entities.QuoteTotal(items),
		}
		created, err = tx.Quotes.Create(ctx, q, items)
		return err
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return created, nil
}

func (u *QuoteUseCase) GetQuoteWithItems(ctx context.Context, quoteID uint) (QuoteWithItems, error) {
	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return QuoteWithItems{}, err
	}
	if q.ID == 0 {
		return QuoteWithItems{}, domainerr.NotFound("quote", quoteID)
	}
	items, err := u.quotes.ListItemsByQuote(ctx, quoteID)
	if err != nil {
		return QuoteWithItems{}, err
	}
	return QuoteWithItems{Quote: q, Items: items}, nil
}

// AcceptQuoteItem marks a pending line as accepted on behalf of one of the
// engaged. The read of "is this demand item already fulfilled?" and the
// status write happen in the same transaction, so concurrent accepts on the
// same demand item resolve by commit order: the loser sees the business rule
// error.
func (u *QuoteUseCase) AcceptQuoteItem(ctx context.Context, quoteItemID, actorID uint) error {
	return u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		qi, q, err := u.loadItemForDecision(ctx, tx, quoteItemID, actorID)
		if err != nil {
			return err
		}
		if qi.Status == entities.QuoteItemStatusAccepted {
			return nil // idempotent
		}
		if qi.Status != entities.QuoteItemStatusPending {
			return domainerr.IllegalTransition("quote item is already " + string(qi.Status))
		}

		accepted, err := tx.Quotes.CountAcceptedForDemandItem(ctx, qi.DemandItemID)
		if err != nil {
			return err
		}
		if accepted > 0 {
			return domainerr.BusinessRule(domainerr.ReasonDemandItemFulfilled, "another quote item was already accepted for this demand item")
		}

		if _, err := tx.Quotes.UpdateItemStatus(ctx, quoteItemID, entities.QuoteItemStatusAccepted, ""); err != nil {
			return err
		}
		return refreshDerived(ctx, tx, q.ID)
	})
}

// RejectQuoteItem marks a pending line as rejected, keeping the reason.
func (u *QuoteUseCase) RejectQuoteItem(ctx context.Context, quoteItemID, actorID uint, reason string) error {
	return u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		qi, q, err := u.loadItemForDecision(ctx, tx, quoteItemID, actorID)
		if err != nil {
			return err
		}
		if qi.Status == entities.QuoteItemStatusRejected {
			return nil // idempotent
		}
		if qi.Status != entities.QuoteItemStatusPending {
			return domainerr.IllegalTransition("quote item is already " + string(qi.Status))
		}

		if _, err := tx.Quotes.UpdateItemStatus(ctx, quoteItemID, entities.QuoteItemStatusRejected, reason); err != nil {
			return err
		}
		return refreshDerived(ctx, tx, q.ID)
	})
}

// UpdateQuoteItem changes price, quantity, discount or observations of a
// line that is still pending.
func (u *QuoteUseCase) UpdateQuoteItem(ctx context.Context, quoteItemID uint, in QuoteItemInput) (entities.QuoteItem, error) {
	var updated entities.QuoteItem

	err := u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		qi, err := tx.Quotes.GetItemByID(ctx, quoteItemID)
		if err != nil {
			return err
		}
		if qi.ID == 0 {
			return domainerr.NotFound("quote item", quoteItemID)
		}
		if qi.Status != entities.QuoteItemStatusPending {
			return domainerr.IllegalState(domainerr.ReasonItemNotPending, "only pending quote items can change")
		}
		if err := validateQuoteItemValues(in); err != nil {
			return err
		}

		qi.Quantity = in.Quantity
		qi.UnitPrice = in.UnitPrice
		qi.Discount = in.Discount
		qi.Observations = in.Observations
		updated, err = tx.Quotes.UpdateItem(ctx, qi)
		if err != nil {
			return err
		}
		return refreshDerived(ctx, tx, qi.QuoteID)
	})
	if err != nil {
		return entities.QuoteItem{}, err
	}
	return updated, nil
}

// AddQuoteItem appends a line to a quote whose aggregate status is still
// pending, under the same validations as creation.
func (u *QuoteUseCase) AddQuoteItem(ctx context.Context, quoteID uint, in QuoteItemInput) (entities.QuoteItem, error) {
	var added entities.QuoteItem

	err := u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		q, err := u.requirePendingQuote(ctx, tx, quoteID)
		if err != nil {
			return err
		}

		di, err := tx.Demands.GetItemByID(ctx, in.DemandItemID)
		if err != nil {
			return err
		}
		if di.ID == 0 || di.DemandID != q.DemandID {
			return domainerr.Constraint(domainerr.ReasonDemandItemOutsideDemand, "demand item does not belong to the quoted demand")
		}

		existing, err := tx.Quotes.ListItemsByQuote(ctx, quoteID)
		if err != nil {
			return err
		}
		for _, other := range existing {
			if other.DemandItemID == in.DemandItemID {
				return domainerr.Constraint(domainerr.ReasonDemandItemAlreadyQuoted, "a quote may carry one item per demand item")
			}
		}

		qi, err := buildQuoteItem(ctx, tx, q.SupplierID, di, in)
		if err != nil {
			return err
		}
		qi.QuoteID = quoteID
		added, err = tx.Quotes.AddItem(ctx, qi)
		if err != nil {
			return err
		}
		return refreshDerived(ctx, tx, quoteID)
	})
	if err != nil {
		return entities.QuoteItem{}, err
	}
	return added, nil
}

// RemoveQuoteItem drops a line from a quote whose aggregate status is still
// pending.
func (u *QuoteUseCase) RemoveQuoteItem(ctx context.Context, quoteID, quoteItemID uint) error {
	return u.tx.WithinTx(ctx, func(tx interfaces.TxRepositories) error {
		if _, err := u.requirePendingQuote(ctx, tx, quoteID); err != nil {
			return err
		}
		qi, err := tx.Quotes.GetItemByID(ctx, quoteItemID)
		if err != nil {
			return err
		}
		if qi.ID == 0 || qi.QuoteID != quoteID {
			return domainerr.NotFound("quote item", quoteItemID)
		}
		if err := tx.Quotes.RemoveItem(ctx, quoteItemID); err != nil {
			return err
		}
		return refreshDerived(ctx, tx, quoteID)
	})
}

func (u *QuoteUseCase) ListQuotesForDemand(ctx context.Context, demandID uint) ([]entities.Quote, error) {
	return u.quotes.ListByDemand(ctx, demandID)
}

func (u *QuoteUseCase) ListQuotesBySupplier(ctx context.Context, supplierID uint, page, size int) ([]entities.Quote, error) {
	page, size = normalizePage(page, size)
	return u.quotes.ListBySupplier(ctx, supplierID, page, size)
}

func (u *QuoteUseCase) ListQuotesByCouple(ctx context.Context, coupleID uint) ([]entities.Quote, error) {
	return u.quotes.ListByCouple(ctx, coupleID)
}

func (u *QuoteUseCase) ListQuotesByStatus(ctx context.Context, status entities.QuoteStatus, page, size int) ([]entities.Quote, error) {
	page, size = normalizePage(page, size)
	return u.quotes.ListByStatus(ctx, status, page, size)
}

// loadItemForDecision resolves the item, its quote and the owning couple, and
// checks the actor is one of the engaged.
func (u *QuoteUseCase) loadItemForDecision(ctx context.Context, tx interfaces.TxRepositories, quoteItemID, actorID uint) (entities.QuoteItem, entities.Quote, error) {
	qi, err := tx.Quotes.GetItemByID(ctx, quoteItemID)
	if err != nil {
		return entities.QuoteItem{}, entities.Quote{}, err
	}
	if qi.ID == 0 {
		return entities.QuoteItem{}, entities.Quote{}, domainerr.NotFound("quote item", quoteItemID)
	}

	q, err := tx.Quotes.GetByID(ctx, qi.QuoteID)
	if err != nil {
		return entities.QuoteItem{}, entities.Quote{}, err
	}
	demand, err := tx.Demands.GetByID(ctx, q.DemandID)
	if err != nil {
		return entities.QuoteItem{}, entities.Quote{}, err
	}
	couple, err := tx.Couples.GetByID(ctx, demand.CoupleID)
	if err != nil {
		return entities.QuoteItem{}, entities.Quote{}, err
	}
	if !couple.HasMember(actorID) {
		return entities.QuoteItem{}, entities.Quote{}, domainerr.Authorization(domainerr.ReasonNotCoupleMember, "only the engaged couple can decide on quote items")
	}
	return qi, q, nil
}

func (u *QuoteUseCase) requirePendingQuote(ctx context.Context, tx interfaces.TxRepositories, quoteID uint) (entities.Quote, error) {
	q, err := tx.Quotes.GetByID(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, domainerr.NotFound("quote", quoteID)
	}
	if q.Status != entities.QuoteStatusPending {
		return entities.Quote{}, domainerr.IllegalState(domainerr.ReasonQuoteNotPending, "quote is no longer pending")
	}
	return q, nil
}

// buildQuoteItem validates a proposed line against the demand item it serves
// and the supplier's catalog, returning the pending item ready to persist.
func buildQuoteItem(ctx context.Context, tx interfaces.TxRepositories, supplierID uint, di entities.DemandItem, in QuoteItemInput) (entities.QuoteItem, error) {
	if err := validateQuoteItemValues(in); err != nil {
		return entities.QuoteItem{}, err
	}

	ci, err := tx.CatalogItems.GetByID(ctx, in.CatalogItemID)
	if err != nil {
		return entities.QuoteItem{}, err
	}
	if ci.ID == 0 {
		return entities.QuoteItem{}, domainerr.NotFound("catalog item", in.CatalogItemID)
	}
	if !ci.Active {
		return entities.QuoteItem{}, domainerr.Constraint(domainerr.ReasonCatalogItemInactive, "catalog item is inactive")
	}
	if ci.SupplierID != supplierID {
		return entities.QuoteItem{}, domainerr.Constraint(domainerr.ReasonWrongSupplierItem, "catalog item belongs to another supplier")
	}
	if ci.SupplyType != di.SupplyType || ci.CategoryID != di.CategoryID {
		return entities.QuoteItem{}, domainerr.Constraint(domainerr.ReasonCategoryTypeMismatch, "catalog item does not match the demand item's category")
	}

	return entities.QuoteItem{
		DemandItemID:  di.ID,
		CatalogItemID: in.CatalogItemID,
		Quantity:      in.Quantity,
		UnitPrice:     in.UnitPrice,
		Discount:      in.Discount,
		Observations:  in.Observations,
		Status:        entities.QuoteItemStatusPending,
	}, nil
}

func validateQuoteItemValues(in QuoteItemInput) error {
	if in.Quantity < 1 {
		return domainerr.Validation("quantity", "quantity must be at least 1")
	}
	if in.UnitPrice.IsNegative() {
		return domainerr.Validation("price", "unit price cannot be negative")
	}
	if in.Discount != nil {
		subtotal := in.UnitPrice.Mul(decimal.NewFromInt(int64(in.Quantity)))
		if in.Discount.IsNegative() || in.Discount.GreaterThan(subtotal) {
			return domainerr.Validation("discount", "discount must be between zero and the line subtotal")
		}
	}
	return nil
}

// refreshDerived recomputes the quote's cached aggregate status and total
// from its current items, inside the caller's transaction.
func refreshDerived(ctx context.Context, tx interfaces.TxRepositories, quoteID uint) error {
	items, err := tx.Quotes.ListItemsByQuote(ctx, quoteID)
	if err != nil {
		return err
	}
	statuses := make([]entities.QuoteItemStatus, len(items))
	for i, qi := range items {
		statuses[i] = qi.Status
	}
	_, err = tx.Quotes.UpdateDerived(ctx, quoteID, entities.DeriveQuoteStatus(statuses), entities.QuoteTotal(items))
	return err
}
