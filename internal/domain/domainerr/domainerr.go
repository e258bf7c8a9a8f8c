package domainerr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error so transport layers can map it to a
// user-facing status without inspecting messages.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindConstraint        Kind = "constraint_violation"
	KindBusinessRule      Kind = "business_rule"
	KindIllegalState      Kind = "illegal_state"
	KindIllegalTransition Kind = "illegal_transition"
	KindAuthorization     Kind = "authorization"
	KindTimeout           Kind = "timeout"
	KindStorage           Kind = "storage"
)

// Machine-readable reasons surfaced alongside the kind. Reasons are stable
// contract values; messages are free text.
const (
	ReasonSamePerson               = "same-person"
	ReasonEngagedAlreadyBound      = "engaged-already-bound"
	ReasonNotEngaged               = "not-engaged"
	ReasonNotCoupleMember          = "not-couple-member"
	ReasonNotASupplier             = "not-a-supplier"
	ReasonNoItems                  = "no-items"
	ReasonCategoryTypeMismatch     = "category-type-mismatch"
	ReasonCategoryNameTaken        = "category-name-taken"
	ReasonCategoryInUse            = "category-in-use"
	ReasonDemandNotActive          = "demand-not-active"
	ReasonQuoteNotPending          = "quote-not-pending"
	ReasonItemNotPending           = "item-not-pending"
	ReasonDemandItemAlreadyQuoted  = "demand-item-already-quoted"
	ReasonDemandItemQuoted         = "demand-item-quoted"
	ReasonDemandItemFulfilled      = "demand-item-already-fulfilled"
	ReasonOpenQuoteExists          = "open-quote-exists"
	ReasonWrongSupplierItem        = "catalog-item-wrong-supplier"
	ReasonCatalogItemInactive      = "catalog-item-inactive"
	ReasonDemandItemOutsideDemand  = "demand-item-outside-demand"
)

// Error is the single error type crossing the engine boundary. It carries a
// kind, an optional stable reason, an optional field name for validation
// failures and the wrapped cause for infrastructure errors.
type Error struct {
	Kind    Kind
	Reason  string
	Field   string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch {
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	case e.Reason != "":
		return fmt.Sprintf("%s (%s): %s", e.Kind, e.Reason, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// Is matches on kind and, when the target carries one, on reason. This keeps
// errors.Is(err, domainerr.BusinessRule(reason, ...)) working for callers
// that only care about the classification.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}

func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

func ValidationReason(reason, message string) *Error {
	return &Error{Kind: KindValidation, Reason: reason, Message: message}
}

func NotFound(entity string, id uint) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %d not found", entity, id)}
}

func Constraint(reason, message string) *Error {
	return &Error{Kind: KindConstraint, Reason: reason, Message: message}
}

func BusinessRule(reason, message string) *Error {
	return &Error{Kind: KindBusinessRule, Reason: reason, Message: message}
}

func IllegalState(reason, message string) *Error {
	return &Error{Kind: KindIllegalState, Reason: reason, Message: message}
}

func IllegalTransition(message string) *Error {
	return &Error{Kind: KindIllegalTransition, Message: message}
}

func Authorization(reason, message string) *Error {
	return &Error{Kind: KindAuthorization, Reason: reason, Message: message}
}

func Timeout(cause error) *Error {
	return &Error{Kind: KindTimeout, Message: "operation deadline exceeded", Cause: cause}
}

func Storage(cause error) *Error {
	return &Error{Kind: KindStorage, Message: "storage failure", Cause: cause}
}

// KindOf extracts the kind from any error produced by the engine; unknown
// errors classify as storage.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

// ReasonOf extracts the stable reason, if any.
func ReasonOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Reason
	}
	return ""
}
