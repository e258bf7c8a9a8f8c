package handlers

import (
	"errors"
	"net/http"
	"strings"

	"casamenteiro/internal/domain/domainerr"
	"casamenteiro/pkg"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapDomainError translates engine errors into the transport envelope. The
// reason, when present, becomes the stable error code.
func mapDomainError(err error) *pkg.AppError {
	var de *domainerr.Error
	if !errors.As(err, &de) {
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}

	status := httpStatusFor(de.Kind)
	code := errorCode(de)
	if de.Cause != nil {
		return pkg.NewDomainError(code, de.Message, de.Cause, status)
	}
	return pkg.NewDomainErrorSimple(code, de.Message, status)
}

func httpStatusFor(kind domainerr.Kind) int {
	switch kind {
	case domainerr.KindValidation:
		return http.StatusBadRequest
	case domainerr.KindNotFound:
		return http.StatusNotFound
	case domainerr.KindAuthorization:
		return http.StatusForbidden
	case domainerr.KindConstraint, domainerr.KindBusinessRule,
		domainerr.KindIllegalState, domainerr.KindIllegalTransition:
		return http.StatusConflict
	case domainerr.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func errorCode(de *domainerr.Error) string {
	if de.Reason != "" {
		return strings.ToUpper(strings.ReplaceAll(de.Reason, "-", "_"))
	}
	return strings.ToUpper(string(de.Kind))
}
