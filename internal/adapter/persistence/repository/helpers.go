package repository

import (
	"context"
	"errors"

	"casamenteiro/internal/domain/domainerr"

	"gorm.io/gorm"
)

// wrapErr classifies infrastructure errors: cancelled deadlines become the
// timeout kind, anything else becomes storage, preserving the cause.
func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return domainerr.Timeout(err)
	default:
		return domainerr.Storage(err)
	}
}

// firstErr normalizes a gorm lookup: missing rows surface as a nil error and
// the zero value, which use cases translate into not-found.
func firstErr(err error) (found bool, wrapped error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, wrapErr(err)
}

func offset(page, size int) int {
	return (page - 1) * size
}

func isDomainErr(err error) bool {
	var de *domainerr.Error
	return errors.As(err, &de)
}
