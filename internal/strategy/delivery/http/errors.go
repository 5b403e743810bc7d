package http

import (
	"errors"

	"engagement-srv/internal/strategy"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errInvalidDays = pkgErrors.NewHTTPError(
		400, "Invalid expression days",
	)
	errInvalidComment = pkgErrors.NewHTTPError(
		400, "Invalid comment strategy",
	)
	errInvalidBlob = pkgErrors.NewHTTPError(
		400, "Invalid import blob",
	)
	errStorageFailed = pkgErrors.NewHTTPError(
		500, "Failed to access strategy storage",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, strategy.ErrInvalidDays):
		return errInvalidDays
	case errors.Is(err, strategy.ErrInvalidComment):
		return errInvalidComment
	case errors.Is(err, strategy.ErrInvalidBlob):
		return errInvalidBlob
	case errors.Is(err, strategy.ErrStorageFailed):
		return errStorageFailed
	default:
		panic(err)
	}
}
