package http

import (
	"errors"

	"engagement-srv/internal/classifier"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errEmptyContent = pkgErrors.NewHTTPError(
		400, "Content is empty",
	)
	errContentTooLong = pkgErrors.NewHTTPError(
		400, "Content too long (max 5000 characters)",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, classifier.ErrEmptyContent):
		return errEmptyContent
	case errors.Is(err, classifier.ErrContentTooLong):
		return errContentTooLong
	default:
		panic(err)
	}
}
