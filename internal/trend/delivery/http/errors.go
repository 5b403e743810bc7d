package http

import (
	"errors"

	"engagement-srv/internal/trend"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errInvalidPlatform = pkgErrors.NewHTTPError(
		400, "Invalid platform",
	)
	errInvalidCategory = pkgErrors.NewHTTPError(
		400, "Invalid category",
	)
	errCacheFailed = pkgErrors.NewHTTPError(
		500, "Failed to access trend cache",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, trend.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, trend.ErrInvalidCategory):
		return errInvalidCategory
	case errors.Is(err, trend.ErrCacheFailed):
		return errCacheFailed
	default:
		panic(err)
	}
}
