package http

import (
	"errors"

	"engagement-srv/internal/scoring"
	pkgErrors "engagement-srv/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errInvalidPlatform = pkgErrors.NewHTTPError(
		400, "Invalid platform",
	)
	errInvalidDays = pkgErrors.NewHTTPError(
		400, "Invalid history window",
	)
	errHistoryFailed = pkgErrors.NewHTTPError(
		500, "Failed to load score history",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, scoring.ErrInvalidPlatform):
		return errInvalidPlatform
	case errors.Is(err, scoring.ErrInvalidDays):
		return errInvalidDays
	case errors.Is(err, scoring.ErrHistoryFailed):
		return errHistoryFailed
	default:
		panic(err)
	}
}
