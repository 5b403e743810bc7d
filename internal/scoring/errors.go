package scoring

import "errors"

var (
	ErrInvalidPlatform = errors.New("scoring: invalid platform")
	ErrInvalidDays     = errors.New("scoring: invalid history window")
	ErrHistoryFailed   = errors.New("scoring: failed to load history")
)
