package trend

import "errors"

var (
	ErrInvalidPlatform = errors.New("trend: invalid platform")
	ErrInvalidCategory = errors.New("trend: invalid category")
	ErrCacheFailed     = errors.New("trend: cache operation failed")
)
