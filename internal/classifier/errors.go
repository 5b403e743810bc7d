package classifier

import "errors"

var (
	ErrEmptyContent   = errors.New("classifier: empty content")
	ErrContentTooLong = errors.New("classifier: content too long")
)
