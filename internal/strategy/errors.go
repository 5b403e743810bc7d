package strategy

import "errors"

var (
	ErrInvalidDays    = errors.New("strategy: invalid expression days")
	ErrInvalidComment = errors.New("strategy: invalid comment strategy")
	ErrInvalidBlob    = errors.New("strategy: invalid import blob")
	ErrStorageFailed  = errors.New("strategy: storage failed")
)
