package repository

import "errors"

var (
	ErrNotFound     = errors.New("strategy not found")
	ErrFailedToSave = errors.New("failed to save strategy")
)
