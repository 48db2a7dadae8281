package service

import "errors"

// Sentinel errors returned by the presenter.
var (
	ErrInvalidSession = errors.New("invalid session")
	ErrBatchTooLarge  = errors.New("batch too large")
)
