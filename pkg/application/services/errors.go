package services

import "errors"

var (
	// ErrIllegalTransition is returned for a status change outside the lifecycle graph
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrCategoryMismatch is returned when a document does not prefill the requested entity
	ErrCategoryMismatch = errors.New("document category does not match entity")
)
