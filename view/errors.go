package view

import "errors"

// Sentinel errors for the mediator registry.
var (
	ErrMediatorExists    = errors.New("mediator already registered")
	ErrEmptyMediatorName = errors.New("mediator name is empty")
)
