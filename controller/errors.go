package controller

import (
	"errors"
	"fmt"
)

// Sentinel errors for the command registry.
var (
	ErrCommandExists    = errors.New("command already registered")
	ErrCommandNotFound  = errors.New("command not found")
	ErrEmptyCommandName = errors.New("command name is empty")
	ErrNilFactory       = errors.New("command factory is nil")
)

// StepError reports which sub-command of a MacroCommand failed.
type StepError struct {
	// Step is the 0-based index of the failing sub-command.
	Step int

	// Err is the underlying error.
	Err error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("macro command failed at step %d: %v", e.Step, e.Err)
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As.
func (e *StepError) Unwrap() error {
	return e.Err
}
