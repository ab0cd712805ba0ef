package controller

import (
	"context"

	"github.com/tripod-mvc/tripod/notify"
)

// Command is a stateless unit of application logic executed in response to
// a notification. The sender lets a command emit follow-up notifications
// without holding a reference to the facade.
type Command interface {
	Execute(ctx context.Context, note *notify.Notification, sender notify.Notifier) error
}

// Func adapts a plain function into a Command.
type Func func(ctx context.Context, note *notify.Notification, sender notify.Notifier) error

func (f Func) Execute(ctx context.Context, note *notify.Notification, sender notify.Notifier) error {
	return f(ctx, note, sender)
}

// MacroCommand executes an ordered list of sub-commands sequentially and
// synchronously against the same notification. Execution is fail-fast: the
// first sub-command error stops the sequence.
type MacroCommand struct {
	subs []Factory
}

// NewMacroCommand creates a MacroCommand from the given sub-command
// factories, executed in argument order.
func NewMacroCommand(subs ...Factory) *MacroCommand {
	return &MacroCommand{subs: subs}
}

// AddSubCommand appends a sub-command factory to the sequence.
func (m *MacroCommand) AddSubCommand(factory Factory) {
	m.subs = append(m.subs, factory)
}

// Execute runs each sub-command in order. Each sub-command is constructed
// fresh from its factory. On failure the error is wrapped in a StepError
// carrying the 0-based index of the failing step.
func (m *MacroCommand) Execute(ctx context.Context, note *notify.Notification, sender notify.Notifier) error {
	for i, factory := range m.subs {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: i, Err: err}
		}
		if err := factory().Execute(ctx, note, sender); err != nil {
			return &StepError{Step: i, Err: err}
		}
	}
	return nil
}
