// Package controller maps notification names to command factories and
// executes a fresh command instance for every matching dispatch. The
// controller subscribes itself on the view as an ordinary observer, one
// subscription per registered command name.
package controller

import (
	"context"
	"sync"
	"time"

	"github.com/tripod-mvc/tripod/notify"
	"github.com/tripod-mvc/tripod/observability"
	"github.com/tripod-mvc/tripod/view"
)

// Factory constructs a Command. A new instance is created per execution so
// commands stay stateless across dispatches.
type Factory func() Command

// Controller owns the command factory bindings for one application
// instance.
type Controller struct {
	mu        sync.RWMutex
	factories map[string]Factory

	view   *view.View
	token  notify.Token
	sender notify.Notifier
	events observability.Observer
}

// New creates a Controller bound to v. A nil events observer disables
// instrumentation. BindNotifier must be called before commands that send
// follow-up notifications execute; the facade does this during assembly.
func New(v *view.View, events observability.Observer) *Controller {
	if events == nil {
		events = observability.NoOpObserver{}
	}
	return &Controller{
		factories: make(map[string]Factory),
		view:      v,
		token:     notify.NewToken(),
		events:    events,
	}
}

// BindNotifier sets the Notifier handed to commands at execution time.
func (c *Controller) BindNotifier(sender notify.Notifier) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sender = sender
}

// RegisterCommand binds a command factory to a notification name and
// subscribes the controller on the view for that name. Returns
// ErrCommandExists when the name is already bound; use ReplaceCommand to
// swap an existing binding.
func (c *Controller) RegisterCommand(name string, factory Factory) error {
	if name == "" {
		return ErrEmptyCommandName
	}
	if factory == nil {
		return ErrNilFactory
	}

	c.mu.Lock()
	if _, exists := c.factories[name]; exists {
		c.mu.Unlock()
		return ErrCommandExists
	}
	c.factories[name] = factory
	c.mu.Unlock()

	c.view.RegisterObserver(name, notify.NewObserver(c.executeCommand, c.token))

	c.emit(context.Background(), EventCommandRegister, observability.LevelInfo,
		map[string]any{"command": name})
	return nil
}

// ReplaceCommand swaps the factory for an already-bound name. The view
// subscription is untouched. Returns ErrCommandNotFound when the name is
// not bound.
func (c *Controller) ReplaceCommand(name string, factory Factory) error {
	if name == "" {
		return ErrEmptyCommandName
	}
	if factory == nil {
		return ErrNilFactory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.factories[name]; !exists {
		return ErrCommandNotFound
	}
	c.factories[name] = factory
	return nil
}

// HasCommand reports whether a factory is bound to name.
func (c *Controller) HasCommand(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.factories[name]
	return exists
}

// RemoveCommand unbinds the factory for name and unsubscribes the
// controller's observer from the view. Unknown names are a no-op.
func (c *Controller) RemoveCommand(name string) {
	c.mu.Lock()
	_, exists := c.factories[name]
	if exists {
		delete(c.factories, name)
	}
	c.mu.Unlock()

	if !exists {
		return
	}

	c.view.RemoveObserver(name, c.token)

	c.emit(context.Background(), EventCommandRemove, observability.LevelInfo,
		map[string]any{"command": name})
}

// executeCommand is the controller's observer handler. It constructs a
// fresh command for the notification's name and runs it. Execution errors
// have no caller to flow back to, so they surface as error-level events.
func (c *Controller) executeCommand(ctx context.Context, note *notify.Notification) {
	c.mu.RLock()
	factory, exists := c.factories[note.Name]
	sender := c.sender
	c.mu.RUnlock()

	if !exists {
		return
	}

	c.emit(ctx, EventCommandExecute, observability.LevelVerbose,
		map[string]any{"command": note.Name})

	if err := factory().Execute(ctx, note, sender); err != nil {
		c.emit(ctx, EventCommandError, observability.LevelError, map[string]any{
			"command": note.Name,
			"error":   err.Error(),
		})
	}
}

func (c *Controller) emit(ctx context.Context, eventType observability.EventType, level observability.Level, data map[string]any) {
	c.events.OnEvent(ctx, observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "controller",
		Data:      data,
	})
}
