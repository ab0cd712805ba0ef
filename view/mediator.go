package view

import (
	"context"

	"github.com/tripod-mvc/tripod/notify"
)

// Mediator binds a named view component to the notifications it cares
// about. Interests is consulted once, at registration time; OnRegister and
// OnRemove bracket the mediator's active lifetime.
type Mediator interface {
	// Name returns the unique registration name.
	Name() string
	// Interests returns the notification names the mediator subscribes to.
	Interests() []string
	// HandleNotification receives every dispatched notification whose name
	// appears in Interests.
	HandleNotification(ctx context.Context, note *notify.Notification)
	// OnRegister is called after the mediator is registered and subscribed.
	OnRegister()
	// OnRemove is called after the mediator is unsubscribed and removed.
	OnRemove()
}

// FuncMediator adapts a plain handler function into a Mediator with no-op
// lifecycle hooks.
type FuncMediator struct {
	name      string
	interests []string
	handler   notify.NotifyFunc
}

// NewFuncMediator creates a FuncMediator.
func NewFuncMediator(name string, interests []string, handler notify.NotifyFunc) *FuncMediator {
	return &FuncMediator{name: name, interests: interests, handler: handler}
}

func (m *FuncMediator) Name() string { return m.name }

func (m *FuncMediator) Interests() []string { return m.interests }

func (m *FuncMediator) OnRegister() {}

func (m *FuncMediator) OnRemove() {}

func (m *FuncMediator) HandleNotification(ctx context.Context, note *notify.Notification) {
	if m.handler == nil {
		return
	}
	m.handler(ctx, note)
}
