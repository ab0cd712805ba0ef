// Package facade assembles one View, Model, and Controller into a single
// application surface. Hosts create a Facade per application instance and
// pass it (or its notify.Notifier face) to collaborators explicitly; there
// is no implicit global instance.
//
//	f := facade.New(facade.WithLogger(slog.Default()))
//	f.RegisterCommand("task.add", func() controller.Command { return &AddTask{} })
//	f.SendNotification(ctx, "task.add", payload, "")
package facade

import (
	"context"
	"log/slog"
	"time"

	"github.com/tripod-mvc/tripod/controller"
	"github.com/tripod-mvc/tripod/model"
	"github.com/tripod-mvc/tripod/notify"
	"github.com/tripod-mvc/tripod/observability"
	"github.com/tripod-mvc/tripod/view"
)

// Option configures a Facade during New.
type Option func(*settings)

type settings struct {
	events observability.Observer
}

// WithObserver sets the instrumentation sink shared by the three cores.
func WithObserver(events observability.Observer) Option {
	return func(s *settings) { s.events = events }
}

// WithLogger is shorthand for WithObserver with a SlogObserver over logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.events = observability.NewSlogObserver(logger) }
}

// Facade unifies access to the View, Model, and Controller of one
// application instance and implements notify.Notifier.
type Facade struct {
	view       *view.View
	model      *model.Model
	controller *controller.Controller
	events     observability.Observer
}

// New assembles a Facade with fresh cores. The controller is subscribed on
// the view and bound back to the facade as its commands' Notifier.
func New(opts ...Option) *Facade {
	s := settings{events: observability.NoOpObserver{}}
	for _, opt := range opts {
		opt(&s)
	}

	v := view.New(s.events)
	f := &Facade{
		view:       v,
		model:      model.New(s.events),
		controller: controller.New(v, s.events),
		events:     s.events,
	}
	f.controller.BindNotifier(f)
	return f
}

// View returns the facade's view core.
func (f *Facade) View() *view.View { return f.view }

// Model returns the facade's model core.
func (f *Facade) Model() *model.Model { return f.model }

// Controller returns the facade's controller core.
func (f *Facade) Controller() *controller.Controller { return f.controller }

// RegisterCommand binds a command factory to a notification name.
func (f *Facade) RegisterCommand(name string, factory controller.Factory) error {
	return f.controller.RegisterCommand(name, factory)
}

// ReplaceCommand swaps the factory bound to a notification name.
func (f *Facade) ReplaceCommand(name string, factory controller.Factory) error {
	return f.controller.ReplaceCommand(name, factory)
}

// HasCommand reports whether a factory is bound to name.
func (f *Facade) HasCommand(name string) bool {
	return f.controller.HasCommand(name)
}

// RemoveCommand unbinds the factory for name.
func (f *Facade) RemoveCommand(name string) {
	f.controller.RemoveCommand(name)
}

// RegisterProxy registers a named proxy with the model.
func (f *Facade) RegisterProxy(p model.Proxy) error {
	return f.model.RegisterProxy(p)
}

// Proxy returns the proxy registered under name.
func (f *Facade) Proxy(name string) (model.Proxy, bool) {
	return f.model.Proxy(name)
}

// HasProxy reports whether a proxy is registered under name.
func (f *Facade) HasProxy(name string) bool {
	return f.model.HasProxy(name)
}

// RemoveProxy removes and returns the named proxy.
func (f *Facade) RemoveProxy(name string) model.Proxy {
	return f.model.RemoveProxy(name)
}

// RegisterMediator registers a named mediator with the view.
func (f *Facade) RegisterMediator(m view.Mediator) error {
	return f.view.RegisterMediator(m)
}

// Mediator returns the mediator registered under name.
func (f *Facade) Mediator(name string) (view.Mediator, bool) {
	return f.view.Mediator(name)
}

// HasMediator reports whether a mediator is registered under name.
func (f *Facade) HasMediator(name string) bool {
	return f.view.HasMediator(name)
}

// RemoveMediator removes and returns the named mediator.
func (f *Facade) RemoveMediator(name string) view.Mediator {
	return f.view.RemoveMediator(name)
}

// SendNotification constructs a Notification and dispatches it
// synchronously. It returns after every interested observer's handler has
// returned.
func (f *Facade) SendNotification(ctx context.Context, name string, body any, noteType string) {
	f.events.OnEvent(ctx, observability.Event{
		Type:      EventSend,
		Level:     observability.LevelVerbose,
		Timestamp: time.Now(),
		Source:    "facade",
		Data:      map[string]any{"name": name, "type": noteType},
	})

	f.view.NotifyObservers(ctx, notify.New(name, body, noteType))
}

// NotifyObservers dispatches a caller-built Notification.
func (f *Facade) NotifyObservers(ctx context.Context, note *notify.Notification) {
	f.view.NotifyObservers(ctx, note)
}

var _ notify.Notifier = (*Facade)(nil)
