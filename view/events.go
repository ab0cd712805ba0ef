package view

import "github.com/tripod-mvc/tripod/observability"

// View event types emitted during registration and dispatch.
const (
	EventObserverRegister observability.EventType = "view.observer.register"
	EventNotify           observability.EventType = "view.notify"
	EventMediatorRegister observability.EventType = "view.mediator.register"
	EventMediatorRemove   observability.EventType = "view.mediator.remove"
)
