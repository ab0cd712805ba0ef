package facade

import "github.com/tripod-mvc/tripod/observability"

// Facade event types.
const (
	EventSend observability.EventType = "facade.notification.send"
)
