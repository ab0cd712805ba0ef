package model

import "github.com/tripod-mvc/tripod/observability"

// Model event types emitted on proxy lifecycle changes.
const (
	EventProxyRegister observability.EventType = "model.proxy.register"
	EventProxyRemove   observability.EventType = "model.proxy.remove"
)
