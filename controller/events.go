package controller

import "github.com/tripod-mvc/tripod/observability"

// Controller event types emitted on command lifecycle and execution.
const (
	EventCommandRegister observability.EventType = "controller.command.register"
	EventCommandExecute  observability.EventType = "controller.command.execute"
	EventCommandError    observability.EventType = "controller.command.error"
	EventCommandRemove   observability.EventType = "controller.command.remove"
)
