// Package notify defines the notification value type and the observer
// primitives the core registries are built on. Notifications are immutable
// once built; observers are (handler, token) pairs where the token is an
// explicit identity used for removal.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Notification is a named event dispatched synchronously to observers.
// Body carries optional payload data and Type is an optional discriminator
// for handlers that serve several notification names.
type Notification struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Body      any       `json:"body,omitempty"`
	Type      string    `json:"type,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// New creates a Notification with a unique UUIDv7 identifier and the
// current timestamp.
func New(name string, body any, noteType string) *Notification {
	return &Notification{
		ID:        generateID(),
		Name:      name,
		Body:      body,
		Type:      noteType,
		Timestamp: time.Now(),
	}
}

func (n *Notification) String() string {
	return fmt.Sprintf("Notification{ID: %s, Name: %s, Type: %s}", n.ID, n.Name, n.Type)
}

func generateID() string {
	return uuid.Must(uuid.NewV7()).String()
}
