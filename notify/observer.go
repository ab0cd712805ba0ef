package notify

import "context"

// Token identifies the owner of one or more observers. Removal matches on
// token equality, replacing the weak context-reference comparison common
// in managed-runtime renditions of this pattern.
type Token string

// NewToken returns a unique UUIDv7-backed identity token.
func NewToken() Token {
	return Token(generateID())
}

// NotifyFunc handles a dispatched notification. Handlers do not return
// errors; dispatch is fire-and-forget and failures are the handler's own
// concern.
type NotifyFunc func(ctx context.Context, note *Notification)

// Observer binds a notification handler to an owning identity token.
type Observer struct {
	handler NotifyFunc
	token   Token
}

// NewObserver creates an Observer owned by the given token.
func NewObserver(handler NotifyFunc, token Token) *Observer {
	return &Observer{handler: handler, token: token}
}

// Notify invokes the observer's handler.
func (o *Observer) Notify(ctx context.Context, note *Notification) {
	if o.handler == nil {
		return
	}
	o.handler(ctx, note)
}

// OwnedBy reports whether the observer belongs to the given token.
func (o *Observer) OwnedBy(token Token) bool {
	return o.token == token
}

// Notifier sends notifications into the dispatch machinery. The Facade is
// the canonical implementation; commands receive one at execution time so
// they can emit follow-up notifications without holding a facade reference.
type Notifier interface {
	SendNotification(ctx context.Context, name string, body any, noteType string)
}
