// Package view implements the observer registry and the mediator registry.
// It is the dispatch core: notifications fan out synchronously, in
// registration order, to every observer subscribed under the notification's
// name.
package view

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/tripod-mvc/tripod/notify"
	"github.com/tripod-mvc/tripod/observability"
)

// registration pins a mediator together with the identity token and the
// interest snapshot taken when it was registered. Removal always works
// from the snapshot, so a mediator whose Interests answer drifts after
// registration still unsubscribes cleanly.
type registration struct {
	mediator  Mediator
	token     notify.Token
	interests []string
}

// View owns the per-name observer lists and the named mediators. A nil
// *View is not usable; create one with New.
type View struct {
	mu        sync.RWMutex
	observers map[string][]*notify.Observer
	mediators map[string]*registration

	events observability.Observer
}

// New creates an empty View. A nil events observer disables instrumentation.
func New(events observability.Observer) *View {
	if events == nil {
		events = observability.NoOpObserver{}
	}
	return &View{
		observers: make(map[string][]*notify.Observer),
		mediators: make(map[string]*registration),
		events:    events,
	}
}

// RegisterObserver appends obs to the ordered observer list for name,
// creating the list on first use. Duplicate registrations are not deduped;
// an observer registered twice is notified twice.
func (v *View) RegisterObserver(name string, obs *notify.Observer) {
	v.mu.Lock()
	v.observers[name] = append(v.observers[name], obs)
	v.mu.Unlock()

	v.emit(context.Background(), EventObserverRegister, observability.LevelVerbose,
		map[string]any{"name": name})
}

// NotifyObservers delivers note to every observer registered under
// note.Name, in registration order. An unknown name is a no-op. The list
// is snapshotted before iteration: handlers that register or remove
// observers for the same name during dispatch never affect the in-flight
// pass.
func (v *View) NotifyObservers(ctx context.Context, note *notify.Notification) {
	v.mu.RLock()
	snapshot := slices.Clone(v.observers[note.Name])
	v.mu.RUnlock()

	v.emit(ctx, EventNotify, observability.LevelVerbose, map[string]any{
		"name":      note.Name,
		"observers": len(snapshot),
	})

	for _, obs := range snapshot {
		obs.Notify(ctx, note)
	}
}

// RemoveObserver removes the first observer under name owned by token.
// At most one observer is removed per call even when the token owns
// several. The map entry is pruned once its list is empty.
func (v *View) RemoveObserver(name string, token notify.Token) {
	v.mu.Lock()
	defer v.mu.Unlock()

	list, exists := v.observers[name]
	if !exists {
		return
	}

	for i, obs := range list {
		if obs.OwnedBy(token) {
			v.observers[name] = slices.Delete(list, i, i+1)
			break
		}
	}

	if len(v.observers[name]) == 0 {
		delete(v.observers, name)
	}
}

// HasObservers reports whether any observer is registered under name.
func (v *View) HasObservers(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return len(v.observers[name]) > 0
}

// RegisterMediator registers a named mediator and subscribes it to every
// notification name it declares interest in. The interest list is consulted
// exactly once, here; later changes to the mediator's answer are ignored.
// Returns ErrMediatorExists without touching the original when the name is
// already taken.
func (v *View) RegisterMediator(m Mediator) error {
	name := m.Name()
	if name == "" {
		return ErrEmptyMediatorName
	}

	v.mu.Lock()
	if _, exists := v.mediators[name]; exists {
		v.mu.Unlock()
		return ErrMediatorExists
	}

	reg := &registration{
		mediator:  m,
		token:     notify.NewToken(),
		interests: slices.Clone(m.Interests()),
	}
	v.mediators[name] = reg

	obs := notify.NewObserver(m.HandleNotification, reg.token)
	for _, interest := range reg.interests {
		v.observers[interest] = append(v.observers[interest], obs)
	}
	v.mu.Unlock()

	m.OnRegister()

	v.emit(context.Background(), EventMediatorRegister, observability.LevelInfo,
		map[string]any{"mediator": name, "interests": len(reg.interests)})
	return nil
}

// Mediator returns the mediator registered under name.
func (v *View) Mediator(name string) (Mediator, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	reg, exists := v.mediators[name]
	if !exists {
		return nil, false
	}
	return reg.mediator, true
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()

	_, exists := v.mediators[name]
	return exists
}

// RemoveMediator unsubscribes the named mediator from every interest it was
// registered with, invokes its OnRemove hook, and returns it. Returns nil
// when no mediator is registered under name.
func (v *View) RemoveMediator(name string) Mediator {
	v.mu.Lock()
	reg, exists := v.mediators[name]
	if !exists {
		v.mu.Unlock()
		return nil
	}
	delete(v.mediators, name)

	for _, interest := range reg.interests {
		v.removeObserverLocked(interest, reg.token)
	}
	v.mu.Unlock()

	reg.mediator.OnRemove()

	v.emit(context.Background(), EventMediatorRemove, observability.LevelInfo,
		map[string]any{"mediator": name})
	return reg.mediator
}

// removeObserverLocked is RemoveObserver with v.mu already held.
func (v *View) removeObserverLocked(name string, token notify.Token) {
	list, exists := v.observers[name]
	if !exists {
		return
	}

	for i, obs := range list {
		if obs.OwnedBy(token) {
			v.observers[name] = slices.Delete(list, i, i+1)
			break
		}
	}

	if len(v.observers[name]) == 0 {
		delete(v.observers, name)
	}
}

func (v *View) emit(ctx context.Context, eventType observability.EventType, level observability.Level, data map[string]any) {
	v.events.OnEvent(ctx, observability.Event{
		Type:      eventType,
		Level:     level,
		Timestamp: time.Now(),
		Source:    "view",
		Data:      data,
	})
}
