// Package model implements the proxy registry: named data components
// registered, looked up, and removed by string key.
package model

import (
	"context"
	"sync"
	"time"

	"github.com/tripod-mvc/tripod/observability"
)

// Model owns the named proxies for one application instance.
type Model struct {
	mu      sync.RWMutex
	proxies map[string]Proxy

	events observability.Observer
}

// New creates an empty Model. A nil events observer disables instrumentation.
func New(events observability.Observer) *Model {
	if events == nil {
		events = observability.NoOpObserver{}
	}
	return &Model{
		proxies: make(map[string]Proxy),
		events:  events,
	}
}

// RegisterProxy registers a named proxy and calls its OnRegister hook.
// Returns ErrProxyExists without touching the original when the name is
// already taken.
func (m *Model) RegisterProxy(p Proxy) error {
	name := p.Name()
	if name == "" {
		return ErrEmptyProxyName
	}

	m.mu.Lock()
	if _, exists := m.proxies[name]; exists {
		m.mu.Unlock()
		return ErrProxyExists
	}
	m.proxies[name] = p
	m.mu.Unlock()

	p.OnRegister()

	m.emit(EventProxyRegister, map[string]any{"proxy": name})
	return nil
}

// Proxy returns the proxy registered under name.
func (m *Model) Proxy(name string) (Proxy, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, exists := m.proxies[name]
	if !exists {
		return nil, false
	}
	return p, true
}

// HasProxy reports whether a proxy is registered under name.
func (m *Model) HasProxy(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.proxies[name]
	return exists
}

// RemoveProxy removes the named proxy, calls its OnRemove hook, and returns
// it. Returns nil when no proxy is registered under name.
func (m *Model) RemoveProxy(name string) Proxy {
	m.mu.Lock()
	p, exists := m.proxies[name]
	if !exists {
		m.mu.Unlock()
		return nil
	}
	delete(m.proxies, name)
	m.mu.Unlock()

	p.OnRemove()

	m.emit(EventProxyRemove, map[string]any{"proxy": name})
	return p
}

func (m *Model) emit(eventType observability.EventType, data map[string]any) {
	m.events.OnEvent(context.Background(), observability.Event{
		Type:      eventType,
		Level:     observability.LevelInfo,
		Timestamp: time.Now(),
		Source:    "model",
		Data:      data,
	})
}
