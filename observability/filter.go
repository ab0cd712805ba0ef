package observability

import "context"

// LevelFilter forwards events at or above a minimum level and drops the
// rest. Wrap a verbose sink with it to silence per-dispatch trace events
// while keeping registration and error events.
type LevelFilter struct {
	min  Level
	next Observer
}

// NewLevelFilter creates a LevelFilter in front of next. A nil next drops
// everything.
func NewLevelFilter(min Level, next Observer) *LevelFilter {
	if next == nil {
		next = NoOpObserver{}
	}
	return &LevelFilter{min: min, next: next}
}

func (f *LevelFilter) OnEvent(ctx context.Context, event Event) {
	if event.Level < f.min {
		return
	}
	f.next.OnEvent(ctx, event)
}
