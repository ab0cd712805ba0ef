package view_test

import (
	"context"
	"slices"
	"testing"

	"github.com/tripod-mvc/tripod/notify"
	"github.com/tripod-mvc/tripod/view"
)

func TestRegisterObserver_DeliveryOrder(t *testing.T) {
	v := view.New(nil)

	var order []string
	for _, id := range []string{"first", "second", "third"} {
		id := id
		v.RegisterObserver("ping", notify.NewObserver(
			func(ctx context.Context, note *notify.Notification) {
				order = append(order, id)
			}, notify.NewToken()))
	}

	v.NotifyObservers(context.Background(), notify.New("ping", nil, ""))

	want := []string{"first", "second", "third"}
	if !slices.Equal(order, want) {
		t.Errorf("delivery order = %v, want %v", order, want)
	}
}

func TestNotifyObservers_UnknownName(t *testing.T) {
	v := view.New(nil)

	// Must be a silent no-op.
	v.NotifyObservers(context.Background(), notify.New("nobody.listens", nil, ""))
}

func TestNotifyObservers_DuplicateRegistration(t *testing.T) {
	v := view.New(nil)

	calls := 0
	obs := notify.NewObserver(func(ctx context.Context, note *notify.Notification) {
		calls++
	}, notify.NewToken())

	v.RegisterObserver("ping", obs)
	v.RegisterObserver("ping", obs)

	v.NotifyObservers(context.Background(), notify.New("ping", nil, ""))

	if calls != 2 {
		t.Errorf("duplicate observer notified %d times, want 2", calls)
	}
}

func TestRemoveObserver(t *testing.T) {
	v := view.New(nil)

	token := notify.NewToken()
	calls := 0
	v.RegisterObserver("ping", notify.NewObserver(
		func(ctx context.Context, note *notify.Notification) { calls++ }, token))

	v.RemoveObserver("ping", token)
	v.NotifyObservers(context.Background(), notify.New("ping", nil, ""))

	if calls != 0 {
		t.Errorf("removed observer notified %d times, want 0", calls)
	}
	if v.HasObservers("ping") {
		t.Error("HasObservers = true after last observer removed, want entry pruned")
	}
}

func TestRemoveObserver_AtMostOne(t *testing.T) {
	v := view.New(nil)

	token := notify.NewToken()
	calls := 0
	handler := func(ctx context.Context, note *notify.Notification) { calls++ }
	v.RegisterObserver("ping", notify.NewObserver(handler, token))
	v.RegisterObserver("ping", notify.NewObserver(handler, token))

	v.RemoveObserver("ping", token)
	v.NotifyObservers(context.Background(), notify.New("ping", nil, ""))

	if calls != 1 {
		t.Errorf("got %d deliveries after removing one of two duplicates, want 1", calls)
	}
}

func TestRemoveObserver_UnknownToken(t *testing.T) {
	v := view.New(nil)

	v.RegisterObserver("ping", notify.NewObserver(nil, notify.NewToken()))
	v.RemoveObserver("ping", notify.NewToken())

	if !v.HasObservers("ping") {
		t.Error("observer with non-matching token was removed")
	}

	// Unknown name is a no-op.
	v.RemoveObserver("pong", notify.NewToken())
}

func TestNotifyObservers_ReentrantRegister(t *testing.T) {
	v := view.New(nil)

	lateCalls := 0
	v.RegisterObserver("ping", notify.NewObserver(
		func(ctx context.Context, note *notify.Notification) {
			v.RegisterObserver("ping", notify.NewObserver(
				func(ctx context.Context, note *notify.Notification) {
					lateCalls++
				}, notify.NewToken()))
		}, notify.NewToken()))

	v.NotifyObservers(context.Background(), notify.New("ping", nil, ""))
	if lateCalls != 0 {
		t.Errorf("observer registered mid-dispatch was notified %d times in the same pass, want 0", lateCalls)
	}

	v.NotifyObservers(context.Background(), notify.New("ping", nil, ""))
	if lateCalls != 1 {
		t.Errorf("observer registered mid-dispatch notified %d times on the next pass, want 1", lateCalls)
	}
}

func TestNotifyObservers_ReentrantRemove(t *testing.T) {
	v := view.New(nil)

	second := notify.NewToken()
	secondCalls := 0

	v.RegisterObserver("ping", notify.NewObserver(
		func(ctx context.Context, note *notify.Notification) {
			v.RemoveObserver("ping", second)
		}, notify.NewToken()))
	v.RegisterObserver("ping", notify.NewObserver(
		func(ctx context.Context, note *notify.Notification) {
			secondCalls++
		}, second))

	// The in-flight pass works from a snapshot: the removal takes effect
	// only for subsequent dispatches.
	v.NotifyObservers(context.Background(), notify.New("ping", nil, ""))
	if secondCalls != 1 {
		t.Errorf("observer removed mid-dispatch notified %d times in the same pass, want 1", secondCalls)
	}

	v.NotifyObservers(context.Background(), notify.New("ping", nil, ""))
	if secondCalls != 1 {
		t.Errorf("removed observer notified %d times total after second pass, want 1", secondCalls)
	}
}

type recordingMediator struct {
	name       string
	interests  []string
	received   []*notify.Notification
	registered int
	removed    int
}

func (m *recordingMediator) Name() string        { return m.name }
func (m *recordingMediator) Interests() []string { return m.interests }
func (m *recordingMediator) OnRegister()         { m.registered++ }
func (m *recordingMediator) OnRemove()           { m.removed++ }

func (m *recordingMediator) HandleNotification(ctx context.Context, note *notify.Notification) {
	m.received = append(m.received, note)
}

func TestRegisterMediator(t *testing.T) {
	v := view.New(nil)

	med := &recordingMediator{name: "board", interests: []string{"tasks.changed", "tasks.cleared"}}
	if err := v.RegisterMediator(med); err != nil {
		t.Fatalf("RegisterMediator failed: %v", err)
	}

	if med.registered != 1 {
		t.Errorf("OnRegister called %d times, want 1", med.registered)
	}
	if !v.HasMediator("board") {
		t.Error("HasMediator = false after registration")
	}
	got, ok := v.Mediator("board")
	if !ok || got != view.Mediator(med) {
		t.Errorf("Mediator(board) = %v, %v; want the registered instance", got, ok)
	}

	v.NotifyObservers(context.Background(), notify.New("tasks.changed", nil, ""))
	v.NotifyObservers(context.Background(), notify.New("tasks.cleared", nil, ""))
	v.NotifyObservers(context.Background(), notify.New("unrelated", nil, ""))

	if len(med.received) != 2 {
		t.Errorf("mediator received %d notifications, want 2", len(med.received))
	}
}

func TestRegisterMediator_Duplicate(t *testing.T) {
	v := view.New(nil)

	original := &recordingMediator{name: "board", interests: []string{"tasks.changed"}}
	impostor := &recordingMediator{name: "board", interests: []string{"tasks.changed"}}

	if err := v.RegisterMediator(original); err != nil {
		t.Fatalf("first RegisterMediator failed: %v", err)
	}
	if err := v.RegisterMediator(impostor); err != view.ErrMediatorExists {
		t.Errorf("second RegisterMediator error = %v, want ErrMediatorExists", err)
	}

	got, _ := v.Mediator("board")
	if got != view.Mediator(original) {
		t.Error("duplicate registration displaced the original mediator")
	}
	if impostor.registered != 0 {
		t.Error("OnRegister ran for the rejected duplicate")
	}

	v.NotifyObservers(context.Background(), notify.New("tasks.changed", nil, ""))
	if len(impostor.received) != 0 {
		t.Error("rejected duplicate received notifications")
	}
}

func TestRegisterMediator_EmptyName(t *testing.T) {
	v := view.New(nil)

	err := v.RegisterMediator(&recordingMediator{name: ""})
	if err != view.ErrEmptyMediatorName {
		t.Errorf("error = %v, want ErrEmptyMediatorName", err)
	}
}

func TestRemoveMediator(t *testing.T) {
	v := view.New(nil)

	med := &recordingMediator{name: "board", interests: []string{"tasks.changed", "tasks.cleared"}}
	if err := v.RegisterMediator(med); err != nil {
		t.Fatalf("RegisterMediator failed: %v", err)
	}

	removed := v.RemoveMediator("board")
	if removed != view.Mediator(med) {
		t.Errorf("RemoveMediator returned %v, want the registered instance", removed)
	}
	if med.removed != 1 {
		t.Errorf("OnRemove called %d times, want 1", med.removed)
	}
	if v.HasMediator("board") {
		t.Error("HasMediator = true after removal")
	}

	v.NotifyObservers(context.Background(), notify.New("tasks.changed", nil, ""))
	v.NotifyObservers(context.Background(), notify.New("tasks.cleared", nil, ""))
	if len(med.received) != 0 {
		t.Errorf("removed mediator received %d notifications, want 0", len(med.received))
	}
	if v.HasObservers("tasks.changed") || v.HasObservers("tasks.cleared") {
		t.Error("interest entries not pruned after mediator removal")
	}
}

func TestRemoveMediator_Unknown(t *testing.T) {
	v := view.New(nil)

	if removed := v.RemoveMediator("ghost"); removed != nil {
		t.Errorf("RemoveMediator(unknown) = %v, want nil", removed)
	}
}

func TestRemoveMediator_LeavesOtherObservers(t *testing.T) {
	v := view.New(nil)

	med := &recordingMediator{name: "board", interests: []string{"tasks.changed"}}
	if err := v.RegisterMediator(med); err != nil {
		t.Fatalf("RegisterMediator failed: %v", err)
	}

	plainCalls := 0
	v.RegisterObserver("tasks.changed", notify.NewObserver(
		func(ctx context.Context, note *notify.Notification) { plainCalls++ },
		notify.NewToken()))

	v.RemoveMediator("board")
	v.NotifyObservers(context.Background(), notify.New("tasks.changed", nil, ""))

	if plainCalls != 1 {
		t.Errorf("unrelated observer notified %d times after mediator removal, want 1", plainCalls)
	}
}

// driftingMediator changes its Interests answer after registration. The
// view must keep working from the registration-time snapshot.
type driftingMediator struct {
	recordingMediator
	drifted bool
}

func (m *driftingMediator) Interests() []string {
	if m.drifted {
		return []string{"somewhere.else"}
	}
	return m.interests
}

func TestRemoveMediator_InterestSnapshot(t *testing.T) {
	v := view.New(nil)

	med := &driftingMediator{recordingMediator: recordingMediator{
		name:      "board",
		interests: []string{"tasks.changed"},
	}}
	if err := v.RegisterMediator(med); err != nil {
		t.Fatalf("RegisterMediator failed: %v", err)
	}

	med.drifted = true
	v.RemoveMediator("board")

	v.NotifyObservers(context.Background(), notify.New("tasks.changed", nil, ""))
	if len(med.received) != 0 {
		t.Error("mediator still subscribed under original interest after removal")
	}
	if v.HasObservers("tasks.changed") {
		t.Error("original interest entry not pruned")
	}
}

func TestFuncMediator(t *testing.T) {
	v := view.New(nil)

	var got []*notify.Notification
	med := view.NewFuncMediator("board", []string{"tasks.changed"},
		func(ctx context.Context, note *notify.Notification) {
			got = append(got, note)
		})

	if err := v.RegisterMediator(med); err != nil {
		t.Fatalf("RegisterMediator failed: %v", err)
	}

	v.NotifyObservers(context.Background(), notify.New("tasks.changed", nil, ""))
	if len(got) != 1 {
		t.Errorf("handler received %d notifications, want 1", len(got))
	}
}
