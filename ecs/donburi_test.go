package ecs

import (
	"testing"

	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiStore(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	if store == nil {
		t.Fatal("NewDonburiStore returned nil")
	}
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []gesture.GestureEvent
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.GestureEvent) {
		received = append(received, e)
	})

	store.EmitEvent(gesture.GestureEvent{
		Type:       gesture.EventMoveStart,
		EntityID:   42,
		Identifier: gesture.MouseIdentifier,
		PageX:      104,
		PageY:      100,
		StartX:     100,
		StartY:     100,
		DistX:      4,
	})
	store.EmitEvent(gesture.GestureEvent{
		Type:       gesture.EventMoveEnd,
		EntityID:   42,
		Identifier: 3,
		DistX:      10,
	})

	// Events are queued; process them.
	GestureEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != gesture.EventMoveStart || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.StartX != 100 || e0.PageX != 104 || e0.DistX != 4 {
		t.Errorf("event 0 position: %+v", e0)
	}
	e1 := received[1]
	if e1.Type != gesture.EventMoveEnd || e1.Identifier != 3 || e1.DistX != 10 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestDonburiStore_ImplementsEntityStore(t *testing.T) {
	world := donburi.NewWorld()
	var store gesture.EntityStore = NewDonburiStore(world)
	_ = store // compile-time interface check
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.GestureEvent) {
		count1++
	})
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.GestureEvent) {
		count2++
	})

	store.EmitEvent(gesture.GestureEvent{Type: gesture.EventMove})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}

func TestDonburiStore_SceneDrag(t *testing.T) {
	world := donburi.NewWorld()
	scene := gesture.NewScene()
	scene.SetEntityStore(NewDonburiStore(world))

	box := gesture.NewElement("box", 100, 100)
	box.EntityID = 7
	scene.Root().AddChild(box)
	scene.On(box, gesture.EventMoveEnd, func(e *gesture.Event) {})

	var types []gesture.EventType
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.GestureEvent) {
		if e.EntityID != 7 {
			t.Errorf("EntityID = %d, want 7", e.EntityID)
		}
		types = append(types, e.Type)
	})

	scene.MouseDown(10, 10, gesture.MouseButtonLeft)
	scene.MouseMove(20, 10)
	scene.Update()
	scene.MouseUp(20, 10, gesture.MouseButtonLeft)
	scene.Update()
	GestureEventType.ProcessEvents(world)

	want := []gesture.EventType{gesture.EventMoveStart, gesture.EventMoveEnd}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestOnGestureFiltersByType(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var ends []float64
	OnGesture(world, gesture.EventMoveEnd, func(_ donburi.World, e gesture.GestureEvent) {
		ends = append(ends, e.DistX)
	})

	store.EmitEvent(gesture.GestureEvent{Type: gesture.EventMoveStart, DistX: 4})
	store.EmitEvent(gesture.GestureEvent{Type: gesture.EventMove, DistX: 8})
	store.EmitEvent(gesture.GestureEvent{Type: gesture.EventMoveEnd, DistX: 12})
	GestureEventType.ProcessEvents(world)

	if len(ends) != 1 || ends[0] != 12 {
		t.Errorf("moveend distances = %v, want [12]", ends)
	}
}
