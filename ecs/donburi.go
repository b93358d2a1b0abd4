package ecs

import (
	"github.com/phanxgames/gesture"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// GestureEventType carries movestart, move and moveend into a Donburi
// world. Published events are queued until ProcessEvents runs, normally
// once per ECS tick.
//
// A gesture.GestureEvent is a flat copy of the gesture state: the entity of
// the pressed node, the contact identifier and the page, start,
// delta and distance coordinates. It has no TargetTouches; systems that need
// the other live contacts should listen on the scene instead.
var GestureEventType = events.NewEventType[gesture.GestureEvent]()

// NewDonburiStore returns an EntityStore that publishes each gesture event
// to GestureEventType on world.
func NewDonburiStore(world donburi.World) gesture.EntityStore {
	return worldStore{world}
}

type worldStore struct {
	world donburi.World
}

func (s worldStore) EmitEvent(event gesture.GestureEvent) {
	GestureEventType.Publish(s.world, event)
}

// OnGesture subscribes fn to gesture events of type typ only.
func OnGesture(world donburi.World, typ gesture.EventType, fn func(donburi.World, gesture.GestureEvent)) {
	GestureEventType.Subscribe(world, func(w donburi.World, e gesture.GestureEvent) {
		if e.Type == typ {
			fn(w, e)
		}
	})
}
