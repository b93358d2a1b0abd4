// Package ecs provides ECS adapters for gesture events.
//
// The primary adapter is [NewDonburiStore], which bridges movestart, move
// and moveend into a [Donburi] world as typed events. Subscribe to
// [GestureEventType] in your ECS systems to receive them. Only gestures
// whose target node has a non-zero EntityID are forwarded.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
