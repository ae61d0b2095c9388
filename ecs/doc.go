// Package ecs provides ECS adapters for marquee's selection notifications.
//
// The primary adapter is [NewDonburiSink], which bridges selection events
// (start, selecting, unselecting, selected, unselected, stop) into a
// [Donburi] world as typed events. Subscribe to [SelectionEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	reg := marquee.NewRegistry(doc, marquee.WithEventSink(sink))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
