package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/marquee"
)

// SelectionEventType is the Donburi event type for marquee notifications.
// Subscribe to this in your ECS systems to receive selection changes.
var SelectionEventType = events.NewEventType[marquee.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Notifications are published to SelectionEventType and can be consumed
// with Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) marquee.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event marquee.Event) {
	SelectionEventType.Publish(s.world, event)
}
