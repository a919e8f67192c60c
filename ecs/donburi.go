// Package ecs provides ECS adapters for briar.
package ecs

import (
	"github.com/phanxgames/briar"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MenuEventType is the Donburi event type for briar menu session events.
// Subscribe to this in your ECS systems to react to menus opening, actions
// being selected, and sessions closing.
var MenuEventType = events.NewEventType[briar.MenuEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Menu events
// are published to MenuEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) briar.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitMenuEvent(event briar.MenuEvent) {
	MenuEventType.Publish(s.world, event)
}
