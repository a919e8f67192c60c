package briar

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates. Injected events feed the same state machine as real mouse
// input, which makes interaction tests and scripted demos deterministic.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	wheel   bool
	wheelDY float64
}

// InjectMove queues a pointer move event at the given screen coordinates.
// The event is consumed on the next Update call. Whether the move is a hover
// or a drag depends on the pointer state left by earlier events.
func (s *Stage) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: s.injectHeld(),
		button:  MouseButtonLeft,
	})
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button).
func (s *Stage) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (s *Stage) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same screen coordinates. Consumes two Update ticks.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectWheel queues a wheel event delivered at the current hover position.
func (s *Stage) InjectWheel(dy float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		wheel:   true,
		wheelDY: dy,
	})
}

// injectHeld reports whether the pointer will be held down once the already
// queued events have been consumed.
func (s *Stage) injectHeld() bool {
	held := s.pointer.down
	for _, evt := range s.injectQueue {
		if !evt.wheel {
			held = evt.pressed
		}
	}
	return held
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the pointer state machine. Returns true if an event was consumed
// (real mouse input is skipped that tick).
func (s *Stage) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.wheel {
		s.dispatchWheel(evt.wheelDY)
		return true
	}
	s.processPointer(evt.x, evt.y, evt.pressed, evt.button)
	return true
}
