package bower

// syntheticPointerEvent is a single injected pointer event in unit
// coordinates.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectMove queues a pointer move to (x, y) in unit coordinates. The event
// is consumed on the next frame's processInput call and suppresses real
// mouse input for that frame.
func (s *State) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a primary-button press at (x, y) in unit coordinates.
// The cursor moves there first, as a real press would.
func (s *State) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectClick queues a move followed by a press at the same position.
// Consumes two frames.
func (s *State) InjectClick(x, y float64) {
	s.InjectMove(x, y)
	s.InjectPress(x, y)
}

// PendingInjections reports how many injected events are still queued.
func (s *State) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through the registry. Returns true if an event was consumed.
func (s *State) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.registry.PointerMoved(evt.x, evt.y)
	if evt.pressed {
		s.press()
	}
	return true
}
