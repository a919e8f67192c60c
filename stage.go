package briar

// Stage is the top-level object that owns the widget tree, the screen size,
// and pointer state. A host embeds one Stage per screen/canvas: call Update
// once per tick and Draw once per frame.
//
// Everything on a Stage runs synchronously on the host's single event loop.
// There is no background work and no locking; every operation completes
// before the next input event is processed.
type Stage struct {
	root   *Widget
	width  float64
	height float64
	debug  bool

	// Input state
	pointer     pointerState
	hitBuf      []hitCandidate
	injectQueue []syntheticPointerEvent
}

// NewStage creates a stage with a pre-created root container spanning the
// given screen size.
func NewStage(width, height float64) *Stage {
	root := NewContainer("root")
	root.Interactable = true
	root.Width = width
	root.Height = height
	return &Stage{
		root:   root,
		width:  width,
		height: height,
	}
}

// Root returns the stage's root container widget.
func (s *Stage) Root() *Widget {
	return s.root
}

// Size returns the stage's screen size.
func (s *Stage) Size() (width, height float64) {
	return s.width, s.height
}

// SetSize updates the stage's screen size, e.g. from ebiten.Game.Layout.
func (s *Stage) SetSize(width, height float64) {
	s.width = width
	s.height = height
	s.root.Width = width
	s.root.Height = height
}

// Bounds returns the stage's screen rectangle.
func (s *Stage) Bounds() Rect {
	return Rect{Width: s.width, Height: s.height}
}

// Update refreshes widget positions and processes pointer input. Call once
// per ebiten Update tick. Injected synthetic events take precedence over the
// real mouse, one event per tick, so scripted interactions stay deterministic.
func (s *Stage) Update() {
	refreshWorldOffsets(s.root, 0, 0, false)
	if !s.processInjectedInput() {
		s.processMousePointer()
		s.processWheel()
	}
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-widget
// access panics and anomaly warnings are printed to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}
