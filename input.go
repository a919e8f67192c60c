package briar

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Pointer state ---

type pointerState struct {
	down        bool
	lastX       float64
	lastY       float64
	hitWidget   *Widget // widget under the pointer at press time
	hoverWidget *Widget // last widget the pointer was hovering over (for enter/leave)
	button      MouseButton
}

// hitCandidate is one hit-testable widget collected during traversal,
// together with the viewport clip in effect where it lives.
type hitCandidate struct {
	w       *Widget
	clip    Rect
	clipped bool
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending interactable non-container widgets to buf. Skips Visible=false
// or Interactable=false subtrees. Descending into a viewport narrows the
// clip rectangle, so entries scrolled out of view are not hoverable.
func (s *Stage) collectInteractable(w *Widget, clip Rect, clipped bool, buf []hitCandidate) []hitCandidate {
	if !w.Visible || !w.Interactable {
		return buf
	}

	if w.Type != WidgetContainer {
		buf = append(buf, hitCandidate{w: w, clip: clip, clipped: clipped})
	}

	if len(w.children) == 0 {
		return buf
	}

	childClip, childClipped := clip, clipped
	if w.Type == WidgetViewport {
		if clipped {
			childClip = clip.Intersect(w.WorldRect())
		} else {
			childClip = w.WorldRect()
		}
		childClipped = true
	}

	for _, child := range w.sortedOrder() {
		buf = s.collectInteractable(child, childClip, childClipped, buf)
	}
	return buf
}

// hitTest finds the topmost interactable widget at (x, y) in screen space.
// Returns nil if nothing is hit.
func (s *Stage) hitTest(x, y float64) *Widget {
	s.hitBuf = s.collectInteractable(s.root, Rect{}, false, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual widget first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		c := s.hitBuf[i]
		if c.clipped && !c.clip.Contains(x, y) {
			continue
		}
		if c.w.WorldRect().Contains(x, y) {
			return c.w
		}
	}
	return nil
}

// --- Input processing ---

// processMousePointer polls the real mouse and runs the pointer state machine.
func (s *Stage) processMousePointer() {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(x, y, pressed, button)
}

// processPointer runs the pointer state machine for one sampled pointer
// position. All widget callbacks fire synchronously from here.
func (s *Stage) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &s.pointer

	target := s.hitTest(x, y)

	// Fire hover enter/leave when the hovered widget changes.
	if target != ps.hoverWidget {
		if ps.hoverWidget != nil {
			s.firePointer(ps.hoverWidget.OnPointerLeave, ps.hoverWidget, x, y, button)
		}
		if target != nil {
			s.firePointer(target.OnPointerEnter, target, x, y, button)
		}
		ps.hoverWidget = target
	}

	switch {
	case pressed && !ps.down:
		// Just pressed — capture button for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.hitWidget = target
		if target != nil {
			s.firePointer(target.OnPointerDown, target, x, y, button)
		}

	case !pressed && ps.down:
		// Just released — a click requires press and release over the same widget.
		if ps.hitWidget != nil && ps.hitWidget == target && !ps.hitWidget.IsDisposed() {
			s.fireClick(target, x, y, ps.button)
		}
		ps.down = false
		ps.hitWidget = nil

	case pressed && ps.down:
		// Held down, possibly moved — route moves to the pressed widget so
		// e.g. a scrollbar thumb keeps receiving them outside its bounds.
		if (x != ps.lastX || y != ps.lastY) && ps.hitWidget != nil && !ps.hitWidget.IsDisposed() {
			s.firePointer(ps.hitWidget.OnPointerMove, ps.hitWidget, x, y, ps.button)
		}

	default:
		// Hover move.
		if (x != ps.lastX || y != ps.lastY) && target != nil {
			s.firePointer(target.OnPointerMove, target, x, y, button)
		}
	}

	ps.lastX = x
	ps.lastY = y
}

// processWheel polls the mouse wheel and routes it to the nearest scrollable
// ancestor of the hovered widget. Wheel input over a non-scrollable widget is
// a no-op.
func (s *Stage) processWheel() {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return
	}
	s.dispatchWheel(dy)
}

// dispatchWheel delivers a wheel delta to the hovered widget's nearest
// ancestor (or self) with an OnScroll callback.
func (s *Stage) dispatchWheel(dy float64) {
	for p := s.pointer.hoverWidget; p != nil; p = p.Parent {
		if p.OnScroll != nil {
			p.OnScroll(ScrollContext{Widget: p, DeltaY: dy})
			return
		}
	}
}

// --- Event dispatch helpers ---

func (s *Stage) firePointer(fn func(PointerContext), w *Widget, x, y float64, button MouseButton) {
	if fn == nil {
		return
	}
	lx, ly := w.WorldToLocal(x, y)
	fn(PointerContext{
		Widget: w, UserData: w.UserData,
		X: x, Y: y, LocalX: lx, LocalY: ly,
		Button: button,
	})
}

func (s *Stage) fireClick(w *Widget, x, y float64, button MouseButton) {
	if w.OnClick == nil {
		return
	}
	lx, ly := w.WorldToLocal(x, y)
	w.OnClick(ClickContext{
		Widget: w, UserData: w.UserData,
		X: x, Y: y, LocalX: lx, LocalY: ly,
		Button: button,
	})
}
