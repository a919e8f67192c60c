package briar

// scrollState is the private state of a WidgetViewport: the inner content
// container, an optional scrollbar, and the normalized scroll position.
type scrollState struct {
	content  *Widget
	track    *Widget
	thumb    *Widget
	contentH float64
	pos      float64 // normalized [0, 1]
	step     float64 // pixels scrolled per wheel notch
	onChange func(pos float64)
}

const defaultWheelStep = 40.0

// NewViewport creates a clipping, vertically scrollable viewport. Children
// added through Content() scroll together; anything scrolled outside the
// viewport rectangle is neither drawn nor hit-testable.
func NewViewport(name string, width, height float64) *Widget {
	w := &Widget{Name: name, Type: WidgetViewport, Width: width, Height: height}
	widgetDefaults(w)
	w.Interactable = true

	content := NewContainer(name + "-content")
	content.Interactable = true
	w.AddChild(content)

	w.scroll = &scrollState{
		content: content,
		step:    defaultWheelStep,
	}
	w.OnScroll = func(ctx ScrollContext) {
		// Wheel up (positive delta) scrolls the content up.
		ctx.Widget.ScrollBy(-ctx.DeltaY * ctx.Widget.scroll.step)
	}
	return w
}

// mustViewport panics when the widget is not a viewport. Scroll accessors on
// other widget types are caller bugs.
func (w *Widget) mustViewport() *scrollState {
	if w.Type != WidgetViewport || w.scroll == nil {
		panic("briar: " + w.Name + " is not a viewport")
	}
	return w.scroll
}

// Content returns the viewport's inner content container. Entries placed in
// it are laid out in content space and shifted by the scroll position.
func (w *Widget) Content() *Widget {
	return w.mustViewport().content
}

// SetContentHeight declares the total height of the viewport's content,
// which determines the scrollable range and the thumb size.
func (w *Widget) SetContentHeight(h float64) {
	sc := w.mustViewport()
	sc.contentH = h
	w.SetScroll(sc.pos)
}

// ScrollRange returns the content height minus the viewport height — the
// number of pixels the content can travel. Zero when everything fits.
func (w *Widget) ScrollRange() float64 {
	sc := w.mustViewport()
	if sc.contentH <= w.Height {
		return 0
	}
	return sc.contentH - w.Height
}

// ScrollPos returns the normalized scroll position in [0, 1].
func (w *Widget) ScrollPos() float64 {
	return w.mustViewport().pos
}

// SetScroll sets the normalized scroll position, clamped to [0, 1], moves the
// content, repositions the thumb, and fires the scroll-changed callback.
func (w *Widget) SetScroll(pos float64) {
	sc := w.mustViewport()
	pos = min(1, max(0, pos))
	sc.pos = pos
	sc.content.SetPosition(sc.content.X, -pos*w.ScrollRange())
	w.syncThumb()
	if sc.onChange != nil {
		sc.onChange(pos)
	}
}

// ScrollBy scrolls by a pixel delta (positive = content moves up).
func (w *Widget) ScrollBy(pixels float64) {
	r := w.ScrollRange()
	if r <= 0 {
		return
	}
	w.SetScroll(w.mustViewport().pos + pixels/r)
}

// SetWheelStep sets the pixels scrolled per wheel notch.
func (w *Widget) SetWheelStep(step float64) {
	w.mustViewport().step = step
}

// OnScrollChanged registers a callback fired whenever the normalized scroll
// position changes.
func (w *Widget) OnScrollChanged(fn func(pos float64)) {
	w.mustViewport().onChange = fn
}

// --- Scrollbar ---

// newScrollbar builds a vertical track+thumb pair bound to the viewport and
// returns the track. The caller parents and positions the track (typically
// in the panel's gutter, outside the clip). Pressing the track jumps; the
// thumb follows held pointer moves.
func newScrollbar(vp *Widget, width, height float64, trackColor, thumbColor Color) *Widget {
	sc := vp.mustViewport()

	track := NewPlate(vp.Name+"-track", width, height, trackColor)
	track.Interactable = true

	thumb := NewPlate(vp.Name+"-thumb", width, thumbHeight(vp, height), thumbColor)
	thumb.Interactable = true
	track.AddChild(thumb)

	sc.track = track
	sc.thumb = thumb

	// jump centers the thumb on the given screen Y and scrolls accordingly.
	jump := func(screenY float64) {
		th := thumb.Height
		span := track.Height - th
		if span <= 0 {
			return
		}
		_, trackY := track.WorldPosition()
		vp.SetScroll((screenY - trackY - th/2) / span)
	}
	track.OnPointerDown = func(ctx PointerContext) { jump(ctx.Y) }
	thumb.OnPointerDown = func(ctx PointerContext) { jump(ctx.Y) }
	// The thumb receives moves while held even when the pointer leaves its
	// bounds, so dragging feels continuous.
	thumb.OnPointerMove = func(ctx PointerContext) { jump(ctx.Y) }

	vp.syncThumb()
	return track
}

// thumbHeight sizes the thumb proportionally to the visible share of the
// content, with a small floor so it stays grabbable.
func thumbHeight(vp *Widget, trackH float64) float64 {
	sc := vp.mustViewport()
	if sc.contentH <= 0 {
		return trackH
	}
	h := trackH * vp.Height / sc.contentH
	return min(trackH, max(16, h))
}

// syncThumb repositions (and resizes) the thumb to reflect the current
// scroll position. No-op when the viewport has no scrollbar attached.
func (w *Widget) syncThumb() {
	sc := w.scroll
	if sc == nil || sc.thumb == nil || sc.track == nil {
		return
	}
	sc.thumb.Height = thumbHeight(w, sc.track.Height)
	span := sc.track.Height - sc.thumb.Height
	sc.thumb.SetPosition(0, sc.pos*span)
}
