package briar

import (
	"testing"
	"unicode/utf8"
)

// fakeFont measures with a fixed advance per rune so layout tests can do
// exact arithmetic without rasterizing anything.
type fakeFont struct {
	advance float64
	height  float64
}

func (f fakeFont) MeasureString(s string) (width, height float64) {
	return float64(utf8.RuneCountInString(s)) * f.advance, f.height
}

func (f fakeFont) LineHeight() float64 { return f.height }

// testFont is the standard test font: 10px per rune, 12px tall.
func testFont() fakeFont {
	return fakeFont{advance: 10, height: 12}
}

// testStyle is the default style with the test font installed.
func testStyle() *Style {
	st := DefaultStyle()
	st.EntryFont = testFont()
	return st
}

// refresh recomputes world offsets, as Update would before input processing.
func refresh(st *Stage) {
	refreshWorldOffsets(st.Root(), 0, 0, false)
}

// Pointer helpers drive the state machine directly for fully deterministic
// tests (no inject queue, no tick pacing).

func moveTo(st *Stage, x, y float64) {
	refresh(st)
	st.processPointer(x, y, false, MouseButtonLeft)
}

func press(st *Stage, x, y float64) {
	refresh(st)
	st.processPointer(x, y, true, MouseButtonLeft)
}

func release(st *Stage, x, y float64) {
	refresh(st)
	st.processPointer(x, y, false, MouseButtonLeft)
}

func clickAt(st *Stage, x, y float64) {
	press(st, x, y)
	release(st, x, y)
}

// center returns the screen-space center of a widget.
func center(st *Stage, w *Widget) (x, y float64) {
	refresh(st)
	r := w.WorldRect()
	return r.X + r.Width/2, r.Y + r.Height/2
}

// pumpInjected runs Update ticks until the inject queue drains.
func pumpInjected(st *Stage) {
	for len(st.injectQueue) > 0 {
		st.Update()
	}
}

func assertDepth(t *testing.T, s *Session, want int) {
	t.Helper()
	if s.Depth() != want {
		t.Fatalf("Depth() = %d, want %d", s.Depth(), want)
	}
}
