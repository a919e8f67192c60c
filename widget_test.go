package briar

import (
	"testing"
)

// --- Constructor defaults ---

func TestNewContainerDefaults(t *testing.T) {
	w := NewContainer("test")
	assertWidgetDefaults(t, w, "test", WidgetContainer)
}

func TestNewPlateDefaults(t *testing.T) {
	fill := Color{0.2, 0.3, 0.4, 1}
	w := NewPlate("plate", 80, 40, fill)
	if w.Type != WidgetPlate {
		t.Errorf("Type = %d, want WidgetPlate", w.Type)
	}
	if w.Width != 80 || w.Height != 40 {
		t.Errorf("size = (%v, %v), want (80, 40)", w.Width, w.Height)
	}
	if w.Color != fill {
		t.Errorf("Color = %v, want %v", w.Color, fill)
	}
}

func TestNewLabelMeasuresImmediately(t *testing.T) {
	w := NewLabel("lbl", "hello", testFont())
	if w.Width != 50 || w.Height != 12 {
		t.Errorf("label size = (%v, %v), want (50, 12)", w.Width, w.Height)
	}
	w.SetText("hi")
	if w.Width != 20 {
		t.Errorf("after SetText, Width = %v, want 20", w.Width)
	}
}

func assertWidgetDefaults(t *testing.T, w *Widget, name string, typ WidgetType) {
	t.Helper()
	if w.ID == 0 {
		t.Error("ID should be non-zero")
	}
	if w.Name != name {
		t.Errorf("Name = %q, want %q", w.Name, name)
	}
	if w.Type != typ {
		t.Errorf("Type = %d, want %d", w.Type, typ)
	}
	if !w.Visible {
		t.Error("Visible should be true")
	}
	if w.Interactable {
		t.Error("Interactable should default to false")
	}
	if !w.offsetDirty {
		t.Error("offsetDirty should be true")
	}
}

func TestUniqueIDs(t *testing.T) {
	a := NewContainer("a")
	b := NewPlate("b", 1, 1, ColorWhite)
	c := NewLabel("c", "x", testFont())
	if a.ID == b.ID || b.ID == c.ID || a.ID == c.ID {
		t.Errorf("IDs should be unique: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

// --- Tree manipulation ---

func TestAddChildReparents(t *testing.T) {
	p1 := NewContainer("p1")
	p2 := NewContainer("p2")
	c := NewContainer("c")

	p1.AddChild(c)
	if c.Parent != p1 || p1.NumChildren() != 1 {
		t.Fatal("child not attached to p1")
	}
	p2.AddChild(c)
	if c.Parent != p2 {
		t.Error("child should have been reparented to p2")
	}
	if p1.NumChildren() != 0 {
		t.Error("p1 should have released the child")
	}
}

func TestAddChildNilPanics(t *testing.T) {
	defer expectPanic(t)
	NewContainer("p").AddChild(nil)
}

func TestAddChildCyclePanics(t *testing.T) {
	defer expectPanic(t)
	p := NewContainer("p")
	c := NewContainer("c")
	p.AddChild(c)
	c.AddChild(p)
}

func TestAddChildAt(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	p.AddChild(a)
	p.AddChild(c)
	p.AddChildAt(b, 1)
	if p.ChildAt(0) != a || p.ChildAt(1) != b || p.ChildAt(2) != c {
		t.Error("AddChildAt did not insert at index 1")
	}
}

func TestSetChildIndex(t *testing.T) {
	p := NewContainer("p")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)

	p.SetChildIndex(c, 0)
	if p.ChildAt(0) != c || p.ChildAt(1) != a || p.ChildAt(2) != b {
		t.Errorf("after move to front: %s %s %s",
			p.ChildAt(0).Name, p.ChildAt(1).Name, p.ChildAt(2).Name)
	}
	p.SetChildIndex(c, 2)
	if p.ChildAt(0) != a || p.ChildAt(1) != b || p.ChildAt(2) != c {
		t.Errorf("after move to back: %s %s %s",
			p.ChildAt(0).Name, p.ChildAt(1).Name, p.ChildAt(2).Name)
	}
}

func TestSortedOrderZIndexStable(t *testing.T) {
	p := NewContainer("p")
	a, b, c, d := NewContainer("a"), NewContainer("b"), NewContainer("c"), NewContainer("d")
	for _, w := range []*Widget{a, b, c, d} {
		p.AddChild(w)
	}
	c.SetZIndex(-1)
	b.SetZIndex(5)

	order := p.sortedOrder()
	want := []*Widget{c, a, d, b}
	for i, w := range want {
		if order[i] != w {
			t.Fatalf("sortedOrder[%d] = %s, want %s", i, order[i].Name, w.Name)
		}
	}
	// Insertion order ties: a before d.
}

// --- State colors ---

func TestSetStateColors(t *testing.T) {
	w := NewPlate("w", 10, 10, ColorWhite)
	normal := Color{0, 0, 0, 0}
	hi := Color{0.3, 0.4, 0.6, 0.8}
	w.SetStateColors(normal, hi, Color{}, Color{})
	w.Interactable = true

	if w.Color != normal {
		t.Errorf("installing colors should apply the current state's color")
	}
	w.SetState(StateHighlighted)
	if w.Color != hi {
		t.Errorf("Color = %v, want highlight %v", w.Color, hi)
	}
	w.SetState(StateDisabled)
	if w.Interactable {
		t.Error("StateDisabled should clear Interactable")
	}
}

// --- World offsets ---

func TestWorldPositionNested(t *testing.T) {
	st := NewStage(640, 480)
	outer := NewContainer("outer")
	inner := NewContainer("inner")
	outer.SetPosition(10, 20)
	inner.SetPosition(5, 6)
	st.Root().AddChild(outer)
	outer.AddChild(inner)

	x, y := inner.WorldPosition()
	if x != 15 || y != 26 {
		t.Errorf("WorldPosition = (%v, %v), want (15, 26)", x, y)
	}
}

func TestSetPositionDirtiesSubtree(t *testing.T) {
	st := NewStage(640, 480)
	outer := NewContainer("outer")
	inner := NewContainer("inner")
	st.Root().AddChild(outer)
	outer.AddChild(inner)
	refresh(st)

	outer.SetPosition(100, 0)
	x, _ := inner.WorldPosition()
	if x != 100 {
		t.Errorf("inner world X = %v, want 100 after parent moved", x)
	}
}

func TestWorldToLocal(t *testing.T) {
	st := NewStage(640, 480)
	w := NewPlate("w", 50, 50, ColorWhite)
	w.SetPosition(100, 200)
	st.Root().AddChild(w)
	refresh(st)

	lx, ly := w.WorldToLocal(110, 230)
	if lx != 10 || ly != 30 {
		t.Errorf("WorldToLocal = (%v, %v), want (10, 30)", lx, ly)
	}
}

// --- Dispose ---

func TestDisposeRecursiveAndIdempotent(t *testing.T) {
	p := NewContainer("p")
	c := NewPlate("c", 10, 10, ColorWhite)
	gc := NewLabel("gc", "x", testFont())
	p.AddChild(c)
	c.AddChild(gc)

	p.Dispose()
	if !p.IsDisposed() || !c.IsDisposed() || !gc.IsDisposed() {
		t.Error("Dispose should recurse to all descendants")
	}
	if c.Parent != nil || len(p.Children()) != 0 {
		t.Error("Dispose should sever all links")
	}
	if gc.Font != nil {
		t.Error("Dispose should release the font reference")
	}
	p.Dispose() // must not panic
}

func TestDisposeDetachesFromParent(t *testing.T) {
	p := NewContainer("p")
	c := NewContainer("c")
	p.AddChild(c)
	c.Dispose()
	if p.NumChildren() != 0 {
		t.Error("disposed child should be removed from its parent")
	}
	if p.IsDisposed() {
		t.Error("parent must not be disposed")
	}
}

func expectPanic(t *testing.T) {
	t.Helper()
	if recover() == nil {
		t.Error("expected panic")
	}
}
