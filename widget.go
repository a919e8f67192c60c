package briar

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerContext carries pointer event data delivered to widget callbacks.
type PointerContext struct {
	Widget   *Widget
	UserData any
	X        float64 // screen-space pointer position
	Y        float64
	LocalX   float64 // pointer position in the widget's local space
	LocalY   float64
	Button   MouseButton
}

// ClickContext carries click event data delivered to widget callbacks.
type ClickContext struct {
	Widget   *Widget
	UserData any
	X        float64
	Y        float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// ScrollContext carries wheel event data delivered to viewport callbacks.
type ScrollContext struct {
	Widget *Widget
	DeltaY float64 // raw wheel delta (positive = wheel up)
}

// widgetIDCounter is a plain counter (no atomic — briar is single-threaded).
var widgetIDCounter uint32

func nextWidgetID() uint32 {
	widgetIDCounter++
	return widgetIDCounter
}

// --- Widget ---

// Widget is the fundamental element of the retained widget tree. A single
// flat struct is used for all widget types to avoid interface dispatch when
// traversing for drawing and hit testing.
type Widget struct {
	// Identity
	ID   uint32
	Name string
	Type WidgetType

	// Hierarchy
	Parent   *Widget
	children []*Widget

	// Position (local, relative to parent) and size
	X, Y          float64
	Width, Height float64

	// Computed screen-space position (updated during refresh traversal)
	worldX, worldY float64
	offsetDirty    bool

	// Visibility & interaction
	Visible      bool
	Interactable bool

	// Ordering among siblings
	ZIndex int

	// Metadata
	UserData any

	// Fill / tint color. For interactive plates, SetState overrides this
	// from the per-state table.
	Color Color

	// Interaction state (plates)
	State       ControlState
	stateColors [4]Color
	statesSet   bool

	// Image fields (WidgetImage)
	Image *ebiten.Image

	// Label fields (WidgetLabel)
	Text  string
	Font  Font
	Align TextAlign

	// Viewport fields (WidgetViewport)
	scroll *scrollState

	// Per-widget callbacks (nil by default; zero cost when unused)
	OnPointerDown  func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnClick        func(ClickContext)
	OnScroll       func(ScrollContext)

	// Internal
	disposed       bool
	childrenSorted bool
	sortedChildren []*Widget // reused buffer for ZIndex-sorted traversal order
}

// widgetDefaults sets the common default field values shared by all constructors.
func widgetDefaults(w *Widget) {
	w.ID = nextWidgetID()
	w.Color = ColorWhite
	w.Visible = true
	w.offsetDirty = true
	w.childrenSorted = true
}

// NewContainer creates a container widget with no visual representation.
func NewContainer(name string) *Widget {
	w := &Widget{Name: name, Type: WidgetContainer}
	widgetDefaults(w)
	return w
}

// NewPlate creates a solid color rectangle widget.
func NewPlate(name string, width, height float64, fill Color) *Widget {
	w := &Widget{Name: name, Type: WidgetPlate, Width: width, Height: height}
	widgetDefaults(w)
	w.Color = fill
	return w
}

// NewImage creates an image widget sized to the image's intrinsic size.
// A nil image yields a zero-size widget that draws nothing.
func NewImage(name string, img *ebiten.Image) *Widget {
	w := &Widget{Name: name, Type: WidgetImage, Image: img}
	widgetDefaults(w)
	if img != nil {
		b := img.Bounds()
		w.Width = float64(b.Dx())
		w.Height = float64(b.Dy())
	}
	return w
}

// NewLabel creates a single-line text widget sized to the text's natural
// rendered extents. Measurement happens immediately via the font, without a
// layout pass.
func NewLabel(name, content string, font Font) *Widget {
	w := &Widget{Name: name, Type: WidgetLabel, Text: content, Font: font}
	widgetDefaults(w)
	w.Width, w.Height = measureText(content, font)
	return w
}

// SetText replaces the label's text and re-measures its natural size.
func (w *Widget) SetText(content string) {
	w.Text = content
	w.Width, w.Height = measureText(content, w.Font)
}

func measureText(content string, font Font) (width, height float64) {
	if font == nil {
		return 0, 0
	}
	return font.MeasureString(content)
}

// SetStateColors installs a per-state color table on an interactive widget.
// After this call, SetState switches Widget.Color among the table entries.
func (w *Widget) SetStateColors(normal, highlighted, pressed, disabled Color) {
	w.stateColors = [4]Color{normal, highlighted, pressed, disabled}
	w.statesSet = true
	w.Color = w.stateColors[w.State]
}

// SetState changes the widget's interaction state. With a state color table
// installed, the fill color follows the state. StateDisabled additionally
// clears Interactable.
func (w *Widget) SetState(s ControlState) {
	w.State = s
	if w.statesSet {
		w.Color = w.stateColors[s]
	}
	if s == StateDisabled {
		w.Interactable = false
	}
}

// --- Tree manipulation ---

// AddChild appends child to this widget's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this widget (cycle).
func (w *Widget) AddChild(child *Widget) {
	if child == nil {
		panic("briar: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(w, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, w) {
		panic("briar: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = w
	w.children = append(w.children, child)
	w.childrenSorted = false
	markSubtreeDirty(child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (w *Widget) AddChildAt(child *Widget, index int) {
	if child == nil {
		panic("briar: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(w, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, w) {
		panic("briar: adding child would create a cycle")
	}
	if index < 0 || index > len(w.children) {
		panic("briar: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = w
	w.children = append(w.children, nil)
	copy(w.children[index+1:], w.children[index:])
	w.children[index] = child
	w.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this widget.
// Panics if child.Parent != w.
func (w *Widget) RemoveChild(child *Widget) {
	if globalDebug {
		debugCheckDisposed(w, "RemoveChild (parent)")
		debugCheckDisposed(child, "RemoveChild (child)")
	}
	if child.Parent != w {
		panic("briar: child's parent is not this widget")
	}
	w.removeChildByPtr(child)
	child.Parent = nil
	w.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this widget from its parent.
// No-op if this widget has no parent.
func (w *Widget) RemoveFromParent() {
	if w.Parent == nil {
		return
	}
	w.Parent.RemoveChild(w)
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (w *Widget) Children() []*Widget {
	return w.children
}

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int {
	return len(w.children)
}

// ChildAt returns the child at the given index.
func (w *Widget) ChildAt(index int) *Widget {
	return w.children[index]
}

// SetChildIndex moves child to a new index among its siblings. Used by the
// session manager to restack panel shadows behind panel bodies.
func (w *Widget) SetChildIndex(child *Widget, index int) {
	if child.Parent != w {
		panic("briar: child's parent is not this widget")
	}
	nc := len(w.children)
	if index < 0 || index >= nc {
		panic("briar: child index out of range")
	}
	oldIndex := -1
	for i, c := range w.children {
		if c == child {
			oldIndex = i
			break
		}
	}
	if oldIndex == index {
		return
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(w.children[oldIndex:], w.children[oldIndex+1:index+1])
	} else {
		copy(w.children[index+1:], w.children[index:oldIndex])
	}
	w.children[index] = child
	w.childrenSorted = false
}

// SetZIndex sets the widget's ZIndex and marks the parent's children as unsorted.
func (w *Widget) SetZIndex(z int) {
	if w.ZIndex == z {
		return
	}
	w.ZIndex = z
	if w.Parent != nil {
		w.Parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes this widget from its parent, marks it as disposed,
// and recursively disposes all descendants. Safe to call more than once.
func (w *Widget) Dispose() {
	if w.disposed {
		return
	}
	w.RemoveFromParent()
	w.dispose()
}

func (w *Widget) dispose() {
	w.disposed = true
	w.ID = 0
	for _, child := range w.children {
		child.Parent = nil
		child.dispose()
	}
	w.children = nil
	w.sortedChildren = nil
	w.Parent = nil
	w.Image = nil
	w.Font = nil
	w.scroll = nil
	w.UserData = nil
	w.OnPointerDown = nil
	w.OnPointerMove = nil
	w.OnPointerEnter = nil
	w.OnPointerLeave = nil
	w.OnClick = nil
	w.OnScroll = nil
}

// IsDisposed returns true if this widget has been disposed.
func (w *Widget) IsDisposed() bool {
	return w.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of widget.
func isAncestor(candidate, widget *Widget) bool {
	for p := widget; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from w.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (w *Widget) removeChildByPtr(child *Widget) {
	for i, c := range w.children {
		if c == child {
			copy(w.children[i:], w.children[i+1:])
			w.children[len(w.children)-1] = nil
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets offsetDirty on widget and all its descendants.
func markSubtreeDirty(widget *Widget) {
	widget.offsetDirty = true
	for _, child := range widget.children {
		markSubtreeDirty(child)
	}
}

// sortedOrder returns the children in ZIndex order, rebuilding the cached
// sorted buffer if needed. Ties keep insertion order.
func (w *Widget) sortedOrder() []*Widget {
	if len(w.children) == 0 {
		return nil
	}
	if w.childrenSorted {
		if w.sortedChildren != nil {
			return w.sortedChildren
		}
		return w.children
	}
	nc := len(w.children)
	if cap(w.sortedChildren) < nc {
		w.sortedChildren = make([]*Widget, nc)
	}
	w.sortedChildren = w.sortedChildren[:nc]
	copy(w.sortedChildren, w.children)
	// Stable insertion sort by ZIndex: zero allocations, optimal for the
	// typical case of few, nearly sorted children.
	for i := 1; i < nc; i++ {
		key := w.sortedChildren[i]
		j := i - 1
		for j >= 0 && w.sortedChildren[j].ZIndex > key.ZIndex {
			w.sortedChildren[j+1] = w.sortedChildren[j]
			j--
		}
		w.sortedChildren[j+1] = key
	}
	w.childrenSorted = true
	return w.sortedChildren
}
