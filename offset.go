package briar

// Menu panels are axis-aligned and unscaled, so the widget tree propagates
// plain translation offsets rather than full affine transforms. A widget's
// screen position is the sum of its ancestors' local positions plus its own.

// refreshWorldOffsets recomputes a widget's screen-space position and
// recurses into its children. parentRecomputed forces recomputation even
// when the widget itself is not dirty, since a moved parent moves the whole
// subtree.
func refreshWorldOffsets(w *Widget, parentX, parentY float64, parentRecomputed bool) {
	recompute := w.offsetDirty || parentRecomputed
	if recompute {
		w.worldX = parentX + w.X
		w.worldY = parentY + w.Y
		w.offsetDirty = false
	}
	for _, child := range w.children {
		refreshWorldOffsets(child, w.worldX, w.worldY, recompute)
	}
}

// SetPosition sets the widget's local X and Y and marks its subtree dirty.
func (w *Widget) SetPosition(x, y float64) {
	w.X = x
	w.Y = y
	markSubtreeDirty(w)
}

// SetSize sets the widget's width and height.
func (w *Widget) SetSize(width, height float64) {
	w.Width = width
	w.Height = height
}

// MarkDirty marks the widget's offset as dirty, forcing recomputation on the
// next refresh. Useful after bulk-setting X/Y fields directly.
func (w *Widget) MarkDirty() {
	markSubtreeDirty(w)
}

// WorldPosition returns the widget's screen-space top-left corner as of the
// last refresh. Walks up the tree instead when the cached offset is stale,
// so it is safe to call on freshly positioned widgets.
func (w *Widget) WorldPosition() (x, y float64) {
	if w.anyStale() {
		x, y = 0, 0
		for p := w; p != nil; p = p.Parent {
			x += p.X
			y += p.Y
		}
		return x, y
	}
	return w.worldX, w.worldY
}

// anyStale reports whether this widget or any ancestor has a dirty offset.
func (w *Widget) anyStale() bool {
	for p := w; p != nil; p = p.Parent {
		if p.offsetDirty {
			return true
		}
	}
	return false
}

// WorldRect returns the widget's screen-space rectangle.
func (w *Widget) WorldRect() Rect {
	x, y := w.WorldPosition()
	return Rect{X: x, Y: y, Width: w.Width, Height: w.Height}
}

// WorldToLocal converts a screen-space point to this widget's local space.
func (w *Widget) WorldToLocal(wx, wy float64) (lx, ly float64) {
	x, y := w.WorldPosition()
	return wx - x, wy - y
}

// LocalToWorld converts a local-space point to screen space.
func (w *Widget) LocalToWorld(lx, ly float64) (wx, wy float64) {
	x, y := w.WorldPosition()
	return x + lx, y + ly
}
