package briar

// Directive is one step of a horizontal placement attempt. Directives come in
// two families: position directives move the panel relative to the hotspot or
// the screen, and mode directives flip the session's grow direction without
// moving anything. A directive list is tried in order; the first position
// that leaves the panel fully on screen wins.
//
// Directive names read as "align <panel corner> to <hotspot corner>".
type Directive uint8

const (
	// Mode switches. These change the grow direction for the rest of the
	// session and do not count as a placement attempt themselves.
	SwitchGrowLeft Directive = iota
	SwitchGrowRight
	ToggleGrowDirection

	// Hotspot-relative positions.
	TopLeftToBottomLeft     // panel left edge = hotspot left edge (drop below)
	TopRightToBottomRight   // panel right edge = hotspot right edge (drop below)
	TopLeftToTopRight       // panel left edge = hotspot right edge (cascade right)
	TopRightToTopLeft       // panel right edge = hotspot left edge (cascade left)
	BottomLeftToBottomRight // as TopLeftToTopRight, bottom-anchored variant
	BottomRightToBottomLeft // as TopRightToTopLeft, bottom-anchored variant

	// Best-effort neighbors: place beside the hotspot with no vertical
	// constraint implied. Useful in caller-supplied directive lists.
	NearLeftOfHotspot  // panel right edge = hotspot left edge
	NearRightOfHotspot // panel left edge = hotspot right edge

	// Screen-relative positions.
	FlushLeft  // panel left edge = screen left edge
	FlushRight // panel right edge = screen right edge

	// Terminal accept: keep the position as computed so far even if it
	// overflows, and stop. The unconditional clamp still applies afterwards.
	FitInBounds
)

// targetX returns the panel X a position directive asks for, or false for
// mode and terminal directives.
func (d Directive) targetX(panelW float64, hotspot, screen Rect) (float64, bool) {
	switch d {
	case TopLeftToBottomLeft:
		return hotspot.X, true
	case TopRightToBottomRight:
		return hotspot.Right() - panelW, true
	case TopLeftToTopRight, BottomLeftToBottomRight, NearRightOfHotspot:
		return hotspot.Right(), true
	case TopRightToTopLeft, BottomRightToBottomLeft, NearLeftOfHotspot:
		return hotspot.X - panelW, true
	case FlushLeft:
		return screen.X, true
	case FlushRight:
		return screen.Right() - panelW, true
	}
	return 0, false
}

// resolveHorizontal runs a directive list and returns the panel X. Position
// directives are applied in order; the first one whose result fits the screen
// horizontally is accepted immediately. Mode directives flip *grow as a side
// effect and continue. FitInBounds accepts whatever position is current. When
// the list runs out without a fit, the last computed position stands — the
// caller's clamp pass pulls it on screen.
func resolveHorizontal(panelW float64, hotspot, screen Rect, grow *GrowDirection, directives []Directive) float64 {
	x := hotspot.X
	for _, d := range directives {
		switch d {
		case SwitchGrowLeft:
			*grow = GrowLeft
			continue
		case SwitchGrowRight:
			*grow = GrowRight
			continue
		case ToggleGrowDirection:
			*grow = grow.Toggled()
			continue
		case FitInBounds:
			return x
		}
		nx, ok := d.targetX(panelW, hotspot, screen)
		if !ok {
			continue
		}
		x = nx
		if x >= screen.X && x+panelW <= screen.Right() {
			return x
		}
	}
	return x
}

// clampHorizontal pins the panel inside the screen: first the right edge,
// then the left. Runs unconditionally after directive resolution, so a panel
// wider than the screen ends up flush left with its right edge overflowing.
func clampHorizontal(x, panelW float64, screen Rect) float64 {
	if x+panelW > screen.Right() {
		x = screen.Right() - panelW
	}
	if x < screen.X {
		x = screen.X
	}
	return x
}

// resolveVertical places the panel's top edge. A panel taller than the screen
// switches to scroll mode and sits at the screen top; otherwise a panel
// overflowing the bottom shifts up by exactly the overflow.
func resolveVertical(top, panelH float64, screen Rect) (y float64, scrollMode bool) {
	if panelH > screen.Height {
		return screen.Y, true
	}
	if top+panelH > screen.Bottom() {
		top -= top + panelH - screen.Bottom()
	}
	return top, false
}

// dropDirectives is the placement plan for a root panel opening below its
// hotspot: try the grow side first, then switch sides, then fall back to the
// screen edge.
func dropDirectives(g GrowDirection) []Directive {
	if g == GrowRight {
		return []Directive{
			TopLeftToBottomLeft,
			SwitchGrowLeft, TopRightToBottomRight,
			FlushLeft, FitInBounds,
		}
	}
	return []Directive{
		TopRightToBottomRight,
		SwitchGrowRight, TopLeftToBottomLeft,
		FlushRight, FitInBounds,
	}
}

// cascadeDirectives is the placement plan for a submenu opening beside its
// parent entry: cascade toward the grow side, switch sides when that
// overflows, then fall back to the screen edge.
func cascadeDirectives(g GrowDirection) []Directive {
	if g == GrowRight {
		return []Directive{
			TopLeftToTopRight,
			SwitchGrowLeft, TopRightToTopLeft,
			FlushLeft, FitInBounds,
		}
	}
	return []Directive{
		TopRightToTopLeft,
		SwitchGrowRight, TopLeftToTopRight,
		FlushRight, FitInBounds,
	}
}

// centeredScroll computes the normalized scroll position that roughly centers
// an entry in a scrolling panel's viewport. Entries already reachable without
// scrolling report needed=false. entryTop and entryH are in content space.
func centeredScroll(entryTop, entryH, viewH, scrollRange float64) (pos float64, needed bool) {
	if scrollRange <= 0 || entryTop <= viewH-entryH {
		return 0, false
	}
	pos = (entryTop + entryH/2 - viewH/2) / scrollRange
	return min(1, max(0, pos)), true
}
