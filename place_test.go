package briar

import (
	"testing"
)

var testScreen = Rect{Width: 640, Height: 480}

func TestResolveHorizontalFirstFitWins(t *testing.T) {
	hotspot := Rect{X: 100, Y: 50, Width: 80, Height: 20}
	grow := GrowRight
	x := resolveHorizontal(120, hotspot, testScreen, &grow, dropDirectives(grow))
	if x != 100 {
		t.Errorf("x = %v, want 100 (first directive fits)", x)
	}
	if grow != GrowRight {
		t.Error("grow direction must not change when the first attempt fits")
	}
}

func TestResolveHorizontalSwitchesSides(t *testing.T) {
	// Hotspot near the right edge: dropping left-aligned overflows, so the
	// plan switches to grow-left and right-aligns against the hotspot.
	hotspot := Rect{X: 600, Y: 50, Width: 30, Height: 20}
	grow := GrowRight
	x := resolveHorizontal(120, hotspot, testScreen, &grow, dropDirectives(grow))
	if x != 630-120 {
		t.Errorf("x = %v, want %v (right edges aligned)", x, 630-120)
	}
	if grow != GrowLeft {
		t.Error("the grow switch must persist after placement")
	}
}

func TestResolveHorizontalExhaustionKeepsLast(t *testing.T) {
	// Panel wider than the screen: nothing fits; FitInBounds accepts the
	// position computed by the last directive (FlushLeft for grow-right).
	hotspot := Rect{X: 300, Y: 50, Width: 10, Height: 10}
	grow := GrowRight
	x := resolveHorizontal(700, hotspot, testScreen, &grow, dropDirectives(grow))
	if x != 0 {
		t.Errorf("x = %v, want 0 (flush left accepted)", x)
	}
}

func TestResolveHorizontalCascade(t *testing.T) {
	parentEntry := Rect{X: 100, Y: 80, Width: 150, Height: 26}
	grow := GrowRight
	x := resolveHorizontal(120, parentEntry, testScreen, &grow, cascadeDirectives(grow))
	if x != 250 {
		t.Errorf("x = %v, want 250 (panel left = entry right)", x)
	}

	// Near the right edge the cascade flips to the entry's left side.
	parentEntry.X = 550
	x = resolveHorizontal(120, parentEntry, testScreen, &grow, cascadeDirectives(grow))
	if x != 550-120 {
		t.Errorf("x = %v, want %v (panel right = entry left)", x, 550-120)
	}
	if grow != GrowLeft {
		t.Error("cascade overflow should switch the session to grow-left")
	}
}

func TestClampHorizontal(t *testing.T) {
	// Overflow right pins the right edge.
	if x := clampHorizontal(600, 100, testScreen); x != 540 {
		t.Errorf("right overflow: x = %v, want 540", x)
	}
	// Overflow left pins the left edge.
	if x := clampHorizontal(-20, 100, testScreen); x != 0 {
		t.Errorf("left overflow: x = %v, want 0", x)
	}
	// Wider than the screen: right is pinned first, left last, so the
	// panel ends flush left with its right edge overflowing.
	if x := clampHorizontal(100, 700, testScreen); x != 0 {
		t.Errorf("oversized: x = %v, want 0", x)
	}
	// Fits: untouched.
	if x := clampHorizontal(270, 100, testScreen); x != 270 {
		t.Errorf("fitting: x = %v, want 270", x)
	}
}

func TestResolveVerticalShiftsUpByOverflow(t *testing.T) {
	y, scroll := resolveVertical(400, 200, testScreen)
	if scroll {
		t.Fatal("a panel shorter than the screen must not scroll")
	}
	if y != 280 {
		t.Errorf("y = %v, want 280 (shifted up by the 120px overflow)", y)
	}

	// No overflow: untouched.
	y, _ = resolveVertical(100, 200, testScreen)
	if y != 100 {
		t.Errorf("y = %v, want 100", y)
	}
}

func TestResolveVerticalScrollMode(t *testing.T) {
	y, scroll := resolveVertical(100, 600, testScreen)
	if !scroll {
		t.Fatal("a panel taller than the screen must scroll")
	}
	if y != 0 {
		t.Errorf("y = %v, want 0 (screen top)", y)
	}
}

func TestDirectiveModeSwitches(t *testing.T) {
	grow := GrowRight
	hotspot := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	// A list of pure mode switches ends where it started positionally.
	x := resolveHorizontal(50, hotspot, testScreen, &grow,
		[]Directive{ToggleGrowDirection, ToggleGrowDirection, SwitchGrowLeft, FitInBounds})
	if x != hotspot.X {
		t.Errorf("x = %v, want the neutral hotspot X", x)
	}
	if grow != GrowLeft {
		t.Errorf("grow = %v, want GrowLeft", grow)
	}
}

func TestNearHotspotDirectives(t *testing.T) {
	hotspot := Rect{X: 300, Y: 50, Width: 40, Height: 20}
	grow := GrowRight
	x := resolveHorizontal(120, hotspot, testScreen, &grow,
		[]Directive{NearRightOfHotspot, FitInBounds})
	if x != 340 {
		t.Errorf("near right: x = %v, want 340", x)
	}
	x = resolveHorizontal(120, hotspot, testScreen, &grow,
		[]Directive{NearLeftOfHotspot, FitInBounds})
	if x != 180 {
		t.Errorf("near left: x = %v, want 180", x)
	}
}

func TestCenteredScroll(t *testing.T) {
	// Entry at the very top: no centering needed.
	if _, needed := centeredScroll(0, 26, 480, 520); needed {
		t.Error("a top entry should not need centering")
	}
	// Entry below the fold: centered.
	pos, needed := centeredScroll(700, 26, 480, 520)
	if !needed {
		t.Fatal("an entry below the fold needs centering")
	}
	want := (700 + 13 - 240) / 520.0
	if pos != want {
		t.Errorf("pos = %v, want %v", pos, want)
	}
	// Deep entries clamp to 1.
	if pos, _ := centeredScroll(5000, 26, 480, 520); pos != 1 {
		t.Errorf("pos = %v, want 1", pos)
	}
	// No scroll range: nothing to do.
	if _, needed := centeredScroll(700, 26, 480, 0); needed {
		t.Error("zero range should never need centering")
	}
}
