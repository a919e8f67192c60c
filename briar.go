package briar

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// ColorTransparent is fully transparent black, used for invisible capture
// surfaces such as the modal scrim.
var ColorTransparent = Color{0, 0, 0, 0}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R * c.A * 255),
		G: uint8(c.G * c.A * 255),
		B: uint8(c.B * c.A * 255),
		A: uint8(c.A * 255),
	}
}

// UnmarshalText parses a color from "#RRGGBB" or "#RRGGBBAA" hex notation.
// Used by the TOML style loader.
func (c *Color) UnmarshalText(text []byte) error {
	return parseHexColor(string(text), c)
}

// Vec2 is a 2D vector used for positions, offsets, and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used for solid color plates.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// PointRect returns a degenerate zero-size rectangle at (x, y). Useful as a
// hotspot when a menu is opened at a raw click position rather than relative
// to an invoking widget.
func PointRect(x, y float64) Rect {
	return Rect{X: x, Y: y}
}

// Right returns the X coordinate of the rectangle's right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersect returns the overlapping region of r and other.
// Returns a zero rectangle when they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.Right(), other.Right())
	y1 := min(r.Bottom(), other.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// WidgetType distinguishes drawing behavior for a Widget.
type WidgetType uint8

const (
	WidgetContainer WidgetType = iota // group widget with no visual output
	WidgetPlate                       // solid color rectangle
	WidgetImage                       // draws an *ebiten.Image, tinted
	WidgetLabel                       // single-line text via a Font
	WidgetViewport                    // clips and scrolls its children
)

// ControlState is the interaction state of an interactive widget.
// Interactive plates carry a per-state color table; see Widget.SetState.
type ControlState uint8

const (
	StateNormal      ControlState = iota // idle
	StateHighlighted                     // pointer hovering
	StatePressed                         // pointer held down
	StateDisabled                        // not interactable, drawn dimmed
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button
)

// TextAlign controls horizontal text alignment within a Label's width.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // align text to the left edge (default)
	TextAlignCenter                  // center text horizontally
	TextAlignRight                   // align text to the right edge
)

// UnmarshalText parses "left", "center", or "right". Used by the TOML style loader.
func (a *TextAlign) UnmarshalText(text []byte) error {
	return parseEnum(string(text), map[string]TextAlign{
		"left": TextAlignLeft, "center": TextAlignCenter, "right": TextAlignRight,
	}, a, "text alignment")
}

// GrowDirection is the session-wide preference for which side submenus
// cascade toward. It flips when a placement directive switches it, and the
// flipped value persists for the rest of the session.
type GrowDirection uint8

const (
	GrowRight GrowDirection = iota // submenus open to the right of their parent entry
	GrowLeft                       // submenus open to the left
)

// Toggled returns the opposite direction.
func (g GrowDirection) Toggled() GrowDirection {
	if g == GrowRight {
		return GrowLeft
	}
	return GrowRight
}

// CloseMode selects which pointer event on the modal scrim closes the session.
type CloseMode uint8

const (
	CloseOnPress CloseMode = iota // pointer-down outside any panel closes
	CloseOnClick                  // full press+release outside closes
)

// UnmarshalText parses "press" or "click". Used by the TOML style loader.
func (m *CloseMode) UnmarshalText(text []byte) error {
	return parseEnum(string(text), map[string]CloseMode{
		"press": CloseOnPress, "click": CloseOnClick,
	}, m, "close mode")
}
