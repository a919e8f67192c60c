package briar

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelletier/go-toml/v2"
)

// Style holds every knob that controls how menu panels look and behave.
// A Style is plain data: build one with DefaultStyle, tweak fields, or overlay
// a TOML document with LoadStyle. The same Style value can be shared by any
// number of sessions.
//
// Fonts and icons cannot come from TOML; set them in code after loading.
type Style struct {
	// Modal behavior.
	ScrimColor   Color     `toml:"scrim-color"`
	ScrimVisible bool      `toml:"scrim-visible"`
	CloseMode    CloseMode `toml:"close-mode"`

	// Fonts. EntryFont is required; TitleFont falls back to EntryFont.
	TitleFont Font `toml:"-"`
	EntryFont Font `toml:"-"`

	// Paddings and gaps, in pixels.
	OuterPadding     float64 `toml:"outer-padding"`     // panel edge to entry stack
	EntryPadding     float64 `toml:"entry-padding"`     // vertical padding inside an entry
	EntrySpacing     float64 `toml:"entry-spacing"`     // gap between consecutive entries
	TitlePadding     float64 `toml:"title-padding"`     // around the title text
	SeparatorPadding float64 `toml:"separator-padding"` // around a separator rule
	SeparatorHeight  float64 `toml:"separator-height"`  // rule thickness
	IconTextGap      float64 `toml:"icon-text-gap"`
	TextArrowGap     float64 `toml:"text-arrow-gap"`
	TextShortcutGap  float64 `toml:"text-shortcut-gap"`

	// Minimum entry cell size.
	MinEntryWidth  float64 `toml:"min-entry-width"`
	MinEntryHeight float64 `toml:"min-entry-height"`

	// Colors.
	PanelColor        Color `toml:"panel-color"`
	ShadowColor       Color `toml:"shadow-color"`
	TitleColor        Color `toml:"title-color"`
	EntryTextColor    Color `toml:"entry-text-color"`
	SelectedTextColor Color `toml:"selected-text-color"`
	ShortcutColor     Color `toml:"shortcut-color"`
	SeparatorColor    Color `toml:"separator-color"`
	EntryFill         Color `toml:"entry-fill"`
	HighlightFill     Color `toml:"highlight-fill"`
	PressedFill       Color `toml:"pressed-fill"`
	DisabledFill      Color `toml:"disabled-fill"`
	ScrollTrackColor  Color `toml:"scroll-track-color"`
	ScrollThumbColor  Color `toml:"scroll-thumb-color"`

	// Scroll mode.
	ScrollbarWidth float64 `toml:"scrollbar-width"`
	WheelStep      float64 `toml:"wheel-step"` // pixels per wheel notch

	// Decorations. Text fallbacks draw with EntryFont when no icon is set.
	ArrowText string        `toml:"arrow-text"` // submenu indicator
	ArrowIcon *ebiten.Image `toml:"-"`
	BackText  string        `toml:"back-text"` // injected go-back entry label
	BackIcon  *ebiten.Image `toml:"-"`

	// Panel composition.
	ShowTitles        bool      `toml:"show-titles"`
	InjectBackEntries bool      `toml:"inject-back-entries"`
	DefaultAlign      TextAlign `toml:"default-align"`
	ShadowOffset      float64   `toml:"shadow-offset"`
}

// DefaultStyle returns a dark theme with sane metrics. EntryFont is left nil
// and must be set by the caller before the style is used.
func DefaultStyle() *Style {
	return &Style{
		ScrimColor:   Color{0, 0, 0, 0.25},
		ScrimVisible: true,
		CloseMode:    CloseOnPress,

		OuterPadding:     8,
		EntryPadding:     4,
		EntrySpacing:     2,
		TitlePadding:     6,
		SeparatorPadding: 6,
		SeparatorHeight:  1,
		IconTextGap:      6,
		TextArrowGap:     12,
		TextShortcutGap:  24,

		MinEntryWidth:  120,
		MinEntryHeight: 18,

		PanelColor:        Color{0.13, 0.13, 0.15, 1},
		ShadowColor:       Color{0, 0, 0, 0.35},
		TitleColor:        Color{1, 1, 1, 1},
		EntryTextColor:    Color{0.9, 0.9, 0.9, 1},
		SelectedTextColor: Color{1, 0.85, 0.3, 1},
		ShortcutColor:     Color{0.6, 0.6, 0.65, 1},
		SeparatorColor:    Color{0.35, 0.35, 0.4, 1},
		EntryFill:         Color{0, 0, 0, 0},
		HighlightFill:     Color{0.3, 0.4, 0.6, 0.8},
		PressedFill:       Color{0.25, 0.33, 0.5, 0.9},
		DisabledFill:      Color{0, 0, 0, 0},
		ScrollTrackColor:  Color{0.1, 0.1, 0.12, 1},
		ScrollThumbColor:  Color{0.45, 0.45, 0.5, 1},

		ScrollbarWidth: 12,
		WheelStep:      40,

		ArrowText: ">",
		BackText:  "< Back",

		ShowTitles:        false,
		InjectBackEntries: true,
		DefaultAlign:      TextAlignLeft,
		ShadowOffset:      4,
	}
}

// LoadStyle overlays a TOML document on top of base and returns the result.
// Keys absent from the document keep the base value, so a theme file only
// needs to list what it changes. A nil base overlays DefaultStyle. Fonts and
// icons carry over from the base untouched.
func LoadStyle(data []byte, base *Style) (*Style, error) {
	if base == nil {
		base = DefaultStyle()
	}
	st := *base
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("briar: parsing style: %w", err)
	}
	return &st, nil
}

// Validate checks that the style is usable. A missing entry font is a
// configuration error; callers that construct sessions from a Style should
// treat a non-nil error as fatal.
func (st *Style) Validate() error {
	if st.EntryFont == nil {
		return fmt.Errorf("briar: style has no entry font")
	}
	if st.MinEntryHeight <= 0 {
		return fmt.Errorf("briar: style min-entry-height must be positive, got %v", st.MinEntryHeight)
	}
	return nil
}

// titleFont returns the font used for panel titles, falling back to the
// entry font when no dedicated title font is set.
func (st *Style) titleFont() Font {
	if st.TitleFont != nil {
		return st.TitleFont
	}
	return st.EntryFont
}

// separatorHeight returns the thickness of a separator rule, at least 1px.
func (st *Style) separatorHeight() float64 {
	return max(1, st.SeparatorHeight)
}

// arrowSize measures the submenu indicator: the icon's intrinsic size when an
// icon is set, otherwise the arrow text in the entry font.
func (st *Style) arrowSize() (w, h float64) {
	if st.ArrowIcon != nil {
		b := st.ArrowIcon.Bounds()
		return float64(b.Dx()), float64(b.Dy())
	}
	if st.ArrowText == "" {
		return 0, 0
	}
	return st.EntryFont.MeasureString(st.ArrowText)
}

// --- Parse helpers ---

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA" into c.
func parseHexColor(s string, c *Color) error {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 7 && len(s) != 9) {
		return fmt.Errorf("briar: invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 64)
	if err != nil {
		return fmt.Errorf("briar: invalid color %q: %w", s, err)
	}
	if len(s) == 7 {
		v = v<<8 | 0xff
	}
	c.R = float64(v>>24&0xff) / 255
	c.G = float64(v>>16&0xff) / 255
	c.B = float64(v>>8&0xff) / 255
	c.A = float64(v&0xff) / 255
	return nil
}

// parseEnum looks up a lowercased keyword in table and stores the match.
func parseEnum[T any](s string, table map[string]T, out *T, what string) error {
	v, ok := table[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return fmt.Errorf("briar: unknown %s %q", what, s)
	}
	*out = v
	return nil
}
