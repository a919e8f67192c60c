package briar

import (
	"testing"
)

func TestDefaultStyleValidation(t *testing.T) {
	st := DefaultStyle()
	if err := st.Validate(); err == nil {
		t.Error("a style without an entry font must not validate")
	}
	st.EntryFont = testFont()
	if err := st.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestLoadStyleOverlay(t *testing.T) {
	base := testStyle()
	doc := []byte(`
outer-padding = 20
panel-color = "#112233"
close-mode = "click"
default-align = "center"
back-text = "return"
`)
	st, err := LoadStyle(doc, base)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}

	if st.OuterPadding != 20 {
		t.Errorf("OuterPadding = %v, want 20", st.OuterPadding)
	}
	want := Color{R: 0x11 / 255.0, G: 0x22 / 255.0, B: 0x33 / 255.0, A: 1}
	if st.PanelColor != want {
		t.Errorf("PanelColor = %v, want %v", st.PanelColor, want)
	}
	if st.CloseMode != CloseOnClick {
		t.Errorf("CloseMode = %v, want CloseOnClick", st.CloseMode)
	}
	if st.DefaultAlign != TextAlignCenter {
		t.Errorf("DefaultAlign = %v, want center", st.DefaultAlign)
	}
	if st.BackText != "return" {
		t.Errorf("BackText = %q", st.BackText)
	}

	// Keys absent from the document keep base values; fonts carry over.
	if st.MinEntryWidth != base.MinEntryWidth {
		t.Error("unset keys should keep the base value")
	}
	if st.EntryFont == nil {
		t.Error("fonts must carry over from the base")
	}
	// The base itself is untouched.
	if base.OuterPadding == 20 {
		t.Error("LoadStyle must not mutate the base style")
	}
}

func TestLoadStyleNilBase(t *testing.T) {
	st, err := LoadStyle([]byte(`wheel-step = 55`), nil)
	if err != nil {
		t.Fatalf("LoadStyle: %v", err)
	}
	if st.WheelStep != 55 {
		t.Errorf("WheelStep = %v, want 55", st.WheelStep)
	}
	if st.MinEntryWidth != DefaultStyle().MinEntryWidth {
		t.Error("nil base should overlay DefaultStyle")
	}
}

func TestLoadStyleBadDocument(t *testing.T) {
	if _, err := LoadStyle([]byte(`panel-color = "notacolor"`), nil); err == nil {
		t.Error("expected error for an invalid color value")
	}
	if _, err := LoadStyle([]byte(`close-mode = "maybe"`), nil); err == nil {
		t.Error("expected error for an unknown close mode")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{1, 0, 0, 1}, false},
		{"#00ff0080", Color{0, 1, 0, 128.0 / 255.0}, false},
		{"#000000", Color{0, 0, 0, 1}, false},
		{"ff0000", Color{}, true},
		{"#ff00", Color{}, true},
		{"#zzzzzz", Color{}, true},
	}
	for _, tt := range tests {
		var c Color
		err := parseHexColor(tt.in, &c)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseHexColor(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseHexColor(%q): %v", tt.in, err)
			continue
		}
		if c != tt.want {
			t.Errorf("parseHexColor(%q) = %v, want %v", tt.in, c, tt.want)
		}
	}
}

func TestParseEnumCaseAndSpace(t *testing.T) {
	var a TextAlign
	if err := a.UnmarshalText([]byte(" Right ")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if a != TextAlignRight {
		t.Errorf("align = %v, want right", a)
	}
	if err := a.UnmarshalText([]byte("diagonal")); err == nil {
		t.Error("expected error for unknown keyword")
	}
}

func TestStyleFallbacks(t *testing.T) {
	st := testStyle()
	if st.titleFont() != st.EntryFont {
		t.Error("titleFont should fall back to EntryFont")
	}
	other := fakeFont{advance: 20, height: 24}
	st.TitleFont = other
	if st.titleFont() != Font(other) {
		t.Error("titleFont should prefer TitleFont when set")
	}

	st.SeparatorHeight = 0
	if st.separatorHeight() != 1 {
		t.Errorf("separatorHeight floor = %v, want 1", st.separatorHeight())
	}

	// Arrow measured as text when no icon is set.
	w, h := st.arrowSize()
	if w != 10 || h != 12 {
		t.Errorf("arrowSize = (%v, %v), want (10, 12)", w, h)
	}
}
