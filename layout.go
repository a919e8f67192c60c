package briar

import (
	"log"
	"math"
)

// Panel is one open menu level: the widgets built from a menu Item's
// children, plus the drop shadow behind them. Panels are created by a Session
// when a menu opens or a submenu cascades, and destroyed when popped.
type Panel struct {
	Item   *Item  // the menu item this panel presents
	Parent *Panel // nil for the root panel

	body     *Widget // panel plate; everything else is parented under it
	shadow   *Widget // sibling plate behind the body
	content  *Widget // container holding the entry widgets
	viewport *Widget // non-nil in scroll mode
	track    *Widget // scrollbar track, non-nil in scroll mode

	entries  map[*Item]*Widget // item -> entry plate, keyed by pointer identity
	backItem *Item             // synthesized go-back entry, nil when not injected

	width, height float64 // panel size (body and shadow)
	contentH      float64 // entry stack height including outer padding
	titleH        float64 // title block height, 0 when no title
	hasScroll     bool
}

// Body returns the panel's body widget (for positioning queries).
func (p *Panel) Body() *Widget { return p.body }

// Size returns the panel's current size.
func (p *Panel) Size() (w, h float64) { return p.width, p.height }

// HasScroll reports whether the panel runs in scroll mode.
func (p *Panel) HasScroll() bool { return p.hasScroll }

// EntryWidget returns the entry plate built for the given item, or nil when
// the item is not an entry of this panel. The injected go-back entry is
// reachable through BackItem.
func (p *Panel) EntryWidget(it *Item) *Widget { return p.entries[it] }

// BackItem returns the synthesized go-back item, or nil when none was injected.
func (p *Panel) BackItem() *Item { return p.backItem }

// destroy disposes the panel's widgets and releases entry references.
func (p *Panel) destroy() {
	p.shadow.Dispose()
	p.body.Dispose()
	p.entries = nil
	p.content = nil
	p.viewport = nil
	p.track = nil
}

// entryRow holds the measured extents of one entry during the layout pass.
type entryRow struct {
	it             *Item
	labelW, labelH float64
	shortW, shortH float64
	iconW, iconH   float64
	arrowW, arrowH float64
	height         float64
	sep            bool
	skip           bool
}

// buildPanel measures a menu's children and constructs the panel widgets.
//
// The layout is column-based: all icons left-align to one column, all labels
// to the next, with the submenu arrow and shortcut columns right-aligned.
// Column widths are the running maxima over the entries; the label column is
// rounded up a pixel so fractional glyph advances never clip the widest label.
func buildPanel(st *Style, item *Item, injectBack, showTitle bool) *Panel {
	if item == nil {
		panic("briar: cannot build a panel for a nil item")
	}
	if item.Kind != KindMenu || item.children == nil {
		panic("briar: panel item " + item.Label + " is not a menu")
	}

	p := &Panel{Item: item, entries: make(map[*Item]*Widget)}

	children := item.children
	if injectBack {
		p.backItem = &Item{Kind: KindBack, Label: st.BackText, Icon: st.BackIcon}
		children = append([]*Item{p.backItem}, children...)
	}

	// Measure pass.
	rows := make([]entryRow, 0, len(children))
	var maxIcon, maxLabel, maxShort, maxArrow float64
	for _, it := range children {
		switch it.Kind {
		case KindSeparator:
			rows = append(rows, entryRow{
				it: it, sep: true,
				height: st.separatorHeight() + 2*st.SeparatorPadding,
			})

		case KindAction, KindMenu, KindBack:
			r := entryRow{it: it}
			r.labelW, r.labelH = st.EntryFont.MeasureString(it.Label)
			if it.Shortcut != "" {
				r.shortW, r.shortH = st.EntryFont.MeasureString(it.Shortcut)
			}
			if it.Icon != nil {
				b := it.Icon.Bounds()
				r.iconW, r.iconH = float64(b.Dx()), float64(b.Dy())
			}
			if it.Kind == KindMenu {
				r.arrowW, r.arrowH = st.arrowSize()
			}
			r.height = max(r.labelH, r.iconH, r.arrowH, st.MinEntryHeight) + 2*st.EntryPadding
			maxIcon = max(maxIcon, r.iconW)
			maxLabel = max(maxLabel, r.labelW)
			maxShort = max(maxShort, r.shortW)
			maxArrow = max(maxArrow, r.arrowW)
			rows = append(rows, r)

		default:
			log.Printf("briar: menu %q: skipping entry %q with unknown kind %d",
				item.Label, it.Label, it.Kind)
			rows = append(rows, entryRow{it: it, skip: true})
		}
	}

	// Column offsets, left to right.
	labelCol := 0.0
	if maxLabel > 0 {
		labelCol = math.Ceil(maxLabel) + 1
	}
	width := st.OuterPadding
	iconColX := width
	if maxIcon > 0 {
		width += maxIcon + st.IconTextGap
	}
	labelColX := width
	width += labelCol
	if maxArrow > 0 {
		width += st.TextArrowGap + maxArrow
	}
	if maxShort > 0 {
		width += st.TextShortcutGap + maxShort
	}
	width += st.OuterPadding

	// Title block.
	titleFont := st.titleFont()
	var titleW, titleTextH float64
	if showTitle && item.Label != "" {
		titleW, titleTextH = titleFont.MeasureString(item.Label)
		p.titleH = titleTextH + 2*st.TitlePadding
	}
	width = max(width, st.MinEntryWidth, titleW+2*st.TitlePadding)

	// Right-aligned columns resolve against the final width.
	shortcutX := width - st.OuterPadding - maxShort
	arrowX := width - st.OuterPadding - maxArrow
	if maxShort > 0 {
		arrowX -= maxShort + st.TextShortcutGap
	}

	body := NewPlate("menu-panel:"+item.Label, 0, 0, st.PanelColor)
	body.Interactable = true
	shadow := NewPlate("menu-shadow:"+item.Label, 0, 0, st.ShadowColor)
	content := NewContainer("menu-entries:" + item.Label)
	content.Interactable = true

	if p.titleH > 0 {
		title := NewLabel("menu-title:"+item.Label, item.Label, titleFont)
		title.Color = st.TitleColor
		title.SetPosition(st.TitlePadding, st.TitlePadding)
		body.AddChild(title)
	}

	// Entry pass.
	y := st.OuterPadding
	first := true
	for i := range rows {
		r := &rows[i]
		if r.skip {
			continue
		}
		if !first {
			y += st.EntrySpacing
		}
		first = false

		if r.sep {
			sep := NewPlate("menu-separator",
				width-2*st.SeparatorPadding, st.separatorHeight(), st.SeparatorColor)
			sep.SetPosition(st.SeparatorPadding, y+st.SeparatorPadding)
			content.AddChild(sep)
			y += r.height
			continue
		}

		it := r.it
		plate := NewPlate("menu-entry:"+it.Label, width, r.height, st.EntryFill)
		plate.SetStateColors(st.EntryFill, st.HighlightFill, st.PressedFill, st.DisabledFill)
		plate.Interactable = true
		plate.SetPosition(0, y)

		if it.Icon != nil {
			icon := NewImage("menu-icon:"+it.Label, it.Icon)
			icon.SetPosition(iconColX, (r.height-r.iconH)/2)
			plate.AddChild(icon)
		}

		label := NewLabel("menu-label:"+it.Label, it.Label, st.EntryFont)
		label.Color = entryTextColor(st, it)
		label.Align = effectiveAlign(st, it)
		label.Width = labelCol
		label.SetPosition(labelColX, (r.height-r.labelH)/2)
		plate.AddChild(label)

		if it.Shortcut != "" {
			short := NewLabel("menu-shortcut:"+it.Label, it.Shortcut, st.EntryFont)
			short.Color = st.ShortcutColor
			short.Align = TextAlignRight
			short.Width = maxShort
			short.SetPosition(shortcutX, (r.height-r.shortH)/2)
			plate.AddChild(short)
		}

		if it.Kind == KindMenu {
			var arrow *Widget
			if st.ArrowIcon != nil {
				arrow = NewImage("menu-arrow:"+it.Label, st.ArrowIcon)
			} else if st.ArrowText != "" {
				arrow = NewLabel("menu-arrow:"+it.Label, st.ArrowText, st.EntryFont)
				arrow.Color = entryTextColor(st, it)
			}
			if arrow != nil {
				arrow.SetPosition(arrowX, (r.height-r.arrowH)/2)
				plate.AddChild(arrow)
			}
		}

		if it.Disabled() {
			plate.SetState(StateDisabled)
		}

		content.AddChild(plate)
		p.entries[it] = plate
		y += r.height
	}
	y += st.OuterPadding
	p.contentH = y

	content.SetPosition(0, p.titleH)
	body.AddChild(content)

	p.width = width
	p.height = p.titleH + y
	body.SetSize(p.width, p.height)
	shadow.SetSize(p.width, p.height)

	p.body = body
	p.shadow = shadow
	p.content = content
	return p
}

// enableScroll converts the panel to scroll mode: the body grows to the full
// screen height plus a scrollbar gutter, and the entry stack moves into a
// clipping viewport. The title (when present) stays fixed above the viewport.
func (p *Panel) enableScroll(st *Style, screenH float64) {
	viewH := screenH - p.titleH

	vp := NewViewport("menu-viewport:"+p.Item.Label, p.width, viewH)
	vp.SetPosition(0, p.titleH)
	vp.SetWheelStep(st.WheelStep)

	p.body.RemoveChild(p.content)
	p.content.SetPosition(0, 0)
	vp.Content().AddChild(p.content)
	vp.SetContentHeight(p.contentH)
	p.body.AddChild(vp)

	p.width += st.ScrollbarWidth
	p.height = screenH
	p.body.SetSize(p.width, p.height)
	p.shadow.SetSize(p.width, p.height)

	track := newScrollbar(vp, st.ScrollbarWidth, viewH, st.ScrollTrackColor, st.ScrollThumbColor)
	track.SetPosition(p.width-st.ScrollbarWidth, p.titleH)
	p.body.AddChild(track)

	p.viewport = vp
	p.track = track
	p.hasScroll = true
}

// entryTextColor picks the label color: an explicit per-item color wins over
// the selected color, which wins over the normal entry color.
func entryTextColor(st *Style, it *Item) Color {
	switch {
	case it.Colored():
		return it.Color
	case it.Selected():
		return st.SelectedTextColor
	default:
		return st.EntryTextColor
	}
}

// effectiveAlign resolves an entry's text alignment. Left is the zero value,
// so items that never set an alignment follow the style default.
func effectiveAlign(st *Style, it *Item) TextAlign {
	if it.Align == TextAlignLeft {
		return st.DefaultAlign
	}
	return it.Align
}
