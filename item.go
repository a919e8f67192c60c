package briar

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// ItemKind distinguishes the four kinds of menu tree entries.
type ItemKind uint8

const (
	KindMenu      ItemKind = iota // has children; hovering cascades a submenu
	KindAction                    // runs OnSelect and closes the session
	KindSeparator                 // thin horizontal rule, not interactive
	KindBack                      // retracts this menu and its invoker panel
)

// ItemFlags is a bitset of per-item presentation flags.
type ItemFlags uint8

const (
	FlagSelected     ItemFlags = 1 << iota // drawn with the style's selected text color
	FlagDisabled                           // visible but not interactive
	FlagColored                            // use Item.Color for the text (wins over FlagSelected)
	FlagCenterScroll                       // in scroll mode, center the selected child
)

// Item is one logical menu tree entry. A tree of Items is built once by the
// caller — normally through a Builder — and is immutable afterwards. It is
// owned by the caller, outlives any single menu session, and may be reused
// across multiple opens. Panels reference Items by pointer identity.
type Item struct {
	Kind     ItemKind
	Label    string
	Shortcut string        // right-aligned hint text, e.g. "Ctrl+S"
	Icon     *ebiten.Image // optional, drawn left of the label
	Color    Color         // text color when FlagColored is set
	Align    TextAlign
	Flags    ItemFlags
	OnSelect func() // Action and Back only

	children []*Item // non-nil iff Kind == KindMenu
}

// Children returns the item's child list. Non-nil (possibly empty) for
// KindMenu, nil for every other kind. MUST NOT be mutated by the caller.
func (it *Item) Children() []*Item {
	return it.children
}

// Selected reports whether FlagSelected is set.
func (it *Item) Selected() bool { return it.Flags&FlagSelected != 0 }

// Disabled reports whether FlagDisabled is set.
func (it *Item) Disabled() bool { return it.Flags&FlagDisabled != 0 }

// Colored reports whether FlagColored is set.
func (it *Item) Colored() bool { return it.Flags&FlagColored != 0 }

// CenterScroll reports whether FlagCenterScroll is set.
func (it *Item) CenterScroll() bool { return it.Flags&FlagCenterScroll != 0 }

// --- Builder ---

// ActionOpts carries the optional presentation fields for an action entry.
type ActionOpts struct {
	Icon     *ebiten.Image
	Shortcut string
	Color    Color // text color; only applied when Colored is true
	Colored  bool
	Selected bool
	Disabled bool
	Align    TextAlign
}

func (o ActionOpts) flags() ItemFlags {
	var f ItemFlags
	if o.Selected {
		f |= FlagSelected
	}
	if o.Disabled {
		f |= FlagDisabled
	}
	if o.Colored {
		f |= FlagColored
	}
	return f
}

// Builder constructs an Item tree without manual parent/child wiring. Calls
// chain; Menu pushes a submenu that subsequent entries are added to, End pops
// back to its parent.
//
//	root := briar.NewMenu("File").
//		Action("New", onNew).
//		ActionOpts("Open…", onOpen, briar.ActionOpts{Shortcut: "Ctrl+O"}).
//		Separator().
//		Menu("Recent").
//			Action("a.txt", openA).
//			Action("b.txt", openB).
//		End().
//		Action("Quit", onQuit).
//		Build()
type Builder struct {
	root  *Item
	stack []*Item
}

// NewMenu starts a builder with a root menu carrying the given label
// (shown as the panel title when titles are enabled).
func NewMenu(label string) *Builder {
	root := &Item{Kind: KindMenu, Label: label, children: []*Item{}}
	return &Builder{root: root, stack: []*Item{root}}
}

func (b *Builder) top() *Item {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) add(it *Item) {
	t := b.top()
	t.children = append(t.children, it)
}

// Menu adds a submenu entry and makes it the target for subsequent calls
// until the matching End.
func (b *Builder) Menu(label string) *Builder {
	m := &Item{Kind: KindMenu, Label: label, children: []*Item{}}
	b.add(m)
	b.stack = append(b.stack, m)
	return b
}

// End closes the submenu opened by the matching Menu call.
// Panics when called at the root level.
func (b *Builder) End() *Builder {
	if len(b.stack) == 1 {
		panic("briar: Builder.End without a matching Menu")
	}
	b.stack[len(b.stack)-1] = nil
	b.stack = b.stack[:len(b.stack)-1]
	return b
}

// Action adds an action entry that runs onSelect when clicked.
func (b *Builder) Action(label string, onSelect func()) *Builder {
	b.add(&Item{Kind: KindAction, Label: label, OnSelect: onSelect})
	return b
}

// ActionOpts adds an action entry with icon/shortcut/color/flag options.
func (b *Builder) ActionOpts(label string, onSelect func(), opts ActionOpts) *Builder {
	b.add(&Item{
		Kind:     KindAction,
		Label:    label,
		Shortcut: opts.Shortcut,
		Icon:     opts.Icon,
		Color:    opts.Color,
		Align:    opts.Align,
		Flags:    opts.flags(),
		OnSelect: onSelect,
	})
	return b
}

// Separator adds a non-interactive horizontal rule.
func (b *Builder) Separator() *Builder {
	b.add(&Item{Kind: KindSeparator})
	return b
}

// Back adds an explicit go-back entry. Sessions normally inject one per
// submenu automatically (see Style.InjectBackEntries); an explicit entry is
// for menus that want a custom label or an extra onSelect side effect.
func (b *Builder) Back(label string, onSelect func()) *Builder {
	b.add(&Item{Kind: KindBack, Label: label, OnSelect: onSelect})
	return b
}

// Build returns the finished root item. Submenus left open are simply
// complete as built; Build may be called at any nesting depth.
func (b *Builder) Build() *Item {
	return b.root
}
