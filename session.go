package briar

// MenuEventKind labels the lifecycle events a session emits to an EventSink.
type MenuEventKind uint8

const (
	MenuEventOpened  MenuEventKind = iota // session opened (root panel shown)
	MenuEventClosed                       // session destroyed
	MenuEventAction                       // an action entry was selected; Item set
	MenuEventSubmenu                      // a submenu panel was pushed; Item set
)

// MenuEvent is one session lifecycle notification. Item is nil except for
// MenuEventAction and MenuEventSubmenu. An action selected by clicking the
// scrim (closing without choosing) reports MenuEventAction with a nil Item.
type MenuEvent struct {
	Kind MenuEventKind
	Item *Item
}

// EventSink receives session lifecycle events, e.g. to bridge menu activity
// into an ECS event bus. All calls happen synchronously on the update tick.
type EventSink interface {
	EmitMenuEvent(MenuEvent)
}

// TitleMode is a per-open override for panel title visibility.
type TitleMode uint8

const (
	TitleDefault TitleMode = iota // follow Style.ShowTitles
	TitleShow
	TitleHide
)

// OpenOptions configures a session at open time. The zero value opens with
// DefaultStyle (which still needs an EntryFont), growing right, titles per
// the style, and no hooks.
type OpenOptions struct {
	Style *Style
	Grow  GrowDirection
	Title TitleMode

	// Sink, when set, receives every MenuEvent the session emits.
	Sink EventSink

	// OnSessionStarted fires once, after the root panel has been placed and
	// before Open returns.
	OnSessionStarted func(*Session)

	// OnSessionEnded fires once when the session is destroyed, whatever the
	// cause: action selected, all panels popped, outside close, or an
	// explicit Destroy call.
	OnSessionEnded func()

	// OnActionSelected fires when an action entry is clicked, after the
	// item's own OnSelect. A nil item means the session was closed by
	// clicking outside the panels.
	OnActionSelected func(*Item)

	// OnSubmenuOpened fires after a submenu panel is pushed.
	OnSubmenuOpened func(*Session, *Panel)

	// OnModalCreated fires once with the modal scrim widget, before the root
	// panel is placed. Hosts use it to restyle or reparent the scrim.
	OnModalCreated func(*Widget)
}

// Session is one open cascading menu: a modal scrim, a stack of panels, and
// the routing state that ties hover and click to stack operations. Create
// sessions with Open; a destroyed session is inert and every method on it is
// a safe no-op.
type Session struct {
	stage *Stage
	style *Style
	modal *Widget
	stack []*Panel

	grow       GrowDirection
	showTitles bool
	destroyed  bool

	sink      EventSink
	onEnded   []func()
	onAction  []func(*Item)
	onSubmenu []func(*Session, *Panel)
}

// Open shows a menu session for the given root item. The hotspot is the
// screen rectangle of whatever invoked the menu (a button's bounds, or a
// PointRect at the click position); the root panel drops below it.
//
// Panics on a nil stage, a nil or non-menu root, or an invalid style —
// these are caller configuration errors.
func Open(stage *Stage, root *Item, hotspot Rect, opts OpenOptions) *Session {
	if stage == nil {
		panic("briar: Open requires a stage")
	}
	if root == nil {
		panic("briar: Open requires a root item")
	}
	if root.Kind != KindMenu || root.children == nil {
		panic("briar: root item " + root.Label + " is not a menu")
	}
	style := opts.Style
	if style == nil {
		style = DefaultStyle()
	}
	if err := style.Validate(); err != nil {
		panic(err)
	}

	s := &Session{
		stage: stage,
		style: style,
		grow:  opts.Grow,
		sink:  opts.Sink,
	}
	switch opts.Title {
	case TitleShow:
		s.showTitles = true
	case TitleHide:
		s.showTitles = false
	default:
		s.showTitles = style.ShowTitles
	}
	if opts.OnSessionEnded != nil {
		s.onEnded = append(s.onEnded, opts.OnSessionEnded)
	}
	if opts.OnActionSelected != nil {
		s.onAction = append(s.onAction, opts.OnActionSelected)
	}
	if opts.OnSubmenuOpened != nil {
		s.onSubmenu = append(s.onSubmenu, opts.OnSubmenuOpened)
	}

	scrim := style.ScrimColor
	if !style.ScrimVisible {
		scrim = ColorTransparent
	}
	w, h := stage.Size()
	modal := NewPlate("menu-modal", w, h, scrim)
	modal.Interactable = true
	switch style.CloseMode {
	case CloseOnClick:
		modal.OnClick = func(ClickContext) { s.closeFromOutside() }
	default:
		modal.OnPointerDown = func(PointerContext) { s.closeFromOutside() }
	}
	stage.Root().AddChild(modal)
	s.modal = modal
	if opts.OnModalCreated != nil {
		opts.OnModalCreated(modal)
	}

	s.push(nil, root, hotspot, dropDirectives(s.grow), hotspot.Bottom())
	s.emit(MenuEvent{Kind: MenuEventOpened})
	if opts.OnSessionStarted != nil {
		opts.OnSessionStarted(s)
	}
	return s
}

// --- Hook registration (post-open) ---

// OnSessionEnded registers an additional end-of-session hook.
func (s *Session) OnSessionEnded(fn func()) { s.onEnded = append(s.onEnded, fn) }

// OnActionSelected registers an additional action hook.
func (s *Session) OnActionSelected(fn func(*Item)) { s.onAction = append(s.onAction, fn) }

// OnSubmenuOpened registers an additional submenu hook.
func (s *Session) OnSubmenuOpened(fn func(*Session, *Panel)) {
	s.onSubmenu = append(s.onSubmenu, fn)
}

// --- Accessors ---

// IsDestroyed reports whether the session has been torn down.
func (s *Session) IsDestroyed() bool { return s.destroyed }

// Depth returns the number of open panels.
func (s *Session) Depth() int { return len(s.stack) }

// Top returns the deepest open panel, or nil when the session is destroyed.
func (s *Session) Top() *Panel {
	if len(s.stack) == 0 {
		return nil
	}
	return s.stack[len(s.stack)-1]
}

// Modal returns the session's scrim widget (nil after destruction).
func (s *Session) Modal() *Widget {
	if s.destroyed {
		return nil
	}
	return s.modal
}

// Style returns the style the session renders with.
func (s *Session) Style() *Style { return s.style }

// Grow returns the session's current grow direction. It may differ from the
// direction the session opened with if placement ran out of room on one side.
func (s *Session) Grow() GrowDirection { return s.grow }

// --- Stack operations ---

// push builds, places, and wires a panel, then appends it to the stack.
// top is the Y coordinate the panel's top edge aims for.
func (s *Session) push(parent *Panel, item *Item, hotspot Rect, directives []Directive, top float64) *Panel {
	screen := s.stage.Bounds()
	injectBack := s.style.InjectBackEntries && parent != nil

	p := buildPanel(s.style, item, injectBack, s.showTitles)
	p.Parent = parent

	x := resolveHorizontal(p.width, hotspot, screen, &s.grow, directives)
	y, scrollMode := resolveVertical(top, p.height, screen)
	if scrollMode {
		p.enableScroll(s.style, screen.Height)
		s.centerSelected(p)
		y = screen.Y
	}
	x = clampHorizontal(x, p.width, screen)

	s.modal.AddChild(p.shadow)
	s.modal.AddChild(p.body)
	p.body.SetPosition(x, y)
	p.shadow.SetPosition(x+s.style.ShadowOffset, y+s.style.ShadowOffset)

	s.stack = append(s.stack, p)
	s.restackShadows()
	s.wirePanel(p)
	return p
}

// PushSubmenu opens item as a new panel cascading from the given hotspot
// (typically the screen rectangle of the parent entry). The hover router
// calls this; hosts may also call it to pre-open a path programmatically.
func (s *Session) PushSubmenu(parent *Panel, item *Item, hotspot Rect) *Panel {
	if s.destroyed {
		return nil
	}
	if item == nil || item.Kind != KindMenu || item.children == nil {
		panic("briar: PushSubmenu requires a menu item")
	}
	p := s.push(parent, item, hotspot, cascadeDirectives(s.grow), hotspot.Y)
	for _, fn := range s.onSubmenu {
		fn(s, p)
	}
	s.emit(MenuEvent{Kind: MenuEventSubmenu, Item: item})
	return p
}

// PopTop removes and destroys the deepest panel. Popping the last panel
// destroys the whole session. Returns the popped panel, or nil when the
// session is already destroyed.
func (s *Session) PopTop() *Panel {
	if s.destroyed || len(s.stack) == 0 {
		return nil
	}
	p := s.stack[len(s.stack)-1]
	s.stack[len(s.stack)-1] = nil
	s.stack = s.stack[:len(s.stack)-1]
	p.destroy()
	if len(s.stack) == 0 {
		s.Destroy()
	}
	return p
}

// PopTo pops panels until the panel presenting target is on top. With
// checkFirst the stack is scanned up front and left untouched when target is
// not open (all-or-nothing); without it, panels pop until target surfaces or
// the stack is exhausted (which destroys the session). Returns whether target
// ended up on top.
func (s *Session) PopTo(target *Item, checkFirst bool) bool {
	if s.destroyed {
		return false
	}
	if checkFirst {
		found := false
		for _, p := range s.stack {
			if p.Item == target {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for len(s.stack) > 0 {
		if s.stack[len(s.stack)-1].Item == target {
			return true
		}
		s.PopTop()
		if s.destroyed {
			return false
		}
	}
	return false
}

// PopToDepth pops panels until at most depth remain. PopToDepth(0) destroys
// the session.
func (s *Session) PopToDepth(depth int) {
	for !s.destroyed && len(s.stack) > depth {
		s.PopTop()
	}
}

// Destroy tears the session down: hooks fire once, the modal scrim and every
// panel are disposed, and the session becomes inert. Safe to call repeatedly
// and safe to call from inside hooks and item callbacks.
func (s *Session) Destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	for _, fn := range s.onEnded {
		fn()
	}
	s.emit(MenuEvent{Kind: MenuEventClosed})
	for _, p := range s.stack {
		p.entries = nil
	}
	s.stack = nil
	// Disposing the modal transitively disposes every remaining panel widget.
	s.modal.Dispose()
}

// --- Internals ---

// closeFromOutside handles a scrim press/click: the session closes without a
// selection, reported as an action with a nil item.
func (s *Session) closeFromOutside() {
	if s.destroyed {
		return
	}
	s.fireAction(nil)
	s.Destroy()
}

func (s *Session) fireAction(it *Item) {
	for _, fn := range s.onAction {
		fn(it)
	}
	s.emit(MenuEvent{Kind: MenuEventAction, Item: it})
}

func (s *Session) emit(evt MenuEvent) {
	if s.sink != nil {
		s.sink.EmitMenuEvent(evt)
	}
}

// restackShadows reorders the modal's children so that every shadow sits
// below every body: shadows in stack order first, then bodies in stack order.
// A deep stack therefore never drops a shadow onto its own panel.
func (s *Session) restackShadows() {
	idx := 0
	for _, p := range s.stack {
		s.modal.SetChildIndex(p.shadow, idx)
		idx++
	}
	for _, p := range s.stack {
		s.modal.SetChildIndex(p.body, idx)
		idx++
	}
}

// centerSelected scrolls a scroll-mode panel so its single selected entry is
// roughly centered, when the panel's item opts in via FlagCenterScroll.
func (s *Session) centerSelected(p *Panel) {
	if !p.hasScroll || !p.Item.CenterScroll() {
		return
	}
	var sel *Item
	for _, it := range p.Item.children {
		if it.Selected() {
			if sel != nil {
				// Ambiguous: more than one selected entry.
				debugWarnf("menu %q: multiple selected entries, skipping centered scroll",
					p.Item.Label)
				return
			}
			sel = it
		}
	}
	if sel == nil {
		return
	}
	w := p.entries[sel]
	if w == nil {
		return
	}
	pos, needed := centeredScroll(w.Y, w.Height, p.viewport.Height, p.viewport.ScrollRange())
	if needed {
		p.viewport.SetScroll(pos)
	}
}

// --- Exclusive ---

// Exclusive is a one-at-a-time session holder: opening a menu through it
// first destroys whichever session it already holds. Typical hosts keep one
// Exclusive per screen so a new context menu replaces the previous one.
type Exclusive struct {
	current *Session
}

// Open destroys the current session (if any) and opens a new one.
func (e *Exclusive) Open(stage *Stage, root *Item, hotspot Rect, opts OpenOptions) *Session {
	if e.current != nil && !e.current.IsDestroyed() {
		e.current.Destroy()
	}
	e.current = Open(stage, root, hotspot, opts)
	return e.current
}

// Current returns the held session, or nil when none is open.
func (e *Exclusive) Current() *Session {
	if e.current == nil || e.current.IsDestroyed() {
		return nil
	}
	return e.current
}

// Close destroys the held session, if any.
func (e *Exclusive) Close() {
	if e.current != nil {
		e.current.Destroy()
		e.current = nil
	}
}
