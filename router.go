package briar

// The router ties entry widgets back to stack operations. Every interactive
// entry gets the same two callbacks — routeEnter and routeClick — with a
// binding stored in the widget's UserData identifying the item and panel it
// belongs to. All menu behavior flows through the two dispatch functions
// below; the widgets themselves know nothing about menus.

type bindingKind uint8

const (
	bindAction bindingKind = iota
	bindSubmenu
	bindBack
)

type binding struct {
	kind  bindingKind
	item  *Item
	panel *Panel
}

// wirePanel installs routing callbacks on every interactive entry of a
// freshly pushed panel. Disabled entries were already made non-interactive
// by the layout builder and get no callbacks.
func (s *Session) wirePanel(p *Panel) {
	for it, w := range p.entries {
		if !w.Interactable {
			continue
		}
		var kind bindingKind
		switch it.Kind {
		case KindMenu:
			kind = bindSubmenu
		case KindBack:
			kind = bindBack
		default:
			kind = bindAction
		}
		w.UserData = binding{kind: kind, item: it, panel: p}
		w.OnPointerEnter = s.routeEnter
		w.OnClick = s.routeClick
	}
}

func (s *Session) routeEnter(ctx PointerContext) {
	if b, ok := ctx.UserData.(binding); ok {
		s.dispatchEnter(b, ctx.Widget)
	}
}

func (s *Session) routeClick(ctx ClickContext) {
	if b, ok := ctx.UserData.(binding); ok {
		s.dispatchClick(b, ctx.Widget)
	}
}

// dispatchEnter handles hover: the hovered entry highlights, and the stack
// collapses or cascades so that the hovered entry's submenu chain is exactly
// what is open.
func (s *Session) dispatchEnter(b binding, entry *Widget) {
	if s.destroyed {
		return
	}
	b.panel.highlight(b.item)

	if b.kind == bindSubmenu {
		// Already open somewhere deeper? Collapse to it and keep it.
		if s.PopTo(b.item, true) {
			return
		}
		// Otherwise collapse to the hovered entry's own panel and cascade.
		s.PopTo(b.panel.Item, false)
		if s.destroyed {
			return
		}
		s.PushSubmenu(b.panel, b.item, entry.WorldRect())
		return
	}

	// Hovering an action or go-back entry retracts any deeper submenus.
	s.PopTo(b.panel.Item, false)
}

// dispatchClick handles selection. Actions run their callback and end the
// session; go-back retracts two levels; clicking a submenu entry opens it
// the same way hovering does.
func (s *Session) dispatchClick(b binding, entry *Widget) {
	if s.destroyed {
		return
	}
	switch b.kind {
	case bindAction:
		if b.item.OnSelect != nil {
			b.item.OnSelect()
		}
		s.fireAction(b.item)
		s.Destroy()

	case bindBack:
		if b.item.OnSelect != nil {
			b.item.OnSelect()
		}
		if b.panel.Parent != nil {
			// Retract two levels: collapse until the invoking panel's parent
			// is on top, then pop that too. Going back out of the first
			// submenu therefore closes the whole session.
			if s.PopTo(b.panel.Parent.Item, false) {
				s.PopTop()
			}
		} else {
			// Go-back on the root panel closes the session.
			s.PopTop()
		}

	case bindSubmenu:
		s.dispatchEnter(b, entry)
	}
}

// highlight sets the hovered entry to the highlighted state and every other
// interactive entry back to normal, so exactly one entry per panel glows.
func (p *Panel) highlight(target *Item) {
	for it, w := range p.entries {
		if !w.Interactable {
			continue
		}
		if it == target {
			w.SetState(StateHighlighted)
		} else {
			w.SetState(StateNormal)
		}
	}
}
