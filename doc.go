// Package briar is a cascading context-menu engine for [Ebitengine].
//
// Briar turns a declarative tree of menu items into interactive dropdown and
// context menus: hovering a submenu entry cascades a child panel beside it,
// panels flip sides and fall back to screen edges when space runs out, and a
// menu taller than the screen becomes a clipped, scrollable column.
//
// # Quick start
//
// Describe the menu once with a [Builder], then open sessions from it as
// often as needed:
//
//	font, _ := briar.LoadTTFFont(ttfData, 14)
//	style := briar.DefaultStyle()
//	style.EntryFont = font
//
//	menu := briar.NewMenu("File").
//		Action("New", onNew).
//		ActionOpts("Save", onSave, briar.ActionOpts{Shortcut: "Ctrl+S"}).
//		Separator().
//		Menu("Recent").
//			Action("a.txt", openA).
//		End().
//		Action("Quit", onQuit).
//		Build()
//
//	session := briar.Open(stage, menu, briar.PointRect(mx, my),
//		briar.OpenOptions{Style: style})
//
// The host drives a [Stage] from its [ebiten.Game]:
//
//	func (g *Game) Update() error        { g.stage.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.stage.Draw(s) }
//
// # Sessions
//
// An open menu is a [Session]: a modal scrim that captures outside clicks
// plus a stack of [Panel] values, one per open menu level. Hover routing,
// submenu cascading, and panel placement are automatic; hosts observe the
// session through [OpenOptions] hooks or an [EventSink]. Keep one
// [Exclusive] per screen when only a single menu may be open at a time.
//
// # Widgets
//
// Menus render through briar's small retained widget tree ([Widget],
// [Stage]). The tree is public: hosts can add their own plates, labels,
// images, and scrolling viewports alongside menus, or embed a Stage purely
// as a menu surface over an existing renderer.
//
// Everything is single-threaded: call Update and Draw from the game loop
// and make all API calls from the same goroutine.
//
// [Ebitengine]: https://ebitengine.org
package briar
