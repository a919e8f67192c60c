package briar

import "log"

// globalDebug mirrors the most recently set Stage debug flag so that widget
// operations (which lack a Stage pointer) can check it cheaply. Only valid
// with a single Stage; multiple Stages with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool

// debugCheckDisposed panics when a disposed widget is used in a tree
// operation. Catching use-after-dispose early beats chasing a panel that
// silently stopped drawing.
func debugCheckDisposed(w *Widget, op string) {
	if w != nil && w.disposed {
		panic("briar: " + op + " on disposed widget " + w.Name)
	}
}

// debugWarnf logs a warning to stderr when debug mode is enabled.
func debugWarnf(format string, args ...any) {
	if globalDebug {
		log.Printf("briar: "+format, args...)
	}
}
