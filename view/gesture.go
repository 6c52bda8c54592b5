package view

// Gesture decides which host pointer events reach the view. A drag only
// belongs to the view when its primary press did; presses the host UI
// consumed never turn into moves.
type Gesture struct {
	active bool
}

// Accept reports whether ev should be passed to View.HandlePointer. overUI
// is true when the host UI sits under the pointer.
func (g *Gesture) Accept(ev PointerEvent, overUI bool) bool {
	switch ev.Kind {
	case Press:
		if ev.Button == ButtonPrimary {
			g.active = !overUI
		}
		return !overUI
	case Move:
		if ev.Held&ButtonPrimary == 0 {
			g.active = false
		}
		return g.active
	case Release:
		if ev.Button != ButtonPrimary {
			return true
		}
		accepted := g.active
		g.active = false
		return accepted
	}
	return false
}

// Active reports whether a drag that started on the view is in progress.
func (g *Gesture) Active() bool { return g.active }
