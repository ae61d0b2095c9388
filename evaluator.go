package marquee

// markSelected re-evaluates every selectable against the current selection
// box and emits selecting / unselecting notifications for each element
// whose state flips. No selectable is skipped: elements selected earlier
// must be released when the box shrinks or moves away.
func (i *instance) markSelected() {
	s := i.session
	offset := s.scroller.ScrollOffset()
	for k := len(s.selectables) - 1; k >= 0; k-- {
		sel := &s.selectables[k]
		if Overlap(s.rect, sel.rect.Translate(offset)) {
			if !sel.selected {
				sel.element.AddClass(ClassSelected)
				sel.selected = true
				i.emit(Event{Type: EventSelecting, Element: sel.element})
			}
		} else if sel.selected {
			sel.element.RemoveClass(ClassSelected)
			sel.selected = false
			i.emit(Event{Type: EventUnselecting, Element: sel.element})
		}
	}
}
