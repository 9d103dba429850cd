package state

// MoveCursorHome moves the cursor to the first item.
func (l *Level) MoveCursorHome() bool {
	return l.place(0)
}

// MoveCursorEnd moves the cursor to the last item.
func (l *Level) MoveCursorEnd() bool {
	return l.place(len(l.Items) - 1)
}

// MoveCursorNext moves to the following item. Menus wrap, so the last item
// is followed by the first.
func (l *Level) MoveCursorNext() bool {
	return l.step(1)
}

// MoveCursorPrev moves to the preceding item, wrapping to the last.
func (l *Level) MoveCursorPrev() bool {
	return l.step(-1)
}

// MoveCursorTo places the cursor on idx. Out of range indexes are ignored
// and the pending type-ahead query is kept.
func (l *Level) MoveCursorTo(idx int) bool {
	if idx < 0 || idx >= len(l.Items) {
		return false
	}
	old := l.Cursor
	l.Cursor = idx
	return old != idx
}

func (l *Level) step(delta int) bool {
	n := len(l.Items)
	if n == 0 {
		return l.place(0)
	}
	return l.place(((l.Cursor+delta)%n + n) % n)
}

// place moves the cursor and drops the type-ahead query. Empty levels pin the
// cursor to zero and report no movement.
func (l *Level) place(idx int) bool {
	if len(l.Items) == 0 {
		l.Cursor = 0
		return false
	}
	old := l.Cursor
	l.Cursor = clamp(idx, 0, len(l.Items)-1)
	l.Query = ""
	return old != l.Cursor
}

// EnsureCursorVisible scrolls the viewport of a popup showing at most
// visible rows so the cursor row is on screen.
func (l *Level) EnsureCursorVisible(visible int) {
	n := len(l.Items)
	if n == 0 {
		l.Cursor, l.ViewportOffset = 0, 0
		return
	}
	l.Cursor = clamp(l.Cursor, 0, n-1)
	if visible <= 0 || visible >= n {
		l.ViewportOffset = 0
		return
	}
	offset := clamp(l.ViewportOffset, 0, n-visible)
	switch {
	case l.Cursor < offset:
		offset = l.Cursor
	case l.Cursor >= offset+visible:
		offset = l.Cursor - visible + 1
	}
	l.ViewportOffset = offset
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
