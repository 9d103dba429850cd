package state

import "strings"

// Level holds the keyboard state of one rendered menu level: the menu bar at
// depth zero and one popup per open branch below it.
type Level struct {
	Depth          int
	Path           []string
	Items          []Item
	Cursor         int
	Query          string
	ViewportOffset int
}

// NewLevel constructs a Level for the items under path.
func NewLevel(depth int, path []string, items []Item) *Level {
	l := &Level{
		Depth: depth,
		Path:  append([]string(nil), path...),
	}
	l.UpdateItems(items)
	return l
}

// Key identifies the level by the branch path it renders.
func (l *Level) Key() string {
	return strings.Join(l.Path, ":")
}

// IndexOf returns the index for a given item identifier.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// Current returns the item under the cursor.
func (l *Level) Current() (Item, bool) {
	if l == nil || l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return Item{}, false
	}
	return l.Items[l.Cursor], true
}

// UpdateItems refreshes the level items, keeping the cursor on the same id
// when it is still present.
func (l *Level) UpdateItems(items []Item) {
	selected := ""
	if item, ok := l.Current(); ok {
		selected = item.ID
	}
	l.Items = CloneItems(items)
	l.Query = ""
	if idx := l.IndexOf(selected); idx >= 0 {
		l.Cursor = idx
	}
	if len(l.Items) == 0 {
		l.Cursor = 0
		l.ViewportOffset = 0
		return
	}
	if l.Cursor < 0 {
		l.Cursor = 0
	}
	if l.Cursor >= len(l.Items) {
		l.Cursor = len(l.Items) - 1
	}
	if l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}
