package ui

import (
	"fmt"

	"github.com/atomicstack/hovermenu/internal/format/table"
	uistate "github.com/atomicstack/hovermenu/internal/ui/state"
	"github.com/charmbracelet/x/ansi"
)

const (
	branchMarker  = "▾"
	branchChevron = "›"
)

// region is the clickable extent of one rendered item.
type region struct {
	level  int
	index  int
	id     string
	branch bool
	x      int
	y      int
	width  int
}

func (r region) key() string {
	return fmt.Sprintf("%d:%d:%s", r.level, r.index, r.id)
}

func (r region) covers(x, y int) bool {
	return y == r.y && x >= r.x && x < r.x+r.width
}

// popupBox is one open popup as placed on screen.
type popupBox struct {
	level  int
	x      int
	y      int
	width  int
	offset int
	rows   []string
}

func (p popupBox) covers(x, y int) bool {
	return y >= p.y && y < p.y+len(p.rows) && x >= p.x && x < p.x+p.width
}

// layout records where the bar and popups were drawn so pointer events can
// be mapped back to items.
type layout struct {
	title  string
	bar    []region
	popups []popupBox
	items  []region
	rows   int
}

// contains reports whether a cell lies inside the menu: the bar row or any
// open popup.
func (l layout) contains(x, y int) bool {
	if y == 0 {
		return true
	}
	for _, p := range l.popups {
		if p.covers(x, y) {
			return true
		}
	}
	return false
}

// hit returns the item under a cell. Deeper popups are drawn last and win
// where popups overlap.
func (l layout) hit(x, y int) (region, bool) {
	if y == 0 {
		for _, r := range l.bar {
			if r.covers(x, y) {
				return r, true
			}
		}
		return region{}, false
	}
	for i := len(l.items) - 1; i >= 0; i-- {
		if l.items[i].covers(x, y) {
			return l.items[i], true
		}
	}
	return region{}, false
}

func (l layout) popup(level int) (popupBox, bool) {
	for _, p := range l.popups {
		if p.level == level {
			return p, true
		}
	}
	return popupBox{}, false
}

func barItemText(item uistate.Item) string {
	if item.Branch {
		return " " + item.Label + " " + branchMarker + " "
	}
	return " " + item.Label + " "
}

func titleText(title string) string {
	if title == "" {
		return ""
	}
	return " " + title + " "
}

// bodyLimit is the first row below the popup area, or 0 when the height is
// unknown.
func (m *Model) bodyLimit() int {
	if m.height <= 0 {
		return 0
	}
	reserved := 1
	if m.showFooter {
		reserved++
	}
	limit := m.height - reserved
	if limit < 2 {
		limit = 2
	}
	return limit
}

func (m *Model) computeLayout() layout {
	l := layout{title: titleText(m.ctrl.Tree().Title())}
	x := ansi.StringWidth(l.title)
	if bar := m.levelAt(0); bar != nil {
		for i, item := range bar.Items {
			w := ansi.StringWidth(barItemText(item))
			l.bar = append(l.bar, region{level: 0, index: i, id: item.ID, branch: item.Branch, x: x, width: w})
			x += w
		}
	}

	limit := m.bodyLimit()
	path := m.ctrl.OpenIDs()
	for depth := 1; depth < len(m.levels); depth++ {
		lvl := m.levels[depth]
		if len(lvl.Items) == 0 {
			continue
		}
		anchor := m.popupAnchor(l, depth, path)
		box := popupBox{level: depth, x: anchor.X, y: anchor.Y}

		items := lvl.Items
		if limit > 0 {
			if visible := limit - 1; len(items) > visible {
				lvl.EnsureCursorVisible(visible)
				box.offset = lvl.ViewportOffset
				items = items[box.offset : box.offset+visible]
			}
		}
		cells := make([][]string, len(items))
		for i, item := range items {
			chevron := ""
			if item.Branch {
				chevron = branchChevron
			}
			cells[i] = []string{item.Label, chevron}
		}
		maxInner := 0
		if m.width > 2 {
			maxInner = m.width - 2
		}
		for _, row := range table.FormatWidth(cells, []table.Alignment{table.AlignLeft, table.AlignRight}, maxInner) {
			box.rows = append(box.rows, " "+row+" ")
		}
		box.width = ansi.StringWidth(box.rows[0])

		if m.width > 0 && box.x+box.width > m.width {
			box.x = m.width - box.width
		}
		if box.x < 0 {
			box.x = 0
		}
		if limit > 0 && box.y+len(box.rows) > limit {
			box.y = limit - len(box.rows)
		}
		if box.y < 1 {
			box.y = 1
		}

		for i, item := range items {
			l.items = append(l.items, region{
				level:  depth,
				index:  box.offset + i,
				id:     item.ID,
				branch: item.Branch,
				x:      box.x,
				y:      box.y + i,
				width:  box.width,
			})
		}
		l.popups = append(l.popups, box)
		if bottom := box.y + len(box.rows); bottom > l.rows {
			l.rows = bottom
		}
	}
	return l
}

// popupAnchor returns where the popup at depth opens: the anchor stored with
// its branch, or one derived from the layout built so far.
func (m *Model) popupAnchor(l layout, depth int, path []string) Anchor {
	if stored, ok := m.ctrl.AnchorFor(depth - 1); ok {
		if a, ok := stored.(Anchor); ok {
			return a
		}
	}
	index := 0
	if parent := m.levelAt(depth - 1); parent != nil && depth-1 < len(path) {
		if idx := parent.IndexOf(path[depth-1]); idx >= 0 {
			index = idx
		}
	}
	return anchorIn(l, depth-1, index)
}

// anchorFor derives the anchor of item index at depth from the current
// layout.
func (m *Model) anchorFor(depth, index int) Anchor {
	return anchorIn(m.layout, depth, index)
}

func anchorIn(l layout, depth, index int) Anchor {
	a := Anchor{Level: depth, Index: index, Y: 1}
	if depth == 0 {
		if index >= 0 && index < len(l.bar) {
			a.X = l.bar[index].x
		}
		return a
	}
	if p, ok := l.popup(depth); ok {
		a.X = p.x + p.width
		a.Y = p.y + index - p.offset
	}
	return a
}
