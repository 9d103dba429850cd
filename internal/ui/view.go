package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	breadcrumbSeparator = " › "
	resetSGR            = "\x1b[0m"
)

// View implements tea.Model.
func (m *Model) View() string {
	rows := []string{m.renderBar()}

	bodyRows := m.layout.rows - 1
	if limit := m.bodyLimit(); limit > 0 {
		bodyRows = limit - 1
	}
	if bodyRows < 0 {
		bodyRows = 0
	}
	body := make([]string, bodyRows)
	for _, p := range m.layout.popups {
		for i := range p.rows {
			row := p.y - 1 + i
			if row < 0 || row >= len(body) {
				continue
			}
			body[row] = overlay(body[row], m.renderPopupRow(p, i), p.x)
		}
	}
	rows = append(rows, body...)

	rows = append(rows, m.renderStatus())
	if m.showFooter {
		rows = append(rows, styles.Footer.Render(m.help.View(m.keys)))
	}
	return strings.Join(m.fitWidth(rows), "\n")
}

func (m *Model) renderBar() string {
	var b strings.Builder
	if m.layout.title != "" {
		b.WriteString(styles.Title.Render(m.layout.title))
	}
	bar := m.levelAt(0)
	for i, r := range m.layout.bar {
		if bar == nil || i >= len(bar.Items) {
			break
		}
		item := bar.Items[i]
		style := styles.BarItem
		switch {
		case m.focus == 0 && bar.Cursor == i:
			style = styles.BarItemFocused
		case m.ctrl.IsOpen(0, r.id):
			style = styles.BarItemOpen
		case item.Current:
			style = styles.Current
		}
		b.WriteString(style.Render(barItemText(item)))
	}
	line := b.String()
	if pad := m.width - ansi.StringWidth(line); m.width > 0 && pad > 0 {
		line += styles.Bar.Render(strings.Repeat(" ", pad))
	}
	return line
}

func (m *Model) renderPopupRow(p popupBox, i int) string {
	lvl := m.levelAt(p.level)
	idx := p.offset + i
	style := styles.PopupItem
	if lvl != nil && idx < len(lvl.Items) {
		item := lvl.Items[idx]
		switch {
		case m.focus == p.level && lvl.Cursor == idx:
			style = styles.PopupItemFocused
		case item.Branch && m.ctrl.IsOpen(p.level, item.ID):
			style = styles.PopupItemOpen
		case item.Current:
			style = styles.Current
		}
	}
	return style.Render(p.rows[i])
}

func (m *Model) renderStatus() string {
	switch {
	case m.errMsg != "":
		return styles.Error.Render("Error: " + m.errMsg)
	case m.status != "":
		return styles.Status.Render(m.status)
	}
	if crumb := m.breadcrumb(); crumb != "" {
		return styles.Status.Render(crumb)
	}
	return ""
}

// breadcrumb joins the labels of the open path.
func (m *Model) breadcrumb() string {
	segments := m.breadcrumbSegments()
	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, breadcrumbSeparator)
}

func (m *Model) breadcrumbSegments() []string {
	path := m.ctrl.OpenIDs()
	segments := make([]string, 0, len(path))
	for depth := range path {
		node, ok := m.ctrl.ActiveNode(depth)
		if !ok {
			break
		}
		segments = append(segments, m.tr.Label(node.DisplayLabel()))
	}
	return segments
}

func (m *Model) fitWidth(rows []string) []string {
	if m.width <= 0 {
		return rows
	}
	for i, row := range rows {
		if ansi.StringWidth(row) > m.width {
			rows[i] = ansi.Truncate(row, m.width, "")
		}
	}
	return rows
}

// overlay draws seg over base starting at column x. Cells of base covered
// by seg are replaced; base is padded when it is shorter than x.
func overlay(base, seg string, x int) string {
	baseWidth := ansi.StringWidth(base)
	if baseWidth < x {
		base += strings.Repeat(" ", x-baseWidth)
		baseWidth = x
	}
	var b strings.Builder
	if x > 0 {
		b.WriteString(ansi.Truncate(base, x, ""))
	}
	b.WriteString(resetSGR)
	b.WriteString(seg)
	b.WriteString(resetSGR)
	if end := x + lipgloss.Width(seg); end < baseWidth {
		b.WriteString(ansi.TruncateLeft(base, end, ""))
	}
	return b.String()
}
