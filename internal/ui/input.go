package ui

import (
	"time"

	"github.com/atomicstack/hovermenu/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

// openDelayMsg opens a hovered submenu once the pointer has rested on it.
// Messages whose seq is behind the model's are stale and dropped.
type openDelayMsg struct {
	seq    int
	level  int
	id     string
	anchor Anchor
}

// cancelPendingOpen invalidates any scheduled open.
func (m *Model) cancelPendingOpen() {
	m.openSeq++
}

func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	switch {
	case ev.Action == tea.MouseActionMotion:
		return m.handlePointerMove(ev.X, ev.Y)
	case ev.Action == tea.MouseActionPress && ev.Button == tea.MouseButtonLeft:
		events.Input.Click(ev.X, ev.Y, m.layout.contains(ev.X, ev.Y))
		return m.handlePointerClick(ev.X, ev.Y)
	}
	return nil
}

func (m *Model) handlePointerMove(x, y int) tea.Cmd {
	if !m.layout.contains(x, y) {
		m.hovered = ""
		if m.pointerInside {
			m.pointerInside = false
			m.cancelPendingOpen()
			m.ctrl.HoverLeave(0)
		}
		return nil
	}
	m.pointerInside = true
	r, ok := m.layout.hit(x, y)
	if !ok {
		m.hovered = ""
		return nil
	}
	if r.key() == m.hovered {
		return nil
	}
	m.hovered = r.key()
	return m.hoverItem(r)
}

// hoverItem applies a hover-enter on r. Branches below the bar open after
// the configured delay; everything else applies immediately.
func (m *Model) hoverItem(r region) tea.Cmd {
	m.cancelPendingOpen()
	anchor := m.anchorFor(r.level, r.index)
	if r.branch && r.level > 0 && m.openDelay > 0 && !m.ctrl.IsOpen(r.level, r.id) {
		seq := m.openSeq
		m.moveFocus(r.level, r.index)
		return tea.Tick(m.openDelay, func(time.Time) tea.Msg {
			return openDelayMsg{seq: seq, level: r.level, id: r.id, anchor: anchor}
		})
	}
	m.ctrl.HoverEnter(r.level, r.id, anchor)
	m.moveFocus(r.level, r.index)
	return nil
}

func (m *Model) handleOpenDelayMsg(msg tea.Msg) tea.Cmd {
	pending, ok := msg.(openDelayMsg)
	if !ok || pending.seq != m.openSeq {
		return nil
	}
	m.ctrl.HoverEnter(pending.level, pending.id, pending.anchor)
	return nil
}

func (m *Model) handlePointerClick(x, y int) tea.Cmd {
	m.cancelPendingOpen()
	r, ok := m.layout.hit(x, y)
	if !ok {
		if !m.layout.contains(x, y) {
			m.ctrl.HandleClickAway()
		}
		return nil
	}
	anchor := m.anchorFor(r.level, r.index)
	if r.level == 0 && r.branch {
		m.ctrl.Click(r.id, anchor)
	} else {
		m.ctrl.Activate(r.level, r.id, anchor)
	}
	if m.ctrl.Depth() > 0 {
		m.moveFocus(r.level, r.index)
	}
	return nil
}

func (m *Model) handleBlurMsg(tea.Msg) tea.Cmd {
	events.Input.Blur()
	m.cancelPendingOpen()
	m.pointerInside = false
	m.hovered = ""
	m.ctrl.Blur()
	return nil
}

// moveFocus puts the keyboard cursor on item index of level. Levels beyond
// the current stack are picked up once the stack is synced.
func (m *Model) moveFocus(depth, index int) {
	m.focus = depth
	if lvl := m.levelAt(depth); lvl != nil {
		lvl.MoveCursorTo(index)
		lvl.ResetQuery()
	}
}
