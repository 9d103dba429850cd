package ui

import (
	"github.com/atomicstack/hovermenu/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	events.Input.Key(keyMsg.String())
	m.cancelPendingOpen()
	switch {
	case key.Matches(keyMsg, m.keys.Quit) && (keyMsg.Type == tea.KeyCtrlC || m.ctrl.Depth() == 0):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Left):
		m.handleLeftKey()
	case key.Matches(keyMsg, m.keys.Right):
		m.handleRightKey()
	case key.Matches(keyMsg, m.keys.Up):
		if lvl := m.focusedLevel(); lvl != nil && m.focus > 0 {
			lvl.MoveCursorPrev()
		}
	case key.Matches(keyMsg, m.keys.Down):
		m.handleDownKey()
	case key.Matches(keyMsg, m.keys.Open):
		m.handleEnterKey()
	case key.Matches(keyMsg, m.keys.Close):
		return m.handleEscapeKey()
	case key.Matches(keyMsg, m.keys.Home):
		if lvl := m.focusedLevel(); lvl != nil && lvl.MoveCursorHome() {
			m.followBarCursor()
		}
	case key.Matches(keyMsg, m.keys.End):
		if lvl := m.focusedLevel(); lvl != nil && lvl.MoveCursorEnd() {
			m.followBarCursor()
		}
	case keyMsg.Type == tea.KeyRunes:
		m.handleTypeAhead(string(keyMsg.Runes))
	}
	return nil
}

func (m *Model) handleLeftKey() {
	if m.focus == 0 {
		if bar := m.levelAt(0); bar != nil && bar.MoveCursorPrev() {
			m.followBarCursor()
		}
		return
	}
	closing := m.focus
	m.focus = closing - 1
	m.ctrl.CloseBranch(closing - 1)
}

func (m *Model) handleRightKey() {
	if m.focus == 0 {
		if bar := m.levelAt(0); bar != nil && bar.MoveCursorNext() {
			m.followBarCursor()
		}
		return
	}
	lvl := m.focusedLevel()
	item, ok := lvl.Current()
	if !ok || !item.Branch {
		return
	}
	m.openInto(m.focus, lvl.Cursor, item.ID)
}

func (m *Model) handleDownKey() {
	lvl := m.focusedLevel()
	if lvl == nil {
		return
	}
	if m.focus > 0 {
		lvl.MoveCursorNext()
		return
	}
	item, ok := lvl.Current()
	if !ok || !item.Branch {
		return
	}
	m.openInto(0, lvl.Cursor, item.ID)
}

func (m *Model) handleEnterKey() {
	lvl := m.focusedLevel()
	if lvl == nil {
		return
	}
	item, ok := lvl.Current()
	if !ok {
		return
	}
	anchor := m.anchorFor(m.focus, lvl.Cursor)
	if m.focus == 0 && item.Branch {
		m.ctrl.Click(item.ID, anchor)
		if m.ctrl.IsOpen(0, item.ID) {
			m.focus = 1
		}
		return
	}
	depth := m.focus
	m.ctrl.Activate(depth, item.ID, anchor)
	if item.Branch && m.ctrl.IsOpen(depth, item.ID) {
		m.focus = depth + 1
	}
}

// handleEscapeKey closes the deepest open popup, or quits when nothing is
// open.
func (m *Model) handleEscapeKey() tea.Cmd {
	depth := m.ctrl.Depth()
	if depth == 0 {
		return tea.Quit
	}
	m.ctrl.CloseBranch(depth - 1)
	if m.focus > depth-1 {
		m.focus = depth - 1
	}
	m.errMsg = ""
	return nil
}

func (m *Model) handleTypeAhead(text string) {
	lvl := m.focusedLevel()
	if lvl == nil {
		return
	}
	idx := lvl.TypeAhead(text)
	events.Input.TypeAhead(m.focus, lvl.Query, idx)
	if idx >= 0 {
		m.followBarCursor()
	}
}

// openInto opens the branch at index of depth and moves focus into it.
func (m *Model) openInto(depth, index int, nodeID string) {
	m.ctrl.OpenBranch(depth, nodeID, m.anchorFor(depth, index))
	if m.ctrl.IsOpen(depth, nodeID) {
		m.focus = depth + 1
	}
}

// followBarCursor keeps an open menu on the bar item under the keyboard
// cursor. A leaf under the cursor closes the menu.
func (m *Model) followBarCursor() {
	if m.focus != 0 || m.ctrl.Depth() == 0 {
		return
	}
	bar := m.levelAt(0)
	item, ok := bar.Current()
	if !ok {
		return
	}
	idx := bar.Cursor
	if item.Branch {
		m.ctrl.OpenBranch(0, item.ID, m.anchorFor(0, idx))
		return
	}
	m.ctrl.CloseAll()
	bar.MoveCursorTo(idx)
}
