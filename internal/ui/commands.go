package ui

import (
	"fmt"

	"github.com/atomicstack/hovermenu/internal/hover"
	"github.com/atomicstack/hovermenu/internal/logging"
	"github.com/atomicstack/hovermenu/internal/menu"
	"github.com/atomicstack/hovermenu/internal/navigate"
	"github.com/atomicstack/hovermenu/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// handleActivation queues navigation for a chosen leaf. The controller has
// already closed the menu.
func (m *Model) handleActivation(act hover.Activation) {
	label := menu.Key(act.Path...)
	if node, ok := m.ctrl.Tree().Node(act.Path...); ok {
		label = m.tr.Label(node.DisplayLabel())
	}
	target := navigate.Resolve(act.Link, m.locale)
	m.errMsg = ""
	m.status = fmt.Sprintf("Opening %s…", label)
	m.queued = append(m.queued, m.bus.Execute(command.Request{
		ID:     menu.Key(act.Path...),
		Label:  label,
		Target: target,
	}))
}

// handleFocusReturn moves keyboard focus back to the bar item the menu was
// opened from.
func (m *Model) handleFocusReturn(a hover.Anchor) {
	m.focus = 0
	anchor, ok := a.(Anchor)
	if !ok || anchor.Level != 0 {
		return
	}
	if bar := m.levelAt(0); bar != nil {
		bar.MoveCursorTo(anchor.Index)
	}
}

func (m *Model) handleNavigationResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.status = ""
		m.errMsg = fmt.Sprintf("%s: %v", result.Label, result.Err)
		logging.Error(result.Err)
		return nil
	}
	m.chosen = append(m.chosen, result)
	m.status = fmt.Sprintf("%s → %s", result.Label, result.Target)
	return tea.Quit
}
