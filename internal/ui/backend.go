package ui

import (
	"fmt"

	"github.com/atomicstack/hovermenu/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent swaps in a reloaded tree or catalog. Failed reloads keep
// the current menu and surface the error in the status line.
func (m *Model) applyBackendEvent(evt backend.Event) {
	res := m.dispatch.Handle(evt)
	if res.Err != nil {
		m.errMsg = res.Err.Error()
		return
	}
	switch {
	case res.TreeUpdated:
		m.cancelPendingOpen()
		m.levels = nil
		m.focus = 0
		m.hovered = ""
	case res.LabelsUpdated:
		m.cancelPendingOpen()
		m.ctrl.CloseAll()
		m.catalog = res.Catalog
		m.tr = res.Catalog.Translator(m.locale)
		m.itemsDirty = true
		m.hovered = ""
	default:
		return
	}
	m.errMsg = ""
	m.status = fmt.Sprintf("Reloaded %s", evt.Kind)
}
