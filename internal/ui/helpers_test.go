package ui

import (
	"testing"

	"github.com/atomicstack/hovermenu/internal/menu"
	"github.com/atomicstack/hovermenu/internal/navigate"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newTestModel(t *testing.T, opts Options) (*Model, *navigate.Recorder) {
	t.Helper()
	rec := &navigate.Recorder{}
	if opts.Tree == nil {
		opts.Tree = menu.Default()
	}
	if opts.Locale == "" {
		opts.Locale = "en"
	}
	if opts.Width == 0 {
		opts.Width = 100
	}
	if opts.Height == 0 {
		opts.Height = 20
	}
	opts.Navigator = rec
	return NewModel(opts), rec
}

func barRegion(t *testing.T, m *Model, id string) region {
	t.Helper()
	for _, r := range m.layout.bar {
		if r.id == id {
			return r
		}
	}
	t.Fatalf("bar item %q not laid out", id)
	return region{}
}

func itemRegion(t *testing.T, m *Model, level int, id string) region {
	t.Helper()
	for _, r := range m.layout.items {
		if r.level == level && r.id == id {
			return r
		}
	}
	t.Fatalf("item %q at level %d not laid out", id, level)
	return region{}
}

func hoverOver(r region) tea.MouseMsg {
	return tea.MouseMsg{X: r.x, Y: r.y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func hoverAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func clickOn(r region) tea.MouseMsg {
	return clickAt(r.x, r.y)
}

func clickAt(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func plainView(h *Harness) string {
	return ansi.Strip(h.View())
}

// drain runs cmd and every command it yields, returning the leaf messages.
func drain(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, drain(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func blurMsg() tea.Msg {
	return tea.BlurMsg{}
}
