package command

import (
	"context"
	"errors"

	"github.com/atomicstack/hovermenu/internal/logging/events"
	"github.com/atomicstack/hovermenu/internal/navigate"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoNavigator is reported when a leaf is activated without a navigator.
var ErrNoNavigator = errors.New("no navigator configured")

// Request encapsulates a leaf activation.
type Request struct {
	ID     string
	Label  string
	Target string
}

// Result is delivered to the model once navigation has run.
type Result struct {
	ID     string
	Label  string
	Target string
	Err    error
}

// Bus runs navigation for activated leaves off the event loop.
type Bus struct {
	ctx       context.Context
	navigator navigate.Navigator
}

// New initialises a command bus that hands targets to navigator.
func New(ctx context.Context, navigator navigate.Navigator) *Bus {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Bus{ctx: ctx, navigator: navigator}
}

// Execute wraps a navigation into a Bubble Tea command while emitting trace
// logs.
func (b *Bus) Execute(req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Target)
	return func() tea.Msg {
		if b == nil || b.navigator == nil {
			events.Command.Skip(req.ID, req.Target)
			return Result{ID: req.ID, Label: req.Label, Target: req.Target, Err: ErrNoNavigator}
		}
		err := b.navigator.Navigate(b.ctx, req.Target)
		events.Command.Result(req.ID, req.Target, err)
		return Result{ID: req.ID, Label: req.Label, Target: req.Target, Err: err}
	}
}
