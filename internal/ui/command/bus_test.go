package command

import (
	"context"
	"errors"
	"testing"

	"github.com/atomicstack/hovermenu/internal/navigate"
)

func TestExecuteRunsNavigator(t *testing.T) {
	var got string
	bus := New(context.Background(), navigate.Func(func(_ context.Context, target string) error {
		got = target
		return nil
	}))
	cmd := bus.Execute(Request{ID: "tickets:sell", Label: "Sell ticket", Target: "/en/profile#sell"})
	if got != "" {
		t.Fatalf("expected navigation to be deferred until the command runs")
	}
	msg := cmd()
	result, ok := msg.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", msg)
	}
	if result.Err != nil || result.ID != "tickets:sell" || got != "/en/profile#sell" {
		t.Fatalf("unexpected result %#v (navigated to %q)", result, got)
	}
}

func TestExecuteReportsNavigatorError(t *testing.T) {
	boom := errors.New("boom")
	bus := New(nil, navigate.Func(func(context.Context, string) error { return boom }))
	result := bus.Execute(Request{ID: "x", Target: "/x"})().(Result)
	if !errors.Is(result.Err, boom) {
		t.Fatalf("expected navigator error, got %v", result.Err)
	}
}

func TestExecuteWithoutNavigator(t *testing.T) {
	result := New(context.Background(), nil).Execute(Request{ID: "x"})().(Result)
	if !errors.Is(result.Err, ErrNoNavigator) {
		t.Fatalf("expected ErrNoNavigator, got %v", result.Err)
	}
}
