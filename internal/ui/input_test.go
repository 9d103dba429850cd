package ui

import (
	"testing"
	"time"
)

func TestHoverRootOpensDropdownUnderItem(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	tickets := barRegion(t, m, "tickets")
	h.Send(hoverOver(tickets))

	if !m.Controller().IsOpen(0, "tickets") {
		t.Fatalf("expected hover to open tickets")
	}
	p, ok := m.layout.popup(1)
	if !ok {
		t.Fatalf("expected a popup for the open root")
	}
	if p.x != tickets.x || p.y != 1 {
		t.Fatalf("expected popup at (%d,1), got (%d,%d)", tickets.x, p.x, p.y)
	}
}

func TestHoverSiblingRootSwitchesDropdown(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Send(hoverOver(barRegion(t, m, "tickets")))
	h.Send(hoverOver(barRegion(t, m, "account")))

	if got := m.Controller().OpenIDs(); !equalIDs(got, []string{"account"}) {
		t.Fatalf("expected only account open, got %v", got)
	}
}

func TestHoverNestedBranchOpensAfterDelay(t *testing.T) {
	m, _ := newTestModel(t, Options{OpenDelay: 5 * time.Millisecond})
	h := NewHarness(m)

	h.Send(hoverOver(barRegion(t, m, "explore")))
	events := itemRegion(t, m, 1, "events")
	h.Send(hoverOver(events))

	if !m.Controller().IsOpen(1, "events") {
		t.Fatalf("expected events to open once the delay elapsed")
	}
	parent, _ := m.layout.popup(1)
	child, ok := m.layout.popup(2)
	if !ok {
		t.Fatalf("expected nested popup")
	}
	if child.x != parent.x+parent.width || child.y != events.y {
		t.Fatalf("expected nested popup beside events at (%d,%d), got (%d,%d)",
			parent.x+parent.width, events.y, child.x, child.y)
	}
}

func TestStaleOpenDelayIsDropped(t *testing.T) {
	m, _ := newTestModel(t, Options{OpenDelay: 5 * time.Millisecond})

	m.Update(hoverOver(barRegion(t, m, "explore")))
	_, pending := m.Update(hoverOver(itemRegion(t, m, 1, "events")))
	if pending == nil {
		t.Fatalf("expected a scheduled open")
	}
	if m.Controller().IsOpen(1, "events") {
		t.Fatalf("expected events to stay closed until the delay elapses")
	}

	m.Update(hoverOver(itemRegion(t, m, 1, "about")))
	for _, msg := range drain(pending) {
		m.Update(msg)
	}
	if m.Controller().IsOpen(1, "events") {
		t.Fatalf("expected stale open to be discarded after moving to a sibling")
	}
	if got := m.Controller().OpenIDs(); !equalIDs(got, []string{"explore"}) {
		t.Fatalf("expected explore to stay open, got %v", got)
	}
}

func TestBlurCancelsPendingOpen(t *testing.T) {
	m, _ := newTestModel(t, Options{OpenDelay: 5 * time.Millisecond})

	m.Update(hoverOver(barRegion(t, m, "explore")))
	_, pending := m.Update(hoverOver(itemRegion(t, m, 1, "events")))
	m.Update(blurMsg())
	for _, msg := range drain(pending) {
		m.Update(msg)
	}
	if m.Controller().Depth() != 0 {
		t.Fatalf("expected blur to close the menu and drop the pending open, got %v", m.Controller().OpenIDs())
	}
}

func TestLeafHoverClosesSiblingSubtreeOnly(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Send(hoverOver(barRegion(t, m, "explore")))
	h.Send(hoverOver(itemRegion(t, m, 1, "events")))
	h.Send(hoverOver(itemRegion(t, m, 2, "sports")))
	if got := m.Controller().OpenIDs(); !equalIDs(got, []string{"explore", "events", "sports"}) {
		t.Fatalf("expected three open levels, got %v", got)
	}

	h.Send(hoverOver(itemRegion(t, m, 2, "concerts")))
	if got := m.Controller().OpenIDs(); !equalIDs(got, []string{"explore", "events"}) {
		t.Fatalf("expected sports closed with ancestors kept, got %v", got)
	}
}

func TestPointerLeavingMenuClosesEverything(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Send(hoverOver(barRegion(t, m, "explore")))
	h.Send(hoverOver(itemRegion(t, m, 1, "events")))
	h.Send(hoverAt(99, 15))

	if m.Controller().Depth() != 0 {
		t.Fatalf("expected leaving the menu to close it, got %v", m.Controller().OpenIDs())
	}
}

func TestPointerOverBlankBarKeepsMenuOpen(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Send(hoverOver(barRegion(t, m, "tickets")))
	h.Send(hoverAt(95, 0))

	if !m.Controller().IsOpen(0, "tickets") {
		t.Fatalf("expected blank bar space to count as inside the menu")
	}
}

func TestClickRootTogglesAndReturnsFocus(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)
	tickets := barRegion(t, m, "tickets")

	h.Send(clickOn(tickets))
	if !m.Controller().IsOpen(0, "tickets") {
		t.Fatalf("expected click to open tickets")
	}
	h.Send(clickOn(tickets))
	if m.Controller().Depth() != 0 {
		t.Fatalf("expected second click to close tickets")
	}
	if m.focus != 0 || m.levels[0].Cursor != tickets.index {
		t.Fatalf("expected focus back on tickets, got focus %d cursor %d", m.focus, m.levels[0].Cursor)
	}
}

func TestClickAwayClosesMenu(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Send(clickOn(barRegion(t, m, "account")))
	h.Send(clickAt(90, 12))

	if m.Controller().Depth() != 0 {
		t.Fatalf("expected click away to close the menu")
	}
}

func TestClickLeafNavigates(t *testing.T) {
	m, rec := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Send(clickOn(barRegion(t, m, "tickets")))
	h.Send(clickOn(itemRegion(t, m, 1, "sell")))

	if got := rec.Targets(); !equalIDs(got, []string{"/en/profile#sell"}) {
		t.Fatalf("unexpected navigation targets %v", got)
	}
	if !h.Quit() {
		t.Fatalf("expected successful navigation to quit")
	}
	if m.Controller().Depth() != 0 {
		t.Fatalf("expected activation to close the menu")
	}
	chosen := m.Chosen()
	if len(chosen) != 1 || chosen[0].ID != "tickets:sell" || chosen[0].Label != "Sell ticket" {
		t.Fatalf("unexpected chosen results %#v", chosen)
	}
}

func TestClickBarLeafNavigates(t *testing.T) {
	m, rec := newTestModel(t, Options{Locale: "de"})
	h := NewHarness(m)

	h.Send(clickOn(barRegion(t, m, "home")))
	if got := rec.Targets(); !equalIDs(got, []string{"/de"}) {
		t.Fatalf("unexpected navigation targets %v", got)
	}
}

func TestClickNestedBranchOpensWithoutToggling(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Send(clickOn(barRegion(t, m, "explore")))
	events := itemRegion(t, m, 1, "events")
	h.Send(clickOn(events))
	h.Send(clickOn(events))

	if !m.Controller().IsOpen(1, "events") {
		t.Fatalf("expected repeated clicks on a nested branch to keep it open")
	}
}

func TestBlurClosesMenu(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	h := NewHarness(m)

	h.Send(clickOn(barRegion(t, m, "account")))
	h.Send(blurMsg())

	if m.Controller().Depth() != 0 {
		t.Fatalf("expected blur to close the menu")
	}
}
