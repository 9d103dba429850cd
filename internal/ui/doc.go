// Package ui contains the Bubble Tea program that renders a menu bar with
// cascading popups and feeds pointer and keyboard input into a
// hover.Controller.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are
//     routed through a typed handler registry so each tea.Msg is handled by
//     a focused function.
//   - Mouse motion becomes HoverEnter/HoverLeave, left clicks become
//     Click/Activate/HandleClickAway and terminal focus loss becomes Blur
//     (internal/ui/input.go). Keys move a per-level cursor and drive the
//     same controller operations (internal/ui/navigation.go).
//   - Submenus below the bar open after a short delay. Each pending open
//     carries a sequence number; any later input bumps the sequence so the
//     stale tick is ignored.
//
// State ownership:
//   - Which branches are open lives only in the controller. After every
//     update the model rebuilds its internal/ui/state.Level stack from the
//     controller's open path, keeping cursors for levels that survived.
//   - The layout computed after each update records where the bar and
//     popups were drawn; pointer events are hit-tested against it.
//
// Side effects:
//   - Leaf activation is handed to the internal/ui/command bus, which runs
//     the navigator off the event loop and reports a command.Result.
//   - A backend.Watcher streams reloaded menu trees and label catalogs. The
//     data/dispatcher package hands trees to the controller; the model
//     installs catalogs and closes the menu when labels change.
package ui
