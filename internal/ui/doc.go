// Package ui hosts the terminal front end built on Bubble Tea.
//
// Core abstractions:
//   - View: a screen with its own model, update and view (Elm-style)
//   - AppModel: root model switching between the lookup and course views
//   - KeybindRegistry/KeyHandler: spacemacs-style leader key bindings
//   - FocusManager: rotates focus between regions of a view
//   - OverlayStack: modal views drawn over the current view
//
// Network calls never run inside Update. A view returns a tea.Cmd that
// performs the call and reports back with a message, which Update then
// commits through the lookup state machine.
package ui
