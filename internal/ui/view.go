package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View represents a screen or major UI region with its own model, update, and view.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// TextCapturer is implemented by views that sometimes need raw key input
// (a focused text box). While CapturesText is true the app skips leader
// and single-key bindings so typed characters reach the view.
type TextCapturer interface {
	CapturesText() bool
}
