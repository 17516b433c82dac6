package ui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// helpRows is the number of bindings per column in the help overlay.
const helpRows = 4

// HelpModal lists every key binding available in a mode.
type HelpModal struct {
	mode     AppMode
	bindings []key.Binding
}

// Ensure HelpModal implements View.
var _ View = (*HelpModal)(nil)

// NewHelpModal snapshots the registry's bindings for mode.
func NewHelpModal(reg *KeybindRegistry, mode AppMode) *HelpModal {
	return &HelpModal{mode: mode, bindings: toBindings(reg.All(mode))}
}

// Init implements View.
func (m *HelpModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *HelpModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "enter", "q", "?":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *HelpModal) View() string {
	var columns [][]key.Binding
	for col := range slices.Chunk(m.bindings, helpRows) {
		columns = append(columns, col)
	}
	body := Styles.Title.Render("Keys: "+m.mode.Title()) + "\n\n" +
		newHelpModel().FullHelpView(columns) + "\n\n" +
		Styles.Hint.Render("Esc: close")
	return Styles.BoxCompact.Render(body)
}
