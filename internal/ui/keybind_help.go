package ui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var leaderBarStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color(ColorAccent)).
	Padding(0, 1).
	MarginTop(1)

var escBinding = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

// newHelpModel returns a bubbles help model in the shared palette.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = Styles.Selected
	h.Styles.ShortDesc = Styles.Muted
	h.Styles.ShortSeparator = Styles.Muted
	h.Styles.FullKey = Styles.Selected
	h.Styles.FullDesc = Styles.Muted
	h.Styles.FullSeparator = Styles.Muted
	return h
}

// toBindings turns (keys, description) pairs into help entries, preserving order.
func toBindings(pairs [][2]string) []key.Binding {
	out := make([]key.Binding, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, key.NewBinding(key.WithKeys(p[0]), key.WithHelp(p[0], p[1])))
	}
	return out
}

func sortedPairs(m map[string]string) [][2]string {
	pairs := make([][2]string, 0, len(m))
	for k, v := range m {
		pairs = append(pairs, [2]string{k, v})
	}
	slices.SortFunc(pairs, func(a, b [2]string) int { return strings.Compare(a[0], b[0]) })
	return pairs
}

// RenderKeybindHelp produces the transient bar shown while a leader sequence
// is being typed. A partial sequence such as "SPC v" shows the keys that may follow it.
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil {
		return ""
	}
	prefix := h.LeaderSeq
	if len(h.Buffer) > 0 {
		prefix = strings.Join(h.Buffer, " ")
	}
	hints := h.Registry.LeaderHints(prefix, mode)
	if len(hints) == 0 {
		return ""
	}
	bindings := append(toBindings(sortedPairs(hints)), escBinding)
	return leaderBarStyle.Render(Styles.Muted.Render(prefix) + " " + newHelpModel().ShortHelpView(bindings))
}
