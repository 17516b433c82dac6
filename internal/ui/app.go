package ui

import (
	"strings"

	"infodeck/internal/course"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the root model hands to its views.
type Deps struct {
	Countries CountrySearcher
	Weather   WeatherFetcher
	Courses   []course.Course
	Logger    zerolog.Logger
}

// AppModel is the root model. It switches between the lookup and course views.
type AppModel struct {
	Mode       AppMode
	Lookup     *LookupView
	Courses    *CourseView
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	logger     zerolog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(a.Lookup.Init(), a.Courses.Init())
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SwitchModeMsg:
		if a.Mode != msg.Mode {
			a.logger.Debug().Stringer("from", a.Mode).Stringer("to", msg.Mode).Msg("mode switched")
		}
		a.Mode = msg.Mode
		return a, nil
	case ShowHelpMsg:
		a.Overlays.Push(NewHelpModal(a.KeyHandler.Registry, a.Mode))
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case CountriesLoadedMsg, WeatherLoadedMsg, FocusSearchMsg, spinner.TickMsg:
		// Lookup results land even while another mode is showing.
		_, cmd := a.Lookup.Update(msg)
		return a, cmd
	case tea.WindowSizeMsg:
		_, c1 := a.Lookup.Update(msg)
		_, c2 := a.Courses.Update(msg)
		return a, tea.Batch(c1, c2)
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if !a.capturesText() || a.KeyHandler.LeaderWaiting {
			if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
				return a, cmd
			}
		}
	}

	_, cmd := a.currentView().Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	b.WriteString(a.modeBar() + "\n\n")
	if top, ok := a.Overlays.Peek(); ok {
		b.WriteString(top.View())
	} else {
		b.WriteString(a.currentView().View())
	}
	if a.KeyHandler.LeaderWaiting {
		b.WriteString("\n" + RenderKeybindHelp(a.KeyHandler, a.Mode))
	}
	return b.String()
}

func (a *appModelAdapter) modeBar() string {
	tabs := make([]string, 0, 2)
	for _, m := range []AppMode{ModeLookup, ModeCourses} {
		style := Styles.TabOff
		if m == a.Mode {
			style = Styles.TabOn
		}
		tabs = append(tabs, style.Render(m.Title()))
	}
	return strings.Join(tabs, Styles.Muted.Render("  │  "))
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeCourses {
		return a.Courses
	}
	return a.Lookup
}

func (a *appModelAdapter) capturesText() bool {
	c, ok := a.currentView().(TextCapturer)
	return ok && c.CapturesText()
}

// NewKeybinds returns the registry of application-level bindings.
func NewKeybinds() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit, "Quit")
	reg.Bind("SPC q", tea.Quit, "Quit")
	reg.Bind("SPC h", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	reg.Bind("SPC v l", func() tea.Msg { return SwitchModeMsg{Mode: ModeLookup} }, "Country lookup")
	reg.Bind("SPC v c", func() tea.Msg { return SwitchModeMsg{Mode: ModeCourses} }, "Courses")
	reg.BindForMode("SPC /", func() tea.Msg { return FocusSearchMsg{} }, "Search", []AppMode{ModeLookup})
	return reg
}

// NewAppModel creates the root application model.
func NewAppModel(d Deps) *AppModel {
	return &AppModel{
		Mode:       ModeLookup,
		Lookup:     NewLookupView(d.Countries, d.Weather, d.Logger),
		Courses:    NewCourseView(d.Courses),
		KeyHandler: NewKeyHandler(NewKeybinds()),
		logger:     d.Logger,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
