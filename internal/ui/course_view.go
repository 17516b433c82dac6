package ui

import (
	"strings"

	"infodeck/internal/course"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// CourseView displays the static course catalog in a scrollable pane.
type CourseView struct {
	Courses  []course.Course
	viewport viewport.Model
}

// Ensure CourseView implements View.
var _ View = (*CourseView)(nil)

// NewCourseView creates a view over courses.
func NewCourseView(courses []course.Course) *CourseView {
	v := &CourseView{
		Courses:  courses,
		viewport: viewport.New(defaultWidth, 20),
	}
	v.viewport.SetContent(v.content())
	return v
}

// Init implements View.
func (v *CourseView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *CourseView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.viewport.Width = msg.Width
		v.viewport.Height = max(3, msg.Height-4) // Reserve space for mode bar and hint
		return v, nil
	}
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// View implements View.
func (v *CourseView) View() string {
	return v.viewport.View() + "\n" + Styles.Hint.Render("↑/↓: scroll  [SPC] commands")
}

func (v *CourseView) content() string {
	if len(v.Courses) == 0 {
		return Styles.Empty.Render("no courses")
	}
	blocks := make([]string, 0, len(v.Courses)+1)
	blocks = append(blocks, Styles.Title.Render("Web development curriculum"))
	for _, c := range v.Courses {
		lines := strings.Split(course.Render(c), "\n")
		lines[0] = Styles.Subtitle.Render(lines[0])
		last := len(lines) - 1
		lines[last] = Styles.Selected.Render(lines[last])
		blocks = append(blocks, Styles.Box.Render(strings.Join(lines, "\n")))
	}
	return strings.Join(blocks, "\n")
}
