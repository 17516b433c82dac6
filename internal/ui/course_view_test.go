package ui

import (
	"strings"
	"testing"

	"infodeck/internal/course"

	tea "github.com/charmbracelet/bubbletea"
)

func TestCourseView_RendersCatalog(t *testing.T) {
	v := NewCourseView(course.Catalog())
	v.Update(tea.WindowSizeMsg{Width: 80, Height: 60})

	out := v.View()
	for _, want := range []string{
		"Web development curriculum",
		"Half Stack application development",
		"Fundamentals of React 10",
		"total of 42 exercises",
		"Node.js",
		"Middlewares 7",
		"total of 10 exercises",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestCourseView_Empty(t *testing.T) {
	v := NewCourseView(nil)
	if !strings.Contains(v.View(), "no courses") {
		t.Error("expected empty notice")
	}
}

func TestCourseView_ResizeReservesChrome(t *testing.T) {
	v := NewCourseView(course.Catalog())
	v.Update(tea.WindowSizeMsg{Width: 50, Height: 24})
	if v.viewport.Width != 50 || v.viewport.Height != 20 {
		t.Errorf("viewport = %dx%d, want 50x20", v.viewport.Width, v.viewport.Height)
	}
	v.Update(tea.WindowSizeMsg{Width: 50, Height: 2})
	if v.viewport.Height != 3 {
		t.Errorf("viewport height = %d, want minimum 3", v.viewport.Height)
	}
}
