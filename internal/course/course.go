// Package course holds the static course catalog and renders it as text.
package course

import (
	"fmt"
	"strings"
)

// Part is one section of a course with its exercise count.
type Part struct {
	ID        int
	Name      string
	Exercises int
}

// Course is a named list of parts.
type Course struct {
	ID    int
	Name  string
	Parts []Part
}

// TotalExercises sums exercises across all parts of c.
func TotalExercises(c Course) int {
	total := 0
	for _, p := range c.Parts {
		total += p.Exercises
	}
	return total
}

// Validate reports negative exercise counts and duplicate part IDs.
func Validate(c Course) error {
	seen := make(map[int]bool, len(c.Parts))
	for _, p := range c.Parts {
		if p.Exercises < 0 {
			return fmt.Errorf("course %q: part %q has negative exercise count %d", c.Name, p.Name, p.Exercises)
		}
		if seen[p.ID] {
			return fmt.Errorf("course %q: duplicate part id %d", c.Name, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Render produces the header, one line per part, and the exercise total.
func Render(c Course) string {
	var b strings.Builder
	b.WriteString(c.Name + "\n")
	for _, p := range c.Parts {
		fmt.Fprintf(&b, "%s %d\n", p.Name, p.Exercises)
	}
	fmt.Fprintf(&b, "total of %d exercises", TotalExercises(c))
	return b.String()
}

// RenderAll renders every course in order under a page heading.
func RenderAll(cs []Course) string {
	blocks := make([]string, 0, len(cs)+1)
	blocks = append(blocks, "Web development curriculum")
	for _, c := range cs {
		blocks = append(blocks, Render(c))
	}
	return strings.Join(blocks, "\n\n")
}
