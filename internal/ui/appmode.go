package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeLookup AppMode = iota
	ModeCourses
)

func (m AppMode) String() string {
	switch m {
	case ModeLookup:
		return "Lookup"
	case ModeCourses:
		return "Courses"
	default:
		return "Unknown"
	}
}

// Title is the label shown in the mode bar.
func (m AppMode) Title() string {
	switch m {
	case ModeLookup:
		return "Country lookup"
	case ModeCourses:
		return "Courses"
	default:
		return "Unknown"
	}
}
