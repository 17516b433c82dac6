package course

// Catalog returns the hardcoded course data shown by the course display.
// A fresh slice is returned on every call so callers cannot mutate the source.
func Catalog() []Course {
	return []Course{
		{
			ID:   1,
			Name: "Half Stack application development",
			Parts: []Part{
				{ID: 1, Name: "Fundamentals of React", Exercises: 10},
				{ID: 2, Name: "Using props to pass data", Exercises: 7},
				{ID: 3, Name: "State of a component", Exercises: 14},
				{ID: 4, Name: "Redux", Exercises: 11},
			},
		},
		{
			ID:   2,
			Name: "Node.js",
			Parts: []Part{
				{ID: 1, Name: "Routing", Exercises: 3},
				{ID: 2, Name: "Middlewares", Exercises: 7},
			},
		},
	}
}
