package lookup

import "strings"

// Phase names where the widget is in the search/select/fetch chain.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSearching
	PhaseResults
	PhaseTooMany
	PhaseEmpty
	PhaseError
	PhaseSelecting
	PhaseWeatherLoading
	PhaseWeatherShown
	PhaseWeatherError
)

var phaseNames = [...]string{
	PhaseIdle:           "Idle",
	PhaseSearching:      "Searching",
	PhaseResults:        "Results",
	PhaseTooMany:        "TooMany",
	PhaseEmpty:          "Empty",
	PhaseError:          "Error",
	PhaseSelecting:      "Selecting",
	PhaseWeatherLoading: "WeatherLoading",
	PhaseWeatherShown:   "WeatherShown",
	PhaseWeatherError:   "WeatherError",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// Phase derives the current phase from the holders.
func (s *State) Phase() Phase {
	if fe, ok := s.err.(*FetchError); ok && fe.Kind == KindCountry {
		return PhaseError
	}
	if s.searchPending {
		return PhaseSearching
	}
	if s.selected != nil {
		switch {
		case s.weatherPending:
			return PhaseWeatherLoading
		case s.weather != nil:
			return PhaseWeatherShown
		case s.err != nil:
			return PhaseWeatherError
		default:
			// Selected country without a capital: nothing to fetch.
			return PhaseSelecting
		}
	}
	if strings.TrimSpace(s.query) == "" {
		return PhaseIdle
	}
	switch s.Display() {
	case DisplayTooMany:
		return PhaseTooMany
	case DisplayList:
		return PhaseResults
	default:
		return PhaseEmpty
	}
}
