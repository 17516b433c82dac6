package lookup

import (
	"strings"

	"infodeck/internal/countries"
	"infodeck/internal/weather"
)

// MaxListed is the largest result count rendered as a selectable list.
const MaxListed = 10

// Display says how the result list is rendered.
type Display int

const (
	DisplayEmpty Display = iota
	DisplayList
	DisplayTooMany
)

func (d Display) String() string {
	switch d {
	case DisplayEmpty:
		return "Empty"
	case DisplayList:
		return "List"
	case DisplayTooMany:
		return "TooMany"
	default:
		return "Unknown"
	}
}

// SearchRequest asks the caller to search countries by Term.
type SearchRequest struct {
	Seq  uint64
	Term string
}

// WeatherRequest asks the caller to fetch weather for Capital.
type WeatherRequest struct {
	Seq     uint64
	Capital string
}

// State is the lookup widget's state. The zero value is ready to use.
type State struct {
	query    string
	results  []countries.Country
	selected *countries.Country
	weather  *weather.Report
	err      error

	searchSeq      uint64
	weatherSeq     uint64
	searchPending  bool
	weatherPending bool
}

// Query returns the current search text as typed.
func (s *State) Query() string { return s.query }

// Results returns the latest search result list.
func (s *State) Results() []countries.Country { return s.results }

// Selected returns the selected country, or nil.
func (s *State) Selected() *countries.Country { return s.selected }

// Weather returns the weather for the selected country's capital, or nil.
func (s *State) Weather() *weather.Report { return s.weather }

// Err returns the shared error holder, or nil.
func (s *State) Err() error { return s.err }

// SearchPending reports whether a search request is outstanding.
func (s *State) SearchPending() bool { return s.searchPending }

// WeatherPending reports whether a weather request is outstanding.
func (s *State) WeatherPending() bool { return s.weatherPending }

// SetQuery records new search text. A change discards selection, weather
// and error and supersedes any outstanding request. Blank text clears the
// result list and issues nothing; otherwise a search for the trimmed text
// is requested.
func (s *State) SetQuery(text string) (SearchRequest, bool) {
	if text == s.query {
		return SearchRequest{}, false
	}
	s.query = text
	s.searchSeq++
	s.clearSelection()
	s.err = nil

	term := strings.TrimSpace(text)
	if term == "" {
		s.results = nil
		s.searchPending = false
		return SearchRequest{}, false
	}
	s.searchPending = true
	return SearchRequest{Seq: s.searchSeq, Term: term}, true
}

// ApplySearch commits a search outcome. It reports false and changes
// nothing when seq is not the latest search token.
func (s *State) ApplySearch(seq uint64, results []countries.Country, err error) bool {
	if seq != s.searchSeq || !s.searchPending {
		return false
	}
	s.searchPending = false
	s.clearSelection()
	if err != nil {
		s.results = nil
		s.err = &FetchError{Kind: KindCountry, Err: err}
		return true
	}
	s.results = results
	s.err = nil
	return true
}

// Select marks results[i] as selected. It applies only while the list is
// displayed, and re-selecting the current country changes nothing. A
// weather request is returned when the country has at least one capital.
func (s *State) Select(i int) (WeatherRequest, bool) {
	if s.Display() != DisplayList || i < 0 || i >= len(s.results) {
		return WeatherRequest{}, false
	}
	c := s.results[i]
	if s.selected != nil && s.selected.Name.Common == c.Name.Common {
		return WeatherRequest{}, false
	}
	s.selected = &c
	s.weather = nil
	s.weatherSeq++

	capital, ok := c.FirstCapital()
	if !ok {
		s.weatherPending = false
		return WeatherRequest{}, false
	}
	s.weatherPending = true
	return WeatherRequest{Seq: s.weatherSeq, Capital: capital}, true
}

// ApplyWeather commits a weather outcome. It reports false and changes
// nothing when seq is not the latest weather token.
func (s *State) ApplyWeather(seq uint64, report *weather.Report, err error) bool {
	if seq != s.weatherSeq || !s.weatherPending {
		return false
	}
	s.weatherPending = false
	if err != nil {
		s.weather = nil
		s.err = &FetchError{Kind: KindWeather, Err: err}
		return true
	}
	s.weather = report
	s.err = nil
	return true
}

// Display applies the list display policy to the current results.
func (s *State) Display() Display {
	switch n := len(s.results); {
	case n == 0:
		return DisplayEmpty
	case n > MaxListed:
		return DisplayTooMany
	default:
		return DisplayList
	}
}

// clearSelection drops the selection and weather and supersedes any
// outstanding weather request.
func (s *State) clearSelection() {
	s.selected = nil
	s.weather = nil
	s.weatherSeq++
	s.weatherPending = false
}
