package ui

import (
	"context"

	"infodeck/internal/countries"
	"infodeck/internal/lookup"
	"infodeck/internal/weather"

	tea "github.com/charmbracelet/bubbletea"
)

// CountrySearcher finds countries by (partial) name.
type CountrySearcher interface {
	SearchByName(ctx context.Context, term string) ([]countries.Country, error)
}

// WeatherFetcher returns current weather for a city.
type WeatherFetcher interface {
	Current(ctx context.Context, capital string) (*weather.Report, error)
}

// searchCountriesCmd returns a command that runs req against s.
// The result is reported with the request's token so stale outcomes can be dropped.
func searchCountriesCmd(ctx context.Context, s CountrySearcher, req lookup.SearchRequest) tea.Cmd {
	return func() tea.Msg {
		if s == nil {
			return CountriesLoadedMsg{Seq: req.Seq, Term: req.Term, Err: errNoSearcher}
		}
		found, err := s.SearchByName(ctx, req.Term)
		return CountriesLoadedMsg{Seq: req.Seq, Term: req.Term, Countries: found, Err: err}
	}
}

// fetchWeatherCmd returns a command that fetches weather for req.Capital.
func fetchWeatherCmd(ctx context.Context, f WeatherFetcher, req lookup.WeatherRequest) tea.Cmd {
	return func() tea.Msg {
		if f == nil {
			return WeatherLoadedMsg{Seq: req.Seq, Capital: req.Capital, Err: errNoWeather}
		}
		report, err := f.Current(ctx, req.Capital)
		return WeatherLoadedMsg{Seq: req.Seq, Capital: req.Capital, Report: report, Err: err}
	}
}
