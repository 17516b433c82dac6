package ui

import (
	"infodeck/internal/countries"
	"infodeck/internal/weather"
)

// SwitchModeMsg switches the root model to Mode (SPC v l, SPC v c).
type SwitchModeMsg struct {
	Mode AppMode
}

// ShowHelpMsg opens the keybinding overlay (SPC h).
type ShowHelpMsg struct{}

// DismissModalMsg is sent when user closes the top overlay (Esc).
type DismissModalMsg struct{}

// FocusSearchMsg moves focus back to the search box (SPC /).
type FocusSearchMsg struct{}

// CountriesLoadedMsg carries the outcome of a country search.
// Seq is the token the search was issued with.
type CountriesLoadedMsg struct {
	Seq       uint64
	Term      string
	Countries []countries.Country
	Err       error
}

// WeatherLoadedMsg carries the outcome of a weather fetch.
// Seq is the token the fetch was issued with.
type WeatherLoadedMsg struct {
	Seq     uint64
	Capital string
	Report  *weather.Report
	Err     error
}
