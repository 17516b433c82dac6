package ui

import "errors"

var (
	errNoSearcher = errors.New("no country searcher configured")
	errNoWeather  = errors.New("no weather fetcher configured")
)
