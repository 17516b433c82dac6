package lookup

import "fmt"

// Kind identifies which request path produced a FetchError.
type Kind int

const (
	KindCountry Kind = iota
	KindWeather
)

func (k Kind) String() string {
	switch k {
	case KindCountry:
		return "country"
	case KindWeather:
		return "weather"
	default:
		return "unknown"
	}
}

// FetchError is what the error holder stores. Error() is the message shown
// to the user; the underlying cause stays reachable through Unwrap.
type FetchError struct {
	Kind Kind
	Err  error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindCountry:
		return "Error fetching countries"
	case KindWeather:
		return "Error fetching weather data"
	default:
		return "Error fetching data"
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Detail includes the cause, for logs.
func (e *FetchError) Detail() string {
	if e.Err == nil {
		return e.Error()
	}
	return fmt.Sprintf("%s: %v", e.Error(), e.Err)
}
