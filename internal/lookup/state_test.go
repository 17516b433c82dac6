package lookup

import (
	"errors"
	"fmt"
	"testing"

	"infodeck/internal/countries"
	"infodeck/internal/httpclient"
	"infodeck/internal/weather"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func country(name string, capitals ...string) countries.Country {
	return countries.Country{Name: countries.Name{Common: name}, Capital: capitals}
}

func manyCountries(n int) []countries.Country {
	out := make([]countries.Country, n)
	for i := range out {
		out[i] = country(fmt.Sprintf("Country %d", i), fmt.Sprintf("Capital %d", i))
	}
	return out
}

// searched returns a state holding results for "fin".
func searched(t *testing.T, results []countries.Country) *State {
	t.Helper()
	s := &State{}
	req, ok := s.SetQuery("fin")
	require.True(t, ok)
	require.True(t, s.ApplySearch(req.Seq, results, nil))
	return s
}

func TestSetQuery_BlankIssuesNoRequest(t *testing.T) {
	for _, text := range []string{"", " ", "\t \n"} {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			s := searched(t, manyCountries(3))
			_, ok := s.SetQuery(text)
			assert.False(t, ok)
			assert.Empty(t, s.Results())
			assert.Equal(t, DisplayEmpty, s.Display())
			assert.False(t, s.SearchPending())
			assert.Equal(t, PhaseIdle, s.Phase())
		})
	}
}

func TestSetQuery_TrimsTerm(t *testing.T) {
	s := &State{}
	req, ok := s.SetQuery("  fin ")
	require.True(t, ok)
	assert.Equal(t, "fin", req.Term)
	assert.Equal(t, "  fin ", s.Query())
	assert.Equal(t, PhaseSearching, s.Phase())
}

func TestSetQuery_UnchangedTextIsNoop(t *testing.T) {
	s := &State{}
	first, ok := s.SetQuery("fin")
	require.True(t, ok)
	_, ok = s.SetQuery("fin")
	assert.False(t, ok)
	assert.True(t, s.ApplySearch(first.Seq, manyCountries(1), nil))
}

func TestSetQuery_ClearsDownstreamState(t *testing.T) {
	s := searched(t, []countries.Country{country("Finland", "Helsinki")})
	wreq, ok := s.Select(0)
	require.True(t, ok)
	require.True(t, s.ApplyWeather(wreq.Seq, &weather.Report{}, nil))

	_, ok = s.SetQuery("swe")
	require.True(t, ok)
	assert.Nil(t, s.Selected())
	assert.Nil(t, s.Weather())
	assert.NoError(t, s.Err())
}

func TestApplySearch_DisplayPolicy(t *testing.T) {
	tests := []struct {
		n     int
		want  Display
		phase Phase
	}{
		{0, DisplayEmpty, PhaseEmpty},
		{1, DisplayList, PhaseResults},
		{10, DisplayList, PhaseResults},
		{11, DisplayTooMany, PhaseTooMany},
		{250, DisplayTooMany, PhaseTooMany},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			s := searched(t, manyCountries(tt.n))
			assert.Equal(t, tt.want, s.Display())
			assert.Equal(t, tt.phase, s.Phase())
			assert.Len(t, s.Results(), tt.n)
		})
	}
}

func TestApplySearch_DropsStaleResponse(t *testing.T) {
	s := &State{}
	old, _ := s.SetQuery("f")
	latest, _ := s.SetQuery("fi")

	// The newer request resolves first; the older one arrives late.
	require.True(t, s.ApplySearch(latest.Seq, []countries.Country{country("Finland", "Helsinki")}, nil))
	assert.False(t, s.ApplySearch(old.Seq, manyCountries(20), nil))

	require.Len(t, s.Results(), 1)
	assert.Equal(t, "Finland", s.Results()[0].Name.Common)
}

func TestApplySearch_DropsResponseAfterBlankQuery(t *testing.T) {
	s := &State{}
	req, _ := s.SetQuery("fin")
	s.SetQuery("")
	assert.False(t, s.ApplySearch(req.Seq, manyCountries(2), nil))
	assert.Empty(t, s.Results())
}

func TestApplySearch_DuplicateDeliveryIgnored(t *testing.T) {
	s := &State{}
	req, _ := s.SetQuery("fin")
	require.True(t, s.ApplySearch(req.Seq, manyCountries(2), nil))
	assert.False(t, s.ApplySearch(req.Seq, nil, errors.New("late")))
	assert.Len(t, s.Results(), 2)
	assert.NoError(t, s.Err())
}

func TestApplySearch_FailureClearsEverything(t *testing.T) {
	s := searched(t, []countries.Country{country("Finland", "Helsinki")})
	_, ok := s.Select(0)
	require.True(t, ok)

	req, _ := s.SetQuery("finx")
	cause := &httpclient.StatusError{StatusCode: 404}
	require.True(t, s.ApplySearch(req.Seq, nil, cause))

	require.Error(t, s.Err())
	assert.Equal(t, "Error fetching countries", s.Err().Error())
	assert.ErrorIs(t, s.Err(), httpclient.ErrNotFound)
	assert.Empty(t, s.Results())
	assert.Nil(t, s.Selected())
	assert.Nil(t, s.Weather())
	assert.Equal(t, PhaseError, s.Phase())

	var fe *FetchError
	require.True(t, errors.As(s.Err(), &fe))
	assert.Equal(t, KindCountry, fe.Kind)
}

func TestApplySearch_SuccessClearsPriorError(t *testing.T) {
	s := &State{}
	req, _ := s.SetQuery("x")
	s.ApplySearch(req.Seq, nil, errors.New("down"))
	require.Error(t, s.Err())

	req, _ = s.SetQuery("fin")
	assert.NoError(t, s.Err(), "new text clears the error holder")
	s.ApplySearch(req.Seq, manyCountries(1), nil)
	assert.NoError(t, s.Err())
}

func TestSelect_RequestsWeatherForFirstCapital(t *testing.T) {
	s := searched(t, []countries.Country{
		country("Finland", "Helsinki"),
		country("South Africa", "Pretoria", "Bloemfontein", "Cape Town"),
	})

	req, ok := s.Select(0)
	require.True(t, ok)
	assert.Equal(t, "Helsinki", req.Capital)
	assert.Equal(t, "Finland", s.Selected().Name.Common)
	assert.Equal(t, PhaseWeatherLoading, s.Phase())

	req, ok = s.Select(1)
	require.True(t, ok)
	assert.Equal(t, "Pretoria", req.Capital)
}

func TestSelect_SameCountryIssuesOneRequest(t *testing.T) {
	s := searched(t, []countries.Country{country("Finland", "Helsinki")})

	var requests []WeatherRequest
	for range 3 {
		if req, ok := s.Select(0); ok {
			requests = append(requests, req)
		}
	}
	require.Len(t, requests, 1)
	assert.Equal(t, "Helsinki", requests[0].Capital)
}

func TestSelect_NoCapitalNoRequest(t *testing.T) {
	s := searched(t, []countries.Country{country("Antarctica")})

	_, ok := s.Select(0)
	assert.False(t, ok)
	require.NotNil(t, s.Selected())
	assert.False(t, s.WeatherPending())
	assert.Equal(t, PhaseSelecting, s.Phase())
}

func TestSelect_OnlyWhileListDisplayed(t *testing.T) {
	s := searched(t, manyCountries(11))
	_, ok := s.Select(0)
	assert.False(t, ok)
	assert.Nil(t, s.Selected())

	s = searched(t, manyCountries(2))
	_, ok = s.Select(2)
	assert.False(t, ok)
	_, ok = s.Select(-1)
	assert.False(t, ok)
}

func TestApplyWeather_Success(t *testing.T) {
	s := searched(t, []countries.Country{country("Finland", "Helsinki")})
	req, _ := s.Select(0)

	report := &weather.Report{Main: weather.Main{Temp: 1.5, Humidity: 80}}
	require.True(t, s.ApplyWeather(req.Seq, report, nil))
	assert.Same(t, report, s.Weather())
	assert.NoError(t, s.Err())
	assert.Equal(t, PhaseWeatherShown, s.Phase())
}

func TestApplyWeather_FailureClearsPriorWeather(t *testing.T) {
	s := searched(t, []countries.Country{
		country("Finland", "Helsinki"),
		country("Sweden", "Stockholm"),
	})
	req, _ := s.Select(0)
	require.True(t, s.ApplyWeather(req.Seq, &weather.Report{}, nil))
	require.NotNil(t, s.Weather())

	req, _ = s.Select(1)
	assert.Nil(t, s.Weather(), "new selection hides the previous country's weather")
	require.True(t, s.ApplyWeather(req.Seq, nil, weather.ErrMissingAPIKey))

	assert.Nil(t, s.Weather())
	require.Error(t, s.Err())
	assert.Equal(t, "Error fetching weather data", s.Err().Error())
	assert.ErrorIs(t, s.Err(), weather.ErrMissingAPIKey)
	assert.Equal(t, PhaseWeatherError, s.Phase())
}

func TestApplyWeather_DropsStaleResponse(t *testing.T) {
	s := searched(t, []countries.Country{
		country("Finland", "Helsinki"),
		country("Sweden", "Stockholm"),
	})
	first, _ := s.Select(0)
	second, _ := s.Select(1)

	stale := &weather.Report{Main: weather.Main{Temp: -20}}
	fresh := &weather.Report{Main: weather.Main{Temp: 5}}
	require.True(t, s.ApplyWeather(second.Seq, fresh, nil))
	assert.False(t, s.ApplyWeather(first.Seq, stale, nil))
	assert.Same(t, fresh, s.Weather())
}

func TestApplyWeather_DroppedAfterNewSearch(t *testing.T) {
	s := searched(t, []countries.Country{country("Finland", "Helsinki")})
	req, _ := s.Select(0)
	s.SetQuery("swe")

	assert.False(t, s.ApplyWeather(req.Seq, &weather.Report{}, nil))
	assert.Nil(t, s.Weather())
	assert.Nil(t, s.Selected())
}

func TestFetchError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	fe := &FetchError{Kind: KindWeather, Err: cause}
	assert.Equal(t, "Error fetching weather data", fe.Error())
	assert.Equal(t, "Error fetching weather data: dial tcp: connection refused", fe.Detail())
	assert.Same(t, cause, errors.Unwrap(fe))
	assert.Equal(t, "weather", fe.Kind.String())

	assert.Equal(t, "Error fetching countries", (&FetchError{Kind: KindCountry}).Detail())
}

func TestPhaseAndDisplayStrings(t *testing.T) {
	assert.Equal(t, "WeatherLoading", PhaseWeatherLoading.String())
	assert.Equal(t, "Unknown", Phase(99).String())
	assert.Equal(t, "TooMany", DisplayTooMany.String())
}
