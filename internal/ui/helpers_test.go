package ui

import (
	"context"
	"sync"

	"infodeck/internal/countries"
	"infodeck/internal/weather"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText sends one key per rune and returns the commands produced, in order.
func typeText(v View, text string) []tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range text {
		_, cmd := v.Update(keyMsg(string(r)))
		cmds = append(cmds, cmd)
	}
	return cmds
}

// runCmd executes cmd and flattens batches into the messages produced.
// Spinner ticks are dropped so the animation loop never starts in tests.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	case spinner.TickMsg:
		return nil
	default:
		return []tea.Msg{msg}
	}
}

// drive runs cmd and feeds every resulting message back into v until quiet.
func drive(v View, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		for _, msg := range runCmd(next) {
			_, c := v.Update(msg)
			queue = append(queue, c)
		}
	}
}

type fakeSearcher struct {
	mu      sync.Mutex
	results map[string][]countries.Country
	err     error
	calls   []string
	ctxs    []context.Context
}

func (f *fakeSearcher) SearchByName(ctx context.Context, term string) ([]countries.Country, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, term)
	f.ctxs = append(f.ctxs, ctx)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[term], nil
}

type fakeWeather struct {
	mu      sync.Mutex
	reports map[string]*weather.Report
	errs    map[string]error
	calls   []string
	ctxs    []context.Context
}

func (f *fakeWeather) Current(ctx context.Context, capital string) (*weather.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, capital)
	f.ctxs = append(f.ctxs, ctx)
	if err := f.errs[capital]; err != nil {
		return nil, err
	}
	return f.reports[capital], nil
}

func newTestLookupView(s CountrySearcher, w WeatherFetcher) *LookupView {
	v := NewLookupView(s, w, zerolog.Nop())
	v.input.Cursor.SetMode(cursor.CursorStatic)
	return v
}

func testCountry(name string, capitals ...string) countries.Country {
	return countries.Country{
		Name:      countries.Name{Common: name},
		Capital:   capitals,
		Area:      338424,
		Languages: countries.LanguagesFrom(`{"fin":"Finnish","swe":"Swedish"}`),
		Flags:     countries.Image{PNG: "https://flagcdn.com/w320/fi.png"},
	}
}

func manyTestCountries(n int) []countries.Country {
	out := make([]countries.Country, n)
	for i := range out {
		out[i] = testCountry(string(rune('A'+i))+"land", "Capital")
	}
	return out
}

var helsinkiWeather = &weather.Report{
	Main:    weather.Main{Temp: -3.5, Humidity: 86},
	Weather: []weather.Condition{{Description: "light snow", Icon: "13d"}},
	Wind:    weather.Wind{Speed: 4.1},
}
