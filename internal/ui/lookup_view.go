package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"infodeck/internal/countries"
	"infodeck/internal/jsonutil"
	"infodeck/internal/lookup"
	"infodeck/internal/ui/textutil"
	"infodeck/internal/weather"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

const (
	focusSearch  = "search"
	focusResults = "results"

	tooManyMatches = "Too many matches, specify another filter"
	labelWidth     = 21
	defaultWidth   = 80
)

// countryItem implements list.Item for a search result.
type countryItem struct {
	countries.Country
}

func (c countryItem) FilterValue() string { return c.Name.Common }
func (c countryItem) Title() string       { return c.Name.Common }
func (c countryItem) Description() string { return c.CapitalList() }

// LookupView is the country lookup widget: a search box, the matching
// countries, and details plus weather for the selected one.
type LookupView struct {
	state   lookup.State
	input   textinput.Model
	list    list.Model
	spinner spinner.Model
	focus   *FocusManager

	searcher CountrySearcher
	weather  WeatherFetcher
	logger   zerolog.Logger

	cancelSearch  context.CancelFunc
	cancelWeather context.CancelFunc
	width         int
}

// Ensure LookupView implements View.
var _ View = (*LookupView)(nil)

// NewLookupView creates the lookup widget. Either collaborator may be nil;
// requests then fail with a fetch error.
func NewLookupView(s CountrySearcher, w WeatherFetcher, logger zerolog.Logger) *LookupView {
	ti := textinput.New()
	ti.Placeholder = "country name"
	ti.Prompt = "> "
	ti.Width = 40
	ti.Focus()

	l := list.New(nil, NewCompactListDelegate(), defaultWidth, lookup.MaxListed+2)
	l.Title = "Countries"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = Styles.Subtitle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = Styles.Label

	v := &LookupView{
		input:    ti,
		list:     l,
		spinner:  sp,
		searcher: s,
		weather:  w,
		logger:   logger,
		width:    defaultWidth,
	}
	v.focus = NewFocusManager(focusSearch, focusResults)
	v.focus.OnChange = func(_, to string) {
		if to == focusSearch {
			v.input.Focus()
		} else {
			v.input.Blur()
		}
	}
	return v
}

// State exposes the widget state for rendering and tests.
func (v *LookupView) State() *lookup.State {
	return &v.state
}

// CapturesText implements TextCapturer.
func (v *LookupView) CapturesText() bool {
	return v.focus.Is(focusSearch)
}

// Init implements View.
func (v *LookupView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *LookupView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.list.SetWidth(msg.Width)
		v.input.Width = min(40, max(10, msg.Width-4))
		return v, nil

	case CountriesLoadedMsg:
		return v, v.applySearch(msg)

	case WeatherLoadedMsg:
		v.applyWeather(msg)
		return v, nil

	case FocusSearchMsg:
		v.focus.SetFocus(focusSearch)
		return v, textinput.Blink

	case spinner.TickMsg:
		if !v.state.SearchPending() && !v.state.WeatherPending() {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}

	if v.focus.Is(focusSearch) {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *LookupView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab":
		v.focus.Next()
		return nil
	case "shift+tab":
		v.focus.Prev()
		return nil
	}

	if v.focus.Is(focusSearch) {
		before := v.input.Value()
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		if after := v.input.Value(); after != before {
			return tea.Batch(cmd, v.setQuery(after))
		}
		return cmd
	}

	if msg.String() == "enter" {
		return v.selectIndex(v.list.Index())
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

// setQuery feeds new search text into the state machine and starts the
// search it asks for, cancelling whatever was in flight.
func (v *LookupView) setQuery(text string) tea.Cmd {
	req, ok := v.state.SetQuery(text)
	v.cancelInFlight()
	v.syncList()
	if !ok {
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	v.cancelSearch = cancel
	v.logger.Debug().Uint64("seq", req.Seq).Str("term", req.Term).Msg("search issued")
	return tea.Batch(searchCountriesCmd(ctx, v.searcher, req), v.spinner.Tick)
}

func (v *LookupView) applySearch(msg CountriesLoadedMsg) tea.Cmd {
	if !v.state.ApplySearch(msg.Seq, msg.Countries, msg.Err) {
		v.logger.Debug().Uint64("seq", msg.Seq).Str("term", msg.Term).Msg("stale search result dropped")
		return nil
	}
	if v.cancelSearch != nil {
		v.cancelSearch()
		v.cancelSearch = nil
	}
	v.cancelWeatherFetch()
	if fe := v.fetchError(); fe != nil {
		v.logger.Error().Err(fe.Err).Str("term", msg.Term).Msg(fe.Detail())
	} else {
		v.logger.Info().Str("term", msg.Term).Int("count", len(msg.Countries)).Msg("country search complete")
	}
	v.syncList()
	return nil
}

// selectIndex selects result i and starts its weather fetch, if any.
func (v *LookupView) selectIndex(i int) tea.Cmd {
	prev := v.state.Selected()
	req, ok := v.state.Select(i)
	sel := v.state.Selected()
	if sel == prev {
		return nil
	}
	v.logger.Debug().Str("country", sel.Name.Common).Msg("country selected")
	v.cancelWeatherFetch()
	if !ok {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	v.cancelWeather = cancel
	return tea.Batch(fetchWeatherCmd(ctx, v.weather, req), v.spinner.Tick)
}

func (v *LookupView) applyWeather(msg WeatherLoadedMsg) {
	if !v.state.ApplyWeather(msg.Seq, msg.Report, msg.Err) {
		v.logger.Debug().Uint64("seq", msg.Seq).Str("capital", msg.Capital).Msg("stale weather result dropped")
		return
	}
	v.cancelWeatherFetch()
	if fe := v.fetchError(); fe != nil {
		v.logger.Error().Err(fe.Err).Str("capital", msg.Capital).Msg(fe.Detail())
	}
}

// fetchError returns the committed fetch failure, if any.
func (v *LookupView) fetchError() *lookup.FetchError {
	var fe *lookup.FetchError
	if errors.As(v.state.Err(), &fe) {
		return fe
	}
	return nil
}

func (v *LookupView) cancelInFlight() {
	if v.cancelSearch != nil {
		v.cancelSearch()
		v.cancelSearch = nil
	}
	v.cancelWeatherFetch()
}

func (v *LookupView) cancelWeatherFetch() {
	if v.cancelWeather != nil {
		v.cancelWeather()
		v.cancelWeather = nil
	}
}

// syncList mirrors the result holder into the list model when it is displayable.
func (v *LookupView) syncList() {
	if v.state.Display() != lookup.DisplayList {
		v.list.SetItems(nil)
		return
	}
	results := v.state.Results()
	items := make([]list.Item, len(results))
	for i, c := range results {
		items[i] = countryItem{Country: c}
	}
	v.list.SetItems(items)
	v.list.Select(0)
}

// View implements View.
func (v *LookupView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Find countries") + "\n")
	b.WriteString(v.input.View() + "\n")

	if v.state.SearchPending() {
		b.WriteString(v.spinner.View() + Styles.Muted.Render(" searching…") + "\n")
	}

	switch v.state.Display() {
	case lookup.DisplayTooMany:
		b.WriteString("\n" + Styles.Notice.Render(tooManyMatches) + "\n")
	case lookup.DisplayList:
		b.WriteString("\n" + v.list.View() + "\n")
	}

	if sel := v.state.Selected(); sel != nil {
		b.WriteString(Styles.Box.Render(v.renderCountry(sel)) + "\n")
	}

	if err := v.state.Err(); err != nil {
		b.WriteString("\n" + Styles.Error.Render(err.Error()) + "\n")
	}

	hint := "Tab: results  Type to search"
	if v.focus.Is(focusResults) {
		hint = "Enter: show  ↑/↓: move  Tab: search  [SPC] commands"
	}
	b.WriteString("\n" + Styles.Hint.Render(hint))
	return b.String()
}

func (v *LookupView) renderCountry(c *countries.Country) string {
	urlWidth := max(16, v.width-labelWidth-8)
	var b strings.Builder
	b.WriteString(Styles.Subtitle.Render(textutil.Truncate(c.Name.Common, urlWidth)) + "\n")
	b.WriteString(field("Capital:", c.CapitalList()))
	b.WriteString(field("Area:", jsonutil.ToString(c.Area)+" m2"))
	b.WriteString(field("Languages:", c.Languages.String()))
	b.WriteString(field("Flag:", textutil.TruncateMiddle(c.Flags.PNG, urlWidth)))
	b.WriteString(field("Coat of arms:", textutil.TruncateMiddle(c.CoatOfArms.PNG, urlWidth)))

	b.WriteString("\n" + Styles.Label.Render("Weather Data:") + "\n")
	capital, hasCapital := c.FirstCapital()
	switch report := v.state.Weather(); {
	case !hasCapital:
		b.WriteString(Styles.Empty.Render("no capital to look up"))
	case v.state.WeatherPending():
		b.WriteString(v.spinner.View() + Styles.Muted.Render(" loading weather for "+capital+"…"))
	case report != nil:
		b.WriteString(renderWeather(capital, report, urlWidth))
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderWeather(capital string, r *weather.Report, urlWidth int) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Weather in "+capital) + "\n")
	b.WriteString(field("Temperature:", jsonutil.ToString(r.Main.Temp)+" °C"))
	if cond, ok := r.Condition(); ok {
		b.WriteString(field("Weather description:", cond.Description))
		if cond.Icon != "" {
			b.WriteString(field("Icon:", textutil.TruncateMiddle(weather.IconURL(cond.Icon), urlWidth)))
		}
	}
	b.WriteString(field("Humidity:", fmt.Sprintf("%d%%", r.Main.Humidity)))
	b.WriteString(field("Wind speed:", jsonutil.ToString(r.Wind.Speed)+" m/s"))
	return b.String()
}

func field(label, value string) string {
	return Styles.Label.Render(textutil.PadRightVisual(label, labelWidth)) + Styles.Normal.Render(value) + "\n"
}
