// Package countries queries the REST Countries API by name.
package countries

import (
	"encoding/json"
	"strings"

	"infodeck/internal/jsonutil"
)

// UnknownLanguages is shown when the languages field has an unexpected shape.
const UnknownLanguages = "Unknown"

// Country is the subset of a REST Countries record the lookup widget displays.
type Country struct {
	Name       Name      `json:"name"`
	Capital    []string  `json:"capital"`
	Area       float64   `json:"area"`
	Languages  Languages `json:"languages"`
	Flags      Image     `json:"flags"`
	CoatOfArms Image     `json:"coatOfArms"`
}

// Name holds the country's display names.
type Name struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Image holds image URLs in the formats the API publishes.
type Image struct {
	PNG string `json:"png"`
	SVG string `json:"svg"`
}

// FirstCapital returns the first capital entry, used as the weather query key.
func (c Country) FirstCapital() (string, bool) {
	if len(c.Capital) == 0 {
		return "", false
	}
	return c.Capital[0], true
}

// CapitalList joins all capitals for display.
func (c Country) CapitalList() string {
	return strings.Join(c.Capital, ", ")
}

// Languages keeps the raw languages value: the API has served it both as a
// code-to-name object and as a plain list of names.
type Languages struct {
	raw json.RawMessage
}

// LanguagesFrom builds a Languages value from raw JSON.
func LanguagesFrom(raw string) Languages {
	return Languages{raw: json.RawMessage(raw)}
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *Languages) UnmarshalJSON(b []byte) error {
	l.raw = append(l.raw[:0], b...)
	return nil
}

// String joins the language names with ", ". Lists keep their order, objects
// keep document order, and anything else yields UnknownLanguages.
func (l Languages) String() string {
	names, err := jsonutil.ContainerValues(l.raw)
	if err != nil {
		return UnknownLanguages
	}
	return strings.Join(names, ", ")
}
