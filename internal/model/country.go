package model

import (
	"sort"
	"strings"
)

// NativeName is one language's rendering of a country name.
type NativeName struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

// Name groups the names a country is known by.
type Name struct {
	Common     string                `json:"common"`
	Official   string                `json:"official"`
	NativeName map[string]NativeName `json:"nativeName,omitempty"`
}

// Images holds the raster and vector URLs of a flag or coat of arms.
type Images struct {
	PNG string `json:"png,omitempty"`
	SVG string `json:"svg,omitempty"`
	Alt string `json:"alt,omitempty"`
}

// URL returns the preferred image URL, SVG first.
func (i Images) URL() string {
	if i.SVG != "" {
		return i.SVG
	}

	return i.PNG
}

// Empty reports whether no image URL is present. The API sends an empty
// object for countries without a coat of arms.
func (i Images) Empty() bool {
	return i.PNG == "" && i.SVG == ""
}

// Currency is a currency used by a country.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol,omitempty"`
}

// Maps holds external map links for a country.
type Maps struct {
	GoogleMaps     string `json:"googleMaps"`
	OpenStreetMaps string `json:"openStreetMaps"`
}

// Country is one record as returned by the REST Countries API. Fields the
// API may omit are left at their zero value and resolved when rendered.
type Country struct {
	// CCA3 is the ISO 3166-1 alpha-3 code, used as the route identifier
	CCA3 string `json:"cca3"`

	Name       Name                `json:"name"`
	Flags      Images              `json:"flags"`
	Flag       string              `json:"flag,omitempty"`
	CoatOfArms Images              `json:"coatOfArms,omitempty"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion,omitempty"`
	Capital    []string            `json:"capital,omitempty"`
	Population int64               `json:"population"`
	Area       float64             `json:"area"`
	Timezones  []string            `json:"timezones,omitempty"`
	Languages  map[string]string   `json:"languages,omitempty"`
	Currencies map[string]Currency `json:"currencies,omitempty"`
	Borders    []string            `json:"borders,omitempty"`
	Gini       map[string]float64  `json:"gini,omitempty"`
	Maps       Maps                `json:"maps"`

	StartOfWeek string `json:"startOfWeek,omitempty"`
}

// FirstCapital returns the first listed capital, if any.
func (c Country) FirstCapital() (string, bool) {
	if len(c.Capital) == 0 || c.Capital[0] == "" {
		return "", false
	}

	return c.Capital[0], true
}

// NativeOfficialName returns the official native name for the given
// language code (e.g. "ind").
func (c Country) NativeOfficialName(lang string) (string, bool) {
	n, ok := c.Name.NativeName[lang]
	if !ok || n.Official == "" {
		return "", false
	}

	return n.Official, true
}

// FirstGini returns the Gini index of the earliest year on record, the
// first entry when the years are listed in ascending order.
func (c Country) FirstGini() (string, float64, bool) {
	if len(c.Gini) == 0 {
		return "", 0, false
	}

	years := make([]string, 0, len(c.Gini))
	for y := range c.Gini {
		years = append(years, y)
	}

	sort.Strings(years)
	first := years[0]

	return first, c.Gini[first], true
}

// LanguageNames returns language names ordered by language code.
func (c Country) LanguageNames() []string {
	codes := sortedKeys(c.Languages)

	out := make([]string, 0, len(codes))
	for _, code := range codes {
		out = append(out, c.Languages[code])
	}

	return out
}

// CurrencyCodes returns the currency codes in ascending order.
func (c Country) CurrencyCodes() []string {
	return sortedKeys(c.Currencies)
}

// MatchesName reports whether the lower-cased common name contains query.
// query is expected to be lower-cased already.
func (c Country) MatchesName(query string) bool {
	return strings.Contains(strings.ToLower(c.Name.Common), query)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
