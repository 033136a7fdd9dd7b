// Package render turns country records into display strings, resolving
// optional fields to fixed fallbacks and formatting numbers for a locale.
package render

import (
	"strconv"
	"strings"

	"github.com/inovacc/countries/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// NotAvailable is shown for absent optional values.
	NotAvailable = "N/A"

	// NoBorders is shown when a country has no land borders.
	NoBorders = "None"

	// DefaultLocale is used when no locale is configured.
	DefaultLocale = "en"

	// DefaultNativeLang selects which native name the detail view shows.
	DefaultNativeLang = "ind"
)

// Field is a labelled display value.
type Field struct {
	Label string
	Value string
}

// Link is an external hyperlink.
type Link struct {
	Label string
	URL   string
}

// Card is the summary shown for a country in the listing.
type Card struct {
	Code    string
	Name    string
	Flag    string
	FlagURL string
	Fields  []Field
}

// Detail is everything the detail view shows for one country.
type Detail struct {
	Title         string
	Flag          string
	FlagURL       string
	CoatOfArmsURL string // empty when the country has none
	Fields        []Field
	Maps          []Link
}

// Formatter renders records for one locale.
type Formatter struct {
	printer    *message.Printer
	nativeLang string
}

// NewFormatter returns a Formatter for the BCP 47 locale (e.g. "en", "id").
// Unknown locales fall back to DefaultLocale.
func NewFormatter(locale, nativeLang string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.Make(DefaultLocale)
	}

	if nativeLang == "" {
		nativeLang = DefaultNativeLang
	}

	return Formatter{
		printer:    message.NewPrinter(tag),
		nativeLang: nativeLang,
	}
}

// Integer formats n with the locale's digit grouping.
func (f Formatter) Integer(n int64) string {
	return f.printer.Sprint(number.Decimal(n))
}

// Decimal formats v with grouping and at most three fraction digits.
func (f Formatter) Decimal(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// Capital returns the first capital or NotAvailable.
func Capital(c model.Country) string {
	if capital, ok := c.FirstCapital(); ok {
		return capital
	}

	return NotAvailable
}

// Card builds the listing card for c.
func (f Formatter) Card(c model.Country) Card {
	return Card{
		Code:    c.CCA3,
		Name:    c.Name.Common,
		Flag:    c.Flag,
		FlagURL: c.Flags.URL(),
		Fields: []Field{
			{Label: "Region", Value: c.Region},
			{Label: "Capital", Value: Capital(c)},
			{Label: "Population", Value: f.Integer(c.Population)},
		},
	}
}

// Detail builds the detail view for c.
func (f Formatter) Detail(c model.Country) Detail {
	d := Detail{
		Title:   c.Name.Common + " (" + c.CCA3 + ")",
		Flag:    c.Flag,
		FlagURL: c.Flags.URL(),
		Fields: []Field{
			{Label: "Official Name", Value: c.Name.Official},
			{Label: "Native Name", Value: orNA(c.NativeOfficialName(f.nativeLang))},
			{Label: "Region", Value: c.Region},
			{Label: "Subregion", Value: orNA(c.Subregion, c.Subregion != "")},
			{Label: "Capital", Value: Capital(c)},
			{Label: "Population", Value: f.Integer(c.Population)},
			{Label: "Area", Value: f.Decimal(c.Area) + " km²"},
			{Label: "Timezones", Value: strings.Join(c.Timezones, ", ")},
			{Label: "Languages", Value: strings.Join(c.LanguageNames(), ", ")},
			{Label: "Currencies", Value: Currencies(c)},
			{Label: "Bordering Countries", Value: Borders(c)},
			{Label: "Gini Index", Value: Gini(c)},
			{Label: "Start of Week", Value: orNA(c.StartOfWeek, c.StartOfWeek != "")},
		},
		Maps: []Link{
			{Label: "Google Maps", URL: c.Maps.GoogleMaps},
			{Label: "OpenStreetMap", URL: c.Maps.OpenStreetMaps},
		},
	}

	if !c.CoatOfArms.Empty() {
		d.CoatOfArmsURL = c.CoatOfArms.URL()
	}

	return d
}

// Currencies joins "name (symbol)" per currency, using the code when the
// symbol is missing.
func Currencies(c model.Country) string {
	codes := c.CurrencyCodes()

	parts := make([]string, 0, len(codes))
	for _, code := range codes {
		cur := c.Currencies[code]

		symbol := cur.Symbol
		if symbol == "" {
			symbol = code
		}

		parts = append(parts, cur.Name+" ("+symbol+")")
	}

	return strings.Join(parts, ", ")
}

// Borders joins the bordering country codes or returns NoBorders.
func Borders(c model.Country) string {
	if len(c.Borders) == 0 {
		return NoBorders
	}

	return strings.Join(c.Borders, ", ")
}

// Gini returns the first Gini index on record as a percentage.
func Gini(c model.Country) string {
	_, v, ok := c.FirstGini()
	if !ok {
		return NotAvailable
	}

	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func orNA(s string, ok bool) string {
	if !ok || s == "" {
		return NotAvailable
	}

	return s
}

// Value looks up a field by label.
func Value(fields []Field, label string) (string, bool) {
	for _, fl := range fields {
		if fl.Label == label {
			return fl.Value, true
		}
	}

	return "", false
}
