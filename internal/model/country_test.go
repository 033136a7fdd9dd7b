package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indonesiaJSON = `{
  "name": {
    "common": "Indonesia",
    "official": "Republic of Indonesia",
    "nativeName": {"ind": {"official": "Republik Indonesia", "common": "Indonesia"}}
  },
  "cca3": "IDN",
  "capital": ["Jakarta"],
  "region": "Asia",
  "subregion": "South-Eastern Asia",
  "languages": {"ind": "Indonesian"},
  "currencies": {"IDR": {"name": "Indonesian rupiah", "symbol": "Rp"}},
  "borders": ["TLS", "MYS", "PNG"],
  "area": 1904569,
  "population": 273523621,
  "gini": {"2019": 38.2},
  "timezones": ["UTC+07:00", "UTC+08:00", "UTC+09:00"],
  "flag": "🇮🇩",
  "flags": {"png": "https://flagcdn.com/w320/id.png", "svg": "https://flagcdn.com/id.svg"},
  "coatOfArms": {},
  "maps": {"googleMaps": "https://goo.gl/maps/9gfPupm5bffixiFJ6", "openStreetMaps": "https://www.openstreetmap.org/relation/304751"},
  "startOfWeek": "monday"
}`

func TestCountry_Decode(t *testing.T) {
	var c Country
	require.NoError(t, json.Unmarshal([]byte(indonesiaJSON), &c))

	assert.Equal(t, "IDN", c.CCA3)
	assert.Equal(t, "Indonesia", c.Name.Common)
	assert.Equal(t, int64(273523621), c.Population)
	assert.InDelta(t, 1904569.0, c.Area, 0.001)
	assert.True(t, c.CoatOfArms.Empty())
	assert.Equal(t, "https://flagcdn.com/id.svg", c.Flags.URL())
}

func TestCountry_FirstCapital(t *testing.T) {
	capital, ok := Country{Capital: []string{"Jakarta", "Nusantara"}}.FirstCapital()
	assert.True(t, ok)
	assert.Equal(t, "Jakarta", capital)

	_, ok = Country{}.FirstCapital()
	assert.False(t, ok)

	_, ok = Country{Capital: []string{""}}.FirstCapital()
	assert.False(t, ok)
}

func TestCountry_NativeOfficialName(t *testing.T) {
	c := Country{Name: Name{NativeName: map[string]NativeName{
		"ind": {Official: "Republik Indonesia"},
		"fra": {Common: "only common"},
	}}}

	name, ok := c.NativeOfficialName("ind")
	assert.True(t, ok)
	assert.Equal(t, "Republik Indonesia", name)

	_, ok = c.NativeOfficialName("fra")
	assert.False(t, ok)

	_, ok = c.NativeOfficialName("deu")
	assert.False(t, ok)
}

func TestCountry_FirstGini(t *testing.T) {
	year, value, ok := Country{Gini: map[string]float64{"2019": 38.2, "2012": 40.1}}.FirstGini()
	require.True(t, ok)
	assert.Equal(t, "2012", year)
	assert.InDelta(t, 40.1, value, 0.0001)

	_, _, ok = Country{}.FirstGini()
	assert.False(t, ok)
}

func TestCountry_OrderedMaps(t *testing.T) {
	c := Country{
		Languages:  map[string]string{"nld": "Dutch", "eng": "English", "pap": "Papiamento"},
		Currencies: map[string]Currency{"USD": {Name: "dollar"}, "EUR": {Name: "euro"}},
	}

	assert.Equal(t, []string{"English", "Dutch", "Papiamento"}, c.LanguageNames())
	assert.Equal(t, []string{"EUR", "USD"}, c.CurrencyCodes())
}

func TestCountry_MatchesName(t *testing.T) {
	c := Country{Name: Name{Common: "Iceland"}}

	assert.True(t, c.MatchesName("land"))
	assert.True(t, c.MatchesName("ice"))
	assert.True(t, c.MatchesName(""))
	assert.False(t, c.MatchesName("ICE"))
	assert.False(t, c.MatchesName("brazil"))
}
