// Package model defines the data structures used throughout countries.
//
// The types mirror the JSON documents served by the REST Countries API so
// they can be decoded directly by the restcountries package and passed
// unchanged to the catalog and render packages.
//
// # Country
//
// The [Country] struct is one record, keyed by its alpha-3 code:
//
//	type Country struct {
//	    CCA3       string   // Route identifier, e.g. "IDN"
//	    Name       Name     // Common, official and native names
//	    Region     string   // Continent-level region
//	    Subregion  string   // Optional
//	    Capital    []string // Optional, first entry is displayed
//	    Population int64
//	    Area       float64  // Square kilometres
//	    ...
//	}
//
// Optional API fields stay at their zero value when absent. Accessors such
// as [Country.FirstCapital] and [Country.FirstGini] report presence with a
// boolean so callers can substitute their own fallback text.
package model
