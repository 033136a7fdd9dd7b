// Package catalog derives the visible part of the country listing from the
// full collection, a search string and a page index.
package catalog

import (
	"strings"

	"github.com/inovacc/countries/internal/model"
)

// PageSize is the number of countries shown per page.
const PageSize = 12

// Filter returns the countries whose lower-cased common name contains the
// lower-cased query. An empty query returns all unchanged.
func Filter(all []model.Country, query string) []model.Country {
	query = strings.ToLower(query)
	if query == "" {
		return all
	}

	out := make([]model.Country, 0, len(all))
	for _, c := range all {
		if c.MatchesName(query) {
			out = append(out, c)
		}
	}

	return out
}

// TotalPages returns ceil(n/size). Zero items means zero pages.
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}

	return (n + size - 1) / size
}

// Paginate returns the 1-based page of records, clipped to what is
// available. Pages outside the range yield an empty slice.
func Paginate(records []model.Country, page, size int) []model.Country {
	if page < 1 || size <= 0 {
		return nil
	}

	start := (page - 1) * size
	if start >= len(records) {
		return nil
	}

	end := min(start+size, len(records))

	return records[start:end]
}

// Listing is the mutable state of the listing screen once the collection
// has been loaded. The zero value is an empty listing on page 1.
type Listing struct {
	all      []model.Country
	filtered []model.Country
	query    string
	page     int
}

// NewListing returns a listing over all with no query on page 1.
func NewListing(all []model.Country) Listing {
	return Listing{
		all:      all,
		filtered: all,
		page:     1,
	}
}

// UpdateSearch stores the lower-cased text as the query, recomputes the
// filtered set and returns to page 1.
func (l *Listing) UpdateSearch(text string) {
	l.query = strings.ToLower(text)
	l.filtered = Filter(l.all, l.query)
	l.page = 1
}

// SelectPage moves to page n, clipped to [1, max(TotalPages, 1)].
func (l *Listing) SelectPage(n int) {
	last := max(l.TotalPages(), 1)

	switch {
	case n < 1:
		n = 1
	case n > last:
		n = last
	}

	l.page = n
}

// NextPage advances one page, staying on the last page.
func (l *Listing) NextPage() { l.SelectPage(l.Page() + 1) }

// PrevPage goes back one page, staying on the first page.
func (l *Listing) PrevPage() { l.SelectPage(l.Page() - 1) }

func (l Listing) Query() string { return l.query }

// Page returns the current 1-based page.
func (l Listing) Page() int {
	if l.page < 1 {
		return 1
	}

	return l.page
}

func (l Listing) All() []model.Country { return l.all }

func (l Listing) Filtered() []model.Country {
	if l.filtered == nil && l.query == "" {
		return l.all
	}

	return l.filtered
}

// Displayed returns the slice of the filtered set on the current page.
func (l Listing) Displayed() []model.Country {
	return Paginate(l.Filtered(), l.Page(), PageSize)
}

func (l Listing) TotalPages() int {
	return TotalPages(len(l.Filtered()), PageSize)
}
