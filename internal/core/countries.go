package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/inovacc/countries/internal/catalog"
	"github.com/inovacc/countries/internal/model"
	"github.com/inovacc/countries/internal/render"
	"github.com/inovacc/countries/internal/restcountries"
)

// CountrySource fetches country records. *restcountries.Client satisfies it.
type CountrySource interface {
	ListCountries(ctx context.Context) ([]model.Country, error)
	GetCountry(ctx context.Context, code string) (model.Country, error)
}

// NewClient builds a REST Countries client from the configuration.
func NewClient(cfg model.Config, logger *slog.Logger) (*restcountries.Client, error) {
	return restcountries.NewClient(restcountries.ClientOptions{
		BaseURL: cfg.API.URL,
		Timeout: cfg.API.Timeout,
		Logger:  logger,
	})
}

// ListOptions selects one page of the listing.
type ListOptions struct {
	Search string
	Page   int
}

// ListResult is one page of the filtered listing.
type ListResult struct {
	Query      string          `json:"query"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Matches    int             `json:"matches"`
	Countries  []model.Country `json:"countries"`
}

// ListPage fetches the collection and derives the requested page the same
// way the interactive listing does.
func ListPage(ctx context.Context, src CountrySource, opts ListOptions) (ListResult, error) {
	all, err := src.ListCountries(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to fetch countries: %w", err)
	}

	l := catalog.NewListing(all)
	l.UpdateSearch(opts.Search)

	if opts.Page > 0 {
		l.SelectPage(opts.Page)
	}

	return ListResult{
		Query:      l.Query(),
		Page:       l.Page(),
		TotalPages: l.TotalPages(),
		Matches:    len(l.Filtered()),
		Countries:  l.Displayed(),
	}, nil
}

// PrintListing writes one page of cards as plain text.
func PrintListing(w io.Writer, f render.Formatter, res ListResult) {
	if len(res.Countries) == 0 {
		_, _ = fmt.Fprintf(w, "No countries match %q.\n", res.Query)
		return
	}

	for _, c := range res.Countries {
		card := f.Card(c)

		_, _ = fmt.Fprintf(w, "%s  %s %s\n", card.Code, card.Flag, card.Name)

		for _, fl := range card.Fields {
			_, _ = fmt.Fprintf(w, "     %-11s %s\n", fl.Label+":", fl.Value)
		}
	}

	if res.TotalPages > 1 {
		_, _ = fmt.Fprintf(w, "\nPage %d of %d (%d countries)\n", res.Page, res.TotalPages, res.Matches)
	}
}

// PrintDetail writes the detail view as plain text.
func PrintDetail(w io.Writer, d render.Detail) {
	_, _ = fmt.Fprintln(w, strings.ToUpper(d.Title))
	_, _ = fmt.Fprintf(w, "%-20s %s %s\n", "Flag:", d.Flag, d.FlagURL)

	if d.CoatOfArmsURL != "" {
		_, _ = fmt.Fprintf(w, "%-20s %s\n", "Coat of Arms:", d.CoatOfArmsURL)
	}

	for _, fl := range d.Fields {
		_, _ = fmt.Fprintf(w, "%-20s %s\n", fl.Label+":", fl.Value)
	}

	for _, l := range d.Maps {
		_, _ = fmt.Fprintf(w, "%-20s %s\n", l.Label+":", l.URL)
	}
}
