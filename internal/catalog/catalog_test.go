package catalog

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inovacc/countries/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func countries(names ...string) []model.Country {
	out := make([]model.Country, len(names))
	for i, n := range names {
		out[i] = model.Country{CCA3: fmt.Sprintf("C%02d", i), Name: model.Name{Common: n}}
	}

	return out
}

func numbered(n int) []model.Country {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Country %d", i+1)
	}

	return countries(names...)
}

func commonNames(cs []model.Country) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name.Common
	}

	return out
}

func TestFilter_Land(t *testing.T) {
	all := countries("Iceland", "Ireland", "Poland", "Brazil")

	got := commonNames(Filter(all, "land"))
	want := []string{"Iceland", "Ireland", "Poland"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter(land) mismatch (-want +got):\n%s", diff)
	}
}

func TestFilter_Exactness(t *testing.T) {
	all := countries("Iceland", "Ireland", "Poland", "Brazil", "New Zealand", "Niger", "Nigeria", "")

	for _, q := range []string{"", "a", "LAND", "ni", "ger", "zz", " ", "new z"} {
		t.Run(q, func(t *testing.T) {
			got := Filter(all, q)
			lq := strings.ToLower(q)

			in := make(map[string]bool, len(got))
			for _, c := range got {
				assert.Contains(t, strings.ToLower(c.Name.Common), lq)
				in[c.CCA3] = true
			}

			for _, c := range all {
				if !in[c.CCA3] {
					assert.NotContains(t, strings.ToLower(c.Name.Common), lq)
				}
			}
		})
	}
}

func TestFilter_EmptyQueryReturnsAll(t *testing.T) {
	all := countries("Iceland", "Brazil")
	assert.Equal(t, all, Filter(all, ""))
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 12, 0},
		{1, 12, 1},
		{12, 12, 1},
		{13, 12, 2},
		{24, 12, 2},
		{250, 12, 21},
		{5, 0, 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.size), func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.n, tt.size))
		})
	}
}

func TestPaginate(t *testing.T) {
	all := numbered(13)

	assert.Len(t, Paginate(all, 1, PageSize), 12)
	assert.Equal(t, []string{"Country 13"}, commonNames(Paginate(all, 2, PageSize)))
	assert.Empty(t, Paginate(all, 3, PageSize))
	assert.Empty(t, Paginate(all, 0, PageSize))
	assert.Empty(t, Paginate(nil, 1, PageSize))
}

func TestListing_ThirteenRecords(t *testing.T) {
	l := NewListing(numbered(13))

	assert.Equal(t, 1, l.Page())
	assert.Equal(t, 2, l.TotalPages())
	assert.Len(t, l.Displayed(), 12)

	l.SelectPage(2)
	require.Len(t, l.Displayed(), 1)
	assert.Equal(t, "Country 13", l.Displayed()[0].Name.Common)
}

func TestListing_UpdateSearchResetsPage(t *testing.T) {
	l := NewListing(numbered(40))

	for _, page := range []int{1, 2, 3, 4} {
		l.SelectPage(page)
		l.UpdateSearch("Country 1")
		assert.Equal(t, 1, l.Page(), "page should reset from %d", page)
		l.UpdateSearch("")
	}
}

func TestListing_UpdateSearchLowercases(t *testing.T) {
	l := NewListing(countries("Iceland", "Ireland", "Poland", "Brazil"))

	l.UpdateSearch("LaNd")
	assert.Equal(t, "land", l.Query())
	assert.Equal(t, []string{"Iceland", "Ireland", "Poland"}, commonNames(l.Filtered()))

	l.UpdateSearch("")
	assert.Equal(t, l.All(), l.Filtered())
}

func TestListing_UpdateSearchIdempotent(t *testing.T) {
	all := countries("Iceland", "Ireland", "Poland", "Brazil")

	once := NewListing(all)
	once.UpdateSearch("ir")

	twice := NewListing(all)
	twice.UpdateSearch("ir")
	twice.UpdateSearch("ir")

	assert.Equal(t, once.Filtered(), twice.Filtered())
	assert.Equal(t, once.Page(), twice.Page())
}

func TestListing_SelectPageClips(t *testing.T) {
	l := NewListing(numbered(30))

	l.SelectPage(99)
	assert.Equal(t, 3, l.Page())

	l.SelectPage(-4)
	assert.Equal(t, 1, l.Page())

	l.NextPage()
	l.NextPage()
	l.NextPage()
	assert.Equal(t, 3, l.Page())

	l.PrevPage()
	assert.Equal(t, 2, l.Page())
}

func TestListing_NoMatches(t *testing.T) {
	l := NewListing(numbered(30))
	l.UpdateSearch("atlantis")

	assert.Equal(t, 0, l.TotalPages())
	assert.Empty(t, l.Displayed())

	l.SelectPage(5)
	assert.Equal(t, 1, l.Page())
}

func TestListing_PageInvariants(t *testing.T) {
	for _, n := range []int{1, 11, 12, 13, 25, 250} {
		l := NewListing(numbered(n))

		assert.Equal(t, (n+PageSize-1)/PageSize, l.TotalPages())

		for p := 1; p <= l.TotalPages(); p++ {
			l.SelectPage(p)
			assert.LessOrEqual(t, len(l.Displayed()), PageSize)
			assert.NotEmpty(t, l.Displayed())
		}
	}
}

func TestListing_ZeroValue(t *testing.T) {
	var l Listing

	assert.Equal(t, 1, l.Page())
	assert.Equal(t, 0, l.TotalPages())
	assert.Empty(t, l.Displayed())
}
