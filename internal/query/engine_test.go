package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type item struct {
	ID       string
	Name     string
	Group    string
	Active   bool
	Score    float64
	SeenAt   *time.Time
	Created  time.Time
	Position int
}

var itemSchema = Schema[item]{
	Search: []string{"name", "id"},
	Field: func(rec item, name string) any {
		switch name {
		case "id":
			return rec.ID
		case "name":
			return rec.Name
		case "group":
			return rec.Group
		case "active":
			return rec.Active
		case "score":
			return rec.Score
		case "seen_at":
			if rec.SeenAt == nil {
				return nil
			}
			return *rec.SeenAt
		case "created_at":
			return rec.Created
		case "position":
			return rec.Position
		default:
			return nil
		}
	},
}

func ptr[T any](v T) *T { return &v }

func fixtures() []item {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := base.AddDate(0, 0, 30)
	return []item{
		{ID: "a", Name: "Alpha Unit", Group: "red", Active: true, Score: 10, SeenAt: &seen, Created: base, Position: 1},
		{ID: "b", Name: "beta unit", Group: "blue", Active: false, Score: 30, Created: base.AddDate(0, 0, 1), Position: 2},
		{ID: "c", Name: "Gamma", Group: "red", Active: true, Score: 20, Created: base.AddDate(0, 0, 2), Position: 3},
		{ID: "d", Name: "Delta", Group: "green", Active: false, Score: 20, Created: base.AddDate(0, 0, 3), Position: 4},
	}
}

func TestSearchIsCaseInsensitiveSubstring(t *testing.T) {
	page := Apply(fixtures(), Filter{Search: "  UNIT ", PerPage: 20}, itemSchema)
	require.Equal(t, 2, page.Total)
	require.Equal(t, "a", page.Data[0].ID)
	require.Equal(t, "b", page.Data[1].ID)
}

func TestSearchBlankIsNoop(t *testing.T) {
	page := Apply(fixtures(), Filter{Search: "   ", PerPage: 20}, itemSchema)
	require.Equal(t, 4, page.Total)
}

func TestEnumPredicate(t *testing.T) {
	f := Filter{PerPage: 20, Predicates: []Predicate{In{Field: "group", Values: []string{"red"}}}}
	page := Apply(fixtures(), f, itemSchema)
	require.Equal(t, 2, page.Total)

	// Empty value set passes everything through.
	page = Apply(fixtures(), Filter{PerPage: 20, Predicates: []Predicate{In{Field: "group"}}}, itemSchema)
	require.Equal(t, 4, page.Total)
}

func TestBoolPredicate(t *testing.T) {
	f := Filter{PerPage: 20, Predicates: []Predicate{Bool{Field: "active", Value: ptr(false)}}}
	page := Apply(fixtures(), f, itemSchema)
	require.Equal(t, 2, page.Total)

	page = Apply(fixtures(), Filter{PerPage: 20, Predicates: []Predicate{Bool{Field: "active"}}}, itemSchema)
	require.Equal(t, 4, page.Total)
}

func TestNumberRangeInclusive(t *testing.T) {
	f := Filter{PerPage: 20, Predicates: []Predicate{NumberRange{Field: "score", Min: ptr(20.0), Max: ptr(30.0)}}}
	page := Apply(fixtures(), f, itemSchema)
	require.Equal(t, 3, page.Total)

	// Non-numeric field values are excluded once a bound is supplied.
	f = Filter{PerPage: 20, Predicates: []Predicate{NumberRange{Field: "name", Min: ptr(0.0)}}}
	page = Apply(fixtures(), f, itemSchema)
	require.Equal(t, 0, page.Total)
}

func TestTimeRangeExcludesMissingValues(t *testing.T) {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	f := Filter{PerPage: 20, Predicates: []Predicate{TimeRange{Field: "seen_at", From: &from}}}
	page := Apply(fixtures(), f, itemSchema)
	require.Equal(t, 1, page.Total)
	require.Equal(t, "a", page.Data[0].ID)
}

func TestPredicatesComposeOrderIndependently(t *testing.T) {
	a := []Predicate{
		In{Field: "group", Values: []string{"red", "green"}},
		Bool{Field: "active", Value: ptr(true)},
	}
	b := []Predicate{a[1], a[0]}
	first := Apply(fixtures(), Filter{PerPage: 20, Predicates: a}, itemSchema)
	second := Apply(fixtures(), Filter{PerPage: 20, Predicates: b}, itemSchema)
	require.Equal(t, first, second)
	require.Equal(t, 2, first.Total)
}

func TestFilterIdempotence(t *testing.T) {
	f := Filter{PerPage: 20, Predicates: []Predicate{In{Field: "group", Values: []string{"red"}}}}
	once := Apply(fixtures(), f, itemSchema)
	twice := Apply(once.Data, f, itemSchema)
	require.Equal(t, once.Data, twice.Data)
	require.Equal(t, once.Total, twice.Total)
}

func TestSortStability(t *testing.T) {
	// c and d share score 20; equal keys must keep their original
	// relative order in both directions.
	records := fixtures()
	asc := Apply(records, Filter{PerPage: 20, Sort: "score"}, itemSchema)
	require.Equal(t, []string{"a", "c", "d", "b"}, ids(asc.Data))

	desc := Apply(records, Filter{PerPage: 20, Sort: "score", SortDesc: true}, itemSchema)
	require.Equal(t, []string{"b", "c", "d", "a"}, ids(desc.Data))
}

func TestSortNilsAlwaysLast(t *testing.T) {
	asc := Apply(fixtures(), Filter{PerPage: 20, Sort: "seen_at"}, itemSchema)
	require.Equal(t, "a", asc.Data[0].ID)

	desc := Apply(fixtures(), Filter{PerPage: 20, Sort: "seen_at", SortDesc: true}, itemSchema)
	require.Equal(t, "a", desc.Data[0].ID)
}

func TestSortStrings(t *testing.T) {
	page := Apply(fixtures(), Filter{PerPage: 20, Sort: "name"}, itemSchema)
	require.Equal(t, []string{"a", "b", "d", "c"}, ids(page.Data))
}

func TestPaginationInvariants(t *testing.T) {
	records := make([]item, 0, 25)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		records = append(records, item{ID: string(rune('a' + i)), Name: "n", Created: base.AddDate(0, 0, i)})
	}

	seen := 0
	for page := 1; ; page++ {
		out := Apply(records, Filter{Page: page, PerPage: 10}, itemSchema)
		require.LessOrEqual(t, len(out.Data), 10)
		require.Equal(t, 25, out.Total)
		require.Equal(t, 3, out.TotalPages)
		seen += len(out.Data)
		if page >= out.TotalPages {
			break
		}
	}
	require.Equal(t, 25, seen)
}

func TestPaginationEmptySet(t *testing.T) {
	out := Apply(nil, Filter{Page: 1, PerPage: 10}, itemSchema)
	require.Equal(t, 0, out.Total)
	require.Equal(t, 0, out.TotalPages)
	require.Empty(t, out.Data)
}

func TestPaginationPageBeyondRange(t *testing.T) {
	out := Apply(fixtures(), Filter{Page: 9, PerPage: 10}, itemSchema)
	require.Equal(t, 4, out.Total)
	require.Equal(t, 1, out.TotalPages)
	require.Empty(t, out.Data)
	require.Equal(t, 9, out.Page)
}

func TestFilterRunsBeforeSortAndPagination(t *testing.T) {
	f := Filter{
		Predicates: []Predicate{In{Field: "group", Values: []string{"red", "blue"}}},
		Sort:       "score",
		SortDesc:   true,
		Page:       1,
		PerPage:    2,
	}
	out := Apply(fixtures(), f, itemSchema)
	require.Equal(t, 3, out.Total)
	require.Equal(t, 2, out.TotalPages)
	require.Equal(t, []string{"b", "c"}, ids(out.Data))
}

func ids(data []item) []string {
	out := make([]string, 0, len(data))
	for _, rec := range data {
		out = append(out, rec.ID)
	}
	return out
}
