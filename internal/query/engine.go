package query

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/meridian-console/meridian-console/internal/shared"
)

// Apply filters, then sorts, then paginates records and returns one page.
// It is pure: records and the filter are never mutated, and the same input
// always yields the same output.
func Apply[T any](records []T, f Filter, schema Schema[T]) Page[T] {
	kept := make([]T, 0, len(records))
	for _, rec := range records {
		if matches(rec, f, schema) {
			kept = append(kept, rec)
		}
	}

	if f.Sort != "" {
		sortRecords(kept, f, schema)
	}

	page, perPage := shared.NormalizePagination(f.Page, f.PerPage)
	total := len(kept)
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))

	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}

	return Page[T]{
		Data:       kept[start:end],
		Total:      total,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

func matches[T any](rec T, f Filter, schema Schema[T]) bool {
	if !matchSearch(rec, f.Search, schema) {
		return false
	}
	for _, p := range f.Predicates {
		if !matchPredicate(rec, p, schema) {
			return false
		}
	}
	return true
}

func matchSearch[T any](rec T, search string, schema Schema[T]) bool {
	needle := strings.ToLower(strings.TrimSpace(search))
	if needle == "" {
		return true
	}
	for _, field := range schema.Search {
		value := schema.Field(rec, field)
		if value == nil {
			continue
		}
		if strings.Contains(strings.ToLower(stringify(value)), needle) {
			return true
		}
	}
	return false
}

func matchPredicate[T any](rec T, p Predicate, schema Schema[T]) bool {
	switch pred := p.(type) {
	case In:
		if len(pred.Values) == 0 {
			return true
		}
		value := schema.Field(rec, pred.Field)
		if value == nil {
			return false
		}
		text := stringify(value)
		for _, candidate := range pred.Values {
			if text == candidate {
				return true
			}
		}
		return false
	case Bool:
		if pred.Value == nil {
			return true
		}
		value, ok := schema.Field(rec, pred.Field).(bool)
		return ok && value == *pred.Value
	case NumberRange:
		if pred.Min == nil && pred.Max == nil {
			return true
		}
		number, ok := asNumber(schema.Field(rec, pred.Field))
		if !ok {
			return false
		}
		if pred.Min != nil && number < *pred.Min {
			return false
		}
		if pred.Max != nil && number > *pred.Max {
			return false
		}
		return true
	case TimeRange:
		if pred.From == nil && pred.To == nil {
			return true
		}
		ts, ok := asTime(schema.Field(rec, pred.Field))
		if !ok {
			return false
		}
		if pred.From != nil && ts.Before(*pred.From) {
			return false
		}
		if pred.To != nil && ts.After(*pred.To) {
			return false
		}
		return true
	default:
		return true
	}
}

// sortRecords orders kept in place. SliceStable preserves the relative
// order of equal keys, and nil values sort last in both directions.
func sortRecords[T any](kept []T, f Filter, schema Schema[T]) {
	col := collate.New(language.Und)
	sort.SliceStable(kept, func(i, j int) bool {
		a := schema.Field(kept[i], f.Sort)
		b := schema.Field(kept[j], f.Sort)
		if a == nil || b == nil {
			return b == nil && a != nil
		}
		cmp := compareValues(col, a, b)
		if f.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func compareValues(col *collate.Collator, a, b any) int {
	if at, ok := asTime(a); ok {
		if bt, ok := asTime(b); ok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			default:
				return 0
			}
		}
	}
	if an, ok := asNumber(a); ok {
		if bn, ok := asNumber(b); ok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			default:
				return 0
			}
		}
	}
	return col.CompareString(stringify(a), stringify(b))
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

func asNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func asTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v, true
	case *time.Time:
		if v == nil {
			return time.Time{}, false
		}
		return *v, true
	case string:
		ts, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, false
		}
		return ts, true
	default:
		return time.Time{}, false
	}
}
