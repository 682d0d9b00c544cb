package shared

import (
	"reflect"
	"sort"
)

const (
	// DefaultPerPage is used when a caller supplies no page size.
	DefaultPerPage = 20
	// MaxPerPage caps a single page regardless of what the caller asks for.
	MaxPerPage = 100
)

// NormalizePagination clamps page to >= 1 and perPage to [1, MaxPerPage].
// It is a sanitizer, not a validator: it never rejects input. The "no page
// size supplied" default lives at the HTTP boundary, where absence is
// representable; here zero simply clamps to the smallest legal page.
func NormalizePagination(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return page, perPage
}

// RequireFields checks that every named field is present and non-empty,
// returning a MissingParameterError that names all offenders at once.
func RequireFields(fields map[string]any) error {
	var missing []string
	for name, value := range fields {
		if isEmpty(value) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &MissingParameterError{Fields: missing}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	switch v := value.(type) {
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return false
}
