package shared

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"oversized per page", 0, 500, 1, 100},
		{"negative page and zero per page", -5, 0, 1, 1},
		{"already valid", 3, 25, 3, 25},
		{"upper bound exact", 1, 100, 1, 100},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, perPage := NormalizePagination(tc.page, tc.perPage)
			require.Equal(t, tc.wantPage, page)
			require.Equal(t, tc.wantPerPage, perPage)
		})
	}
}

func TestRequireFieldsReportsAllMissing(t *testing.T) {
	err := RequireFields(map[string]any{
		"email": "",
		"name":  nil,
		"role":  "admin",
		"ids":   []string{},
	})
	require.Error(t, err)

	var missing *MissingParameterError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, []string{"email", "ids", "name"}, missing.Fields)
}

func TestRequireFieldsAllPresent(t *testing.T) {
	var value = "x"
	err := RequireFields(map[string]any{
		"id":    "usr-1",
		"value": &value,
		"ids":   []string{"a"},
	})
	require.NoError(t, err)
}

func TestRequireFieldsNilPointer(t *testing.T) {
	var value *string
	err := RequireFields(map[string]any{"value": value})
	require.Error(t, err)
}

func TestClassifyStatus(t *testing.T) {
	require.Equal(t, KindAuthRequired, ClassifyStatus(401))
	require.Equal(t, KindForbidden, ClassifyStatus(403))
	require.Equal(t, KindNotFound, ClassifyStatus(404))
	require.Equal(t, KindServerError, ClassifyStatus(500))
	require.Equal(t, KindServerError, ClassifyStatus(503))
	require.Equal(t, KindUnexpected, ClassifyStatus(418))
}

func TestClassifyError(t *testing.T) {
	require.Equal(t, KindNotFound, ClassifyError(ErrNotFound))
	require.Equal(t, KindNotFound, ClassifyError(fmt.Errorf("user %q: %w", "usr-9", ErrNotFound)))
	require.Equal(t, KindConflict, ClassifyError(ErrConflict))
	require.Equal(t, KindMissingParameter, ClassifyError(&MissingParameterError{Fields: []string{"id"}}))
	require.Equal(t, KindServerError, ClassifyError(&TransportError{Status: 502, Kind: KindServerError}))
}
