package products

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meridian-console/meridian-console/internal/shared"
)

func TestInsertDuplicateCommonProductID(t *testing.T) {
	s := NewStore(0)
	before := s.Len()

	now := time.Now().UTC()
	_, err := s.Insert(context.Background(), Product{
		ID:              "prd-9999",
		CommonProductID: "CP-1001",
		Name:            "Field Sensor Clone",
		Category:        "hardware",
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	require.ErrorIs(t, err, shared.ErrConflict)
	require.Equal(t, before, s.Len())
}

func TestListPriceRange(t *testing.T) {
	s := NewStore(0)
	min, max := 50.0, 300.0

	page, err := s.List(context.Background(), Filter{Page: 1, PerPage: 20, PriceMin: &min, PriceMax: &max}.query())
	require.NoError(t, err)
	require.Equal(t, 2, page.Total)
	for _, p := range page.Data {
		require.GreaterOrEqual(t, p.Price, 50.0)
		require.LessOrEqual(t, p.Price, 300.0)
	}
}

func TestBulkDiscontinue(t *testing.T) {
	s := NewStore(0)

	res, err := s.Bulk(context.Background(), []string{"prd-0001", "prd-0002"}, "discontinue")
	require.NoError(t, err)
	require.Equal(t, 2, res.AffectedCount)

	got, err := s.Get(context.Background(), "prd-0001")
	require.NoError(t, err)
	require.False(t, got.IsAvailable)
}
