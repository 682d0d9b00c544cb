package audit

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/meridian-console/meridian-console/internal/shared"
)

// exportPageSize uses the largest page the listing contract allows so an
// export touches as few pages as possible.
const exportPageSize = shared.MaxPerPage

// Export fetches every entry matching the filter and renders them as CSV.
// The first page establishes the page count; remaining pages are fetched
// concurrently and reassembled in order.
func (c *Client) Export(ctx context.Context, f Filter) ([]byte, error) {
	f.Page = 1
	f.PerPage = exportPageSize

	first, err := c.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("audit export: first page: %w", err)
	}

	pages := make([][]Entry, first.TotalPages)
	if first.TotalPages > 0 {
		pages[0] = first.Data
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for n := 2; n <= first.TotalPages; n++ {
		n := n
		g.Go(func() error {
			pf := f
			pf.Page = n
			page, err := c.List(gctx, pf)
			if err != nil {
				return fmt.Errorf("audit export: page %d: %w", n, err)
			}
			mu.Lock()
			pages[n-1] = page.Data
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write([]string{"id", "actor", "action", "entity", "entity_id", "ip", "at"}); err != nil {
		return nil, fmt.Errorf("audit export: write header: %w", err)
	}
	for _, page := range pages {
		for _, entry := range page {
			record := []string{
				entry.ID,
				entry.Actor,
				entry.Action,
				entry.Entity,
				entry.EntityID,
				entry.IP,
				entry.At.Format(time.RFC3339),
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("audit export: write row: %w", err)
			}
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("audit export: flush: %w", err)
	}
	return buf.Bytes(), nil
}
