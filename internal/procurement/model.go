// Package procurement is the fallback-aware client for purchase orders.
package procurement

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
)

// PurchaseOrder represents one order placed with a supplier.
type PurchaseOrder struct {
	ID          string    `json:"id"`
	PONumber    string    `json:"po_number"`
	CompanyID   string    `json:"company_id"`
	Supplier    string    `json:"supplier"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Purchase order lifecycle states.
const (
	StatusDraft     = "draft"
	StatusSubmitted = "submitted"
	StatusApproved  = "approved"
	StatusFulfilled = "fulfilled"
	StatusCancelled = "cancelled"
)

// Filter describes a purchase-order listing query.
type Filter struct {
	Page    int
	PerPage int
	Search  string

	Statuses    []string
	TotalMin    *float64
	TotalMax    *float64
	CreatedFrom *time.Time
	CreatedTo   *time.Time

	Sort     string
	SortDesc bool
}

func (f Filter) query() query.Filter {
	return query.Filter{
		Page:    f.Page,
		PerPage: f.PerPage,
		Search:  f.Search,
		Predicates: []query.Predicate{
			query.In{Field: "status", Values: f.Statuses},
			query.NumberRange{Field: "total_amount", Min: f.TotalMin, Max: f.TotalMax},
			query.TimeRange{Field: "created_at", From: f.CreatedFrom, To: f.CreatedTo},
		},
		Sort:     f.Sort,
		SortDesc: f.SortDesc,
	}
}

func (f Filter) params() url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(f.Page))
	params.Set("per_page", strconv.Itoa(f.PerPage))
	if f.Search != "" {
		params.Set("search", f.Search)
	}
	if len(f.Statuses) > 0 {
		params.Set("status", strings.Join(f.Statuses, ","))
	}
	if f.TotalMin != nil {
		params.Set("total_min", strconv.FormatFloat(*f.TotalMin, 'f', -1, 64))
	}
	if f.TotalMax != nil {
		params.Set("total_max", strconv.FormatFloat(*f.TotalMax, 'f', -1, 64))
	}
	if f.CreatedFrom != nil {
		params.Set("created_from", f.CreatedFrom.Format(time.RFC3339))
	}
	if f.CreatedTo != nil {
		params.Set("created_to", f.CreatedTo.Format(time.RFC3339))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
		if f.SortDesc {
			params.Set("order", "desc")
		}
	}
	return params
}
