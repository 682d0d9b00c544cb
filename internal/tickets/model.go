// Package tickets is the fallback-aware client for support tickets.
package tickets

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
)

// Ticket represents a support request.
type Ticket struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	RequesterEmail string    `json:"requester_email"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	Assignee       *string   `json:"assignee,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

const (
	StatusOpen     = "open"
	StatusPending  = "pending"
	StatusResolved = "resolved"
	StatusClosed   = "closed"
)

const (
	PriorityLow    = "low"
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Filter describes a ticket listing query.
type Filter struct {
	Page    int
	PerPage int
	Search  string

	Statuses    []string
	Priorities  []string
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
			query.In{Field: "priority", Values: f.Priorities},
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
	if len(f.Priorities) > 0 {
		params.Set("priority", strings.Join(f.Priorities, ","))
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
