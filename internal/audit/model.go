// Package audit is the read-only fallback-aware client for audit log
// entries. Audit history is owned entirely by the backend; the console can
// list and inspect entries but never writes them.
package audit

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
)

// Entry is one audit log record.
type Entry struct {
	ID       string    `json:"id"`
	Actor    string    `json:"actor"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entity_id"`
	IP       string    `json:"ip,omitempty"`
	At       time.Time `json:"at"`
}

// Filter describes an audit listing query.
type Filter struct {
	Page    int
	PerPage int
	Search  string

	Actions  []string
	Entities []string
	From     *time.Time
	To       *time.Time

	Sort     string
	SortDesc bool
}

func (f Filter) query() query.Filter {
	return query.Filter{
		Page:    f.Page,
		PerPage: f.PerPage,
		Search:  f.Search,
		Predicates: []query.Predicate{
			query.In{Field: "action", Values: f.Actions},
			query.In{Field: "entity", Values: f.Entities},
			query.TimeRange{Field: "at", From: f.From, To: f.To},
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
	if len(f.Actions) > 0 {
		params.Set("action", strings.Join(f.Actions, ","))
	}
	if len(f.Entities) > 0 {
		params.Set("entity", strings.Join(f.Entities, ","))
	}
	if f.From != nil {
		params.Set("from", f.From.Format(time.RFC3339))
	}
	if f.To != nil {
		params.Set("to", f.To.Format(time.RFC3339))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
		if f.SortDesc {
			params.Set("order", "desc")
		}
	}
	return params
}
