// Package settings is the fallback-aware client for system settings.
// Settings form a fixed vocabulary owned by the backend: the console can
// list, inspect and change values, but never add or remove keys.
package settings

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
)

// Setting is one configuration entry.
type Setting struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	Category  string    `json:"category"`
	UpdatedBy string    `json:"updated_by,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter describes a settings listing query.
type Filter struct {
	Page    int
	PerPage int
	Search  string

	Categories []string

	Sort     string
	SortDesc bool
}

func (f Filter) query() query.Filter {
	return query.Filter{
		Page:    f.Page,
		PerPage: f.PerPage,
		Search:  f.Search,
		Predicates: []query.Predicate{
			query.In{Field: "category", Values: f.Categories},
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
	if len(f.Categories) > 0 {
		params.Set("category", strings.Join(f.Categories, ","))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
		if f.SortDesc {
			params.Set("order", "desc")
		}
	}
	return params
}

// UpdateSettingRequest changes a setting's value.
type UpdateSettingRequest struct {
	Value     *string `json:"value,omitempty"`
	UpdatedBy string  `json:"updated_by,omitempty" validate:"omitempty,email"`
}
