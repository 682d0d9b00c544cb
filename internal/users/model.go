// Package users is the fallback-aware client for console user accounts.
package users

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
)

// User represents a console user account.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Role          string     `json:"role"`
	IsActive      bool       `json:"is_active"`
	EmailVerified bool       `json:"email_verified"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Roles accepted by the backend.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleViewer  = "viewer"
)

// Filter describes a user listing query.
type Filter struct {
	Page    int
	PerPage int
	Search  string

	Roles       []string
	IsActive    *bool
	Verified    *bool
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
			query.In{Field: "role", Values: f.Roles},
			query.Bool{Field: "is_active", Value: f.IsActive},
			query.Bool{Field: "email_verified", Value: f.Verified},
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
	if len(f.Roles) > 0 {
		params.Set("role", strings.Join(f.Roles, ","))
	}
	if f.IsActive != nil {
		params.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	if f.Verified != nil {
		params.Set("email_verified", strconv.FormatBool(*f.Verified))
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
