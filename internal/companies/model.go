// Package companies is the fallback-aware client for customer companies.
package companies

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
)

// Company represents a customer organization.
type Company struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Domain        string    `json:"domain"`
	Plan          string    `json:"plan"`
	IsActive      bool      `json:"is_active"`
	IsVerified    bool      `json:"is_verified"`
	EmployeeCount int       `json:"employee_count"`
	Country       string    `json:"country"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// Filter describes a company listing query.
type Filter struct {
	Page    int
	PerPage int
	Search  string

	Plans       []string
	IsActive    *bool
	EmployeeMin *float64
	EmployeeMax *float64
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
			query.In{Field: "plan", Values: f.Plans},
			query.Bool{Field: "is_active", Value: f.IsActive},
			query.NumberRange{Field: "employee_count", Min: f.EmployeeMin, Max: f.EmployeeMax},
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
	if len(f.Plans) > 0 {
		params.Set("plan", strings.Join(f.Plans, ","))
	}
	if f.IsActive != nil {
		params.Set("is_active", strconv.FormatBool(*f.IsActive))
	}
	if f.EmployeeMin != nil {
		params.Set("employees_min", strconv.FormatFloat(*f.EmployeeMin, 'f', -1, 64))
	}
	if f.EmployeeMax != nil {
		params.Set("employees_max", strconv.FormatFloat(*f.EmployeeMax, 'f', -1, 64))
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
