// Package products is the fallback-aware client for the product catalog.
package products

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
)

// Product represents a catalog entry. CommonProductID is the external
// catalog identifier and acts as the natural key.
type Product struct {
	ID              string    `json:"id"`
	CommonProductID string    `json:"common_product_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	Stock           int       `json:"stock"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Filter describes a product listing query.
type Filter struct {
	Page    int
	PerPage int
	Search  string

	Categories  []string
	IsAvailable *bool
	PriceMin    *float64
	PriceMax    *float64

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
			query.Bool{Field: "is_available", Value: f.IsAvailable},
			query.NumberRange{Field: "price", Min: f.PriceMin, Max: f.PriceMax},
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
	if f.IsAvailable != nil {
		params.Set("is_available", strconv.FormatBool(*f.IsAvailable))
	}
	if f.PriceMin != nil {
		params.Set("price_min", strconv.FormatFloat(*f.PriceMin, 'f', -1, 64))
	}
	if f.PriceMax != nil {
		params.Set("price_max", strconv.FormatFloat(*f.PriceMax, 'f', -1, 64))
	}
	if f.Sort != "" {
		params.Set("sort", f.Sort)
		if f.SortDesc {
			params.Set("order", "desc")
		}
	}
	return params
}
