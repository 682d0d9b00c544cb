package companies

import (
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/store"
)

// NewStore builds the seeded in-memory company store.
func NewStore(latency time.Duration) *store.Store[Company] {
	return store.New(store.Config[Company]{
		Entity:     "company",
		Latency:    latency,
		ID:         func(c Company) string { return c.ID },
		Clone:      func(c Company) Company { return c },
		NaturalKey: func(c Company) string { return c.Domain },
		Schema: query.Schema[Company]{
			Search: []string{"name", "domain"},
			Field:  companyField,
		},
		Transitions: map[string]func(*Company){
			"activate":   func(c *Company) { c.IsActive = true },
			"deactivate": func(c *Company) { c.IsActive = false },
			"verify":     func(c *Company) { c.IsVerified = true },
		},
	}, seedCompanies())
}

func companyField(c Company, name string) any {
	switch name {
	case "id":
		return c.ID
	case "name":
		return c.Name
	case "domain":
		return c.Domain
	case "plan":
		return c.Plan
	case "is_active":
		return c.IsActive
	case "is_verified":
		return c.IsVerified
	case "employee_count":
		return c.EmployeeCount
	case "country":
		return c.Country
	case "created_at":
		return c.CreatedAt
	case "updated_at":
		return c.UpdatedAt
	default:
		return nil
	}
}

func seedCompanies() []Company {
	base := time.Date(2025, 9, 15, 8, 0, 0, 0, time.UTC)
	return []Company{
		{ID: "cmp-0001", Name: "Aurora Logistics", Domain: "aurora-logistics.test", Plan: PlanEnterprise, IsActive: true, IsVerified: true, EmployeeCount: 1250, Country: "DE", CreatedAt: base, UpdatedAt: base},
		{ID: "cmp-0002", Name: "Brightway Retail", Domain: "brightway.test", Plan: PlanPro, IsActive: true, IsVerified: true, EmployeeCount: 340, Country: "GB", CreatedAt: base.AddDate(0, 0, 9), UpdatedAt: base.AddDate(0, 1, 2)},
		{ID: "cmp-0003", Name: "Cobalt Analytics", Domain: "cobalt-analytics.test", Plan: PlanFree, IsActive: false, IsVerified: false, EmployeeCount: 18, Country: "US", CreatedAt: base.AddDate(0, 1, 0), UpdatedAt: base.AddDate(0, 1, 0)},
		{ID: "cmp-0004", Name: "Delta Foods", Domain: "deltafoods.test", Plan: PlanPro, IsActive: true, IsVerified: false, EmployeeCount: 96, Country: "BR", CreatedAt: base.AddDate(0, 1, 18), UpdatedAt: base.AddDate(0, 2, 3)},
		{ID: "cmp-0005", Name: "Everest Mining", Domain: "everest-mining.test", Plan: PlanEnterprise, IsActive: true, IsVerified: true, EmployeeCount: 4100, Country: "AU", CreatedAt: base.AddDate(0, 2, 1), UpdatedAt: base.AddDate(0, 2, 1)},
	}
}
