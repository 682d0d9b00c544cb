package products

import (
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/store"
)

// NewStore builds the seeded in-memory product store.
func NewStore(latency time.Duration) *store.Store[Product] {
	return store.New(store.Config[Product]{
		Entity:     "product",
		Latency:    latency,
		ID:         func(p Product) string { return p.ID },
		Clone:      func(p Product) Product { return p },
		NaturalKey: func(p Product) string { return p.CommonProductID },
		Schema: query.Schema[Product]{
			Search: []string{"name", "common_product_id"},
			Field:  productField,
		},
		Transitions: map[string]func(*Product){
			"publish":     func(p *Product) { p.IsAvailable = true },
			"discontinue": func(p *Product) { p.IsAvailable = false },
		},
	}, seedProducts())
}

func productField(p Product, name string) any {
	switch name {
	case "id":
		return p.ID
	case "common_product_id":
		return p.CommonProductID
	case "name":
		return p.Name
	case "category":
		return p.Category
	case "price":
		return p.Price
	case "stock":
		return p.Stock
	case "is_available":
		return p.IsAvailable
	case "created_at":
		return p.CreatedAt
	case "updated_at":
		return p.UpdatedAt
	default:
		return nil
	}
}

func seedProducts() []Product {
	base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	return []Product{
		{ID: "prd-0001", CommonProductID: "CP-1001", Name: "Field Sensor Mk II", Category: "hardware", Price: 249.90, Stock: 180, IsAvailable: true, CreatedAt: base, UpdatedAt: base},
		{ID: "prd-0002", CommonProductID: "CP-1002", Name: "Telemetry Hub", Category: "hardware", Price: 1190.00, Stock: 42, IsAvailable: true, CreatedAt: base.AddDate(0, 0, 6), UpdatedAt: base.AddDate(0, 0, 6)},
		{ID: "prd-0003", CommonProductID: "CP-2001", Name: "Fleet Analytics Suite", Category: "software", Price: 89.00, Stock: 0, IsAvailable: true, CreatedAt: base.AddDate(0, 0, 20), UpdatedAt: base.AddDate(0, 1, 1)},
		{ID: "prd-0004", CommonProductID: "CP-2002", Name: "Legacy Sync Adapter", Category: "software", Price: 39.50, Stock: 0, IsAvailable: false, CreatedAt: base.AddDate(0, 1, 3), UpdatedAt: base.AddDate(0, 1, 3)},
		{ID: "prd-0005", CommonProductID: "CP-3001", Name: "Onboarding Service", Category: "services", Price: 1500.00, Stock: 9999, IsAvailable: true, CreatedAt: base.AddDate(0, 1, 15), UpdatedAt: base.AddDate(0, 1, 15)},
	}
}
