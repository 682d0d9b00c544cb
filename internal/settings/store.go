package settings

import (
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/store"
)

// NewStore builds the seeded in-memory settings store.
func NewStore(latency time.Duration) *store.Store[Setting] {
	return store.New(store.Config[Setting]{
		Entity:     "setting",
		Latency:    latency,
		ID:         func(s Setting) string { return s.ID },
		Clone:      func(s Setting) Setting { return s },
		NaturalKey: func(s Setting) string { return s.Key },
		Schema: query.Schema[Setting]{
			Search: []string{"key", "value"},
			Field:  settingField,
		},
	}, seedSettings())
}

func settingField(s Setting, name string) any {
	switch name {
	case "id":
		return s.ID
	case "key":
		return s.Key
	case "value":
		return s.Value
	case "category":
		return s.Category
	case "updated_by":
		return s.UpdatedBy
	case "updated_at":
		return s.UpdatedAt
	default:
		return nil
	}
}

func seedSettings() []Setting {
	base := time.Date(2026, 1, 20, 16, 0, 0, 0, time.UTC)
	return []Setting{
		{ID: "set-0001", Key: "billing.invoice_prefix", Value: "MC", Category: "billing", UpdatedBy: "ana.silva@meridian.test", UpdatedAt: base},
		{ID: "set-0002", Key: "billing.grace_period_days", Value: "14", Category: "billing", UpdatedBy: "ana.silva@meridian.test", UpdatedAt: base.AddDate(0, 0, 3)},
		{ID: "set-0003", Key: "support.auto_close_days", Value: "30", Category: "support", UpdatedAt: base.AddDate(0, 0, 7)},
		{ID: "set-0004", Key: "security.session_ttl_hours", Value: "720", Category: "security", UpdatedBy: "ana.silva@meridian.test", UpdatedAt: base.AddDate(0, 0, 12)},
		{ID: "set-0005", Key: "catalog.default_currency", Value: "USD", Category: "catalog", UpdatedAt: base.AddDate(0, 1, 0)},
	}
}
