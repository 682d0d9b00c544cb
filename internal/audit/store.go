package audit

import (
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/store"
)

// NewStore builds the seeded in-memory audit store. The fallback path only
// ever reads it, so it carries no transitions and no natural key.
func NewStore(latency time.Duration) *store.Store[Entry] {
	return store.New(store.Config[Entry]{
		Entity:  "audit entry",
		Latency: latency,
		ID:      func(e Entry) string { return e.ID },
		Clone:   func(e Entry) Entry { return e },
		Schema: query.Schema[Entry]{
			Search: []string{"actor", "action", "entity_id"},
			Field:  entryField,
		},
	}, seedEntries())
}

func entryField(e Entry, name string) any {
	switch name {
	case "id":
		return e.ID
	case "actor":
		return e.Actor
	case "action":
		return e.Action
	case "entity":
		return e.Entity
	case "entity_id":
		return e.EntityID
	case "ip":
		return e.IP
	case "at":
		return e.At
	default:
		return nil
	}
}

func seedEntries() []Entry {
	base := time.Date(2026, 3, 1, 7, 45, 0, 0, time.UTC)
	return []Entry{
		{ID: "aud-0001", Actor: "ana.silva@meridian.test", Action: "user.create", Entity: "user", EntityID: "usr-0006", IP: "10.4.1.20", At: base},
		{ID: "aud-0002", Actor: "ana.silva@meridian.test", Action: "user.deactivate", Entity: "user", EntityID: "usr-0004", IP: "10.4.1.20", At: base.Add(26 * time.Minute)},
		{ID: "aud-0003", Actor: "ben.okafor@meridian.test", Action: "po.approve", Entity: "purchase_order", EntityID: "po-0001", IP: "10.4.2.7", At: base.Add(2 * time.Hour)},
		{ID: "aud-0004", Actor: "emi.tanaka@meridian.test", Action: "product.update", Entity: "product", EntityID: "prd-0003", IP: "10.4.3.15", At: base.Add(5 * time.Hour)},
		{ID: "aud-0005", Actor: "ben.okafor@meridian.test", Action: "ticket.escalate", Entity: "ticket", EntityID: "tkt-0003", IP: "10.4.2.7", At: base.Add(28 * time.Hour)},
		{ID: "aud-0006", Actor: "ana.silva@meridian.test", Action: "setting.update", Entity: "setting", EntityID: "set-0002", IP: "10.4.1.20", At: base.Add(49 * time.Hour)},
	}
}
