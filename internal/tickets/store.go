package tickets

import (
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/store"
)

// NewStore builds the seeded in-memory ticket store. Tickets have no natural
// key: duplicate subjects from the same requester are legitimate.
func NewStore(latency time.Duration) *store.Store[Ticket] {
	return store.New(store.Config[Ticket]{
		Entity:  "ticket",
		Latency: latency,
		ID:      func(t Ticket) string { return t.ID },
		Clone:   cloneTicket,
		Schema: query.Schema[Ticket]{
			Search: []string{"subject", "requester_email"},
			Field:  ticketField,
		},
		Transitions: map[string]func(*Ticket){
			"escalate": func(t *Ticket) { t.Priority = PriorityUrgent },
			"resolve":  func(t *Ticket) { t.Status = StatusResolved },
			"close":    func(t *Ticket) { t.Status = StatusClosed },
			"reopen":   func(t *Ticket) { t.Status = StatusOpen },
		},
	}, seedTickets())
}

func cloneTicket(t Ticket) Ticket {
	out := t
	if t.Assignee != nil {
		assignee := *t.Assignee
		out.Assignee = &assignee
	}
	return out
}

func ticketField(t Ticket, name string) any {
	switch name {
	case "id":
		return t.ID
	case "subject":
		return t.Subject
	case "requester_email":
		return t.RequesterEmail
	case "status":
		return t.Status
	case "priority":
		return t.Priority
	case "assignee":
		if t.Assignee == nil {
			return nil
		}
		return *t.Assignee
	case "created_at":
		return t.CreatedAt
	case "updated_at":
		return t.UpdatedAt
	default:
		return nil
	}
}

func seedTickets() []Ticket {
	base := time.Date(2026, 2, 2, 14, 0, 0, 0, time.UTC)
	agent := "ben.okafor@meridian.test"
	return []Ticket{
		{ID: "tkt-0001", Subject: "Cannot export purchase orders", RequesterEmail: "carla.ruiz@aurora-logistics.test", Status: StatusOpen, Priority: PriorityHigh, Assignee: &agent, CreatedAt: base, UpdatedAt: base},
		{ID: "tkt-0002", Subject: "Billing address out of date", RequesterEmail: "finance@brightway.test", Status: StatusPending, Priority: PriorityNormal, CreatedAt: base.AddDate(0, 0, 1), UpdatedAt: base.AddDate(0, 0, 3)},
		{ID: "tkt-0003", Subject: "API tokens expiring early", RequesterEmail: "ops@cobalt-analytics.test", Status: StatusOpen, Priority: PriorityUrgent, CreatedAt: base.AddDate(0, 0, 4), UpdatedAt: base.AddDate(0, 0, 4)},
		{ID: "tkt-0004", Subject: "Add SSO for managers", RequesterEmail: "it@deltafoods.test", Status: StatusResolved, Priority: PriorityLow, Assignee: &agent, CreatedAt: base.AddDate(0, 0, 8), UpdatedAt: base.AddDate(0, 0, 15)},
		{ID: "tkt-0005", Subject: "Dashboard loads blank page", RequesterEmail: "support@everest-mining.test", Status: StatusClosed, Priority: PriorityNormal, CreatedAt: base.AddDate(0, 0, 10), UpdatedAt: base.AddDate(0, 0, 20)},
	}
}
