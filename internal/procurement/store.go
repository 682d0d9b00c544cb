package procurement

import (
	"time"

	"github.com/meridian-console/meridian-console/internal/query"
	"github.com/meridian-console/meridian-console/internal/store"
)

// NewStore builds the seeded in-memory purchase-order store.
func NewStore(latency time.Duration) *store.Store[PurchaseOrder] {
	return store.New(store.Config[PurchaseOrder]{
		Entity:     "purchase order",
		Latency:    latency,
		ID:         func(po PurchaseOrder) string { return po.ID },
		Clone:      func(po PurchaseOrder) PurchaseOrder { return po },
		NaturalKey: func(po PurchaseOrder) string { return po.PONumber },
		Schema: query.Schema[PurchaseOrder]{
			Search: []string{"po_number", "supplier"},
			Field:  purchaseOrderField,
		},
		Transitions: map[string]func(*PurchaseOrder){
			"approve": func(po *PurchaseOrder) { po.Status = StatusApproved },
			"fulfill": func(po *PurchaseOrder) { po.Status = StatusFulfilled },
			"cancel":  func(po *PurchaseOrder) { po.Status = StatusCancelled },
		},
	}, seedPurchaseOrders())
}

func purchaseOrderField(po PurchaseOrder, name string) any {
	switch name {
	case "id":
		return po.ID
	case "po_number":
		return po.PONumber
	case "company_id":
		return po.CompanyID
	case "supplier":
		return po.Supplier
	case "status":
		return po.Status
	case "total_amount":
		return po.TotalAmount
	case "currency":
		return po.Currency
	case "created_at":
		return po.CreatedAt
	case "updated_at":
		return po.UpdatedAt
	default:
		return nil
	}
}

func seedPurchaseOrders() []PurchaseOrder {
	base := time.Date(2026, 1, 8, 10, 30, 0, 0, time.UTC)
	return []PurchaseOrder{
		{ID: "po-0001", PONumber: "PO-2026-0001", CompanyID: "cmp-0001", Supplier: "Nordwind Components", Status: StatusApproved, TotalAmount: 18250.00, Currency: "EUR", CreatedAt: base, UpdatedAt: base.AddDate(0, 0, 2)},
		{ID: "po-0002", PONumber: "PO-2026-0002", CompanyID: "cmp-0002", Supplier: "Harbor Supplies", Status: StatusSubmitted, TotalAmount: 2460.75, Currency: "GBP", CreatedAt: base.AddDate(0, 0, 5), UpdatedAt: base.AddDate(0, 0, 5)},
		{ID: "po-0003", PONumber: "PO-2026-0003", CompanyID: "cmp-0001", Supplier: "Nordwind Components", Status: StatusDraft, TotalAmount: 940.00, Currency: "EUR", CreatedAt: base.AddDate(0, 0, 12), UpdatedAt: base.AddDate(0, 0, 12)},
		{ID: "po-0004", PONumber: "PO-2026-0004", CompanyID: "cmp-0005", Supplier: "Pacific Freight", Status: StatusFulfilled, TotalAmount: 67300.00, Currency: "AUD", CreatedAt: base.AddDate(0, 0, 16), UpdatedAt: base.AddDate(0, 1, 0)},
		{ID: "po-0005", PONumber: "PO-2026-0005", CompanyID: "cmp-0004", Supplier: "Verde Agro", Status: StatusCancelled, TotalAmount: 5120.40, Currency: "BRL", CreatedAt: base.AddDate(0, 1, 2), UpdatedAt: base.AddDate(0, 1, 4)},
	}
}
