package procurement

type CreatePurchaseOrderRequest struct {
	PONumber    string  `json:"po_number" validate:"required,max=32"`
	CompanyID   string  `json:"company_id" validate:"required"`
	Supplier    string  `json:"supplier" validate:"required,max=200"`
	TotalAmount float64 `json:"total_amount" validate:"gte=0"`
	Currency    string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}

type UpdatePurchaseOrderRequest struct {
	Supplier    *string  `json:"supplier,omitempty" validate:"omitempty,max=200"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=draft submitted approved fulfilled cancelled"`
	TotalAmount *float64 `json:"total_amount,omitempty" validate:"omitempty,gte=0"`
	Currency    *string  `json:"currency,omitempty" validate:"omitempty,len=3"`
}
