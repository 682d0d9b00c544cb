package products

type CreateProductRequest struct {
	CommonProductID string  `json:"common_product_id" validate:"required,max=64"`
	Name            string  `json:"name" validate:"required,max=200"`
	Category        string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Price           float64 `json:"price" validate:"gte=0"`
	Stock           int     `json:"stock,omitempty" validate:"gte=0"`
}

type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Category    *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Price       *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int     `json:"stock,omitempty" validate:"omitempty,gte=0"`
	IsAvailable *bool    `json:"is_available,omitempty"`
}
