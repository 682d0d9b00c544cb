package companies

type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Domain        string `json:"domain" validate:"required,fqdn"`
	Plan          string `json:"plan,omitempty" validate:"omitempty,oneof=free pro enterprise"`
	EmployeeCount int    `json:"employee_count,omitempty" validate:"gte=0"`
	Country       string `json:"country,omitempty" validate:"omitempty,len=2"`
}

type UpdateCompanyRequest struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Plan          *string `json:"plan,omitempty" validate:"omitempty,oneof=free pro enterprise"`
	IsActive      *bool   `json:"is_active,omitempty"`
	EmployeeCount *int    `json:"employee_count,omitempty" validate:"omitempty,gte=0"`
	Country       *string `json:"country,omitempty" validate:"omitempty,len=2"`
}
