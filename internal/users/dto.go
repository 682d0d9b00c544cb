package users

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=200"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin manager viewer"`
	IsActive *bool  `json:"is_active,omitempty"`
}

type UpdateUserRequest struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty" validate:"omitempty,max=200"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin manager viewer"`
	IsActive *bool   `json:"is_active,omitempty"`
}
