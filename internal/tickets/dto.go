package tickets

type CreateTicketRequest struct {
	Subject        string `json:"subject" validate:"required,max=300"`
	RequesterEmail string `json:"requester_email" validate:"required,email"`
	Priority       string `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
}

type UpdateTicketRequest struct {
	Subject  *string `json:"subject,omitempty" validate:"omitempty,max=300"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=open pending resolved closed"`
	Priority *string `json:"priority,omitempty" validate:"omitempty,oneof=low normal high urgent"`
	Assignee *string `json:"assignee,omitempty" validate:"omitempty,email"`
}
