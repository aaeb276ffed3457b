package dto

type MessageTemplateDTO struct {
	ID      int    `json:"id"`
	Status  string `json:"status"`
	Content string `json:"content"`
}

type UpsertTemplateDTO struct {
	Status  string `json:"status" validate:"required,order_status"`
	Content string `json:"content" validate:"required"`
}

// ResolvedTemplateDTO carries the substituted message for a target status.
// Inquiries is populated only when the target status is 고객문의.
type ResolvedTemplateDTO struct {
	Status    string            `json:"status"`
	Content   string            `json:"content"`
	Inquiries map[string]string `json:"inquiries,omitempty"`
}
