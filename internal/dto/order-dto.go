package dto

// OrderDTO is the list/detail representation of an order.
type OrderDTO struct {
	ID               int      `json:"id"`
	ReceivedAt       string   `json:"received_at"`
	CustomerName     string   `json:"customer_name"`
	Nickname         string   `json:"nickname,omitempty"`
	Phone            string   `json:"phone"`
	NaverID          string   `json:"naver_id,omitempty"`
	Area             string   `json:"area"`
	WorkContent      string   `json:"work_content"`
	ConstructionType string   `json:"construction_type,omitempty"`
	ScheduledDate    string   `json:"scheduled_date,omitempty"`
	Designation      string   `json:"designation,omitempty"`
	DesignationType  string   `json:"designation_type"`
	AssignedCompany  string   `json:"assigned_company,omitempty"`
	Status           string   `json:"status"`
	StatusColor      string   `json:"status_color"`
	AllowedNext      []string `json:"allowed_next"`
	ReRequestCount   int      `json:"re_request_count"`
	PostLink         string   `json:"post_link,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

type CreateOrderDTO struct {
	CustomerName     string `json:"customer_name" validate:"required"`
	Nickname         string `json:"nickname"`
	Phone            string `json:"phone" validate:"required,kr_phone"`
	NaverID          string `json:"naver_id"`
	Area             string `json:"area" validate:"required"`
	WorkContent      string `json:"work_content" validate:"required"`
	ConstructionType string `json:"construction_type"`
	ScheduledDate    string `json:"scheduled_date" validate:"omitempty,datetime=2006-01-02"`
	Designation      string `json:"designation"`
	DesignationType  string `json:"designation_type" validate:"omitempty,designation_type"`
	PostLink         string `json:"post_link" validate:"http_url_or_empty"`
}

type UpdateStatusDTO struct {
	Status         string `json:"status" validate:"required,order_status"`
	MessageSent    bool   `json:"message_sent"`
	MessageContent string `json:"message_content"`
	Recipient      string `json:"recipient" validate:"omitempty,recipient"`
}

type UpdateFieldDTO struct {
	FieldName  string `json:"field_name" validate:"required"`
	FieldLabel string `json:"field_label"`
	NewValue   string `json:"new_value"`
}

type AddMemoDTO struct {
	Content string `json:"content" validate:"required"`
}

type AddQuoteLinkDTO struct {
	DraftType string `json:"draft_type"`
	Link      string `json:"link" validate:"required,http_url_or_empty"`
}

type BulkDeleteDTO struct {
	OrderIDs []int `json:"order_ids" validate:"required,min=1"`
}

type AssignCompaniesDTO struct {
	OrderID    int   `json:"order_id" validate:"required"`
	CompanyIDs []int `json:"company_ids"`
	ServiceIDs []int `json:"service_ids"`
}

// AssignmentResultDTO reports what an assignment actually did: the updated
// source order plus the ids of rows spawned for additional selections.
type AssignmentResultDTO struct {
	Order             OrderDTO `json:"order"`
	NewOrderIDs       []int    `json:"new_order_ids,omitempty"`
	AssignedCompanies []string `json:"assigned_companies"`
}
