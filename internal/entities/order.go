package entities

import (
	"time"

	"testpark/pkg/types"

	"github.com/aarondl/null/v8"
)

// Order is a single customer renovation-quote request.
type Order struct {
	ID               int         `json:"id"`
	ReceivedAt       time.Time   `json:"received_at"`
	CustomerName     string      `json:"customer_name"`
	Nickname         string      `json:"nickname"`
	Phone            string      `json:"phone"`
	NaverID          string      `json:"naver_id"`
	Area             string      `json:"area"`
	WorkContent      string      `json:"work_content"`
	ConstructionType string      `json:"construction_type"`
	ScheduledDate    null.Time   `json:"scheduled_date"`
	Designation      string      `json:"designation"`
	DesignationType  string      `json:"designation_type"`
	AssignedCompany  null.String `json:"assigned_company"`
	Status           string      `json:"status"`
	ReRequestCount   int         `json:"re_request_count"`
	PostLink         null.String `json:"post_link"`

	types.BaseEntity
	types.SoftDelete
}
