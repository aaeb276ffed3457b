package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

// StatusHistory is one append-only record of a status transition. TxID groups
// rows written in the same database transaction for timeline display.
type StatusHistory struct {
	ID             int         `json:"id"`
	OrderID        int         `json:"order_id"`
	TxID           uuid.UUID   `json:"tx_id"`
	Author         string      `json:"author"`
	OldStatus      string      `json:"old_status"`
	NewStatus      string      `json:"new_status"`
	MessageSent    bool        `json:"message_sent"`
	MessageContent null.String `json:"message_content"`
	Recipient      null.String `json:"recipient"`
	CreatedAt      time.Time   `json:"created_at"`
}

// FieldHistory is one append-only record of a field edit.
type FieldHistory struct {
	ID         int         `json:"id"`
	OrderID    int         `json:"order_id"`
	TxID       uuid.UUID   `json:"tx_id"`
	Author     string      `json:"author"`
	FieldName  string      `json:"field_name"`
	FieldLabel string      `json:"field_label"`
	OldValue   null.String `json:"old_value"`
	NewValue   null.String `json:"new_value"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Memo is a free-text note attached to an order.
type Memo struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// QuoteLink is a versioned quote artifact attached to an order. DraftType
// runs 초안, 1차, 2차, ... 최종 and auto-increments from the existing count.
type QuoteLink struct {
	ID        int       `json:"id"`
	OrderID   int       `json:"order_id"`
	DraftType string    `json:"draft_type"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}
