package dto

// TimelineItemDTO is one entry of an order's merged audit trail,
// newest first.
type TimelineItemDTO struct {
	Kind           string `json:"kind"` // status / field / memo / quote_link
	Author         string `json:"author"`
	CreatedAt      string `json:"created_at"`
	TxID           string `json:"tx_id,omitempty"`
	OldValue       string `json:"old_value,omitempty"`
	NewValue       string `json:"new_value,omitempty"`
	FieldLabel     string `json:"field_label,omitempty"`
	MessageSent    *bool  `json:"message_sent,omitempty"`
	MessageContent string `json:"message_content,omitempty"`
	Recipient      string `json:"recipient,omitempty"`
	Content        string `json:"content,omitempty"`
}

type MemoDTO struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"order_id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type QuoteLinkDTO struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"order_id"`
	DraftType string `json:"draft_type"`
	Link      string `json:"link"`
	CreatedAt string `json:"created_at"`
}
