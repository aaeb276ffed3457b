package entities

import "testpark/pkg/types"

// MessageTemplate overrides the compiled default template for one status.
type MessageTemplate struct {
	ID      int    `json:"id"`
	Status  string `json:"status"`
	Content string `json:"content"`

	types.BaseEntity
}
