package entities

import "testpark/pkg/types"

// User is an admin operator.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`

	types.BaseEntity
	types.SoftDelete
}
