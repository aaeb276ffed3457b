package dto

// ShortUserDTO identifies an operator in responses.
type ShortUserDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
}
