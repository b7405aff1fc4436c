package domain

import "time"

// Timestamps holds the server-assigned audit timestamps shared by all entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
