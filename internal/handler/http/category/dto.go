// Package category provides HTTP handlers for category listing endpoints.
package category

import "time"

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
