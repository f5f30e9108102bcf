// Package source provides HTTP handlers for source listing endpoints.
package source

import "time"

// DTO represents the JSON structure for source data transfer.
type DTO struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	BaseURL   *string   `json:"baseUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
