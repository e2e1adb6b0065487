package status

import (
	"time"

	"github.com/google/uuid"
)

// CreateStatusRequest for POST /statuses
type CreateStatusRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// UpdateStatusRequest for PATCH /statuses/{id}
type UpdateStatusRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// StatusResponse represents a catalog entry in API responses
type StatusResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

// StatusResponseFromEntity converts entity to response DTO
func StatusResponseFromEntity(s *Status) *StatusResponse {
	return &StatusResponse{
		ID:        s.ID,
		Name:      s.Name,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}
