package parking

import (
	"time"

	"github.com/google/uuid"

	"github.com/parkhive/parkhive-api/internal/pkg/geo"
)

// CreateParkingRequest for POST /parkings
type CreateParkingRequest struct {
	Name        string  `json:"name" validate:"required,min=3,max=25"`
	Description string  `json:"description" validate:"required,min=10"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	IsEnabled   *bool   `json:"is_enabled"`
}

// UpdateParkingRequest for PATCH /parkings/{id}. Pointer fields distinguish
// absent from zero.
type UpdateParkingRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=3,max=25"`
	Description *string  `json:"description" validate:"omitempty,min=10"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	IsEnabled   *bool    `json:"is_enabled"`
}

// ParkingResponse represents a parking in API responses
type ParkingResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    geo.Point `json:"location"`
	IsEnabled   bool      `json:"is_enabled"`
	DataStatus  string    `json:"data_status"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// ParkingResponseFromEntity converts entity to response DTO
func ParkingResponseFromEntity(p *Parking) *ParkingResponse {
	return &ParkingResponse{
		ID:          p.ID,
		OwnerID:     p.OwnerID,
		Name:        p.Name,
		Description: p.Description,
		Location:    geo.Point{Latitude: p.Latitude, Longitude: p.Longitude},
		IsEnabled:   p.IsEnabled,
		DataStatus:  string(p.DataStatus),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
