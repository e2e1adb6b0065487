package user

import (
	"time"

	"github.com/google/uuid"
)

// UpdateUserRequest for PUT /users/{id}
type UpdateUserRequest struct {
	Username       string  `json:"username" validate:"omitempty,min=3,max=50"`
	Email          string  `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,max=20"`
	Gender         string  `json:"gender" validate:"omitempty,gender"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url"`
}

// UserResponse represents a user in API responses. Email and phone are the
// owner/admin view; public callers get the bare profile.
type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Gender         string    `json:"gender,omitempty"`
	ProfilePicture *string   `json:"profile_picture,omitempty"`
	Role           string    `json:"role"`
	DataStatus     string    `json:"data_status"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// UserResponseFromEntity converts entity to response DTO. ownerView widens
// the field set to the owner/admin serialization group.
func UserResponseFromEntity(u *User, ownerView bool) *UserResponse {
	resp := &UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Role:       u.Role,
		DataStatus: string(u.DataStatus),
		CreatedAt:  u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  u.UpdatedAt.Format(time.RFC3339),
	}

	if u.ProfilePicture.Valid {
		resp.ProfilePicture = &u.ProfilePicture.String
	}
	if u.Gender.Valid {
		resp.Gender = u.Gender.String
	}

	if ownerView {
		resp.Email = u.Email
		if u.Phone.Valid {
			resp.Phone = &u.Phone.String
		}
	}

	return resp
}
