package authz

import (
	"testing"

	"github.com/google/uuid"
)

func TestAllowed(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	tests := []struct {
		name string
		id   Identity
		want bool
	}{
		{"owner", Identity{UserID: owner, Role: RoleUser}, true},
		{"admin bypass", Identity{UserID: stranger, Role: RoleAdmin}, true},
		{"stranger", Identity{UserID: stranger, Role: RoleUser}, false},
		{"anonymous", Identity{}, false},
		{"anonymous admin role is still anonymous", Identity{Role: RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Allowed(owner, tt.id); got != tt.want {
				t.Errorf("Allowed = %v, want %v", got, tt.want)
			}
		})
	}
}
