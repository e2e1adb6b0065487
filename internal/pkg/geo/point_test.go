package geo

import (
	"errors"
	"math"
	"testing"
)

func TestNewPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr error
	}{
		{"paris", 48.8566, 2.3522, nil},
		{"north pole", 90, 0, nil},
		{"south pole", -90, 0, nil},
		{"date line east", 0, 180, nil},
		{"date line west", 0, -180, nil},
		{"latitude too high", 90.0001, 0, ErrLatitudeRange},
		{"latitude too low", -91, 0, ErrLatitudeRange},
		{"longitude too high", 0, 180.5, ErrLongitudeRange},
		{"longitude too low", 0, -200, ErrLongitudeRange},
		{"latitude NaN", math.NaN(), 0, ErrLatitudeRange},
		{"longitude NaN", 0, math.NaN(), ErrLongitudeRange},
		{"latitude infinite", math.Inf(1), 0, ErrLatitudeRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPoint(tt.lat, tt.lng)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewPoint(%v, %v) error = %v, want %v", tt.lat, tt.lng, err, tt.wantErr)
			}
			if err == nil && (p.Latitude != tt.lat || p.Longitude != tt.lng) {
				t.Errorf("got %+v", p)
			}
		})
	}
}
