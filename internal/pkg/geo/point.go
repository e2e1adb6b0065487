package geo

import "errors"

var (
	ErrLatitudeRange  = errors.New("latitude must be between -90 and 90")
	ErrLongitudeRange = errors.New("longitude must be between -180 and 180")
)

// Point is a WGS84 coordinate pair. Construction is the single validation
// point for coordinate bounds; a Point that exists is in range.
type Point struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// NewPoint builds a Point, failing closed on out-of-range coordinates.
// The negated comparisons also reject NaN.
func NewPoint(lat, lng float64) (Point, error) {
	if !(lat >= -90 && lat <= 90) {
		return Point{}, ErrLatitudeRange
	}
	if !(lng >= -180 && lng <= 180) {
		return Point{}, ErrLongitudeRange
	}
	return Point{Latitude: lat, Longitude: lng}, nil
}
