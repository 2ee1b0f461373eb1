package models

import (
	"math"
	"time"
)

// PointStatus mirrors the backend's lifecycle enum.
type PointStatus string

const (
	StatusOngoing PointStatus = "ongoing"
	StatusEnded   PointStatus = "ended"
)

// DonationPoint is a physical location record owned by the backend. The
// client never mutates a copy locally without a server round-trip.
type DonationPoint struct {
	ID               int64       `json:"id"`
	CreatorID        int64       `json:"creator_id"`
	OrganizationName string      `json:"organization_name"`
	Address          string      `json:"address"`
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	Description      string      `json:"description,omitempty"`
	Images           []string    `json:"images,omitempty"`
	StartDate        *time.Time  `json:"start_date,omitempty"`
	EndDate          *time.Time  `json:"end_date,omitempty"`
	Status           PointStatus `json:"status"`
	CreatedAt        time.Time   `json:"created_at"`
}

// PointCreate holds the fields submitted when creating a point. Bounds on
// the coordinates are advisory pre-checks; the backend is the authority.
type PointCreate struct {
	OrganizationName string     `validate:"required"`
	Address          string     `validate:"required"`
	Latitude         float64    `validate:"gte=-90,lte=90"`
	Longitude        float64    `validate:"gte=-180,lte=180"`
	Description      string     `validate:"-"`
	StartDate        *time.Time `validate:"-"`
	EndDate          *time.Time `validate:"-"`
}

// PointUpdate carries the fields the backend accepts on PATCH.
type PointUpdate struct {
	Status      *PointStatus `json:"status,omitempty"`
	Description *string      `json:"description,omitempty"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
}

// Location is a pair of WGS84 coordinates.
type Location struct {
	Lat float64
	Lng float64
}

const earthRadiusKm = 6371

// DistanceKm returns the great-circle distance between two locations in
// kilometers (haversine, same formula the backend uses for radius search).
func DistanceKm(a, b Location) float64 {
	dLat := radians(b.Lat - a.Lat)
	dLng := radians(b.Lng - a.Lng)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(radians(a.Lat))*math.Cos(radians(b.Lat))*math.Pow(math.Sin(dLng/2), 2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
