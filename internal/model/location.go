// Package model holds the immutable data model for a routing problem:
// locations, vehicles and stops, and the read-only Problem view over them.
package model

// Location is a (longitude, latitude) pair, in that order to match GeoJSON.
type Location struct {
	Longitude float64
	Latitude  float64
}

// NewLocation builds a Location from a longitude/latitude pair.
func NewLocation(longitude, latitude float64) Location {
	return Location{Longitude: longitude, Latitude: latitude}
}
