// Package geo provides distance search over bank service points
// (branches, ATMs, currency exchanges).
package geo

import (
	"math"
	"sort"
)

// LocationType classifies a service point.
type LocationType string

const (
	TypeATM      LocationType = "ATM"
	TypeBranch   LocationType = "BRANCH"
	TypeExchange LocationType = "EXCHANGE"
)

// Location is a bank service point on the map.
type Location struct {
	ID           string       `json:"id"`
	Type         LocationType `json:"type"`
	Name         string       `json:"name"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Address      string       `json:"address"`
	WorkingHours string       `json:"workingHours"`
}

// Result is a location annotated with its distance from the search origin.
type Result struct {
	Location
	DistanceMeters float64
}

const earthRadiusMeters = 6371000

// Distance returns the great-circle distance in meters between two points
// given in decimal degrees (haversine formula).
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Nearby filters locations to those within radiusMeters of the origin and
// returns them sorted by ascending distance.
func Nearby(locations []Location, lat, lon, radiusMeters float64) []Result {
	results := make([]Result, 0, len(locations))
	for _, loc := range locations {
		d := Distance(lat, lon, loc.Latitude, loc.Longitude)
		if d <= radiusMeters {
			results = append(results, Result{Location: loc, DistanceMeters: d})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})
	return results
}
