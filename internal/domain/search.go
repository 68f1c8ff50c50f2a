package domain

// DefaultRadiusKm is used when a search does not specify a radius.
const DefaultRadiusKm = 10.0

// SearchCriteria describes one proximity search.
// BloodGroup is kept raw so that an unknown value can be told apart from "not set".
type SearchCriteria struct {
	Seeker       Coordinate
	BloodGroup   *string
	RadiusKm     *float64
	LocationText string
}

// RankedResult - кандидат с расстоянием до искателя
type RankedResult struct {
	Candidate  Candidate `json:"candidate"`
	DistanceKm float64   `json:"distance_km"`
}
