package domain

import (
	"strings"

	"github.com/google/uuid"
)

// Stream names (должны совпадать с мобильным backend)
const (
	StreamBloodRequest = "stream:blood:request"
	StreamBloodMatches = "stream:blood:matches"
)

// BloodRequestEvent - входящий запрос крови от искателя
type BloodRequestEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	RequesterID string    `json:"requester_id,omitempty"`
	BloodGroup  string    `json:"blood_group"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	RadiusKm    *float64  `json:"radius_km,omitempty"`
	Location    *string   `json:"location,omitempty"`
}

// HasCoordinates проверяет наличие обеих координат
func (e *BloodRequestEvent) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// HasBloodGroup - запрос крови без группы считается битым
func (e *BloodRequestEvent) HasBloodGroup() bool {
	return strings.TrimSpace(e.BloodGroup) != ""
}

// Criteria converts the event into search criteria. Callers must check HasCoordinates first.
func (e *BloodRequestEvent) Criteria() SearchCriteria {
	group := e.BloodGroup
	criteria := SearchCriteria{
		Seeker:     Coordinate{Lat: *e.Latitude, Lon: *e.Longitude},
		BloodGroup: &group,
		RadiusKm:   e.RadiusKm,
	}
	if e.Location != nil {
		criteria.LocationText = *e.Location
	}
	return criteria
}

// BloodMatchesEvent - результат подбора для запроса крови
type BloodMatchesEvent struct {
	RequestID uuid.UUID          `json:"request_id"`
	Matches   []MatchedCandidate `json:"matches"`
	Error     string             `json:"error,omitempty"`
}

// MatchedCandidate - кандидат в результате подбора
type MatchedCandidate struct {
	CandidateID string        `json:"candidate_id"`
	Kind        CandidateKind `json:"kind"`
	Name        string        `json:"name"`
	DistanceKm  float64       `json:"distance_km"`
	Units       *int          `json:"units,omitempty"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
