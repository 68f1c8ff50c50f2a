package dto

import "github.com/donor-matching-service/internal/domain"

// MatchSearchRequest - запрос на поиск ближайших кандидатов любого типа
type MatchSearchRequest struct {
	Lat        *float64 `json:"lat" validate:"required"`
	Lon        *float64 `json:"lon" validate:"required"`
	BloodGroup string   `json:"blood_group,omitempty" validate:"omitempty,max=8"`
	RadiusKm   *float64 `json:"radius_km,omitempty"`
	Location   string   `json:"location,omitempty" validate:"omitempty,max=100"`
	Kinds      []string `json:"kinds,omitempty" validate:"omitempty,max=3,dive,candidate_kind"`
	Limit      int      `json:"limit" validate:"omitempty,min=1,max=500"`
}

// Criteria converts the request into search criteria; call after validation.
func (r MatchSearchRequest) Criteria() domain.SearchCriteria {
	return newCriteria(r.Lat, r.Lon, r.BloodGroup, r.RadiusKm, r.Location)
}

// CandidateKinds returns the requested kinds, every kind when none were given.
func (r MatchSearchRequest) CandidateKinds() []domain.CandidateKind {
	if len(r.Kinds) == 0 {
		return domain.AllCandidateKinds()
	}

	seen := make(map[domain.CandidateKind]bool, len(r.Kinds))
	kinds := make([]domain.CandidateKind, 0, len(r.Kinds))
	for _, k := range r.Kinds {
		kind := domain.CandidateKind(k)
		if seen[kind] {
			continue
		}
		seen[kind] = true
		kinds = append(kinds, kind)
	}
	return kinds
}

// DonorSearchRequest - поиск доступных доноров и банков крови нужной группы
type DonorSearchRequest struct {
	Lat               *float64 `json:"lat" validate:"required"`
	Lon               *float64 `json:"lon" validate:"required"`
	BloodGroup        string   `json:"blood_group" validate:"required,max=8"`
	RadiusKm          *float64 `json:"radius_km,omitempty"`
	Location          string   `json:"location,omitempty" validate:"omitempty,max=100"`
	IncludeBloodBanks *bool    `json:"include_blood_banks,omitempty"`
	Limit             int      `json:"limit" validate:"omitempty,min=1,max=500"`
}

func (r DonorSearchRequest) Criteria() domain.SearchCriteria {
	return newCriteria(r.Lat, r.Lon, r.BloodGroup, r.RadiusKm, r.Location)
}

// CandidateKinds - доноры и, по умолчанию, банки крови
func (r DonorSearchRequest) CandidateKinds() []domain.CandidateKind {
	if r.IncludeBloodBanks != nil && !*r.IncludeBloodBanks {
		return []domain.CandidateKind{domain.KindDonor}
	}
	return []domain.CandidateKind{domain.KindDonor, domain.KindBloodBank}
}

// OxygenSearchRequest - поиск поставщиков кислорода
type OxygenSearchRequest struct {
	Lat      *float64 `json:"lat" validate:"required"`
	Lon      *float64 `json:"lon" validate:"required"`
	RadiusKm *float64 `json:"radius_km,omitempty"`
	Location string   `json:"location,omitempty" validate:"omitempty,max=100"`
	Limit    int      `json:"limit" validate:"omitempty,min=1,max=500"`
}

func (r OxygenSearchRequest) Criteria() domain.SearchCriteria {
	return newCriteria(r.Lat, r.Lon, "", r.RadiusKm, r.Location)
}

// AvailabilityRequest - проверка наличия крови (query параметры)
type AvailabilityRequest struct {
	BloodGroup string `query:"blood_group" validate:"required,max=8"`
	BankID     string `query:"bank_id" validate:"omitempty,uuid"`
}

func newCriteria(lat, lon *float64, bloodGroup string, radiusKm *float64, location string) domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		RadiusKm:     radiusKm,
		LocationText: location,
	}
	if lat != nil && lon != nil {
		criteria.Seeker = domain.Coordinate{Lat: *lat, Lon: *lon}
	}
	if bloodGroup != "" {
		criteria.BloodGroup = &bloodGroup
	}
	return criteria
}
