package dto

import "github.com/donor-matching-service/internal/domain"

// CandidateResult - кандидат с расстоянием до искателя
type CandidateResult struct {
	ID         string               `json:"id"`
	Kind       domain.CandidateKind `json:"kind"`
	Name       string               `json:"name"`
	Location   string               `json:"location,omitempty"`
	Coordinate *domain.Coordinate   `json:"coordinate,omitempty"`
	DistanceKm float64              `json:"distance_km"`

	Donor     *domain.DonorInfo     `json:"donor,omitempty"`
	BloodBank *domain.BloodBankInfo `json:"blood_bank,omitempty"`
	Oxygen    *domain.OxygenInfo    `json:"oxygen,omitempty"`
}

// CandidateResponse - карточка донора или поставщика кислорода
type CandidateResponse struct {
	ID         string               `json:"id"`
	Kind       domain.CandidateKind `json:"kind"`
	Name       string               `json:"name"`
	Location   string               `json:"location,omitempty"`
	Coordinate *domain.Coordinate   `json:"coordinate,omitempty"`

	Donor  *domain.DonorInfo  `json:"donor,omitempty"`
	Oxygen *domain.OxygenInfo `json:"oxygen,omitempty"`
}

// MatchSearchResponse - ответ на поиск кандидатов
type MatchSearchResponse struct {
	Results  []CandidateResult `json:"results"`
	Total    int               `json:"total"`
	RadiusKm float64           `json:"radius_km"`
	Cached   bool              `json:"-"`
}

// BloodBankResponse - банк крови с запасами
type BloodBankResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Location       string             `json:"location,omitempty"`
	Coordinate     *domain.Coordinate `json:"coordinate,omitempty"`
	Inventory      map[string]int     `json:"inventory"`
	OperatingHours string             `json:"operating_hours,omitempty"`
	IsOpen         bool               `json:"is_open"`
	Contact        string             `json:"contact,omitempty"`
	Email          string             `json:"email,omitempty"`
}

// BloodBankListResponse - список банков крови
type BloodBankListResponse struct {
	BloodBanks []BloodBankResponse `json:"blood_banks"`
	Total      int                 `json:"total"`
}

// AvailabilityResponse - наличие группы крови по банкам
type AvailabilityResponse struct {
	BloodGroup string                 `json:"blood_group"`
	Available  bool                   `json:"available"`
	Locations  []AvailabilityLocation `json:"locations"`
}

// AvailabilityLocation - банк, где есть запас
type AvailabilityLocation struct {
	BankID string `json:"bank_id"`
	Name   string `json:"name"`
	Units  int    `json:"units"`
}

// ConvertRankedResult converts a ranked candidate into its response form.
func ConvertRankedResult(r domain.RankedResult) CandidateResult {
	c := r.Candidate
	return CandidateResult{
		ID:         c.ID,
		Kind:       c.Kind(),
		Name:       c.Name,
		Location:   c.Location,
		Coordinate: c.Coordinate,
		DistanceKm: r.DistanceKm,
		Donor:      c.Donor,
		BloodBank:  c.BloodBank,
		Oxygen:     c.Oxygen,
	}
}

// NewMatchSearchResponse - ответ из ранжированных результатов
func NewMatchSearchResponse(ranked []domain.RankedResult, radiusKm float64) *MatchSearchResponse {
	results := make([]CandidateResult, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, ConvertRankedResult(r))
	}
	return &MatchSearchResponse{
		Results:  results,
		Total:    len(results),
		RadiusKm: radiusKm,
	}
}

// ConvertCandidate converts a donor or oxygen supplier into its detail form.
func ConvertCandidate(c domain.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:         c.ID,
		Kind:       c.Kind(),
		Name:       c.Name,
		Location:   c.Location,
		Coordinate: c.Coordinate,
		Donor:      c.Donor,
		Oxygen:     c.Oxygen,
	}
}

// ConvertBloodBank converts a blood bank candidate into its response form.
func ConvertBloodBank(c domain.Candidate) BloodBankResponse {
	resp := BloodBankResponse{
		ID:         c.ID,
		Name:       c.Name,
		Location:   c.Location,
		Coordinate: c.Coordinate,
		Inventory:  make(map[string]int),
	}
	if c.BloodBank == nil {
		return resp
	}

	for _, g := range domain.AllBloodGroups() {
		if units, ok := c.BloodBank.Inventory[g]; ok {
			resp.Inventory[g.String()] = units
		}
	}
	resp.OperatingHours = c.BloodBank.OperatingHours
	resp.IsOpen = c.BloodBank.IsOpen
	resp.Contact = c.BloodBank.Contact
	resp.Email = c.BloodBank.Email
	return resp
}

// ToMatchedCandidate converts a ranked result into the stream event form;
// Units is set for blood banks only.
func ToMatchedCandidate(r domain.RankedResult, group domain.BloodGroup) domain.MatchedCandidate {
	m := domain.MatchedCandidate{
		CandidateID: r.Candidate.ID,
		Kind:        r.Candidate.Kind(),
		Name:        r.Candidate.Name,
		DistanceKm:  r.DistanceKm,
	}
	if r.Candidate.BloodBank != nil {
		units := r.Candidate.BloodBank.Units(group)
		m.Units = &units
	}
	return m
}
