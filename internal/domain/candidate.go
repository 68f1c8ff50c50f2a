package domain

import "time"

// CandidateKind - тип кандидата для подбора
type CandidateKind string

const (
	KindDonor          CandidateKind = "donor"
	KindBloodBank      CandidateKind = "blood_bank"
	KindOxygenSupplier CandidateKind = "oxygen_supplier"
)

// AllCandidateKinds returns every kind a search can target.
func AllCandidateKinds() []CandidateKind {
	return []CandidateKind{KindDonor, KindBloodBank, KindOxygenSupplier}
}

// IsValid reports whether k is a known kind.
func (k CandidateKind) IsValid() bool {
	switch k {
	case KindDonor, KindBloodBank, KindOxygenSupplier:
		return true
	}
	return false
}

// Availability - статус готовности донора
type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityUnavailable Availability = "unavailable"
)

// DonorInfo - данные, специфичные для донора
type DonorInfo struct {
	BloodGroup       BloodGroup   `json:"blood_group"`
	Availability     Availability `json:"availability_status"`
	LastDonationDate *time.Time   `json:"last_donation_date,omitempty"`
	Gender           string       `json:"gender,omitempty"`
}

// BloodBankInfo - данные банка крови, включая запасы по группам
type BloodBankInfo struct {
	Inventory      map[BloodGroup]int `json:"inventory"`
	OperatingHours string             `json:"operating_hours,omitempty"`
	IsOpen         bool               `json:"is_open"`
	Contact        string             `json:"contact,omitempty"`
	Email          string             `json:"email,omitempty"`
}

// Units returns the stored unit count for g, zero when absent.
func (b *BloodBankInfo) Units(g BloodGroup) int {
	if b == nil {
		return 0
	}
	return b.Inventory[g]
}

// OxygenInfo - данные поставщика кислорода
type OxygenInfo struct {
	Address      string `json:"address,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
	WorkingHours string `json:"working_hours,omitempty"`
}

// Candidate is a location-bearing entity eligible for proximity matching.
// Exactly one of Donor, BloodBank and Oxygen is set; Kind dispatches on it.
// A nil Coordinate means the source record had no usable position.
type Candidate struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Location   string      `json:"location,omitempty"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`

	Donor     *DonorInfo     `json:"donor,omitempty"`
	BloodBank *BloodBankInfo `json:"blood_bank,omitempty"`
	Oxygen    *OxygenInfo    `json:"oxygen,omitempty"`
}

// NewDonorCandidate builds a donor variant.
func NewDonorCandidate(id, name, location string, coord *Coordinate, info DonorInfo) Candidate {
	return Candidate{ID: id, Name: name, Location: location, Coordinate: coord, Donor: &info}
}

// NewBloodBankCandidate builds a blood bank variant.
func NewBloodBankCandidate(id, name, location string, coord *Coordinate, info BloodBankInfo) Candidate {
	if info.Inventory == nil {
		info.Inventory = make(map[BloodGroup]int)
	}
	return Candidate{ID: id, Name: name, Location: location, Coordinate: coord, BloodBank: &info}
}

// NewOxygenCandidate builds an oxygen supplier variant.
func NewOxygenCandidate(id, name, location string, coord *Coordinate, info OxygenInfo) Candidate {
	return Candidate{ID: id, Name: name, Location: location, Coordinate: coord, Oxygen: &info}
}

// Kind returns the variant tag, empty for a malformed candidate with no payload.
func (c Candidate) Kind() CandidateKind {
	switch {
	case c.Donor != nil:
		return KindDonor
	case c.BloodBank != nil:
		return KindBloodBank
	case c.Oxygen != nil:
		return KindOxygenSupplier
	}
	return ""
}

// HasCoordinate reports whether the candidate carries a position.
func (c Candidate) HasCoordinate() bool {
	return c.Coordinate != nil
}
