package matching

import "github.com/donor-matching-service/internal/domain"

func strPtr(s string) *string      { return &s }
func floatPtr(f float64) *float64 { return &f }

func coord(lat, lon float64) *domain.Coordinate {
	return &domain.Coordinate{Lat: lat, Lon: lon}
}

var (
	cityBloodBankCoord = domain.Coordinate{Lat: 12.9716, Lon: 77.5946}
	centralCoord       = domain.Coordinate{Lat: 12.9782, Lon: 77.6408}
	lifeCareCoord      = domain.Coordinate{Lat: 12.9342, Lon: 77.6092}
)

func inventory(units ...int) map[domain.BloodGroup]int {
	inv := make(map[domain.BloodGroup]int)
	for i, g := range domain.AllBloodGroups() {
		if i < len(units) {
			inv[g] = units[i]
		}
	}
	return inv
}

func bangaloreBanks() []domain.Candidate {
	return []domain.Candidate{
		domain.NewBloodBankCandidate("a0eebc99-9c0b-4ef8-bb6d-6bb9bd380a11", "City Blood Bank", "Bangalore",
			&cityBloodBankCoord, domain.BloodBankInfo{Inventory: inventory(50, 20, 45, 15, 40, 18, 25, 12), IsOpen: true}),
		domain.NewBloodBankCandidate("b0eebc99-9c0b-4ef8-bb6d-6bb9bd380a12", "Central Blood Center", "Bangalore",
			&centralCoord, domain.BloodBankInfo{Inventory: inventory(35, 15, 30, 12, 28, 14, 20, 10), IsOpen: true}),
		domain.NewBloodBankCandidate("c0eebc99-9c0b-4ef8-bb6d-6bb9bd380a13", "Life Care Blood Bank", "Bangalore",
			&lifeCareCoord, domain.BloodBankInfo{Inventory: inventory(42, 18, 38, 16, 35, 15, 22, 11), IsOpen: true}),
	}
}

func donor(id string, group domain.BloodGroup, availability domain.Availability, c *domain.Coordinate) domain.Candidate {
	return domain.NewDonorCandidate(id, "Donor "+id, "Bangalore", c, domain.DonorInfo{
		BloodGroup:   group,
		Availability: availability,
	})
}

func ids(results []domain.RankedResult) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.Candidate.ID)
	}
	return out
}

func candidateIDs(candidates []domain.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.ID)
	}
	return out
}
