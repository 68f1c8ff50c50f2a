package matching

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/donor-matching-service/internal/domain"
)

// Filter returns the candidates satisfying every criterion that is set, in input order.
//
// A blood group keeps available donors of that group and blood banks holding
// at least one unit of it; oxygen suppliers never match a blood group. An
// unrecognised blood group matches nothing. LocationText is a case-insensitive
// substring match against name, location and address. Distance is not
// considered here.
func Filter(candidates []domain.Candidate, criteria domain.SearchCriteria) []domain.Candidate {
	result := make([]domain.Candidate, 0, len(candidates))

	var group domain.BloodGroup
	groupSet := criteria.BloodGroup != nil && strings.TrimSpace(*criteria.BloodGroup) != ""
	if groupSet {
		parsed, ok := domain.ParseBloodGroup(*criteria.BloodGroup)
		if !ok {
			return result
		}
		group = parsed
	}

	var needle string
	fold := cases.Fold()
	if criteria.LocationText != "" {
		needle = fold.String(criteria.LocationText)
	}

	for _, c := range candidates {
		if groupSet && !hasBloodGroup(c, group) {
			continue
		}
		if needle != "" && !matchesText(c, needle, fold) {
			continue
		}
		result = append(result, c)
	}

	return result
}

func hasBloodGroup(c domain.Candidate, group domain.BloodGroup) bool {
	switch c.Kind() {
	case domain.KindDonor:
		return c.Donor.BloodGroup == group && c.Donor.Availability == domain.AvailabilityAvailable
	case domain.KindBloodBank:
		return c.BloodBank.Units(group) > 0
	default:
		return false
	}
}

func matchesText(c domain.Candidate, needle string, fold cases.Caser) bool {
	fields := []string{c.Name, c.Location}
	if c.Oxygen != nil {
		fields = append(fields, c.Oxygen.Address)
	}

	for _, f := range fields {
		if f != "" && strings.Contains(fold.String(f), needle) {
			return true
		}
	}
	return false
}
