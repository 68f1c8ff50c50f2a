package domain

import "strings"

// BloodGroup - группа крови по системам ABO/Rh
type BloodGroup string

const (
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
)

var allBloodGroups = []BloodGroup{
	BloodGroupOPos, BloodGroupONeg,
	BloodGroupAPos, BloodGroupANeg,
	BloodGroupBPos, BloodGroupBNeg,
	BloodGroupABPos, BloodGroupABNeg,
}

// AllBloodGroups returns the eight known groups in display order.
func AllBloodGroups() []BloodGroup {
	out := make([]BloodGroup, len(allBloodGroups))
	copy(out, allBloodGroups)
	return out
}

// ParseBloodGroup normalizes s ("ab+", " O- ") and reports whether it is a known group.
func ParseBloodGroup(s string) (BloodGroup, bool) {
	g := BloodGroup(strings.ToUpper(strings.TrimSpace(s)))
	return g, g.IsValid()
}

// IsValid reports whether g is one of the eight known groups.
func (g BloodGroup) IsValid() bool {
	for _, known := range allBloodGroups {
		if g == known {
			return true
		}
	}
	return false
}

func (g BloodGroup) String() string {
	return string(g)
}
