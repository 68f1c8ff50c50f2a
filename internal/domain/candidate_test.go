package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCandidate_Kind(t *testing.T) {
	coord := &Coordinate{Lat: 12.9716, Lon: 77.5946}

	donor := NewDonorCandidate("d1", "Ravi", "Indiranagar", coord, DonorInfo{
		BloodGroup:   BloodGroupOPos,
		Availability: AvailabilityAvailable,
	})
	bank := NewBloodBankCandidate("b1", "City Blood Bank", "Bangalore", coord, BloodBankInfo{})
	oxygen := NewOxygenCandidate("o1", "S P Health Care", "Kolathur, Chennai", coord, OxygenInfo{})

	assert.Equal(t, KindDonor, donor.Kind())
	assert.Equal(t, KindBloodBank, bank.Kind())
	assert.Equal(t, KindOxygenSupplier, oxygen.Kind())
	assert.Equal(t, CandidateKind(""), Candidate{ID: "x"}.Kind())
}

func TestBloodBankInfo_Units(t *testing.T) {
	bank := NewBloodBankCandidate("b1", "City Blood Bank", "Bangalore", nil, BloodBankInfo{
		Inventory: map[BloodGroup]int{BloodGroupAPos: 5},
	})

	assert.Equal(t, 5, bank.BloodBank.Units(BloodGroupAPos))
	assert.Equal(t, 0, bank.BloodBank.Units(BloodGroupONeg))

	var missing *BloodBankInfo
	assert.Equal(t, 0, missing.Units(BloodGroupAPos))
}

func TestParseBloodGroup(t *testing.T) {
	tests := []struct {
		input string
		want  BloodGroup
		ok    bool
	}{
		{"O+", BloodGroupOPos, true},
		{"ab-", BloodGroupABNeg, true},
		{"  B+ ", BloodGroupBPos, true},
		{"Z+", BloodGroup("Z+"), false},
		{"", BloodGroup(""), false},
		{"O", BloodGroup("O"), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseBloodGroup(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Len(t, AllBloodGroups(), 8)
}

func TestCoordinate_Validate(t *testing.T) {
	tests := []struct {
		name    string
		coord   Coordinate
		wantErr bool
	}{
		{"bangalore", Coordinate{Lat: 12.9716, Lon: 77.5946}, false},
		{"origin", Coordinate{}, false},
		{"poles and antimeridian", Coordinate{Lat: -90, Lon: 180}, false},
		{"latitude too high", Coordinate{Lat: 90.0001, Lon: 0}, true},
		{"longitude too low", Coordinate{Lat: 0, Lon: -180.5}, true},
		{"nan latitude", Coordinate{Lat: math.NaN(), Lon: 0}, true},
		{"infinite longitude", Coordinate{Lat: 0, Lon: math.Inf(1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coord.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidCoordinate))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
