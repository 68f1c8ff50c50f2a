package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloodRequestEvent_HasCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		event    BloodRequestEvent
		expected bool
	}{
		{
			name: "both coordinates present",
			event: BloodRequestEvent{
				RequestID:  uuid.New(),
				BloodGroup: "O+",
				Latitude:   floatPtr(12.9716),
				Longitude:  floatPtr(77.5946),
			},
			expected: true,
		},
		{
			name: "latitude only",
			event: BloodRequestEvent{
				RequestID:  uuid.New(),
				BloodGroup: "O+",
				Latitude:   floatPtr(12.9716),
			},
			expected: false,
		},
		{
			name: "longitude only",
			event: BloodRequestEvent{
				RequestID:  uuid.New(),
				BloodGroup: "O+",
				Longitude:  floatPtr(77.5946),
			},
			expected: false,
		},
		{
			name: "zero coordinates still count as present",
			event: BloodRequestEvent{
				RequestID:  uuid.New(),
				BloodGroup: "A-",
				Latitude:   floatPtr(0),
				Longitude:  floatPtr(0),
			},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.HasCoordinates())
		})
	}
}

func TestBloodRequestEvent_Criteria(t *testing.T) {
	location := "Bangalore"
	radius := 5.0
	event := BloodRequestEvent{
		RequestID:  uuid.New(),
		BloodGroup: "AB-",
		Latitude:   floatPtr(12.9716),
		Longitude:  floatPtr(77.5946),
		RadiusKm:   &radius,
		Location:   &location,
	}

	criteria := event.Criteria()

	assert.Equal(t, Coordinate{Lat: 12.9716, Lon: 77.5946}, criteria.Seeker)
	require.NotNil(t, criteria.BloodGroup)
	assert.Equal(t, "AB-", *criteria.BloodGroup)
	require.NotNil(t, criteria.RadiusKm)
	assert.Equal(t, 5.0, *criteria.RadiusKm)
	assert.Equal(t, "Bangalore", criteria.LocationText)
}

func TestBloodRequestEvent_HasBloodGroup(t *testing.T) {
	assert.True(t, (&BloodRequestEvent{BloodGroup: "O-"}).HasBloodGroup())
	assert.False(t, (&BloodRequestEvent{}).HasBloodGroup())
	assert.False(t, (&BloodRequestEvent{BloodGroup: "  "}).HasBloodGroup())
}

func TestBloodRequestEvent_DecodesMobilePayload(t *testing.T) {
	payload := `{
		"request_id": "6f1c2b7e-3b1a-4c3e-9a55-2f0d7c1e9b10",
		"requester_id": "user-42",
		"blood_group": "O+",
		"latitude": 12.9716,
		"longitude": 77.5946
	}`

	var event BloodRequestEvent
	require.NoError(t, json.Unmarshal([]byte(payload), &event))

	assert.Equal(t, "6f1c2b7e-3b1a-4c3e-9a55-2f0d7c1e9b10", event.RequestID.String())
	assert.Equal(t, "user-42", event.RequesterID)
	assert.True(t, event.HasCoordinates())
	assert.Nil(t, event.RadiusKm)
	assert.Nil(t, event.Location)
}

func floatPtr(f float64) *float64 {
	return &f
}
