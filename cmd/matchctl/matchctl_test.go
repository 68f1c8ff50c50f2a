package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donor-matching-service/internal/domain"
	"github.com/donor-matching-service/internal/usecase/dto"
)

func sampleResponse() *dto.MatchSearchResponse {
	units := map[domain.BloodGroup]int{domain.BloodGroupOPos: 50}
	return &dto.MatchSearchResponse{
		Results: []dto.CandidateResult{
			{
				ID: "bank-1", Kind: domain.KindBloodBank, Name: "City Blood Bank", Location: "Bangalore",
				BloodBank: &domain.BloodBankInfo{Inventory: units, OperatingHours: "24/7"},
			},
			{
				ID: "donor-1", Kind: domain.KindDonor, Name: "Ananya", Location: "Indiranagar", DistanceKm: 5.0596,
				Donor: &domain.DonorInfo{BloodGroup: domain.BloodGroupOPos},
			},
		},
		Total:    2,
		RadiusKm: 10,
	}
}

func TestPrintResults_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, sampleResponse(), "o+", "table"))

	out := buf.String()
	assert.Contains(t, out, "City Blood Bank")
	assert.Contains(t, out, "O+: 50 units")
	assert.Contains(t, out, "5.06")
	assert.Contains(t, out, "2 result(s) within 10.0 km")
}

func TestPrintResults_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, sampleResponse(), "", "json"))

	var decoded dto.MatchSearchResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 2, decoded.Total)
	assert.Equal(t, "donor-1", decoded.Results[1].ID)
}

func TestPrintResults_EmptyAndUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printResults(&buf, &dto.MatchSearchResponse{RadiusKm: 2.5}, "", "table"))
	assert.Equal(t, "No candidates within 2.5 km.\n", buf.String())

	assert.Error(t, printResults(&buf, sampleResponse(), "", "xml"))
}

func TestDetail(t *testing.T) {
	resp := sampleResponse()

	assert.Equal(t, "24/7", detail(resp.Results[0], ""))
	assert.Equal(t, "O+", detail(resp.Results[1], "AB-"))
	assert.Equal(t, "+91 1234567891", detail(dto.CandidateResult{Oxygen: &domain.OxygenInfo{Phone: "+91 1234567891"}}, ""))
	assert.Equal(t, "-", detail(dto.CandidateResult{}, ""))
}

func newPublishFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "publish"}
	addPublishFlags(cmd.Flags())
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestRequestFromFlags(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		event := requestFromFlags(newPublishFlags(t))

		assert.Equal(t, "O+", event.BloodGroup)
		require.True(t, event.HasCoordinates())
		assert.Equal(t, 12.9716, *event.Latitude)
		assert.Nil(t, event.RadiusKm)
		assert.Nil(t, event.Location)
	})

	t.Run("no coordinates with radius", func(t *testing.T) {
		event := requestFromFlags(newPublishFlags(t, "--no-coordinates", "--radius", "5", "--group", "A-"))

		assert.False(t, event.HasCoordinates())
		require.NotNil(t, event.RadiusKm)
		assert.Equal(t, 5.0, *event.RadiusKm)
		assert.Equal(t, "A-", event.BloodGroup)
	})
}

func TestRunPublish_RejectsEmptyGroup(t *testing.T) {
	cmd := newPublishFlags(t, "--group", " ")

	err := runPublish(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--group")
}
