package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type kindsRequest struct {
	Kinds []string `validate:"omitempty,dive,candidate_kind"`
}

func TestValidate_CandidateKind(t *testing.T) {
	assert.NoError(t, Validate(&kindsRequest{Kinds: []string{"donor", "blood_bank", "oxygen_supplier"}}))
	assert.NoError(t, Validate(&kindsRequest{}))
	assert.Error(t, Validate(&kindsRequest{Kinds: []string{"donor", "hospital"}}))
}
