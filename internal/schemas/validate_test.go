package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSimulateRequest_Valid(t *testing.T) {
	doc := []byte(`{
		"current_role": {"title": "Software Engineer", "salary": 100000, "level": "Mid", "industry": "Technology"},
		"time_horizon": 5,
		"success_criteria": {"target_salary": 150000, "work_life_balance_weight": 0.3, "learning_opportunities_weight": 0.3, "impact_weight": 0.4}
	}`)
	assert.NoError(t, ValidateSimulateRequest(doc))
}

func TestValidateSimulateRequest_MissingCurrentRole(t *testing.T) {
	err := ValidateSimulateRequest([]byte(`{"time_horizon": 5}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateSimulateRequest_ZeroSalary(t *testing.T) {
	doc := []byte(`{"current_role": {"title": "Engineer", "salary": 0}}`)
	assert.Error(t, ValidateSimulateRequest(doc))
}

func TestValidateSimulateRequest_HorizonOutOfRange(t *testing.T) {
	doc := []byte(`{"current_role": {"title": "Engineer", "salary": 100000}, "time_horizon": 31}`)
	assert.Error(t, ValidateSimulateRequest(doc))
}

func TestValidateSimulateRequest_UnknownLevelRejected(t *testing.T) {
	doc := []byte(`{"current_role": {"title": "Engineer", "salary": 100000, "level": "Grandmaster"}}`)
	assert.Error(t, ValidateSimulateRequest(doc))
}

func TestValidateSimulateRequest_ErrorListsFields(t *testing.T) {
	doc := []byte(`{"current_role": {"salary": -1}}`)
	err := ValidateSimulateRequest(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
