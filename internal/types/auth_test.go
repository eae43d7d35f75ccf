package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{"valid", RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "correct-horse"}, false},
		{"missing name", RegisterRequest{Email: "ada@example.com", Password: "correct-horse"}, true},
		{"bad email", RegisterRequest{Name: "Ada", Email: "not-an-email", Password: "correct-horse"}, true},
		{"short password", RegisterRequest{Name: "Ada", Email: "ada@example.com", Password: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	valid := LoginRequest{Email: "ada@example.com", Password: "pw"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Email: "ada@example.com"}
	assert.Error(t, missing.Validate())
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	valid := UpdateProfileRequest{ExperienceLevel: LevelSenior, YearsOfExperience: 8}
	assert.NoError(t, valid.Validate())

	badLevel := UpdateProfileRequest{ExperienceLevel: "Wizard", YearsOfExperience: 8}
	assert.Error(t, badLevel.Validate())

	negativeYears := UpdateProfileRequest{ExperienceLevel: LevelMid, YearsOfExperience: -1}
	assert.Error(t, negativeYears.Validate())
}

func TestJobRequest_Validate(t *testing.T) {
	valid := JobRequest{Title: "Staff Engineer", Salary: 180000, Industry: "Technology"}
	assert.NoError(t, valid.Validate())

	// Salary is optional but must be positive when set.
	noSalary := JobRequest{Title: "Staff Engineer"}
	assert.NoError(t, noSalary.Validate())

	missingTitle := JobRequest{Salary: 180000}
	assert.Error(t, missingTitle.Validate())

	negativeSalary := JobRequest{Title: "Staff Engineer", Salary: -1}
	assert.Error(t, negativeSalary.Validate())
}
