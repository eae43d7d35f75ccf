package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultTimeHorizon is the number of simulated years when the request omits one.
const DefaultTimeHorizon = 10

// CurrentRoleInput is the caller-supplied description of the role held today.
type CurrentRoleInput struct {
	Title             string      `json:"title" validate:"required,min=1"`
	Salary            float64     `json:"salary" validate:"required,gt=0"`
	Level             CareerLevel `json:"level,omitempty" validate:"omitempty,oneof=Entry Mid Senior Lead Principal Executive"`
	Industry          string      `json:"industry,omitempty"`
	YearsOfExperience int         `json:"years_of_experience,omitempty" validate:"omitempty,min=0"`
}

// TargetRoleInput is one caller-supplied target. A job_id, when present, is
// resolved against the job store; fields given inline win over resolved ones.
type TargetRoleInput struct {
	JobID    *uuid.UUID  `json:"job_id,omitempty"`
	Title    string      `json:"title,omitempty"`
	Company  string      `json:"company,omitempty"`
	Salary   float64     `json:"salary,omitempty" validate:"omitempty,gt=0"`
	Level    CareerLevel `json:"level,omitempty" validate:"omitempty,oneof=Entry Mid Senior Lead Principal Executive"`
	Industry string      `json:"industry,omitempty"`
}

// SimulateRequest is the input document for creating a simulation.
type SimulateRequest struct {
	CurrentRole     CurrentRoleInput  `json:"current_role" validate:"required"`
	TargetRoles     []TargetRoleInput `json:"target_roles,omitempty" validate:"omitempty,dive"`
	TimeHorizon     int               `json:"time_horizon,omitempty" validate:"omitempty,min=1,max=30"`
	SuccessCriteria SuccessCriteria   `json:"success_criteria,omitempty"`
	Seed            *int64            `json:"seed,omitempty"`
}

// Validate validates the SimulateRequest using the validator.
func (r *SimulateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// HorizonOrDefault returns the requested time horizon, or the default when unset.
func (r *SimulateRequest) HorizonOrDefault() int {
	if r.TimeHorizon == 0 {
		return DefaultTimeHorizon
	}
	return r.TimeHorizon
}
