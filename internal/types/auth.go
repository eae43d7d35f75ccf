package types

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RegisterRequest represents the request to create a new user with password authentication.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// User represents a user profile for API responses (avoids import cycle with db package).
type User struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	ExperienceLevel   CareerLevel `json:"experience_level,omitempty"`
	YearsOfExperience int         `json:"years_of_experience"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// LoginResponse represents the login/register response with user data and authentication token.
type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// UpdateProfileRequest updates the profile fields used to enrich simulation requests.
type UpdateProfileRequest struct {
	ExperienceLevel   CareerLevel `json:"experience_level" validate:"required,oneof=Entry Mid Senior Lead Principal Executive"`
	YearsOfExperience int         `json:"years_of_experience" validate:"min=0"`
}

// JobRequest represents a job posting to save for later simulation targeting.
type JobRequest struct {
	Title    string  `json:"title" validate:"required,min=1"`
	Company  string  `json:"company,omitempty"`
	Salary   float64 `json:"salary,omitempty" validate:"omitempty,gt=0"`
	Industry string  `json:"industry,omitempty"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateProfileRequest using the validator.
func (r *UpdateProfileRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the JobRequest using the validator.
func (r *JobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
