package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-simulator/internal/types"
)

// User represents a user profile. ExperienceLevel and YearsOfExperience are
// used to enrich a simulation request's current role when the caller omits
// level or tenure.
type User struct {
	ID                uuid.UUID         `json:"id"`
	Name              string            `json:"name"`
	Email             string            `json:"email"`
	PasswordHash      string            `json:"-" db:"password_hash"` // Never serialize to JSON
	ExperienceLevel   types.CareerLevel `json:"experience_level,omitempty"`
	YearsOfExperience int               `json:"years_of_experience"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Job represents a saved job posting that a target role's job_id can resolve to.
type Job struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Company   string    `json:"company,omitempty"`
	Salary    float64   `json:"salary"`
	Industry  string    `json:"industry,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SimulationSummary is a lightweight view of a stored simulation for listing.
type SimulationSummary struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	TimeHorizon       int       `json:"time_horizon"`
	RecommendedPathID string    `json:"recommended_path_id"`
	Confidence        float64   `json:"confidence"`
	CreatedAt         time.Time `json:"created_at"`
}

// SimulationFilters holds optional filters for listing simulations
type SimulationFilters struct {
	UserID uuid.UUID
	Limit  int
}
