package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-simulator/internal/types"
)

// CreateUser creates a new user and returns its ID
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		name, email, passwordHash,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves a user by ID. Returns (nil, nil) when not found.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	var user User
	var level *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, experience_level, years_of_experience, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &level, &user.YearsOfExperience, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if level != nil {
		user.ExperienceLevel = types.CareerLevel(*level)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email. Returns (nil, nil) when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	var level *string
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, experience_level, years_of_experience, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &level, &user.YearsOfExperience, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	if level != nil {
		user.ExperienceLevel = types.CareerLevel(*level)
	}
	return &user, nil
}

// UpdateUserProfile updates the enrichment fields of a user profile
func (db *DB) UpdateUserProfile(ctx context.Context, userID uuid.UUID, level types.CareerLevel, yearsOfExperience int) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET experience_level = $1, years_of_experience = $2, updated_at = NOW() WHERE id = $3`,
		string(level), yearsOfExperience, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user profile: %w", err)
	}
	return nil
}
