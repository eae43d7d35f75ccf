package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/career-simulator/internal/types"
)

// CreateSimulation stores a completed simulation document and returns its ID.
// Simulations are immutable once stored; there is no update path.
func (db *DB) CreateSimulation(ctx context.Context, userID uuid.UUID, sim *types.Simulation) (uuid.UUID, error) {
	document, err := json.Marshal(sim)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal simulation: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO simulations (user_id, document)
		 VALUES ($1, $2)
		 RETURNING id`,
		userID, document,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create simulation: %w", err)
	}
	return id, nil
}

// GetSimulation retrieves a stored simulation by ID. Returns (nil, nil) when
// no simulation exists with that ID.
func (db *DB) GetSimulation(ctx context.Context, simulationID uuid.UUID) (*types.Simulation, error) {
	var document []byte
	var userID uuid.UUID
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, document FROM simulations WHERE id = $1`,
		simulationID,
	).Scan(&userID, &document)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get simulation: %w", err)
	}

	var sim types.Simulation
	if err := json.Unmarshal(document, &sim); err != nil {
		return nil, fmt.Errorf("failed to unmarshal simulation %s: %w", simulationID, err)
	}
	sim.ID = simulationID
	sim.UserID = userID
	return &sim, nil
}

// ListSimulations retrieves simulation summaries with optional filters
func (db *DB) ListSimulations(ctx context.Context, filters SimulationFilters) ([]SimulationSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, user_id,
			(document->>'time_horizon')::int,
			document->'recommended_path'->>'path_id',
			(document->'recommended_path'->>'confidence')::float8,
			created_at
		FROM simulations WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.UserID != uuid.Nil {
		query += fmt.Sprintf(" AND user_id = $%d", argNum)
		args = append(args, filters.UserID)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulations: %w", err)
	}
	defer rows.Close()

	var summaries []SimulationSummary
	for rows.Next() {
		var s SimulationSummary
		if err := rows.Scan(&s.ID, &s.UserID, &s.TimeHorizon, &s.RecommendedPathID, &s.Confidence, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan simulation: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// DeleteSimulation deletes a stored simulation
func (db *DB) DeleteSimulation(ctx context.Context, simulationID uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM simulations WHERE id = $1`, simulationID)
	if err != nil {
		return fmt.Errorf("failed to delete simulation: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("simulation not found: %s", simulationID)
	}
	return nil
}
