package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-simulator/internal/types"
)

func writeRequestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSimulateCommand_EndToEnd(t *testing.T) {
	reqPath := writeRequestFile(t, `{
		"current_role": {"title": "Software Engineer", "salary": 100000, "level": "Mid", "industry": "Technology"},
		"target_roles": [{"title": "Staff Engineer", "salary": 160000, "level": "Senior"}],
		"time_horizon": 5
	}`)
	outPath := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, simulateCmd.Flags().Set("request", reqPath))
	require.NoError(t, simulateCmd.Flags().Set("output", outPath))
	require.NoError(t, simulateCmd.Flags().Set("seed", "42"))

	err := runSimulateCmd(simulateCmd, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var sim types.Simulation
	require.NoError(t, json.Unmarshal(data, &sim))

	assert.Equal(t, 5, sim.TimeHorizon)
	assert.Equal(t, int64(42), sim.Seed)
	require.Len(t, sim.Paths, 3)
	assert.Equal(t, "current-track", sim.Paths[0].PathID)
	assert.Equal(t, "target-1", sim.Paths[1].PathID)
	assert.Equal(t, "industry-switch", sim.Paths[2].PathID)
	assert.NotEmpty(t, sim.RecommendedPath.PathID)
}

func TestSimulateCommand_MissingRequestFile(t *testing.T) {
	require.NoError(t, simulateCmd.Flags().Set("request", "/nonexistent/request.json"))

	err := runSimulateCmd(simulateCmd, nil)
	assert.Error(t, err)
}

func TestSimulateCommand_SchemaViolation(t *testing.T) {
	// Salary must be positive.
	reqPath := writeRequestFile(t, `{"current_role": {"title": "Engineer", "salary": -1}}`)
	require.NoError(t, simulateCmd.Flags().Set("request", reqPath))

	err := runSimulateCmd(simulateCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid request document")
}

func TestTargetRolesFromRequest(t *testing.T) {
	jobID := uuid.New()
	targets := []types.TargetRoleInput{
		{Title: "Manager", Salary: 150000, Level: types.LevelLead, Industry: "Finance"},
		{JobID: &jobID, Title: "Architect"},
	}

	roles := targetRolesFromRequest(targets)
	require.Len(t, roles, 2)
	assert.Equal(t, "Manager", roles[0].Title)
	assert.Equal(t, types.LevelLead, roles[0].Level)
	// job_id is ignored offline; inline fields pass through as given.
	assert.Equal(t, "Architect", roles[1].Title)
	assert.Zero(t, roles[1].Salary)
}

func TestSeedFromRequest(t *testing.T) {
	seed := int64(7)
	assert.Equal(t, int64(7), seedFromRequest(&seed))
	assert.NotZero(t, seedFromRequest(nil))
}
