package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-simulator/internal/db"
	"github.com/jonathan/career-simulator/internal/schemas"
	"github.com/jonathan/career-simulator/internal/server/middleware"
	"github.com/jonathan/career-simulator/internal/simulation"
	"github.com/jonathan/career-simulator/internal/types"
)

// handleCreateSimulation runs a career path simulation and persists the result.
func (s *Server) handleCreateSimulation(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Schema validation catches shape errors with field paths before decoding.
	if err := schemas.ValidateSimulateRequest(body); err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			s.errorResponse(w, http.StatusBadRequest, ve.Error())
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req types.SimulateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	// An authenticated caller's profile fills in level and tenure the request
	// omitted. Anonymous requests run as given.
	userID, authErr := middleware.GetUserID(r)
	if authErr == nil {
		user, err := s.db.GetUser(r.Context(), userID)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if user == nil {
			s.errorResponse(w, http.StatusNotFound, (&ErrUserNotFound{UserID: userID}).Error())
			return
		}
		if req.CurrentRole.Level == "" {
			req.CurrentRole.Level = user.ExperienceLevel
		}
		if req.CurrentRole.YearsOfExperience == 0 {
			req.CurrentRole.YearsOfExperience = user.YearsOfExperience
		}
	}

	input := simulation.RunInput{
		CurrentRole: types.Role{
			Title:             req.CurrentRole.Title,
			Level:             req.CurrentRole.Level,
			Salary:            req.CurrentRole.Salary,
			Industry:          req.CurrentRole.Industry,
			YearsOfExperience: req.CurrentRole.YearsOfExperience,
		},
		TargetRoles:     s.resolveTargetRoles(r, req.TargetRoles),
		TimeHorizon:     req.HorizonOrDefault(),
		SuccessCriteria: req.SuccessCriteria,
		Seed:            resolveSeed(req.Seed),
	}

	sim, err := simulation.Run(input)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if authErr == nil {
		sim.UserID = userID
	}

	id, err := s.db.CreateSimulation(r.Context(), sim.UserID, &sim)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	sim.ID = id

	s.jsonResponse(w, http.StatusCreated, sim)
}

// resolveTargetRoles converts request targets into roles, resolving job_id
// references against saved job postings. A lookup miss is not fatal: the
// target is used exactly as supplied.
func (s *Server) resolveTargetRoles(r *http.Request, targets []types.TargetRoleInput) []types.Role {
	roles := make([]types.Role, 0, len(targets))
	for _, t := range targets {
		role := types.Role{
			Title:    t.Title,
			Level:    t.Level,
			Salary:   t.Salary,
			Company:  t.Company,
			Industry: t.Industry,
		}

		if t.JobID != nil {
			job, err := s.db.GetJob(r.Context(), *t.JobID)
			switch {
			case err != nil:
				log.Printf("[simulate] job lookup failed for %s: %v", *t.JobID, err)
			case job == nil:
				log.Printf("[simulate] job not found: %s", *t.JobID)
			default:
				// Inline fields win over resolved ones.
				if role.Title == "" {
					role.Title = job.Title
				}
				if role.Company == "" {
					role.Company = job.Company
				}
				if role.Salary == 0 {
					role.Salary = job.Salary
				}
				if role.Industry == "" {
					role.Industry = job.Industry
				}
			}
		}

		roles = append(roles, role)
	}
	return roles
}

// resolveSeed returns the requested seed, or a time-derived one so repeated
// anonymous runs do not collide.
func resolveSeed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

// handleGetSimulation retrieves a stored simulation by ID.
func (s *Server) handleGetSimulation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid simulation ID format")
		return
	}

	sim, err := s.db.GetSimulation(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if sim == nil {
		s.errorResponse(w, http.StatusNotFound, "Simulation not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, sim)
}

// handleListSimulations lists stored simulation summaries with optional filters.
func (s *Server) handleListSimulations(w http.ResponseWriter, r *http.Request) {
	filters := db.SimulationFilters{}

	if v := r.URL.Query().Get("user_id"); v != "" {
		userID, err := uuid.Parse(v)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid user_id format")
			return
		}
		filters.UserID = userID
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		filters.Limit = limit
	}

	summaries, err := s.db.ListSimulations(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if summaries == nil {
		summaries = []db.SimulationSummary{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"simulations": summaries,
		"count":       len(summaries),
	})
}

// handleDeleteSimulation deletes a stored simulation.
func (s *Server) handleDeleteSimulation(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid simulation ID format")
		return
	}

	if err := s.db.DeleteSimulation(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			s.errorResponse(w, http.StatusNotFound, "Simulation not found")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleDecisionPoints returns the merged decision points for one path of a
// stored simulation, ordered by year.
func (s *Server) handleDecisionPoints(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid simulation ID format")
		return
	}
	pathID := r.PathValue("path_id")

	sim, err := s.db.GetSimulation(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if sim == nil {
		s.errorResponse(w, http.StatusNotFound, "Simulation not found")
		return
	}

	points, err := simulation.DecisionPoints(sim, pathID)
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	if points == nil {
		points = []types.DecisionPoint{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"path_id":         pathID,
		"decision_points": points,
	})
}
