package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-simulator/internal/db"
	"github.com/jonathan/career-simulator/internal/server/middleware"
	"github.com/jonathan/career-simulator/internal/types"
)

// handleCreateJob saves a job posting for the authenticated caller. Saved
// jobs can later be referenced from a simulation request by job_id.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	job := &db.Job{
		UserID:   userID,
		Title:    req.Title,
		Company:  req.Company,
		Salary:   req.Salary,
		Industry: req.Industry,
	}
	id, err := s.db.CreateJob(r.Context(), job)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	job.ID = id

	s.jsonResponse(w, http.StatusCreated, job)
}

// handleListJobs lists the authenticated caller's saved job postings.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := s.db.ListJobs(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jobs == nil {
		jobs = []db.Job{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"jobs":  jobs,
		"count": len(jobs),
	})
}
