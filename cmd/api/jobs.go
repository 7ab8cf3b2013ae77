package main

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hirewire/jobboard/app/dto"
	appErrors "github.com/hirewire/jobboard/app/errors"
	"github.com/hirewire/jobboard/app/metrics"
	"github.com/hirewire/jobboard/app/middleware"
	"github.com/hirewire/jobboard/app/models"
)

// requestOwner returns the authenticated user's id, or "" in the open
// deployment variant where job routes carry no identity.
func (app *application) requestOwner(r *http.Request) string {
	if user, ok := middleware.UserFromContext(r.Context()); ok {
		return user.ID
	}
	return ""
}

func (app *application) listJobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs, err := app.store.Jobs.GetAll(r.Context(), app.requestOwner(r))
	if err != nil {
		writeErrorResponse(w, appErrors.NewInternal("error listing jobs"))
		return
	}

	// Encode as a bare array; an empty listing is [] rather than null
	resp := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		resp = append(resp, toJobResponse(&jobs[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (app *application) getJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	job, err := app.store.Jobs.GetByID(r.Context(), jobID, app.requestOwner(r))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeErrorResponse(w, appErrors.NewNotFound("job"))
			return
		}
		writeErrorResponse(w, appErrors.NewInternal("error getting job"))
		return
	}

	writeJSON(w, http.StatusOK, toJobResponse(job))
}

func (app *application) createJobHandler(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, appErrors.NewInvalidInput("invalid request body"))
		return
	}

	req.Company.ContactEmail = sanitizeEmail(req.Company.ContactEmail, 255)
	if err := validateRequest(&req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	job := &models.Job{
		Title:       req.Title,
		Type:        req.Type,
		Description: req.Description,
		Company: models.Company{
			Name:         req.Company.Name,
			ContactEmail: req.Company.ContactEmail,
			ContactPhone: req.Company.ContactPhone,
		},
		OwnerUserID: app.requestOwner(r),
	}
	if err := app.store.Jobs.Create(r.Context(), job); err != nil {
		writeErrorResponse(w, appErrors.NewInternal("error creating job"))
		return
	}

	metrics.RecordJobCreated()
	writeJSON(w, http.StatusCreated, toJobResponse(job))
}

// updateJobHandler applies a partial update: fields absent from the payload
// keep their stored values. Ownership is checked by the scoped read.
func (app *application) updateJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	var req dto.UpdateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, appErrors.NewInvalidInput("invalid request body"))
		return
	}
	if req.Company != nil {
		req.Company.ContactEmail = sanitizeEmail(req.Company.ContactEmail, 255)
	}
	if err := validateRequest(&req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	job, err := app.store.Jobs.GetByID(r.Context(), jobID, app.requestOwner(r))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeErrorResponse(w, appErrors.NewNotFound("job"))
			return
		}
		writeErrorResponse(w, appErrors.NewInternal("error getting job"))
		return
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Company != nil {
		job.Company = models.Company{
			Name:         req.Company.Name,
			ContactEmail: req.Company.ContactEmail,
			ContactPhone: req.Company.ContactPhone,
		}
	}

	if err := app.store.Jobs.Update(r.Context(), job); err != nil {
		writeErrorResponse(w, appErrors.NewInternal("error updating job"))
		return
	}

	writeJSON(w, http.StatusOK, toJobResponse(job))
}

func (app *application) deleteJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")

	if err := app.store.Jobs.Delete(r.Context(), jobID, app.requestOwner(r)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeErrorResponse(w, appErrors.NewNotFound("job"))
			return
		}
		writeErrorResponse(w, appErrors.NewInternal("error deleting job"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toJobResponse(job *models.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		Title:       job.Title,
		Type:        job.Type,
		Description: job.Description,
		Company: dto.CompanyPayload{
			Name:         job.Company.Name,
			ContactEmail: job.Company.ContactEmail,
			ContactPhone: job.Company.ContactPhone,
		},
		OwnerUserID: job.OwnerUserID,
		CreatedAt:   job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   job.UpdatedAt.Format(time.RFC3339),
	}
}
