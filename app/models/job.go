package models

import "time"

// Company is the hiring company embedded in a job listing. Persisted as a
// JSONB document alongside the job row.
type Company struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
}

// Job is a job listing. OwnerUserID is set only in the authenticated
// deployment variant and is empty otherwise.
type Job struct {
	ID          string
	Title       string
	Type        string
	Description string
	Company     Company
	OwnerUserID string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
