package main

import (
	"encoding/json"
	"net/http"

	"github.com/hirewire/jobboard/app/dto"
	"github.com/hirewire/jobboard/app/errors"
)

// signupHandler handles user registration
func (app *application) signupHandler(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errors.NewInvalidInput("invalid request body"))
		return
	}

	// Sanitize before validation. Emails are lowercased here, which makes
	// uniqueness and login lookups case-insensitive. Passwords are only
	// trimmed and capped so special characters survive.
	req.Name = sanitizeInput(req.Name, 100, false)
	req.Email = sanitizeEmail(req.Email, 255)
	req.Password = sanitizeInput(req.Password, 128, true)
	req.PhoneNumber = sanitizeInput(req.PhoneNumber, 30, false)
	req.Gender = sanitizeInput(req.Gender, 20, false)
	req.DateOfBirth = sanitizeInput(req.DateOfBirth, 30, false)
	req.MembershipStatus = sanitizeInput(req.MembershipStatus, 30, false)

	if err := validateRequest(&req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	resp, appErr := app.authService.Signup(r.Context(), req)
	if appErr != nil {
		writeErrorResponse(w, appErr)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// loginHandler handles user login
func (app *application) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, errors.NewInvalidInput("invalid request body"))
		return
	}

	req.Email = sanitizeEmail(req.Email, 255)
	req.Password = sanitizeInput(req.Password, 128, true)

	if err := validateRequest(&req); err != nil {
		writeErrorResponse(w, err)
		return
	}

	resp, appErr := app.authService.Login(r.Context(), req)
	if appErr != nil {
		writeErrorResponse(w, appErr)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
