package main

import (
	"encoding/json"
	"net/http"

	"github.com/hirewire/jobboard/app/dto"
	"github.com/hirewire/jobboard/app/errors"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeErrorResponse writes an error response in a consistent format
func writeErrorResponse(w http.ResponseWriter, appErr *errors.AppError) {
	writeJSON(w, appErr.Status, dto.ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Code),
	})
}
