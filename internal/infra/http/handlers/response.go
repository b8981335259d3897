package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/dthstore/dthstore-api/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP statuses. Not-found codes become
// 404, every other domain error is the caller's fault.
func writeError(w http.ResponseWriter, err error) {
	if domainErr, ok := err.(*usecase.DomainError); ok {
		status := http.StatusBadRequest
		if domainErr.Code == "LEAD_NOT_FOUND" {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ErrorResponse{Success: false, Code: domainErr.Code, Message: domainErr.Message})
		return
	}

	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Success: false, Message: "internal error"})
}
