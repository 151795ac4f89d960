package handler

import (
	"net/http"
)

// VersionResponse reports the deployed service version
type VersionResponse struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// HandleVersion returns the deployed service version, for deployment
// verification.
func HandleVersion(version, environment string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{
			Version:     version,
			Environment: environment,
		})
	}
}
