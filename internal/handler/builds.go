package handler

import (
	"net/http"
)

// HandleGetClientVersions lists the known build ids, newest first.
func HandleGetClientVersions(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, catalog.Versions())
	}
}
