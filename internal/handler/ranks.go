package handler

import (
	"net/http"
)

// HandleGetRanks lists the ranked badge tiers with localized names.
func HandleGetRanks(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := resolveSnapshot(w, r, catalog)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, snapshot.Ranks)
	}
}
