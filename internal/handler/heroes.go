package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// HandleGetHeroes lists all heroes of a build. With only_active=true the
// response is filtered to heroes that are enabled and released.
func HandleGetHeroes(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		onlyActive := false
		if raw := r.URL.Query().Get("only_active"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				respondError(w, http.StatusBadRequest, "only_active must be a boolean")
				return
			}
			onlyActive = parsed
		}

		snapshot, ok := resolveSnapshot(w, r, catalog)
		if !ok {
			return
		}

		if onlyActive {
			respondJSON(w, http.StatusOK, snapshot.ActiveHeroes())
			return
		}
		respondJSON(w, http.StatusOK, snapshot.Heroes)
	}
}

// HandleGetHeroByID returns a single hero by its numeric id.
func HandleGetHeroByID(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil || id <= 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidHeroID)
			return
		}

		snapshot, ok := resolveSnapshot(w, r, catalog)
		if !ok {
			return
		}

		hero, err := snapshot.HeroByID(id)
		if err != nil {
			respondServiceError(w, r, "Get hero by id", err)
			return
		}
		respondJSON(w, http.StatusOK, hero)
	}
}

// HandleGetHeroByName returns a single hero by its localized or class name,
// matched case-insensitively.
func HandleGetHeroByName(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		snapshot, ok := resolveSnapshot(w, r, catalog)
		if !ok {
			return
		}

		hero, err := snapshot.HeroByName(name)
		if err != nil {
			respondServiceError(w, r, "Get hero by name", err)
			return
		}
		respondJSON(w, http.StatusOK, hero)
	}
}
