package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
	"github.com/raimannma/deadlock-assets-api/internal/logger"
	"github.com/raimannma/deadlock-assets-api/internal/registry"
)

// Catalog is the read surface handlers need. *registry.Registry satisfies it.
type Catalog interface {
	Versions() []int
	Latest() (int, error)
	Snapshot(ctx context.Context, id int, lang domain.Language) (*registry.Snapshot, error)
}

// resolveSnapshot resolves the "language" and "client_version" query
// parameters to a snapshot. An absent client_version means the newest build,
// an unknown language falls back to English.
//
// If ok is false the error response has already been written and the handler
// should return.
func resolveSnapshot(w http.ResponseWriter, r *http.Request, catalog Catalog) (*registry.Snapshot, bool) {
	log := logger.FromContext(r.Context())

	lang := domain.ParseLanguage(r.URL.Query().Get("language"))

	build, ok := resolveClientVersion(w, r, catalog)
	if !ok {
		return nil, false
	}

	snapshot, err := catalog.Snapshot(r.Context(), build, lang)
	if err != nil {
		respondServiceError(w, r, "Resolve snapshot", err)
		return nil, false
	}

	log.Debug("Snapshot resolved", "build", build, "language", lang)
	return snapshot, true
}

func resolveClientVersion(w http.ResponseWriter, r *http.Request, catalog Catalog) (int, bool) {
	raw := r.URL.Query().Get("client_version")
	if raw == "" {
		latest, err := catalog.Latest()
		if err != nil {
			respondServiceError(w, r, "Resolve client version", err)
			return 0, false
		}
		return latest, true
	}

	build, err := strconv.Atoi(raw)
	if err != nil || build <= 0 {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidClientVersion)
		return 0, false
	}
	return build, true
}
