package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/raimannma/deadlock-assets-api/internal/domain"
)

// HandleGetItems lists all items of a build.
func HandleGetItems(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, ok := resolveSnapshot(w, r, catalog)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, snapshot.Items)
	}
}

// HandleGetItem returns a single item addressed either by its numeric id or
// by its class name.
func HandleGetItem(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "id_or_class_name")

		snapshot, ok := resolveSnapshot(w, r, catalog)
		if !ok {
			return
		}

		item, err := snapshot.ItemByIDOrClassName(key)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleGetItemsByHeroID lists the items owned by a hero, signature abilities
// and weapons included. The hero itself must exist.
func HandleGetItemsByHeroID(catalog Catalog) http.HandlerFunc {
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

		if _, err := snapshot.HeroByID(id); err != nil {
			respondServiceError(w, r, "Get items by hero id", err)
			return
		}
		respondJSON(w, http.StatusOK, snapshot.ItemsByHeroID(id))
	}
}

// HandleGetItemsByType lists items of one kind (weapon, ability or upgrade).
func HandleGetItemsByType(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		itemType := domain.ParseItemType(chi.URLParam(r, "type"))
		if itemType == domain.ItemTypeUnknown {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemType)
			return
		}

		snapshot, ok := resolveSnapshot(w, r, catalog)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, snapshot.ItemsByType(itemType))
	}
}

// HandleGetItemsBySlotType lists upgrades in one shop category.
func HandleGetItemsBySlotType(catalog Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slot := domain.ParseItemSlotType(chi.URLParam(r, "slot_type"))
		if slot == domain.ItemSlotTypeUnknown {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidItemSlotType)
			return
		}

		snapshot, ok := resolveSnapshot(w, r, catalog)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, snapshot.ItemsBySlotType(slot))
	}
}
