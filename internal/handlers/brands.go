// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the brand machine API.
// Handlers are grouped on the API struct and receive their dependencies
// through it. Responses are JSON except for export downloads, which
// stream the artifact bytes with download headers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/ai"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/cache"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/storage"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/store"
)

// API groups the brand machine's HTTP handlers and their dependencies.
// reports, events, and archive may be nil when Valkey or S3 are not
// configured; the handlers degrade to direct computation.
type API struct {
	brands   store.BrandRepository
	contents store.ContentRepository
	registry *ai.Registry
	reports  *cache.ReportCache
	events   *cache.Events
	archive  *storage.Archive
}

// NewAPI creates the handler group with the given dependencies.
func NewAPI(brands store.BrandRepository, contents store.ContentRepository, registry *ai.Registry, reports *cache.ReportCache, events *cache.Events, archive *storage.Archive) *API {
	return &API{
		brands:   brands,
		contents: contents,
		registry: registry,
		reports:  reports,
		events:   events,
		archive:  archive,
	}
}

// BrandsList returns all brands, newest first.
func (a *API) BrandsList(w http.ResponseWriter, r *http.Request) {
	brands, err := a.brands.List()
	if err != nil {
		slog.Error("list brands failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list brands")
		return
	}
	if brands == nil {
		brands = []models.Brand{}
	}
	writeJSON(w, http.StatusOK, brands)
}

// BrandCreate creates a brand from the request body. Missing color roles,
// fonts, and voice settings are filled with defaults before saving.
func (a *API) BrandCreate(w http.ResponseWriter, r *http.Request) {
	var brand models.Brand
	if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(brand.Name) == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	created, err := a.brands.Create(&brand)
	if err != nil {
		slog.Error("create brand failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create brand")
		return
	}

	a.publish(r, created.ID, cache.ActionCreated)
	writeJSON(w, http.StatusCreated, created)
}

// BrandGet returns a single brand by ID.
func (a *API) BrandGet(w http.ResponseWriter, r *http.Request) {
	brand, ok := a.loadBrand(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, brand)
}

// BrandUpdate replaces a brand's editable fields.
func (a *API) BrandUpdate(w http.ResponseWriter, r *http.Request) {
	existing, ok := a.loadBrand(w, r)
	if !ok {
		return
	}

	var brand models.Brand
	if err := json.NewDecoder(r.Body).Decode(&brand); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	brand.ID = existing.ID
	if strings.TrimSpace(brand.Name) == "" {
		brand.Name = existing.Name
	}

	updated, err := a.brands.Update(&brand)
	if err != nil {
		slog.Error("update brand failed", "brand_id", existing.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not update brand")
		return
	}

	a.publish(r, updated.ID, cache.ActionUpdated)
	a.invalidateReport(r, updated.ID)
	writeJSON(w, http.StatusOK, updated)
}

// BrandDelete removes a brand, its content sets, and any archived exports.
func (a *API) BrandDelete(w http.ResponseWriter, r *http.Request) {
	brand, ok := a.loadBrand(w, r)
	if !ok {
		return
	}

	if err := a.brands.Delete(brand.ID); err != nil {
		slog.Error("delete brand failed", "brand_id", brand.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete brand")
		return
	}

	if a.archive != nil {
		if err := a.archive.DeleteBrand(r.Context(), brand.ID); err != nil {
			slog.Warn("archive cleanup failed", "brand_id", brand.ID, "error", err)
		}
	}

	a.publish(r, brand.ID, cache.ActionDeleted)
	a.invalidateReport(r, brand.ID)
	w.WriteHeader(http.StatusNoContent)
}

// loadBrand resolves the {id} URL parameter to a stored brand. Writes the
// error response and returns false when the ID is malformed or unknown.
func (a *API) loadBrand(w http.ResponseWriter, r *http.Request) (*models.Brand, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid brand ID")
		return nil, false
	}

	brand, err := a.brands.FindByID(id)
	if err != nil {
		slog.Error("load brand failed", "brand_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load brand")
		return nil, false
	}
	if brand == nil {
		writeError(w, http.StatusNotFound, "brand not found")
		return nil, false
	}
	return brand, true
}

// publish emits a brand change event when the event bus is configured.
func (a *API) publish(r *http.Request, brandID uuid.UUID, action string) {
	if a.events != nil {
		a.events.Publish(r.Context(), brandID, action)
	}
}

// invalidateReport drops the cached accessibility report for a brand.
func (a *API) invalidateReport(r *http.Request, brandID uuid.UUID) {
	if a.reports != nil {
		a.reports.Invalidate(r.Context(), brandID)
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error envelope.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
