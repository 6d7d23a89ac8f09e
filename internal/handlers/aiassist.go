// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/ai"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/cache"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// ExtractBrand builds a brand from a free-text description via the active
// AI provider and stores it. The response is the created brand with all
// defaults applied.
func (a *API) ExtractBrand(w http.ResponseWriter, r *http.Request) {
	if a.registry == nil {
		writeError(w, http.StatusServiceUnavailable, "no AI provider configured")
		return
	}

	var body struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Description) == "" {
		writeError(w, http.StatusBadRequest, "name and description are required")
		return
	}

	brand, err := ai.ExtractBrand(r.Context(), a.registry, body.Name, body.Description)
	if err != nil {
		slog.Error("brand extraction failed", "name", body.Name, "error", err)
		writeError(w, http.StatusBadGateway, "brand extraction failed")
		return
	}

	created, err := a.brands.Create(brand)
	if err != nil {
		slog.Error("save extracted brand failed", "name", body.Name, "error", err)
		writeError(w, http.StatusInternalServerError, "could not save brand")
		return
	}

	a.publish(r, created.ID, cache.ActionCreated)
	writeJSON(w, http.StatusCreated, created)
}

// GenerateContent asks the active AI provider for copy matching the
// brand's voice and stores it as the asset type's content set.
func (a *API) GenerateContent(w http.ResponseWriter, r *http.Request) {
	if a.registry == nil {
		writeError(w, http.StatusServiceUnavailable, "no AI provider configured")
		return
	}

	brand, ok := a.loadBrand(w, r)
	if !ok {
		return
	}

	var body struct {
		AssetType string `json:"asset_type"`
		Brief     string `json:"brief"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	assetType := models.AssetType(body.AssetType)
	if !assetTypes[assetType] {
		writeError(w, http.StatusBadRequest, "unknown asset type")
		return
	}

	fields, err := ai.GenerateContent(r.Context(), a.registry, brand, assetType, body.Brief)
	if err != nil {
		slog.Error("content generation failed", "brand_id", brand.ID, "asset_type", assetType, "error", err)
		writeError(w, http.StatusBadGateway, "content generation failed")
		return
	}

	content := &models.Content{BrandID: brand.ID, AssetType: assetType}
	for key, value := range fields {
		content.Set(key, value)
	}

	saved, err := a.contents.Upsert(content)
	if err != nil {
		slog.Error("save generated content failed", "brand_id", brand.ID, "asset_type", assetType, "error", err)
		writeError(w, http.StatusInternalServerError, "could not save content")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
