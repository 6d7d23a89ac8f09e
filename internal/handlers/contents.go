// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// assetTypes lists the editable content sets per brand.
var assetTypes = map[models.AssetType]bool{
	models.AssetWebsite:      true,
	models.AssetFlyer:        true,
	models.AssetSocial:       true,
	models.AssetPresentation: true,
	models.AssetBusinessCard: true,
	models.AssetEmail:        true,
}

// ContentsList returns every stored content set for a brand.
func (a *API) ContentsList(w http.ResponseWriter, r *http.Request) {
	brand, ok := a.loadBrand(w, r)
	if !ok {
		return
	}

	contents, err := a.contents.ListByBrand(brand.ID)
	if err != nil {
		slog.Error("list contents failed", "brand_id", brand.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not list contents")
		return
	}
	if contents == nil {
		contents = []models.Content{}
	}
	writeJSON(w, http.StatusOK, contents)
}

// ContentGet returns the content set for one asset type. A brand without
// stored content for the type gets an empty field map, not a 404, so the
// editor can start from a blank form.
func (a *API) ContentGet(w http.ResponseWriter, r *http.Request) {
	brand, ok := a.loadBrand(w, r)
	if !ok {
		return
	}
	assetType, ok := parseAssetType(w, r)
	if !ok {
		return
	}

	content, err := a.contents.FindByBrandAndType(brand.ID, assetType)
	if err != nil {
		slog.Error("load content failed", "brand_id", brand.ID, "asset_type", assetType, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load content")
		return
	}
	if content == nil {
		content = &models.Content{
			BrandID:   brand.ID,
			AssetType: assetType,
			Fields:    map[string]models.Field{},
		}
	}
	writeJSON(w, http.StatusOK, content)
}

// ContentPut replaces the field set for one asset type.
func (a *API) ContentPut(w http.ResponseWriter, r *http.Request) {
	brand, ok := a.loadBrand(w, r)
	if !ok {
		return
	}
	assetType, ok := parseAssetType(w, r)
	if !ok {
		return
	}

	var body struct {
		Fields map[string]models.Field `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Fields == nil {
		body.Fields = map[string]models.Field{}
	}

	saved, err := a.contents.Upsert(&models.Content{
		BrandID:   brand.ID,
		AssetType: assetType,
		Fields:    body.Fields,
	})
	if err != nil {
		slog.Error("save content failed", "brand_id", brand.ID, "asset_type", assetType, "error", err)
		writeError(w, http.StatusInternalServerError, "could not save content")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// parseAssetType validates the {assetType} URL parameter.
func parseAssetType(w http.ResponseWriter, r *http.Request) (models.AssetType, bool) {
	assetType := models.AssetType(chi.URLParam(r, "assetType"))
	if !assetTypes[assetType] {
		writeError(w, http.StatusBadRequest, "unknown asset type")
		return "", false
	}
	return assetType, true
}
