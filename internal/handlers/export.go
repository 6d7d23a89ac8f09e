// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/accessibility"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/export"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// formatAsset maps export formats to the content set they interpolate.
// Formats missing here (token exports, print specs, package) render from
// the brand's tokens alone.
var formatAsset = map[string]models.AssetType{
	export.FormatPPTX:      models.AssetPresentation,
	export.FormatPDFFlyer:  models.AssetFlyer,
	export.FormatPDFCard:   models.AssetBusinessCard,
	export.FormatHTMLEmail: models.AssetEmail,
	export.FormatHTMLHero:  models.AssetWebsite,
}

// ExportBrand renders one export format for a brand and streams it as a
// file download. Accepts an optional page_size query parameter for the
// formats that honour it. When S3 is configured the artifact is also
// archived, best effort.
func (a *API) ExportBrand(w http.ResponseWriter, r *http.Request) {
	brand, ok := a.loadBrand(w, r)
	if !ok {
		return
	}
	format := chi.URLParam(r, "format")

	var content *models.Content
	if assetType, needs := formatAsset[format]; needs {
		c, err := a.contents.FindByBrandAndType(brand.ID, assetType)
		if err != nil {
			slog.Error("load export content failed", "brand_id", brand.ID, "asset_type", assetType, "error", err)
			writeError(w, http.StatusInternalServerError, "could not load content")
			return
		}
		content = c
	}

	tok := tokens.Resolve(brand)
	opts := export.Options{PageSize: r.URL.Query().Get("page_size")}

	artifact, err := export.Export(r.Context(), format, tok, content, opts)
	if err != nil {
		if errors.Is(err, export.ErrUnsupportedFormat) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.Error("export failed", "brand_id", brand.ID, "format", format, "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	if a.archive != nil {
		if key, err := a.archive.Put(r.Context(), brand.ID, artifact); err != nil {
			slog.Warn("artifact archive failed", "brand_id", brand.ID, "format", format, "error", err)
		} else {
			slog.Info("artifact archived", "brand_id", brand.ID, "key", key)
		}
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	w.Write(artifact.Data)
}

// ExportFormats lists the accepted format identifiers.
func (a *API) ExportFormats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"formats": export.Formats})
}

// Accessibility returns the WCAG contrast report for a brand. Reports are
// cached in Valkey when available; a brand update invalidates the entry.
func (a *API) Accessibility(w http.ResponseWriter, r *http.Request) {
	brand, ok := a.loadBrand(w, r)
	if !ok {
		return
	}

	if a.reports != nil {
		if cached := a.reports.Get(r.Context(), brand.ID); cached != nil {
			writeJSON(w, http.StatusOK, cached)
			return
		}
	}

	report := accessibility.CheckBrand(brand)
	if a.reports != nil {
		a.reports.Set(r.Context(), brand.ID, &report)
	}
	writeJSON(w, http.StatusOK, report)
}
