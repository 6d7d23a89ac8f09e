// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package router tests verify the HTTP routing configuration and the
// health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/handlers"
)

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/health", nil)

	healthHandler(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
}

func TestRouterRoutes(t *testing.T) {
	api := handlers.NewAPI(nil, nil, nil, nil, nil, nil)
	r := New(api)

	// Routes that exist respond; unknown paths 404. Handlers that would
	// touch a nil repository are not exercised here.
	tests := []struct {
		method string
		path   string
		found  bool
	}{
		{"GET", "/health", true},
		{"GET", "/api/formats", true},
		{"GET", "/nope", false},
		{"GET", "/api/stickers", false},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tt.method, tt.path, nil)
		r.ServeHTTP(w, req)

		if tt.found && w.Code == http.StatusNotFound {
			t.Errorf("%s %s: unexpected 404", tt.method, tt.path)
		}
		if !tt.found && w.Code != http.StatusNotFound {
			t.Errorf("%s %s: got %d, want 404", tt.method, tt.path, w.Code)
		}
	}
}
