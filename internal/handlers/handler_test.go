// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure: in-memory
// repositories and a scripted AI provider, so handler tests run without
// PostgreSQL or an AI key.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/ai"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// memBrands is an in-memory BrandRepository.
type memBrands struct {
	mu    sync.Mutex
	items map[uuid.UUID]models.Brand
}

func newMemBrands() *memBrands {
	return &memBrands{items: make(map[uuid.UUID]models.Brand)}
}

func (m *memBrands) List() ([]models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Brand, 0, len(m.items))
	for _, b := range m.items {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memBrands) FindByID(id uuid.UUID) (*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (m *memBrands) Create(b *models.Brand) (*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b.Normalize()
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	m.items[b.ID] = *b
	return b, nil
}

func (m *memBrands) Update(b *models.Brand) (*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	existing, ok := m.items[b.ID]
	if !ok {
		return nil, fmt.Errorf("brand %s not found", b.ID)
	}
	b.Normalize()
	b.CreatedAt = existing.CreatedAt
	b.UpdatedAt = time.Now()
	m.items[b.ID] = *b
	return b, nil
}

func (m *memBrands) Delete(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return fmt.Errorf("brand %s not found", id)
	}
	delete(m.items, id)
	return nil
}

// memContents is an in-memory ContentRepository keyed by brand and type.
type memContents struct {
	mu    sync.Mutex
	items map[string]models.Content
}

func newMemContents() *memContents {
	return &memContents{items: make(map[string]models.Content)}
}

func contentKey(brandID uuid.UUID, assetType models.AssetType) string {
	return brandID.String() + "/" + string(assetType)
}

func (m *memContents) ListByBrand(brandID uuid.UUID) ([]models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Content
	for _, c := range m.items {
		if c.BrandID == brandID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetType < out[j].AssetType })
	return out, nil
}

func (m *memContents) FindByBrandAndType(brandID uuid.UUID, assetType models.AssetType) (*models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.items[contentKey(brandID, assetType)]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memContents) Upsert(c *models.Content) (*models.Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := contentKey(c.BrandID, c.AssetType)
	if existing, ok := m.items[key]; ok {
		c.ID = existing.ID
		c.CreatedAt = existing.CreatedAt
	} else {
		c.ID = uuid.New()
		c.CreatedAt = time.Now()
	}
	c.UpdatedAt = time.Now()
	m.items[key] = *c
	return c, nil
}

// mockAIProvider implements ai.Provider with a scripted response.
type mockAIProvider struct {
	response string
	err      error
}

func (m *mockAIProvider) Name() string { return "test" }
func (m *mockAIProvider) Generate(_ context.Context, _, _ string) (string, error) {
	return m.response, m.err
}

// testEnv bundles the API handler group with its in-memory backends.
type testEnv struct {
	Brands   *memBrands
	Contents *memContents
	API      *API
}

// newTestEnv creates a handler group backed by in-memory repositories and
// the given scripted AI response.
func newTestEnv(t *testing.T, aiResponse string) *testEnv {
	t.Helper()

	brands := newMemBrands()
	contents := newMemContents()

	registry := ai.NewRegistry("test", map[string]ai.ProviderConfig{})
	registry.Register("test", &mockAIProvider{response: aiResponse})

	api := NewAPI(brands, contents, registry, nil, nil, nil)
	return &testEnv{Brands: brands, Contents: contents, API: api}
}

// seedBrand stores a fully specified brand and returns it.
func seedBrand(t *testing.T, env *testEnv) *models.Brand {
	t.Helper()

	brand := &models.Brand{
		Name: "Nordlicht Kaffee",
		Colors: models.BrandColors{
			Primary:    "#2563eb",
			Secondary:  "#1e40af",
			Accent:     "#f59e0b",
			Background: "#ffffff",
			Text:       "#1f2937",
		},
		Voice: models.BrandVoice{
			Tone:      models.ToneFriendly,
			Formality: models.FormalityDu,
			Tagline:   "Kaffee, der den Tag rettet",
		},
	}
	created, err := env.Brands.Create(brand)
	if err != nil {
		t.Fatalf("seed brand: %v", err)
	}
	return created
}

// withURLParams adds chi URL parameters to a request.
func withURLParams(r *http.Request, pairs ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(pairs); i += 2 {
		rctx.URLParams.Add(pairs[i], pairs[i+1])
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

var errBackend = errors.New("backend unavailable")
