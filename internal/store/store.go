// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package store implements the persistence layer on PostgreSQL. Brands and
// their content sets are stored with jsonb payloads for the nested
// structures; handlers depend on the repository interfaces so tests can
// substitute in-memory fakes.
package store

import (
	"github.com/google/uuid"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// BrandRepository is the persistence surface for brands. FindByID returns
// (nil, nil) when the brand does not exist.
type BrandRepository interface {
	List() ([]models.Brand, error)
	FindByID(id uuid.UUID) (*models.Brand, error)
	Create(b *models.Brand) (*models.Brand, error)
	Update(b *models.Brand) (*models.Brand, error)
	Delete(id uuid.UUID) error
}

// ContentRepository is the persistence surface for per-asset content sets.
// FindByBrandAndType returns (nil, nil) when no content is stored yet.
type ContentRepository interface {
	ListByBrand(brandID uuid.UUID) ([]models.Content, error)
	FindByBrandAndType(brandID uuid.UUID, assetType models.AssetType) (*models.Content, error)
	Upsert(c *models.Content) (*models.Content, error)
}
