// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// ContentStore handles all content database operations. Each brand holds at
// most one content set per asset type, enforced by a unique constraint.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

const contentColumns = `id, brand_id, asset_type, fields, created_at, updated_at`

func scanContent(scanner interface{ Scan(...any) error }) (*models.Content, error) {
	var (
		c      models.Content
		fields []byte
	)
	err := scanner.Scan(&c.ID, &c.BrandID, &c.AssetType, &fields, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(fields, &c.Fields); err != nil {
		return nil, fmt.Errorf("decode fields: %w", err)
	}
	return &c, nil
}

// ListByBrand returns all content sets of a brand, ordered by asset type.
func (s *ContentStore) ListByBrand(brandID uuid.UUID) ([]models.Content, error) {
	rows, err := s.db.Query(`
		SELECT `+contentColumns+`
		FROM contents
		WHERE brand_id = $1
		ORDER BY asset_type
	`, brandID)
	if err != nil {
		return nil, fmt.Errorf("list contents: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindByBrandAndType retrieves one content set. Returns nil if the brand has
// no content for that asset type yet.
func (s *ContentStore) FindByBrandAndType(brandID uuid.UUID, assetType models.AssetType) (*models.Content, error) {
	row := s.db.QueryRow(`
		SELECT `+contentColumns+`
		FROM contents
		WHERE brand_id = $1 AND asset_type = $2
	`, brandID, assetType)
	c, err := scanContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content: %w", err)
	}
	return c, nil
}

// Upsert inserts or replaces the content set for (brand, asset type) and
// returns the stored row.
func (s *ContentStore) Upsert(c *models.Content) (*models.Content, error) {
	fields, err := json.Marshal(c.Fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO contents (brand_id, asset_type, fields)
		VALUES ($1, $2, $3)
		ON CONFLICT (brand_id, asset_type)
		DO UPDATE SET fields = EXCLUDED.fields, updated_at = NOW()
		RETURNING `+contentColumns,
		c.BrandID, c.AssetType, fields,
	)
	stored, err := scanContent(row)
	if err != nil {
		return nil, fmt.Errorf("upsert content: %w", err)
	}
	return stored, nil
}
