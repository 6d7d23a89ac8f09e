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

// BrandStore handles all brand database operations.
type BrandStore struct {
	db *sql.DB
}

// NewBrandStore creates a new BrandStore.
func NewBrandStore(db *sql.DB) *BrandStore {
	return &BrandStore{db: db}
}

// brandColumns lists the columns selected in brand queries.
const brandColumns = `id, name, colors, fonts, voice, logo, logos, created_at, updated_at`

// scanBrand scans a brand row, decoding the jsonb payloads.
func scanBrand(scanner interface{ Scan(...any) error }) (*models.Brand, error) {
	var (
		b      models.Brand
		colors []byte
		fonts  []byte
		voice  []byte
		logos  []byte
	)
	err := scanner.Scan(&b.ID, &b.Name, &colors, &fonts, &voice, &b.Logo, &logos, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(colors, &b.Colors); err != nil {
		return nil, fmt.Errorf("decode colors: %w", err)
	}
	if err := json.Unmarshal(fonts, &b.Fonts); err != nil {
		return nil, fmt.Errorf("decode fonts: %w", err)
	}
	if err := json.Unmarshal(voice, &b.Voice); err != nil {
		return nil, fmt.Errorf("decode voice: %w", err)
	}
	if len(logos) > 0 {
		if err := json.Unmarshal(logos, &b.Logos); err != nil {
			return nil, fmt.Errorf("decode logos: %w", err)
		}
	}
	return &b, nil
}

// encodeBrand marshals the nested brand structures for the jsonb columns.
func encodeBrand(b *models.Brand) (colors, fonts, voice, logos []byte, err error) {
	if colors, err = json.Marshal(b.Colors); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode colors: %w", err)
	}
	if fonts, err = json.Marshal(b.Fonts); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode fonts: %w", err)
	}
	if voice, err = json.Marshal(b.Voice); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode voice: %w", err)
	}
	if logos, err = json.Marshal(b.Logos); err != nil {
		return nil, nil, nil, nil, fmt.Errorf("encode logos: %w", err)
	}
	return colors, fonts, voice, logos, nil
}

// List returns all brands ordered by creation date descending.
func (s *BrandStore) List() ([]models.Brand, error) {
	rows, err := s.db.Query(`
		SELECT ` + brandColumns + `
		FROM brands
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var items []models.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// FindByID retrieves a brand by its UUID. Returns nil if not found.
func (s *BrandStore) FindByID(id uuid.UUID) (*models.Brand, error) {
	row := s.db.QueryRow(`SELECT `+brandColumns+` FROM brands WHERE id = $1`, id)
	b, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brand by id: %w", err)
	}
	return b, nil
}

// Create inserts a new brand and returns it with the generated ID and
// timestamps. The brand is normalized before writing so the database never
// holds an incomplete color or font set.
func (s *BrandStore) Create(b *models.Brand) (*models.Brand, error) {
	b.Normalize()
	colors, fonts, voice, logos, err := encodeBrand(b)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		INSERT INTO brands (name, colors, fonts, voice, logo, logos)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+brandColumns,
		b.Name, colors, fonts, voice, b.Logo, logos,
	)
	created, err := scanBrand(row)
	if err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return created, nil
}

// Update rewrites all editable brand fields and returns the stored row.
func (s *BrandStore) Update(b *models.Brand) (*models.Brand, error) {
	b.Normalize()
	colors, fonts, voice, logos, err := encodeBrand(b)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRow(`
		UPDATE brands
		SET name = $1, colors = $2, fonts = $3, voice = $4, logo = $5, logos = $6, updated_at = NOW()
		WHERE id = $7
		RETURNING `+brandColumns,
		b.Name, colors, fonts, voice, b.Logo, logos, b.ID,
	)
	updated, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("brand %s not found", b.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return updated, nil
}

// Delete removes a brand. Content rows cascade via the foreign key.
func (s *BrandStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("brand %s not found", id)
	}
	return nil
}
