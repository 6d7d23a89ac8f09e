// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetType identifies the kind of marketing collateral a content set
// belongs to. Field keys are asset-type specific (e.g. headline/subline/cta
// for a website, subject/greeting/body for an email).
type AssetType string

const (
	AssetWebsite      AssetType = "website"
	AssetFlyer        AssetType = "flyer"
	AssetSocial       AssetType = "social"
	AssetPresentation AssetType = "presentation"
	AssetBusinessCard AssetType = "businesscard"
	AssetEmail        AssetType = "email"
)

// Field holds one editable content value.
type Field struct {
	Value string `json:"value"`
}

// Content is the per-brand, per-asset-type text the exporters interpolate.
// Missing fields are legal; exporters substitute documented placeholders.
type Content struct {
	ID        uuid.UUID        `json:"id"`
	BrandID   uuid.UUID        `json:"brand_id"`
	AssetType AssetType        `json:"asset_type"`
	Fields    map[string]Field `json:"fields"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Value returns the value for key, or "" if the field is absent.
func (c *Content) Value(key string) string {
	if c == nil || c.Fields == nil {
		return ""
	}
	return c.Fields[key].Value
}

// Set stores a field value, allocating the map on first use.
func (c *Content) Set(key, value string) {
	if c.Fields == nil {
		c.Fields = make(map[string]Field)
	}
	c.Fields[key] = Field{Value: value}
}
