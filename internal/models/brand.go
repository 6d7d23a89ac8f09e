// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Tone describes the overall voice a brand uses in generated copy.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneInnovative   Tone = "innovative"
	TonePremium      Tone = "premium"
	TonePlayful      Tone = "playful"
	ToneTrustworthy  Tone = "trustworthy"
)

// Formality selects the form of address used in generated German copy.
type Formality string

const (
	FormalityDu  Formality = "du"
	FormalitySie Formality = "sie"
	FormalityWir Formality = "wir"
)

// NamedColor is an additional palette color beyond the five required roles.
type NamedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// BrandColors holds the five required color roles plus an optional extended
// palette. Every role must be a 6-digit hex string; Normalize fills gaps.
type BrandColors struct {
	Primary    string       `json:"primary"`
	Secondary  string       `json:"secondary"`
	Accent     string       `json:"accent"`
	Background string       `json:"background"`
	Text       string       `json:"text"`
	Palette    []NamedColor `json:"palette,omitempty"`
}

// FontUsage tags an extra font with where it is meant to be used.
type FontUsage struct {
	Name  string `json:"name"`
	Usage string `json:"usage"`
}

// BrandFonts holds CSS-style font stacks. The first quoted token of a stack
// is the canonical family name (e.g. `"Inter", sans-serif` → Inter).
type BrandFonts struct {
	Heading    string      `json:"heading"`
	Body       string      `json:"body"`
	Additional []FontUsage `json:"additional,omitempty"`
}

// BrandVoice captures tone-of-voice settings used by the content generator
// and carried verbatim into the design tokens.
type BrandVoice struct {
	Tone      Tone      `json:"tone"`
	Formality Formality `json:"formality"`
	Tagline   string    `json:"tagline"`
	// Dos and Donts are comma-separated keyword strings as entered by the
	// user; the token resolver parses them into trimmed lists.
	Dos   string `json:"dos"`
	Donts string `json:"donts"`
}

// Brand is the user-owned source of truth every export is derived from.
// Logo may be a data URI or an HTTP(S) URL.
type Brand struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Colors    BrandColors `json:"colors"`
	Fonts     BrandFonts  `json:"fonts"`
	Voice     BrandVoice  `json:"voice"`
	Logo      string      `json:"logo,omitempty"`
	Logos     []string    `json:"logos,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Documented defaults applied by Normalize when a color role is missing.
// These match the demo brand seeded in development.
const (
	DefaultPrimary    = "#2563eb"
	DefaultSecondary  = "#1e40af"
	DefaultAccent     = "#f59e0b"
	DefaultBackground = "#ffffff"
	DefaultText       = "#1f2937"

	DefaultHeadingFont = `"Inter", "Helvetica Neue", Arial, sans-serif`
	DefaultBodyFont    = `"Inter", "Helvetica Neue", Arial, sans-serif`
)

// Normalize fills missing color roles, font stacks, and voice settings with
// their documented defaults so that token resolution never sees an undefined
// value. It must be called before a brand reaches the resolver or any
// exporter.
func (b *Brand) Normalize() {
	if !isHexColor(b.Colors.Primary) {
		b.Colors.Primary = DefaultPrimary
	}
	if !isHexColor(b.Colors.Secondary) {
		b.Colors.Secondary = DefaultSecondary
	}
	if !isHexColor(b.Colors.Accent) {
		b.Colors.Accent = DefaultAccent
	}
	if !isHexColor(b.Colors.Background) {
		b.Colors.Background = DefaultBackground
	}
	if !isHexColor(b.Colors.Text) {
		b.Colors.Text = DefaultText
	}
	if b.Fonts.Heading == "" {
		b.Fonts.Heading = DefaultHeadingFont
	}
	if b.Fonts.Body == "" {
		b.Fonts.Body = DefaultBodyFont
	}
	if b.Voice.Tone == "" {
		b.Voice.Tone = ToneProfessional
	}
	if b.Voice.Formality == "" {
		b.Voice.Formality = FormalitySie
	}
}

// isHexColor reports whether s is a #-prefixed 6-digit hex color.
func isHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
