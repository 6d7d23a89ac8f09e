// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package tokens derives the canonical DesignTokens structure from a Brand.
// Resolution is pure and deterministic: the same brand always produces
// deep-equal tokens, and every exporter reads exclusively from this
// structure. Tokens are recomputed on each export and never persisted.
package tokens

import (
	"fmt"
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/colormath"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// derivedBlend is the fixed lightness factor for primaryLight/primaryDark.
const derivedBlend = 0.2

// mutedAlpha is the alpha applied to the text color for textMuted.
const mutedAlpha = 0.6

// ColorTokens holds the five brand roles plus the auto-derived variants.
// TextMuted is an rgba() string; everything else is 6-digit hex.
type ColorTokens struct {
	Primary      string `json:"primary"`
	PrimaryLight string `json:"primaryLight"`
	PrimaryDark  string `json:"primaryDark"`
	Secondary    string `json:"secondary"`
	Accent       string `json:"accent"`
	Background   string `json:"background"`
	Text         string `json:"text"`
	TextMuted    string `json:"textMuted"`
}

// Font is a resolved font: the full CSS stack plus the extracted clean
// family name.
type Font struct {
	Stack  string `json:"stack"`
	Family string `json:"family"`
}

// TypeStyle is one step of the semantic type scale.
type TypeStyle struct {
	Name       string  `json:"name"`
	Size       int     `json:"size"`       // px
	LineHeight float64 `json:"lineHeight"` // unitless
	Weight     int     `json:"weight"`
}

// Typography carries the resolved fonts and the fixed semantic scale.
// The scale is constant across brands; only the families vary.
type Typography struct {
	Heading Font        `json:"heading"`
	Body    Font        `json:"body"`
	Scale   []TypeStyle `json:"scale"`
}

// SpacingStep is one named step of the fixed spacing scale.
type SpacingStep struct {
	Name string `json:"name"`
	Px   int    `json:"px"`
}

// RadiusStep is one named step of the fixed border-radius scale.
type RadiusStep struct {
	Name string `json:"name"`
	Px   int    `json:"px"`
}

// Voice is the brand voice with dos/donts parsed into keyword lists.
type Voice struct {
	Tone      models.Tone      `json:"tone"`
	Formality models.Formality `json:"formality"`
	Tagline   string           `json:"tagline"`
	Dos       []string         `json:"dos"`
	Donts     []string         `json:"donts"`
}

// DesignTokens is the derived, read-only representation of a brand's visual
// language that all exporters consume.
type DesignTokens struct {
	BrandName  string        `json:"brandName"`
	Colors     ColorTokens   `json:"colors"`
	Typography Typography    `json:"typography"`
	Spacing    []SpacingStep `json:"spacing"`
	Radius     []RadiusStep  `json:"radius"`
	Voice      Voice         `json:"voice"`
	Logo       string        `json:"logo,omitempty"`
}

// typeScale is the fixed semantic scale, identical for every brand.
var typeScale = []TypeStyle{
	{Name: "h1", Size: 48, LineHeight: 1.1, Weight: 700},
	{Name: "h2", Size: 36, LineHeight: 1.2, Weight: 700},
	{Name: "h3", Size: 28, LineHeight: 1.3, Weight: 600},
	{Name: "h4", Size: 22, LineHeight: 1.35, Weight: 600},
	{Name: "body", Size: 16, LineHeight: 1.6, Weight: 400},
	{Name: "small", Size: 14, LineHeight: 1.5, Weight: 400},
	{Name: "caption", Size: 12, LineHeight: 1.4, Weight: 400},
}

// spacingScale is the fixed spacing scale in pixels.
var spacingScale = []SpacingStep{
	{Name: "xs", Px: 4},
	{Name: "sm", Px: 8},
	{Name: "md", Px: 16},
	{Name: "lg", Px: 24},
	{Name: "xl", Px: 32},
	{Name: "xxl", Px: 48},
	{Name: "xxxl", Px: 64},
}

// radiusScale is the fixed border-radius scale in pixels.
var radiusScale = []RadiusStep{
	{Name: "sm", Px: 4},
	{Name: "md", Px: 8},
	{Name: "lg", Px: 16},
	{Name: "pill", Px: 999},
}

// Resolve converts a normalized brand into design tokens. It is a total
// function with no error path: callers must run Brand.Normalize first so
// every color role is a valid hex string.
func Resolve(brand *models.Brand) DesignTokens {
	text := colormath.HexToRGB(brand.Colors.Text)

	return DesignTokens{
		BrandName: brand.Name,
		Colors: ColorTokens{
			Primary:      brand.Colors.Primary,
			PrimaryLight: colormath.Lighten(brand.Colors.Primary, derivedBlend),
			PrimaryDark:  colormath.Darken(brand.Colors.Primary, derivedBlend),
			Secondary:    brand.Colors.Secondary,
			Accent:       brand.Colors.Accent,
			Background:   brand.Colors.Background,
			Text:         brand.Colors.Text,
			TextMuted:    fmt.Sprintf("rgba(%d, %d, %d, %.1f)", text.R, text.G, text.B, mutedAlpha),
		},
		Typography: Typography{
			Heading: Font{Stack: brand.Fonts.Heading, Family: CleanFontName(brand.Fonts.Heading)},
			Body:    Font{Stack: brand.Fonts.Body, Family: CleanFontName(brand.Fonts.Body)},
			Scale:   append([]TypeStyle(nil), typeScale...),
		},
		Spacing: append([]SpacingStep(nil), spacingScale...),
		Radius:  append([]RadiusStep(nil), radiusScale...),
		Voice: Voice{
			Tone:      brand.Voice.Tone,
			Formality: brand.Voice.Formality,
			Tagline:   brand.Voice.Tagline,
			Dos:       SplitKeywords(brand.Voice.Dos),
			Donts:     SplitKeywords(brand.Voice.Donts),
		},
		Logo: brand.Logo,
	}
}

// CleanFontName extracts the canonical family name from a CSS font stack:
// the first quoted substring, or the text before the first comma when
// nothing is quoted.
func CleanFontName(stack string) string {
	stack = strings.TrimSpace(stack)
	for _, q := range []byte{'"', '\''} {
		start := strings.IndexByte(stack, q)
		if start == -1 {
			continue
		}
		end := strings.IndexByte(stack[start+1:], q)
		if end == -1 {
			continue
		}
		return stack[start+1 : start+1+end]
	}
	if idx := strings.IndexByte(stack, ','); idx != -1 {
		return strings.TrimSpace(stack[:idx])
	}
	return stack
}

// SplitKeywords parses a comma-separated keyword string into a list of
// trimmed, non-empty keywords.
func SplitKeywords(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if kw := strings.TrimSpace(p); kw != "" {
			out = append(out, kw)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
