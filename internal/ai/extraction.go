// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// extractSystemPrompt instructs the model to return the brand profile as
// strict JSON. The schema mirrors ExtractionResult below.
const extractSystemPrompt = `You are a brand identity analyst. From the user's description of a
company or website, extract a brand profile.

Respond with ONLY a JSON object, no prose, in exactly this shape:
{
  "colors": [{"hex": "#rrggbb", "role": "primary|secondary|accent|background|text"}],
  "fonts": [{"name": "Font Name", "usage": "heading|body"}],
  "toneOfVoice": "professional|friendly|innovative|premium|playful|trustworthy",
  "formality": "du|sie|wir",
  "tagline": "a short brand tagline in the language of the description",
  "additionalNotes": "anything notable that does not fit the fields above"
}

Rules: hex colors are lowercase 6-digit values. Pick at most one color per
role. If the description gives no usable value for a field, omit it.`

// ExtractionResult is the JSON document the extraction prompt requests.
type ExtractionResult struct {
	Colors []struct {
		Hex  string `json:"hex"`
		Role string `json:"role"`
	} `json:"colors"`
	Fonts []struct {
		Name  string `json:"name"`
		Usage string `json:"usage"`
	} `json:"fonts"`
	ToneOfVoice     string `json:"toneOfVoice"`
	Formality       string `json:"formality"`
	Tagline         string `json:"tagline"`
	AdditionalNotes string `json:"additionalNotes"`
}

// ExtractBrand asks the active provider to derive a brand profile from a
// free-form description and maps the result onto a normalized Brand.
// Unrecognized roles, tones, and malformed colors are dropped; missing
// roles fall back to the defaults via Normalize.
func ExtractBrand(ctx context.Context, reg *Registry, name, description string) (*models.Brand, error) {
	raw, err := reg.Generate(ctx, extractSystemPrompt, description)
	if err != nil {
		return nil, fmt.Errorf("extract brand: %w", err)
	}

	var result ExtractionResult
	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return nil, fmt.Errorf("extract brand: parse response: %w", err)
	}

	brand := &models.Brand{Name: name}
	for _, c := range result.Colors {
		hex := strings.ToLower(strings.TrimSpace(c.Hex))
		switch strings.ToLower(c.Role) {
		case "primary":
			brand.Colors.Primary = hex
		case "secondary":
			brand.Colors.Secondary = hex
		case "accent":
			brand.Colors.Accent = hex
		case "background":
			brand.Colors.Background = hex
		case "text":
			brand.Colors.Text = hex
		default:
			brand.Colors.Palette = append(brand.Colors.Palette, models.NamedColor{Name: c.Role, Hex: hex})
		}
	}
	for _, f := range result.Fonts {
		switch strings.ToLower(f.Usage) {
		case "heading":
			brand.Fonts.Heading = fontStack(f.Name)
		case "body":
			brand.Fonts.Body = fontStack(f.Name)
		default:
			brand.Fonts.Additional = append(brand.Fonts.Additional, models.FontUsage{Name: f.Name, Usage: f.Usage})
		}
	}

	brand.Voice.Tone = parseTone(result.ToneOfVoice)
	brand.Voice.Formality = parseFormality(result.Formality)
	brand.Voice.Tagline = strings.TrimSpace(result.Tagline)
	if notes := strings.TrimSpace(result.AdditionalNotes); notes != "" {
		brand.Voice.Dos = notes
	}

	brand.Normalize()
	return brand, nil
}

// assetFields lists the content fields each asset type carries. The
// generation prompt requests exactly these keys.
var assetFields = map[models.AssetType][]string{
	models.AssetWebsite:      {"headline", "subline", "cta"},
	models.AssetFlyer:        {"headline", "subline", "body", "offer", "cta"},
	models.AssetSocial:       {"headline", "body", "cta"},
	models.AssetPresentation: {"headline", "agenda", "cta"},
	models.AssetBusinessCard: {"name", "role", "company", "email", "phone", "website"},
	models.AssetEmail:        {"subject", "greeting", "body", "signoff", "cta"},
}

// GenerateContent asks the active provider for asset copy in the brand
// voice. It returns one value per field of the asset type; fields the model
// omitted are simply absent and later render as placeholders.
func GenerateContent(ctx context.Context, reg *Registry, brand *models.Brand, assetType models.AssetType, brief string) (map[string]string, error) {
	fields, ok := assetFields[assetType]
	if !ok {
		return nil, fmt.Errorf("generate content: unknown asset type %q", assetType)
	}

	var sys strings.Builder
	fmt.Fprintf(&sys, "You are the copywriter for the brand %q.\n", brand.Name)
	fmt.Fprintf(&sys, "Tone of voice: %s. Form of address: %s.\n", brand.Voice.Tone, brand.Voice.Formality)
	if brand.Voice.Tagline != "" {
		fmt.Fprintf(&sys, "Tagline: %q.\n", brand.Voice.Tagline)
	}
	if brand.Voice.Dos != "" {
		fmt.Fprintf(&sys, "Style to follow: %s.\n", brand.Voice.Dos)
	}
	if brand.Voice.Donts != "" {
		fmt.Fprintf(&sys, "Style to avoid: %s.\n", brand.Voice.Donts)
	}
	fmt.Fprintf(&sys, "\nWrite the copy for a %s. Respond with ONLY a JSON object with exactly these string keys: %s. Write in German unless the brief demands otherwise.",
		assetType, strings.Join(fields, ", "))

	raw, err := reg.Generate(ctx, sys.String(), brief)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(stripFences(raw)), &values); err != nil {
		return nil, fmt.Errorf("generate content: parse response: %w", err)
	}

	// Keep only the fields this asset type knows.
	out := make(map[string]string, len(fields))
	for _, key := range fields {
		if v := strings.TrimSpace(values[key]); v != "" {
			out[key] = v
		}
	}
	return out, nil
}

// stripFences removes a surrounding markdown code fence, which several
// models add despite the JSON-only instruction.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// fontStack wraps a bare family name into a CSS stack with a sans-serif
// fallback, quoting names that contain spaces.
func fontStack(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.ContainsAny(name, " ") {
		return fmt.Sprintf("%q, sans-serif", name)
	}
	return name + ", sans-serif"
}

func parseTone(s string) models.Tone {
	switch models.Tone(strings.ToLower(strings.TrimSpace(s))) {
	case models.ToneProfessional, models.ToneFriendly, models.ToneInnovative,
		models.TonePremium, models.TonePlayful, models.ToneTrustworthy:
		return models.Tone(strings.ToLower(strings.TrimSpace(s)))
	default:
		return models.ToneProfessional
	}
}

func parseFormality(s string) models.Formality {
	switch models.Formality(strings.ToLower(strings.TrimSpace(s))) {
	case models.FormalityDu, models.FormalitySie, models.FormalityWir:
		return models.Formality(strings.ToLower(strings.TrimSpace(s)))
	default:
		return models.FormalitySie
	}
}
