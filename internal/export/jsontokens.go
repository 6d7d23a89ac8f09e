// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"encoding/json"
	"fmt"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/colormath"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// JSONTokens emits the full design token tree plus voice metadata as
// pretty-printed JSON.
func JSONTokens(tok tokens.DesignTokens) (*Artifact, error) {
	payload := struct {
		Meta struct {
			Brand     string `json:"brand"`
			Generator string `json:"generator"`
		} `json:"meta"`
		Tokens tokens.DesignTokens `json:"tokens"`
	}{Tokens: tok}
	payload.Meta.Brand = tok.BrandName
	payload.Meta.Generator = "tyrnon-brand-machine"

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json tokens: %w", err)
	}
	data = append(data, '\n')

	return &Artifact{
		Filename:    baseName(tok) + "-tokens.json",
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// figmaToken is one W3C-design-tokens-style leaf with $type/$value wrappers,
// as consumed by Figma's variable import plugins.
type figmaToken struct {
	Type  string `json:"$type"`
	Value any    `json:"$value"`
}

// FigmaVariables emits the tokens in the W3C design-tokens flavor: every
// leaf wrapped in {$type, $value}, grouped by collection.
func FigmaVariables(tok tokens.DesignTokens) (*Artifact, error) {
	color := map[string]figmaToken{
		"primary":       {Type: "color", Value: tok.Colors.Primary},
		"primary-light": {Type: "color", Value: tok.Colors.PrimaryLight},
		"primary-dark":  {Type: "color", Value: tok.Colors.PrimaryDark},
		"secondary":     {Type: "color", Value: tok.Colors.Secondary},
		"accent":        {Type: "color", Value: tok.Colors.Accent},
		"background":    {Type: "color", Value: tok.Colors.Background},
		"text":          {Type: "color", Value: tok.Colors.Text},
	}
	for step, hex := range colormath.GenerateScale(tok.Colors.Primary) {
		color[fmt.Sprintf("primary-%d", step)] = figmaToken{Type: "color", Value: hex}
	}

	font := map[string]figmaToken{
		"heading": {Type: "fontFamily", Value: tok.Typography.Heading.Family},
		"body":    {Type: "fontFamily", Value: tok.Typography.Body.Family},
	}

	size := make(map[string]figmaToken, len(tok.Typography.Scale))
	weight := make(map[string]figmaToken, len(tok.Typography.Scale))
	for _, s := range tok.Typography.Scale {
		size[s.Name] = figmaToken{Type: "dimension", Value: fmt.Sprintf("%dpx", s.Size)}
		weight[s.Name] = figmaToken{Type: "fontWeight", Value: s.Weight}
	}

	spacing := make(map[string]figmaToken, len(tok.Spacing))
	for _, s := range tok.Spacing {
		spacing[s.Name] = figmaToken{Type: "dimension", Value: fmt.Sprintf("%dpx", s.Px)}
	}
	radius := make(map[string]figmaToken, len(tok.Radius))
	for _, r := range tok.Radius {
		radius[r.Name] = figmaToken{Type: "dimension", Value: fmt.Sprintf("%dpx", r.Px)}
	}

	// Map keys are sorted by encoding/json, so output stays deterministic.
	doc := map[string]any{
		"color":      color,
		"fontFamily": font,
		"fontSize":   size,
		"fontWeight": weight,
		"spacing":    spacing,
		"radius":     radius,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("figma variables: %w", err)
	}
	data = append(data, '\n')

	return &Artifact{
		Filename:    baseName(tok) + "-figma-variables.json",
		ContentType: "application/json",
		Data:        data,
	}, nil
}
