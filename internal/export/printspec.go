// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/colormath"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// ColorSpec is the print production data for one brand color role.
type ColorSpec struct {
	Role    string `json:"role"`
	Hex     string `json:"hex"`
	RGB     string `json:"rgb"`
	CMYK    string `json:"cmyk"`
	Pantone string `json:"pantone"`
	Usage   string `json:"usage"`
}

// FormatSpec is the physical production data for one print format.
type FormatSpec struct {
	Name       string `json:"name"`
	TrimSize   string `json:"trim_size"`
	Bleed      string `json:"bleed"`
	SafeZone   string `json:"safe_zone"`
	Resolution string `json:"resolution"`
}

// BlackSpec is one entry of the fixed black-handling guidance.
type BlackSpec struct {
	Name    string `json:"name"`
	CMYK    string `json:"cmyk"`
	Usage   string `json:"usage"`
	Warning string `json:"warning,omitempty"`
}

// printSpecDoc is the complete print specification document.
type printSpecDoc struct {
	Brand   string       `json:"brand"`
	Colors  []ColorSpec  `json:"colors"`
	Formats []FormatSpec `json:"formats"`
	Black   []BlackSpec  `json:"black_handling"`
	Notes   []string     `json:"notes"`
}

// pantoneTable maps hex values to their coated Pantone equivalents. Only
// exact matches resolve; anything else reports "Process (CMYK)". There is
// no nearest-match lookup: a wrong spot color recommendation is worse than
// recommending process printing.
var pantoneTable = map[string]string{
	"#001489": "Reflex Blue C",
	"#0085ca": "Process Blue C",
	"#0032a0": "286 C",
	"#da291c": "485 C",
	"#ef3340": "Red 032 C",
	"#fe5000": "Orange 021 C",
	"#fedd00": "Yellow C",
	"#00ab84": "Green C",
	"#bb29bb": "Purple C",
	"#e10098": "Rhodamine Red C",
	"#2d2926": "Black C",
	"#75787b": "Cool Gray 9 C",
}

// printFormats is the fixed table of supported physical formats.
var printFormats = []FormatSpec{
	{Name: "A4", TrimSize: "210 × 297 mm", Bleed: "3 mm", SafeZone: "5 mm", Resolution: "300 dpi"},
	{Name: "A5", TrimSize: "148 × 210 mm", Bleed: "3 mm", SafeZone: "5 mm", Resolution: "300 dpi"},
	{Name: "DIN lang", TrimSize: "99 × 210 mm", Bleed: "3 mm", SafeZone: "5 mm", Resolution: "300 dpi"},
	{Name: "Visitenkarte", TrimSize: "85 × 55 mm", Bleed: "3 mm", SafeZone: "3 mm", Resolution: "300 dpi"},
	{Name: "Plakat A3", TrimSize: "297 × 420 mm", Bleed: "3 mm", SafeZone: "10 mm", Resolution: "300 dpi"},
	{Name: "Plakat A2", TrimSize: "420 × 594 mm", Bleed: "5 mm", SafeZone: "10 mm", Resolution: "150 dpi"},
	{Name: "Plakat A1", TrimSize: "594 × 841 mm", Bleed: "5 mm", SafeZone: "15 mm", Resolution: "150 dpi"},
}

// blackHandling is the fixed guidance for black in print production.
var blackHandling = []BlackSpec{
	{
		Name:  "Textschwarz",
		CMYK:  "0/0/0/100",
		Usage: "Fließtext und feine Linien — reines K vermeidet Passerdifferenzen.",
	},
	{
		Name:    "Tiefschwarz",
		CMYK:    "40/40/40/100",
		Usage:   "Große schwarze Flächen mit sattem Druckbild.",
		Warning: "Nicht für Text unter 18 pt — Passerungenauigkeit wird sichtbar.",
	},
	{
		Name:    "Registerschwarz",
		CMYK:    "100/100/100/100",
		Usage:   "Ausschließlich für Passermarken.",
		Warning: "Niemals in Artwork verwenden — Farbauftrag weit über dem Limit.",
	},
}

// roleUsage describes the intended use of each color role on print products.
var roleUsage = map[string]string{
	"primary":    "Hauptfarbe für Flächen, Headlines und Markenelemente.",
	"secondary":  "Sekundärflächen, Hintergründe von Infoboxen.",
	"accent":     "Call-to-Actions und Hervorhebungen — sparsam einsetzen.",
	"background": "Seitenhintergrund und Weißraum.",
	"text":       "Fließtext und Beschriftungen.",
}

// PrintSpecs computes the full print specification for a brand: CMYK values
// and Pantone matches per color role, the physical format tables, and the
// black-handling rules.
func PrintSpecs(tok tokens.DesignTokens) (*Artifact, error) {
	roles := []struct{ name, hex string }{
		{"primary", tok.Colors.Primary},
		{"secondary", tok.Colors.Secondary},
		{"accent", tok.Colors.Accent},
		{"background", tok.Colors.Background},
		{"text", tok.Colors.Text},
	}

	doc := printSpecDoc{
		Brand:   tok.BrandName,
		Formats: printFormats,
		Black:   blackHandling,
		Notes: []string{
			"Alle Angaben beziehen sich auf den Endbeschnitt (Trim).",
			"Pantone-Zuordnung nur bei exakter Übereinstimmung; sonst Prozessfarbe (CMYK) verwenden.",
			"Daten im Farbprofil ISO Coated v2 anlegen.",
		},
	}

	for _, role := range roles {
		rgb := colormath.HexToRGB(role.hex)
		cmyk := colormath.HexToCMYK(role.hex)
		doc.Colors = append(doc.Colors, ColorSpec{
			Role:    role.name,
			Hex:     strings.ToLower(role.hex),
			RGB:     fmt.Sprintf("%d/%d/%d", rgb.R, rgb.G, rgb.B),
			CMYK:    fmt.Sprintf("%d/%d/%d/%d", cmyk.C, cmyk.M, cmyk.Y, cmyk.K),
			Pantone: pantoneFor(role.hex),
			Usage:   roleUsage[role.name],
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("print specs: %w", err)
	}
	data = append(data, '\n')

	return &Artifact{
		Filename:    baseName(tok) + "-print-specs.json",
		ContentType: "application/json",
		Data:        data,
	}, nil
}

// pantoneFor resolves a hex color to a Pantone name on exact match only.
func pantoneFor(hex string) string {
	if p, ok := pantoneTable[strings.ToLower(hex)]; ok {
		return p
	}
	return "Process (CMYK)"
}
