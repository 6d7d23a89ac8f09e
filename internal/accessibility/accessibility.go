// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package accessibility runs a fixed battery of WCAG contrast checks against
// a brand's colors. The battery, the thresholds, and the scoring weights are
// frozen so reports stay comparable across brands and releases. Checks
// operate directly on Brand.Colors, never on resolved design tokens.
package accessibility

import (
	"fmt"
	"math"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/colormath"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// WCAG 2.1 contrast thresholds. Large text (≥18pt, or ≥14pt bold) gets the
// relaxed limits.
const (
	aaNormal  = 4.5
	aaLarge   = 3.0
	aaaNormal = 7.0
	aaaLarge  = 4.5
)

// Check is the result of one foreground/background contrast measurement.
type Check struct {
	Name       string  `json:"name"`
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	LargeText  bool    `json:"large_text"`
	Ratio      float64 `json:"ratio"`
	PassAA     bool    `json:"pass_aa"`
	PassAAA    bool    `json:"pass_aaa"`
	Grade      string  `json:"grade"` // "AAA", "AA", or "F"
}

// Issue is a structured finding attached to a report.
type Issue struct {
	Check   string  `json:"check"`
	Message string  `json:"message"`
	Ratio   float64 `json:"ratio"`
	Needed  float64 `json:"needed"`
}

// Report is the full accessibility result for a brand.
type Report struct {
	Checks   []Check `json:"checks"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Score    int     `json:"score"`
	Band     string  `json:"band"`
}

// pairSpec describes one entry of the fixed battery.
type pairSpec struct {
	name  string
	fg    func(c models.BrandColors) string
	bg    func(c models.BrandColors) string
	large bool
}

// battery is the fixed list of six foreground/background pairs every brand
// is measured against, in report order.
var battery = []pairSpec{
	{"Fließtext auf Hintergrund", text, background, false},
	{"Überschrift in Primärfarbe auf Hintergrund", primary, background, true},
	{"Weiße Headline auf Primärfläche", white, primary, true},
	{"Button-Text auf Akzentfarbe", white, accent, false},
	{"Kleiner weißer Text auf Primärfläche", white, primary, false},
	{"Weißer Text auf Sekundärfläche", white, secondary, false},
}

func text(c models.BrandColors) string       { return c.Text }
func background(c models.BrandColors) string { return c.Background }
func primary(c models.BrandColors) string    { return c.Primary }
func accent(c models.BrandColors) string     { return c.Accent }
func secondary(c models.BrandColors) string  { return c.Secondary }
func white(models.BrandColors) string        { return "#ffffff" }

// CheckBrand measures every pair of the fixed battery and produces the
// scored report. Score = 70·(AA passes/total) + 30·(AAA passes/total),
// rounded; bands: ≥90 Exzellent, ≥70 Gut, ≥50 Ausreichend, else Kritisch.
func CheckBrand(brand *models.Brand) Report {
	var report Report
	var passed, aaaCount int

	for _, spec := range battery {
		fg, bg := spec.fg(brand.Colors), spec.bg(brand.Colors)
		ratio := colormath.ContrastRatio(fg, bg)

		aaNeed, aaaNeed := aaNormal, aaaNormal
		if spec.large {
			aaNeed, aaaNeed = aaLarge, aaaLarge
		}

		check := Check{
			Name:       spec.name,
			Foreground: fg,
			Background: bg,
			LargeText:  spec.large,
			Ratio:      math.Round(ratio*100) / 100,
			PassAA:     ratio >= aaNeed,
			PassAAA:    ratio >= aaaNeed,
		}
		switch {
		case check.PassAAA:
			check.Grade = "AAA"
		case check.PassAA:
			check.Grade = "AA"
		default:
			check.Grade = "F"
		}
		report.Checks = append(report.Checks, check)

		if check.PassAA {
			passed++
		} else {
			report.Errors = append(report.Errors, Issue{
				Check:   spec.name,
				Message: fmt.Sprintf("Kontrast %.2f:1 unterschreitet das WCAG-AA-Minimum von %.1f:1", check.Ratio, aaNeed),
				Ratio:   check.Ratio,
				Needed:  aaNeed,
			})
		}
		if check.PassAAA {
			aaaCount++
		} else if check.PassAA && !spec.large {
			// AA-only passes on normal text get a nudge toward AAA.
			report.Warnings = append(report.Warnings, Issue{
				Check:   spec.name,
				Message: fmt.Sprintf("Erfüllt AA, aber nicht AAA (%.1f:1 benötigt)", aaaNeed),
				Ratio:   check.Ratio,
				Needed:  aaaNeed,
			})
		}
	}

	total := float64(len(battery))
	report.Score = int(math.Round(70*float64(passed)/total + 30*float64(aaaCount)/total))
	switch {
	case report.Score >= 90:
		report.Band = "Exzellent"
	case report.Score >= 70:
		report.Band = "Gut"
	case report.Score >= 50:
		report.Band = "Ausreichend"
	default:
		report.Band = "Kritisch"
	}

	return report
}
