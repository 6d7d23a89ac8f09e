// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package colormath implements the color conversions and scale generation
// the token resolver and exporters are built on: hex⇄RGB⇄CMYK, WCAG 2.1
// relative luminance and contrast ratio, and tint/shade scale generation.
// All functions are pure; malformed input degrades to black instead of
// failing so that a bad color never aborts a running export.
package colormath

import (
	"fmt"
	"math"
	"strings"
)

// RGB is a color with channels in [0, 255].
type RGB struct {
	R, G, B int
}

// CMYK is a print color with channels expressed as percentages in [0, 100].
type CMYK struct {
	C, M, Y, K int
}

// HexToRGB parses a #-prefixed 6-digit hex color. Malformed input returns
// black (0,0,0) rather than an error so downstream rendering stays non-fatal.
func HexToRGB(hex string) RGB {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return RGB{}
	}
	var r, g, b int
	if _, err := fmt.Sscanf(strings.ToLower(s), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}
	}
	return RGB{R: r, G: g, B: b}
}

// RGBToHex formats an RGB triple as a lowercase #rrggbb string, clamping
// each channel to [0, 255] first.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// RelativeLuminance computes WCAG 2.1 relative luminance: each channel is
// linearized (c/12.92 below 0.03928, gamma-expanded above) and weighted by
// 0.2126/0.7152/0.0722.
func RelativeLuminance(c RGB) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel int) float64 {
	v := float64(clamp(channel)) / 255.0
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors.
// The result is symmetric and lies in [1, 21].
func ContrastRatio(hexA, hexB string) float64 {
	la := RelativeLuminance(HexToRGB(hexA))
	lb := RelativeLuminance(HexToRGB(hexB))
	lighter, darker := la, lb
	if lb > la {
		lighter, darker = lb, la
	}
	return (lighter + 0.05) / (darker + 0.05)
}

// HexToCMYK converts a hex color to CMYK percentages using the standard
// subtractive model. Pure black short-circuits to 0/0/0/100 to avoid the
// division by zero at k == 1.
func HexToCMYK(hex string) CMYK {
	c := HexToRGB(hex)
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	k := 1.0 - math.Max(r, math.Max(g, b))
	if k >= 1.0 {
		return CMYK{C: 0, M: 0, Y: 0, K: 100}
	}

	cy := (1.0 - r - k) / (1.0 - k)
	ma := (1.0 - g - k) / (1.0 - k)
	ye := (1.0 - b - k) / (1.0 - k)

	return CMYK{
		C: int(math.Round(cy * 100)),
		M: int(math.Round(ma * 100)),
		Y: int(math.Round(ye * 100)),
		K: int(math.Round(k * 100)),
	}
}

// ScaleSteps are the fixed steps of a generated tint/shade scale, in order.
var ScaleSteps = []int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// GenerateScale builds a Tailwind-style 50..900 scale around the input
// color. Step 500 is the input unchanged. Steps below 500 blend linearly
// toward white by (1 - step/500); steps above 500 multiply each channel by
// (1 - (step/500 - 1) * 0.5), so 900 darkens to 60% and never reaches
// black. The asymmetry is deliberate: tints fade faster than shades darken.
func GenerateScale(hex string) map[int]string {
	base := HexToRGB(hex)
	scale := make(map[int]string, len(ScaleSteps))

	for _, step := range ScaleSteps {
		switch {
		case step < 500:
			f := 1.0 - float64(step)/500.0
			scale[step] = RGBToHex(RGB{
				R: base.R + int(math.Round(float64(255-base.R)*f)),
				G: base.G + int(math.Round(float64(255-base.G)*f)),
				B: base.B + int(math.Round(float64(255-base.B)*f)),
			})
		case step == 500:
			scale[step] = RGBToHex(base)
		default:
			f := 1.0 - (float64(step)/500.0-1.0)*0.5
			scale[step] = RGBToHex(RGB{
				R: int(math.Round(float64(base.R) * f)),
				G: int(math.Round(float64(base.G) * f)),
				B: int(math.Round(float64(base.B) * f)),
			})
		}
	}
	return scale
}

// Lighten blends the color toward white by factor (0..1).
func Lighten(hex string, factor float64) string {
	c := HexToRGB(hex)
	return RGBToHex(RGB{
		R: c.R + int(math.Round(float64(255-c.R)*factor)),
		G: c.G + int(math.Round(float64(255-c.G)*factor)),
		B: c.B + int(math.Round(float64(255-c.B)*factor)),
	})
}

// Darken blends the color toward black by factor (0..1).
func Darken(hex string, factor float64) string {
	c := HexToRGB(hex)
	return RGBToHex(RGB{
		R: int(math.Round(float64(c.R) * (1 - factor))),
		G: int(math.Round(float64(c.G) * (1 - factor))),
		B: int(math.Round(float64(c.B) * (1 - factor))),
	})
}
