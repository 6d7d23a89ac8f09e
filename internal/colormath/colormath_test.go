// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package colormath

import (
	"math"
	"testing"
)

func TestHexToRGB(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGB
	}{
		{"pure red", "#ff0000", RGB{255, 0, 0}},
		{"pure white", "#ffffff", RGB{255, 255, 255}},
		{"pure black", "#000000", RGB{0, 0, 0}},
		{"brand blue", "#2563eb", RGB{37, 99, 235}},
		{"uppercase", "#2563EB", RGB{37, 99, 235}},
		{"no hash prefix", "2563eb", RGB{37, 99, 235}},
		{"surrounding whitespace", "  #2563eb ", RGB{37, 99, 235}},

		// Malformed input degrades to black, never errors.
		{"empty string", "", RGB{}},
		{"too short", "#fff", RGB{}},
		{"too long", "#ff00ff00", RGB{}},
		{"non-hex characters", "#zzzzzz", RGB{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToRGB(tt.hex); got != tt.want {
				t.Errorf("HexToRGB(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBToHex_Clamping(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want string
	}{
		{"in range", RGB{37, 99, 235}, "#2563eb"},
		{"above range", RGB{300, 256, 999}, "#ffffff"},
		{"below range", RGB{-1, -50, 0}, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBToHex(tt.in); got != tt.want {
				t.Errorf("RGBToHex(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestRoundTrip verifies hex → RGB → hex reproduces the input for valid
// 6-digit colors.
func TestRoundTrip(t *testing.T) {
	colors := []string{"#000000", "#ffffff", "#2563eb", "#f59e0b", "#1f2937", "#abcdef"}
	for _, hex := range colors {
		t.Run(hex, func(t *testing.T) {
			if got := RGBToHex(HexToRGB(hex)); got != hex {
				t.Errorf("round trip of %q = %q", hex, got)
			}
		})
	}
}

func TestRelativeLuminance(t *testing.T) {
	// WCAG reference points: white is 1.0, black is 0.0.
	if l := RelativeLuminance(RGB{255, 255, 255}); math.Abs(l-1.0) > 1e-9 {
		t.Errorf("luminance of white = %f, want 1.0", l)
	}
	if l := RelativeLuminance(RGB{0, 0, 0}); l != 0 {
		t.Errorf("luminance of black = %f, want 0", l)
	}
	// Green dominates the weighting.
	if lg, lr := RelativeLuminance(RGB{0, 255, 0}), RelativeLuminance(RGB{255, 0, 0}); lg <= lr {
		t.Errorf("green luminance %f should exceed red %f", lg, lr)
	}
}

func TestContrastRatio(t *testing.T) {
	// Black on white is the maximum, 21:1.
	if r := ContrastRatio("#000000", "#ffffff"); math.Abs(r-21.0) > 1e-9 {
		t.Errorf("black/white ratio = %f, want 21", r)
	}

	// Symmetry for arbitrary pairs.
	pairs := [][2]string{
		{"#2563eb", "#ffffff"},
		{"#f59e0b", "#1f2937"},
		{"#ff0000", "#00ff00"},
	}
	for _, p := range pairs {
		a, b := ContrastRatio(p[0], p[1]), ContrastRatio(p[1], p[0])
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("ContrastRatio(%s, %s) = %f but reversed = %f", p[0], p[1], a, b)
		}
	}

	// Identical colors yield the minimum ratio of 1.
	for _, hex := range []string{"#2563eb", "#000000", "#ffffff"} {
		if r := ContrastRatio(hex, hex); math.Abs(r-1.0) > 1e-12 {
			t.Errorf("ContrastRatio(%s, %s) = %f, want 1", hex, hex, r)
		}
	}
}

func TestHexToCMYK(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want CMYK
	}{
		// Pure black short-circuits to avoid dividing by zero at k=1.
		{"pure black", "#000000", CMYK{0, 0, 0, 100}},
		{"pure white", "#ffffff", CMYK{0, 0, 0, 0}},
		{"pure red", "#ff0000", CMYK{0, 100, 100, 0}},
		{"pure green", "#00ff00", CMYK{100, 0, 100, 0}},
		{"pure blue", "#0000ff", CMYK{100, 100, 0, 0}},
		// Malformed input degrades to black's CMYK.
		{"malformed", "oops", CMYK{0, 0, 0, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexToCMYK(tt.hex); got != tt.want {
				t.Errorf("HexToCMYK(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestGenerateScale(t *testing.T) {
	scale := GenerateScale("#2563eb")

	if len(scale) != len(ScaleSteps) {
		t.Fatalf("scale has %d steps, want %d", len(scale), len(ScaleSteps))
	}

	// Midpoint identity: step 500 is the input unchanged.
	if scale[500] != "#2563eb" {
		t.Errorf("scale[500] = %q, want input color", scale[500])
	}

	// Step 50 sits close to white; step 900 is darkened but never black.
	if scale[50] == "#ffffff" || scale[50] == "#2563eb" {
		t.Errorf("scale[50] = %q, want a tint strictly between input and white", scale[50])
	}
	if scale[900] == "#000000" {
		t.Error("scale[900] must not be black")
	}

	// 900 multiplies each channel by 0.6.
	if want := RGBToHex(RGB{22, 59, 141}); scale[900] != want {
		t.Errorf("scale[900] = %q, want %q", scale[900], want)
	}

	// Monotonic luminance: lighter steps have higher luminance.
	prev := math.Inf(1)
	for _, step := range ScaleSteps {
		l := RelativeLuminance(HexToRGB(scale[step]))
		if l > prev+1e-9 {
			t.Errorf("luminance increased at step %d", step)
		}
		prev = l
	}
}

func TestGenerateScale_MidpointIdentityForAnyInput(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#f59e0b", "#123456"} {
		if got := GenerateScale(hex)[500]; got != hex {
			t.Errorf("GenerateScale(%q)[500] = %q, want identity", hex, got)
		}
	}
}

func TestLightenDarken(t *testing.T) {
	if got := Lighten("#000000", 1.0); got != "#ffffff" {
		t.Errorf("Lighten(black, 1.0) = %q, want white", got)
	}
	if got := Darken("#ffffff", 1.0); got != "#000000" {
		t.Errorf("Darken(white, 1.0) = %q, want black", got)
	}
	if got := Lighten("#2563eb", 0); got != "#2563eb" {
		t.Errorf("Lighten by 0 = %q, want identity", got)
	}
}
