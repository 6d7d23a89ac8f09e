// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"strings"
	"testing"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// stubProvider returns a canned response and records the prompts it saw.
type stubProvider struct {
	response string
	err      error
	system   string
	user     string
}

func (s *stubProvider) Generate(_ context.Context, systemPrompt, userPrompt string) (string, error) {
	s.system = systemPrompt
	s.user = userPrompt
	return s.response, s.err
}

func (s *stubProvider) Name() string { return "stub" }

func stubRegistry(response string) (*Registry, *stubProvider) {
	stub := &stubProvider{response: response}
	reg := NewRegistry("stub", nil)
	reg.Register("stub", stub)
	return reg, stub
}

func TestExtractBrand(t *testing.T) {
	reg, stub := stubRegistry("```json\n" + `{
		"colors": [
			{"hex": "#2563EB", "role": "primary"},
			{"hex": "#f59e0b", "role": "accent"},
			{"hex": "#334155", "role": "stahlgrau"}
		],
		"fonts": [
			{"name": "Playfair Display", "usage": "heading"},
			{"name": "Inter", "usage": "body"}
		],
		"toneOfVoice": "premium",
		"formality": "sie",
		"tagline": "Handwerk seit 1987"
	}` + "\n```")

	brand, err := ExtractBrand(context.Background(), reg, "Tischlerei Petersen", "Traditionsbetrieb mit dunkelblauem Auftritt")
	if err != nil {
		t.Fatalf("ExtractBrand: %v", err)
	}

	if brand.Name != "Tischlerei Petersen" {
		t.Errorf("name = %q", brand.Name)
	}
	if brand.Colors.Primary != "#2563eb" {
		t.Errorf("primary = %q, want lowercased #2563eb", brand.Colors.Primary)
	}
	if brand.Colors.Accent != "#f59e0b" {
		t.Errorf("accent = %q", brand.Colors.Accent)
	}
	// Unknown roles land in the palette rather than vanishing.
	if len(brand.Colors.Palette) != 1 || brand.Colors.Palette[0].Hex != "#334155" {
		t.Errorf("palette = %+v", brand.Colors.Palette)
	}
	// Missing roles are normalized to defaults.
	if brand.Colors.Background != models.DefaultBackground {
		t.Errorf("background = %q, want default", brand.Colors.Background)
	}
	if brand.Fonts.Heading != `"Playfair Display", sans-serif` {
		t.Errorf("heading stack = %q", brand.Fonts.Heading)
	}
	if brand.Voice.Tone != models.TonePremium || brand.Voice.Formality != models.FormalitySie {
		t.Errorf("voice = %+v", brand.Voice)
	}
	if brand.Voice.Tagline != "Handwerk seit 1987" {
		t.Errorf("tagline = %q", brand.Voice.Tagline)
	}
	if stub.user != "Traditionsbetrieb mit dunkelblauem Auftritt" {
		t.Errorf("description not passed through: %q", stub.user)
	}
}

func TestExtractBrandInvalidJSON(t *testing.T) {
	reg, _ := stubRegistry("Sorry, I cannot do that.")
	if _, err := ExtractBrand(context.Background(), reg, "X", "y"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestExtractBrandUnknownTone(t *testing.T) {
	reg, _ := stubRegistry(`{"toneOfVoice": "sassy"}`)
	brand, err := ExtractBrand(context.Background(), reg, "X", "y")
	if err != nil {
		t.Fatalf("ExtractBrand: %v", err)
	}
	if brand.Voice.Tone != models.ToneProfessional {
		t.Errorf("tone = %q, want professional fallback", brand.Voice.Tone)
	}
}

func TestGenerateContent(t *testing.T) {
	reg, stub := stubRegistry(`{
		"subject": "Neue Röstung im Herbst",
		"greeting": "Moin,",
		"body": "wir haben geröstet.",
		"signoff": "Bis bald",
		"cta": "Jetzt probieren",
		"extra": "wird verworfen"
	}`)

	brand := &models.Brand{Name: "Nordlicht Kaffee"}
	brand.Voice.Tone = models.ToneFriendly
	brand.Voice.Formality = models.FormalityDu
	brand.Normalize()

	values, err := GenerateContent(context.Background(), reg, brand, models.AssetEmail, "Herbst-Newsletter")
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}

	if values["subject"] != "Neue Röstung im Herbst" {
		t.Errorf("subject = %q", values["subject"])
	}
	if _, ok := values["extra"]; ok {
		t.Error("unknown field not filtered out")
	}
	if !strings.Contains(stub.system, `"Nordlicht Kaffee"`) {
		t.Error("system prompt missing brand name")
	}
	if !strings.Contains(stub.system, "friendly") || !strings.Contains(stub.system, "du") {
		t.Error("system prompt missing voice settings")
	}
	if !strings.Contains(stub.system, "subject, greeting, body, signoff, cta") {
		t.Error("system prompt missing field list")
	}
}

func TestGenerateContentUnknownAssetType(t *testing.T) {
	reg, _ := stubRegistry("{}")
	if _, err := GenerateContent(context.Background(), reg, &models.Brand{}, "podcast", "x"); err == nil {
		t.Fatal("expected error for unknown asset type")
	}
}

func TestRegistrySwitching(t *testing.T) {
	reg := NewRegistry("a", nil)
	reg.Register("a", &stubProvider{response: "from a"})
	reg.Register("b", &stubProvider{response: "from b"})

	if got, _ := reg.Generate(context.Background(), "", ""); got != "from a" {
		t.Errorf("active response = %q", got)
	}
	if err := reg.SetActive("b"); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	if got, _ := reg.Generate(context.Background(), "", ""); got != "from b" {
		t.Errorf("active response after switch = %q", got)
	}
	if err := reg.SetActive("missing"); err == nil {
		t.Error("SetActive must reject unknown providers")
	}
	if reg.HasProvider("missing") {
		t.Error("HasProvider(missing) = true")
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
