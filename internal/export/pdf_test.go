// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

func TestPDFFlyerPageSizes(t *testing.T) {
	tests := []struct {
		pageSize string
		wantName string
	}{
		{"A4", "nordlicht-kaffee-flyer-a4.pdf"},
		{"A5", "nordlicht-kaffee-flyer-a5.pdf"},
		{"DIN-long", "nordlicht-kaffee-flyer-din-long.pdf"},
		{"", "nordlicht-kaffee-flyer-a4.pdf"},         // default
		{"Letter", "nordlicht-kaffee-flyer-a4.pdf"},   // unknown falls back
	}
	for _, tt := range tests {
		t.Run(tt.pageSize, func(t *testing.T) {
			art, err := PDFFlyer(context.Background(), testTokens(), nil, tt.pageSize)
			if err != nil {
				t.Fatalf("PDFFlyer(%q): %v", tt.pageSize, err)
			}
			if art.Filename != tt.wantName {
				t.Errorf("filename = %q, want %q", art.Filename, tt.wantName)
			}
			if !bytes.HasPrefix(art.Data, []byte("%PDF-")) {
				t.Error("output is not a PDF")
			}
			if art.ContentType != "application/pdf" {
				t.Errorf("content type = %q", art.ContentType)
			}
		})
	}
}

func TestPDFBusinessCardHasTwoPages(t *testing.T) {
	content := &models.Content{Fields: map[string]models.Field{
		"name":    {Value: "Jona Petersen"},
		"role":    {Value: "Rösterei-Leitung"},
		"email":   {Value: "jona@nordlicht.example"},
		"phone":   {Value: "+49 40 1234567"},
		"website": {Value: "nordlicht.example"},
	}}
	art, err := PDFBusinessCard(context.Background(), testTokens(), content)
	if err != nil {
		t.Fatalf("PDFBusinessCard: %v", err)
	}
	if !bytes.HasPrefix(art.Data, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
	// Front and back, nothing else.
	if !bytes.Contains(art.Data, []byte("/Count 2")) {
		t.Error("business card must have exactly two pages")
	}
}

func TestPDFBusinessCardEmptyContent(t *testing.T) {
	// Placeholders carry the layout when no content is stored.
	art, err := PDFBusinessCard(context.Background(), testTokens(), nil)
	if err != nil {
		t.Fatalf("PDFBusinessCard: %v", err)
	}
	if !bytes.Contains(art.Data, []byte("/Count 2")) {
		t.Error("business card must have exactly two pages")
	}
}

func TestPDFGuidelines(t *testing.T) {
	art, err := PDFGuidelines(context.Background(), testTokens(), nil)
	if err != nil {
		t.Fatalf("PDFGuidelines: %v", err)
	}
	if !bytes.HasPrefix(art.Data, []byte("%PDF-")) {
		t.Fatal("output is not a PDF")
	}
	if art.Filename != "nordlicht-kaffee-guidelines.pdf" {
		t.Errorf("filename = %q", art.Filename)
	}
	// Cover plus four sections.
	if !bytes.Contains(art.Data, []byte("/Count 5")) {
		t.Errorf("guidelines should render five pages")
	}
}

func TestCoreFontMapping(t *testing.T) {
	tests := []struct {
		family string
		want   string
	}{
		{"Inter", "Helvetica"},
		{"Times New Roman", "Times"},
		{"Georgia", "Times"},
		{"EB Garamond", "Times"},
		{"PT Serif", "Times"},
		{"Courier Prime", "Courier"},
		{"JetBrains Mono", "Courier"},
		{"Open Sans", "Helvetica"},
		{"", "Helvetica"},
	}
	for _, tt := range tests {
		if got := coreFont(tt.family); got != tt.want {
			t.Errorf("coreFont(%q) = %q, want %q", tt.family, got, tt.want)
		}
	}
}

func TestVCard(t *testing.T) {
	content := &models.Content{Fields: map[string]models.Field{
		"email": {Value: "jona@nordlicht.example"},
		"phone": {Value: "+49 40 1234567"},
	}}
	card := vCard("Jona Petersen", "Rösterei-Leitung", "Nordlicht Kaffee", content)

	if !strings.HasPrefix(card, "BEGIN:VCARD\r\nVERSION:3.0\r\n") {
		t.Error("missing vCard preamble")
	}
	if !strings.HasSuffix(card, "END:VCARD\r\n") {
		t.Error("missing vCard terminator")
	}
	for _, want := range []string{
		"FN:Jona Petersen",
		"ORG:Nordlicht Kaffee",
		"TITLE:Rösterei-Leitung",
		"EMAIL:jona@nordlicht.example",
		"TEL:+49 40 1234567",
	} {
		if !strings.Contains(card, want+"\r\n") {
			t.Errorf("vCard missing %q", want)
		}
	}
	if strings.Contains(card, "URL:") {
		t.Error("vCard contains URL although no website is set")
	}
}

func TestPlainText(t *testing.T) {
	in := "## Angebot\n**Fetter** Text mit *Betonung* und `Code`."
	got := plainText(in)
	for _, marker := range []string{"**", "## ", "`"} {
		if strings.Contains(got, marker) {
			t.Errorf("plainText left marker %q in %q", marker, got)
		}
	}
	if !strings.Contains(got, "Fetter") || !strings.Contains(got, "Angebot") {
		t.Errorf("plainText lost content: %q", got)
	}
}
