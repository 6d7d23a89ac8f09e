// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
)

// fieldDefaults documents the placeholder used for every recognized content
// field when it is absent. A missing field never fails an export; it renders
// the placeholder instead.
var fieldDefaults = map[string]string{
	// Website / hero
	"headline": "Ihre Marke. Auf den Punkt.",
	"subline":  "Klarer Auftritt, konsistente Botschaft — auf allen Kanälen.",
	"cta":      "Jetzt kennenlernen",

	// Email
	"subject":  "Neues von uns",
	"greeting": "Guten Tag,",
	"body":     "hier könnte Ihre Botschaft stehen. Pflegen Sie den Inhalt im Editor, um diesen Platzhalter zu ersetzen.",
	"signoff":  "Mit freundlichen Grüßen",

	// Flyer
	"offer":   "Unser Angebot",
	"details": "Alle Details auf Anfrage.",

	// Business card
	"name":    "Max Mustermann",
	"role":    "Geschäftsführung",
	"company": "",
	"email":   "hallo@example.com",
	"phone":   "+49 30 000000",
	"website": "www.example.com",

	// Presentation
	"agenda": "Marke, Zielgruppe, Nächste Schritte",
}

// field returns the content value for key, the documented placeholder when
// the field is absent, or "" for unrecognized keys.
func field(content *models.Content, key string) string {
	if v := strings.TrimSpace(content.Value(key)); v != "" {
		return v
	}
	return fieldDefaults[key]
}

// fieldOr is field with an explicit fallback, for values whose placeholder
// depends on the brand (e.g. a company name defaulting to the brand name).
func fieldOr(content *models.Content, key, fallback string) string {
	if v := strings.TrimSpace(content.Value(key)); v != "" {
		return v
	}
	return fallback
}
