// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{"bold", "Unser **bester** Kaffee", "<strong>bester</strong>"},
		{"heading", "## Angebot", "<h2"},
		{"list", "- direkt\n- warm", "<li>direkt</li>"},
		{"link", "[Shop](https://example.de)", `href="https://example.de"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToHTML(tt.source)
			if err != nil {
				t.Fatalf("ToHTML: %v", err)
			}
			if !strings.Contains(got, tt.want) {
				t.Errorf("output %q missing %q", got, tt.want)
			}
		})
	}
}

func TestToHTMLEscapesRawHTML(t *testing.T) {
	got, err := ToHTML(`Hallo <script>alert(1)</script>`)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	if strings.Contains(got, "<script>") {
		t.Errorf("raw HTML passed through: %q", got)
	}
}
