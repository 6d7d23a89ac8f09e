// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// CSS emits one :root block with a variable per token. Output is built in a
// fixed order so identical tokens always produce byte-identical CSS, which
// keeps snapshot tests meaningful.
func CSS(tok tokens.DesignTokens) *Artifact {
	var b strings.Builder

	fmt.Fprintf(&b, "/* Design Tokens: %s */\n", tok.BrandName)
	b.WriteString(":root {\n")

	// Colors.
	writeVar(&b, "color-primary", tok.Colors.Primary)
	writeVar(&b, "color-primary-light", tok.Colors.PrimaryLight)
	writeVar(&b, "color-primary-dark", tok.Colors.PrimaryDark)
	writeVar(&b, "color-secondary", tok.Colors.Secondary)
	writeVar(&b, "color-accent", tok.Colors.Accent)
	writeVar(&b, "color-background", tok.Colors.Background)
	writeVar(&b, "color-text", tok.Colors.Text)
	writeVar(&b, "color-text-muted", tok.Colors.TextMuted)
	b.WriteString("\n")

	// Fonts.
	writeVar(&b, "font-heading", tok.Typography.Heading.Stack)
	writeVar(&b, "font-body", tok.Typography.Body.Stack)
	b.WriteString("\n")

	// Type scale: size, line height, and weight per semantic step.
	for _, s := range tok.Typography.Scale {
		writeVar(&b, "text-"+s.Name, strconv.Itoa(s.Size)+"px")
	}
	for _, s := range tok.Typography.Scale {
		writeVar(&b, "leading-"+s.Name, trimFloat(s.LineHeight))
	}
	for _, s := range tok.Typography.Scale {
		writeVar(&b, "weight-"+s.Name, strconv.Itoa(s.Weight))
	}
	b.WriteString("\n")

	// Spacing and radius scales.
	for _, s := range tok.Spacing {
		writeVar(&b, "space-"+s.Name, strconv.Itoa(s.Px)+"px")
	}
	b.WriteString("\n")
	for _, r := range tok.Radius {
		writeVar(&b, "radius-"+r.Name, strconv.Itoa(r.Px)+"px")
	}

	b.WriteString("}\n")

	return &Artifact{
		Filename:    baseName(tok) + "-tokens.css",
		ContentType: "text/css; charset=utf-8",
		Data:        []byte(b.String()),
	}
}

func writeVar(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  --%s: %s;\n", name, value)
}

// trimFloat formats a line height without trailing zeros (1.6, not 1.60).
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
