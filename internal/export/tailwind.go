// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"fmt"
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/colormath"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// Tailwind emits a tailwind.config.js object literal mapping the tokens
// into theme.extend. The primary color additionally carries a full 50..900
// scale generated around the brand color.
func Tailwind(tok tokens.DesignTokens) *Artifact {
	var b strings.Builder

	fmt.Fprintf(&b, "// Tailwind theme for %s, generated from design tokens\n", tok.BrandName)
	b.WriteString("module.exports = {\n")
	b.WriteString("  theme: {\n")
	b.WriteString("    extend: {\n")

	// Colors, primary with the generated tint/shade scale.
	b.WriteString("      colors: {\n")
	b.WriteString("        primary: {\n")
	fmt.Fprintf(&b, "          DEFAULT: '%s',\n", tok.Colors.Primary)
	fmt.Fprintf(&b, "          light: '%s',\n", tok.Colors.PrimaryLight)
	fmt.Fprintf(&b, "          dark: '%s',\n", tok.Colors.PrimaryDark)
	scale := colormath.GenerateScale(tok.Colors.Primary)
	for _, step := range colormath.ScaleSteps {
		fmt.Fprintf(&b, "          %d: '%s',\n", step, scale[step])
	}
	b.WriteString("        },\n")
	fmt.Fprintf(&b, "        secondary: '%s',\n", tok.Colors.Secondary)
	fmt.Fprintf(&b, "        accent: '%s',\n", tok.Colors.Accent)
	fmt.Fprintf(&b, "        background: '%s',\n", tok.Colors.Background)
	fmt.Fprintf(&b, "        foreground: '%s',\n", tok.Colors.Text)
	b.WriteString("      },\n")

	// Font families as stack arrays.
	b.WriteString("      fontFamily: {\n")
	fmt.Fprintf(&b, "        heading: [%s],\n", jsFontList(tok.Typography.Heading.Stack))
	fmt.Fprintf(&b, "        body: [%s],\n", jsFontList(tok.Typography.Body.Stack))
	b.WriteString("      },\n")

	// Named spacing and radius steps.
	b.WriteString("      spacing: {\n")
	for _, s := range tok.Spacing {
		fmt.Fprintf(&b, "        '%s': '%dpx',\n", s.Name, s.Px)
	}
	b.WriteString("      },\n")
	b.WriteString("      borderRadius: {\n")
	for _, r := range tok.Radius {
		fmt.Fprintf(&b, "        '%s': '%dpx',\n", r.Name, r.Px)
	}
	b.WriteString("      },\n")

	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("};\n")

	return &Artifact{
		Filename:    baseName(tok) + "-tailwind.config.js",
		ContentType: "text/javascript; charset=utf-8",
		Data:        []byte(b.String()),
	}
}

// jsFontList converts a CSS font stack into a JS string array literal:
// `"Inter", sans-serif` → `'Inter', 'sans-serif'`.
func jsFontList(stack string) string {
	parts := strings.Split(stack, ",")
	quoted := make([]string, 0, len(parts))
	for _, p := range parts {
		name := strings.Trim(strings.TrimSpace(p), `"'`)
		if name == "" {
			continue
		}
		quoted = append(quoted, "'"+name+"'")
	}
	return strings.Join(quoted, ", ")
}
