// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/markdown"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// HTMLEmail emits a self-contained, email-safe HTML document: table-based
// layout, every style inline, no external CSS. The body field is treated as
// Markdown; a render failure falls back to the escaped plain text.
func HTMLEmail(tok tokens.DesignTokens, content *models.Content) *Artifact {
	subject := html.EscapeString(field(content, "subject"))
	greeting := html.EscapeString(field(content, "greeting"))
	signoff := html.EscapeString(field(content, "signoff"))
	cta := html.EscapeString(field(content, "cta"))
	brand := html.EscapeString(tok.BrandName)
	tagline := html.EscapeString(tok.Voice.Tagline)

	body := field(content, "body")
	bodyHTML, err := markdown.ToHTML(body)
	if err != nil {
		slog.Warn("email body markdown failed, using plain text", "error", err)
		bodyHTML = "<p>" + html.EscapeString(body) + "</p>"
	}

	bodyFont := tok.Typography.Body.Stack
	headingFont := tok.Typography.Heading.Stack

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="de">` + "\n<head>\n")
	b.WriteString(`<meta charset="utf-8">` + "\n")
	b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	fmt.Fprintf(&b, "<title>%s</title>\n</head>\n", subject)
	fmt.Fprintf(&b, `<body style="margin:0; padding:0; background-color:#f4f4f5;">`+"\n")

	fmt.Fprintf(&b, `<table role="presentation" width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f4f5;">`+"\n")
	b.WriteString("<tr><td align=\"center\" style=\"padding:24px 12px;\">\n")

	fmt.Fprintf(&b, `<table role="presentation" width="600" cellpadding="0" cellspacing="0" style="max-width:600px; width:100%%; background-color:%s; border-radius:8px; overflow:hidden;">`+"\n", tok.Colors.Background)

	// Header band in the primary color.
	fmt.Fprintf(&b, `<tr><td style="background-color:%s; padding:28px 32px;">`, tok.Colors.Primary)
	fmt.Fprintf(&b, `<span style="font-family:%s; font-size:22px; font-weight:bold; color:#ffffff;">%s</span>`, htmlAttr(headingFont), brand)
	if tagline != "" {
		fmt.Fprintf(&b, `<br><span style="font-family:%s; font-size:13px; color:#ffffff;">%s</span>`, htmlAttr(bodyFont), tagline)
	}
	b.WriteString("</td></tr>\n")

	// Body.
	fmt.Fprintf(&b, `<tr><td style="padding:32px; font-family:%s; font-size:16px; line-height:1.6; color:%s;">`+"\n", htmlAttr(bodyFont), tok.Colors.Text)
	fmt.Fprintf(&b, "<p style=\"margin:0 0 16px 0;\">%s</p>\n", greeting)
	b.WriteString(bodyHTML)
	b.WriteString("\n")

	// CTA button as a bulletproof table cell.
	fmt.Fprintf(&b, `<table role="presentation" cellpadding="0" cellspacing="0" style="margin:24px 0;"><tr><td style="background-color:%s; border-radius:4px;">`, tok.Colors.Accent)
	fmt.Fprintf(&b, `<a href="#" style="display:inline-block; padding:12px 28px; font-family:%s; font-size:16px; font-weight:bold; color:#ffffff; text-decoration:none;">%s</a>`, htmlAttr(bodyFont), cta)
	b.WriteString("</td></tr></table>\n")

	fmt.Fprintf(&b, "<p style=\"margin:16px 0 0 0;\">%s<br>%s</p>\n", signoff, brand)
	b.WriteString("</td></tr>\n")

	// Footer.
	fmt.Fprintf(&b, `<tr><td style="padding:20px 32px; background-color:#f9fafb; font-family:%s; font-size:12px; color:%s;">%s</td></tr>`+"\n",
		htmlAttr(bodyFont), tok.Colors.TextMuted, brand)

	b.WriteString("</table>\n</td></tr>\n</table>\n</body>\n</html>\n")

	return &Artifact{
		Filename:    baseName(tok) + "-email.html",
		ContentType: "text/html; charset=utf-8",
		Data:        []byte(b.String()),
	}
}

// HTMLHero emits a <section> plus <style> block for a website hero, styled
// entirely from the design tokens with no external dependencies.
func HTMLHero(tok tokens.DesignTokens, content *models.Content) *Artifact {
	headline := html.EscapeString(fieldOr(content, "headline", heroHeadline(tok)))
	subline := html.EscapeString(field(content, "subline"))
	cta := html.EscapeString(field(content, "cta"))

	var b strings.Builder
	b.WriteString("<style>\n")
	fmt.Fprintf(&b, ".hero { background: linear-gradient(135deg, %s 0%%, %s 100%%); padding: 96px 24px; text-align: center; }\n",
		tok.Colors.Primary, tok.Colors.PrimaryDark)
	fmt.Fprintf(&b, ".hero h1 { font-family: %s; font-size: 48px; line-height: 1.1; font-weight: 700; color: #ffffff; margin: 0 0 16px 0; }\n",
		tok.Typography.Heading.Stack)
	fmt.Fprintf(&b, ".hero p { font-family: %s; font-size: 22px; line-height: 1.35; color: rgba(255, 255, 255, 0.85); margin: 0 auto 32px auto; max-width: 640px; }\n",
		tok.Typography.Body.Stack)
	fmt.Fprintf(&b, ".hero .cta { display: inline-block; background-color: %s; color: #ffffff; font-family: %s; font-size: 16px; font-weight: 700; padding: 16px 40px; border-radius: %dpx; text-decoration: none; }\n",
		tok.Colors.Accent, tok.Typography.Body.Stack, radiusPx(tok, "pill"))
	b.WriteString(".hero .cta:hover { filter: brightness(1.08); }\n")
	b.WriteString("</style>\n")

	b.WriteString(`<section class="hero">` + "\n")
	fmt.Fprintf(&b, "  <h1>%s</h1>\n", headline)
	fmt.Fprintf(&b, "  <p>%s</p>\n", subline)
	fmt.Fprintf(&b, `  <a class="cta" href="#">%s</a>`+"\n", cta)
	b.WriteString("</section>\n")

	return &Artifact{
		Filename:    baseName(tok) + "-hero.html",
		ContentType: "text/html; charset=utf-8",
		Data:        []byte(b.String()),
	}
}

// heroHeadline prefers the brand tagline over the generic placeholder.
func heroHeadline(tok tokens.DesignTokens) string {
	if tok.Voice.Tagline != "" {
		return tok.Voice.Tagline
	}
	return fieldDefaults["headline"]
}

// radiusPx looks up a radius step by name, defaulting to 4.
func radiusPx(tok tokens.DesignTokens, name string) int {
	for _, r := range tok.Radius {
		if r.Name == name {
			return r.Px
		}
	}
	return 4
}

// htmlAttr escapes a value for use inside a double-quoted style attribute.
func htmlAttr(s string) string {
	return strings.ReplaceAll(s, `"`, "&quot;")
}
