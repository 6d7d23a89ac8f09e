// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// Package export projects resolved design tokens and content into concrete
// deliverables: CSS variables, a Tailwind config, W3C-flavored JSON tokens,
// PowerPoint decks, print-ready PDFs, print production specs, and email-safe
// HTML. Exporters never mutate their inputs and never touch shared state;
// asset-level failures (an undecodable logo) degrade the artifact visually
// instead of failing the export.
package export

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/slug"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// ErrUnsupportedFormat is returned by Export when the format identifier is
// not recognized. The wrapped message names the identifier.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Artifact is one finished export payload. It is produced once per call,
// never cached and never versioned.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Options carries the few per-export knobs callers may set.
type Options struct {
	// PageSize selects the flyer page format: "A4" (default), "A5", or
	// "DIN-long".
	PageSize string
}

// Known format identifiers, as accepted by Export.
const (
	FormatTokensCSS      = "tokens-css"
	FormatTokensTailwind = "tokens-tailwind"
	FormatTokensJSON     = "tokens-json"
	FormatFigmaVariables = "figma-variables"
	FormatPPTX           = "pptx"
	FormatPDFFlyer       = "pdf-flyer"
	FormatPDFCard        = "pdf-businesscard"
	FormatPDFGuidelines  = "pdf-guidelines"
	FormatPrintSpecs     = "print-specs"
	FormatHTMLEmail      = "html-email"
	FormatHTMLHero       = "html-hero"
	FormatPackage        = "package"
)

// Formats lists every accepted format identifier in a stable order.
// FormatPackage bundles all the others into one zip.
var Formats = []string{
	FormatTokensCSS,
	FormatTokensTailwind,
	FormatTokensJSON,
	FormatFigmaVariables,
	FormatPPTX,
	FormatPDFFlyer,
	FormatPDFCard,
	FormatPDFGuidelines,
	FormatPrintSpecs,
	FormatHTMLEmail,
	FormatHTMLHero,
	FormatPackage,
}

// Export dispatches to the exporter for the given format identifier.
// Unknown identifiers fail with ErrUnsupportedFormat; everything else
// returns a complete artifact, degrading visually on recoverable asset
// problems. The context bounds logo fetches; pure exporters ignore it.
func Export(ctx context.Context, format string, tok tokens.DesignTokens, content *models.Content, opts Options) (*Artifact, error) {
	switch format {
	case FormatTokensCSS:
		return CSS(tok), nil
	case FormatTokensTailwind:
		return Tailwind(tok), nil
	case FormatTokensJSON:
		return JSONTokens(tok)
	case FormatFigmaVariables:
		return FigmaVariables(tok)
	case FormatPPTX:
		return PPTX(ctx, tok, content)
	case FormatPDFFlyer:
		return PDFFlyer(ctx, tok, content, opts.PageSize)
	case FormatPDFCard:
		return PDFBusinessCard(ctx, tok, content)
	case FormatPDFGuidelines:
		return PDFGuidelines(ctx, tok, content)
	case FormatPrintSpecs:
		return PrintSpecs(tok)
	case FormatHTMLEmail:
		return HTMLEmail(tok, content), nil
	case FormatHTMLHero:
		return HTMLHero(tok, content), nil
	case FormatPackage:
		return Package(ctx, tok, content, opts)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// baseName derives the artifact filename stem from the brand name.
func baseName(tok tokens.DesignTokens) string {
	if s := slug.Generate(tok.BrandName); s != "" {
		return s
	}
	return "brand"
}
