// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/colormath"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/imaging"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

const pdfContentType = "application/pdf"

// flyerSizes maps the accepted page size identifiers to trim dimensions in
// millimeters. DIN-long is the classic one-third-A4 flyer panel.
var flyerSizes = map[string]fpdf.SizeType{
	"A4":       {Wd: 210, Ht: 297},
	"A5":       {Wd: 148, Ht: 210},
	"DIN-long": {Wd: 105, Ht: 210},
}

// PDFFlyer renders a single-page promotional flyer. pageSize chooses the
// trim format and defaults to A4; unknown identifiers also fall back to A4
// so a stale UI value never blocks an export.
func PDFFlyer(ctx context.Context, tok tokens.DesignTokens, content *models.Content, pageSize string) (*Artifact, error) {
	size, ok := flyerSizes[pageSize]
	if !ok {
		if pageSize != "" {
			slog.Warn("pdf-flyer: unknown page size, using A4", "pageSize", pageSize)
		}
		pageSize = "A4"
		size = flyerSizes["A4"]
	}

	pdf := fpdf.NewCustom(&fpdf.InitType{UnitStr: "mm", Size: size})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	w, h := size.Wd, size.Ht
	headH := h * 0.32
	margin := w * 0.08

	// Header band in the primary color with brand name and tagline.
	fillHex(pdf, tok.Colors.Primary)
	pdf.Rect(0, 0, w, headH, "F")
	fillHex(pdf, tok.Colors.Accent)
	pdf.Rect(0, headH, w, 2, "F")

	headingFont := coreFont(tok.Typography.Heading.Family)
	bodyFont := coreFont(tok.Typography.Body.Family)

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(headingFont, "B", scalePt(22, w))
	pdf.SetXY(margin, headH*0.30)
	pdf.CellFormat(w-2*margin, 10, latin1(pdf, tok.BrandName), "", 1, "L", false, 0, "")
	if tok.Voice.Tagline != "" {
		pdf.SetFont(bodyFont, "", scalePt(11, w))
		pdf.SetXY(margin, headH*0.30+12)
		pdf.CellFormat(w-2*margin, 6, latin1(pdf, tok.Voice.Tagline), "", 1, "L", false, 0, "")
	}
	if logo := loadLogo(ctx, tok, "pdf-flyer"); logo != nil {
		embedLogo(pdf, logo, w-margin-18, headH*0.18, 18)
	}

	// Body: headline, subline, and running text on the background color.
	textHex(pdf, tok.Colors.Text)
	y := headH + h*0.06
	pdf.SetFont(headingFont, "B", scalePt(17, w))
	pdf.SetXY(margin, y)
	pdf.MultiCell(w-2*margin, 8, latin1(pdf, field(content, "headline")), "", "L", false)

	pdf.SetFont(bodyFont, "", scalePt(11, w))
	textHex(pdf, tok.Colors.Secondary)
	pdf.SetXY(margin, pdf.GetY()+3)
	pdf.MultiCell(w-2*margin, 6, latin1(pdf, field(content, "subline")), "", "L", false)

	textHex(pdf, tok.Colors.Text)
	pdf.SetFont(bodyFont, "", scalePt(9.5, w))
	pdf.SetXY(margin, pdf.GetY()+5)
	pdf.MultiCell(w-2*margin, 5, latin1(pdf, plainText(field(content, "body"))), "", "L", false)

	if offer := field(content, "offer"); offer != "" {
		pdf.SetFont(headingFont, "B", scalePt(12, w))
		textHex(pdf, tok.Colors.Primary)
		pdf.SetXY(margin, pdf.GetY()+5)
		pdf.MultiCell(w-2*margin, 6, latin1(pdf, offer), "", "L", false)
	}

	// CTA band in the accent color above the footer.
	ctaH := h * 0.09
	fillHex(pdf, tok.Colors.Accent)
	pdf.Rect(0, h-ctaH*2, w, ctaH, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(headingFont, "B", scalePt(12, w))
	pdf.SetXY(margin, h-ctaH*2+ctaH*0.28)
	pdf.CellFormat(w-2*margin, 5, latin1(pdf, field(content, "cta")), "", 0, "C", false, 0, "")

	// Footer with the contact line.
	fillHex(pdf, tok.Colors.PrimaryDark)
	pdf.Rect(0, h-ctaH, w, ctaH, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(bodyFont, "", scalePt(8, w))
	pdf.SetXY(margin, h-ctaH+ctaH*0.32)
	pdf.CellFormat(w-2*margin, 4, latin1(pdf, contactLine(content)), "", 0, "C", false, 0, "")

	data, err := renderPDF(pdf)
	if err != nil {
		return nil, fmt.Errorf("pdf-flyer: %w", err)
	}
	return &Artifact{
		Filename:    fmt.Sprintf("%s-flyer-%s.pdf", baseName(tok), strings.ToLower(pageSize)),
		ContentType: pdfContentType,
		Data:        data,
	}, nil
}

// Business card trim in millimeters (standard EU format).
const (
	cardW = 85.0
	cardH = 55.0
)

// PDFBusinessCard renders a two-page business card: front with name, role,
// and contact details, back with the brand mark and a vCard QR code.
func PDFBusinessCard(ctx context.Context, tok tokens.DesignTokens, content *models.Content) (*Artifact, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{UnitStr: "mm", Size: fpdf.SizeType{Wd: cardW, Ht: cardH}})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)

	headingFont := coreFont(tok.Typography.Heading.Family)
	bodyFont := coreFont(tok.Typography.Body.Family)

	name := field(content, "name")
	role := field(content, "role")
	company := fieldOr(content, "company", tok.BrandName)

	// Front: white card with a primary edge bar.
	pdf.AddPage()
	fillHex(pdf, tok.Colors.Background)
	pdf.Rect(0, 0, cardW, cardH, "F")
	fillHex(pdf, tok.Colors.Primary)
	pdf.Rect(0, 0, 4, cardH, "F")

	textHex(pdf, tok.Colors.Text)
	pdf.SetFont(headingFont, "B", 11)
	pdf.SetXY(10, 10)
	pdf.CellFormat(cardW-16, 5, latin1(pdf, name), "", 1, "L", false, 0, "")
	textHex(pdf, tok.Colors.Secondary)
	pdf.SetFont(bodyFont, "", 7.5)
	pdf.SetXY(10, 16)
	pdf.CellFormat(cardW-16, 4, latin1(pdf, role), "", 1, "L", false, 0, "")

	textHex(pdf, tok.Colors.Text)
	pdf.SetFont(bodyFont, "", 7)
	y := 30.0
	for _, line := range contactLines(content) {
		pdf.SetXY(10, y)
		pdf.CellFormat(cardW-16, 3.5, latin1(pdf, line), "", 1, "L", false, 0, "")
		y += 4.5
	}

	// Back: primary surface with company, tagline, and the QR code.
	pdf.AddPage()
	fillHex(pdf, tok.Colors.Primary)
	pdf.Rect(0, 0, cardW, cardH, "F")
	fillHex(pdf, tok.Colors.Accent)
	pdf.Rect(0, cardH-3, cardW, 3, "F")

	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(headingFont, "B", 12)
	pdf.SetXY(8, 12)
	pdf.CellFormat(cardW-44, 6, latin1(pdf, company), "", 1, "L", false, 0, "")
	if tok.Voice.Tagline != "" {
		pdf.SetFont(bodyFont, "", 7)
		pdf.SetXY(8, 20)
		pdf.MultiCell(cardW-44, 3.5, latin1(pdf, tok.Voice.Tagline), "", "L", false)
	}

	if qr, err := qrcode.Encode(vCard(name, role, company, content), qrcode.Medium, 512); err != nil {
		slog.Warn("pdf-businesscard: qr generation failed, omitting", "error", err)
	} else {
		opts := fpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("vcard-qr", opts, bytes.NewReader(qr))
		pdf.ImageOptions("vcard-qr", cardW-30, (cardH-24)/2, 24, 24, false, opts, 0, "")
	}

	data, err := renderPDF(pdf)
	if err != nil {
		return nil, fmt.Errorf("pdf-businesscard: %w", err)
	}
	return &Artifact{
		Filename:    baseName(tok) + "-visitenkarte.pdf",
		ContentType: pdfContentType,
		Data:        data,
	}, nil
}

// PDFGuidelines renders the brand guidelines document: colors, typography,
// logo usage, and tone of voice, one section per area on A4 pages.
func PDFGuidelines(ctx context.Context, tok tokens.DesignTokens, content *models.Content) (*Artifact, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)

	headingFont := coreFont(tok.Typography.Heading.Family)
	bodyFont := coreFont(tok.Typography.Body.Family)

	g := &guidelines{pdf: pdf, tok: tok, headingFont: headingFont, bodyFont: bodyFont}

	// Cover.
	pdf.AddPage()
	fillHex(pdf, tok.Colors.Primary)
	pdf.Rect(0, 0, 210, 297, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont(headingFont, "B", 32)
	pdf.SetXY(20, 120)
	pdf.MultiCell(170, 14, latin1(pdf, tok.BrandName), "", "L", false)
	pdf.SetFont(bodyFont, "", 14)
	pdf.SetXY(20, pdf.GetY()+4)
	pdf.CellFormat(170, 8, latin1(pdf, "Brand Guidelines"), "", 1, "L", false, 0, "")
	fillHex(pdf, tok.Colors.Accent)
	pdf.Rect(20, pdf.GetY()+6, 40, 2, "F")

	g.colorSection()
	g.typeSection()
	g.logoSection(ctx)
	g.voiceSection()

	data, err := renderPDF(pdf)
	if err != nil {
		return nil, fmt.Errorf("pdf-guidelines: %w", err)
	}
	return &Artifact{
		Filename:    baseName(tok) + "-guidelines.pdf",
		ContentType: pdfContentType,
		Data:        data,
	}, nil
}

// guidelines bundles the shared drawing state for the section renderers.
type guidelines struct {
	pdf         *fpdf.Fpdf
	tok         tokens.DesignTokens
	headingFont string
	bodyFont    string
}

func (g *guidelines) sectionHeader(title string) {
	g.pdf.AddPage()
	textHex(g.pdf, g.tok.Colors.Text)
	g.pdf.SetFont(g.headingFont, "B", 20)
	g.pdf.SetXY(20, 24)
	g.pdf.CellFormat(170, 10, latin1(g.pdf, title), "", 1, "L", false, 0, "")
	fillHex(g.pdf, g.tok.Colors.Accent)
	g.pdf.Rect(20, 36, 24, 1.2, "F")
	g.pdf.SetY(46)
}

func (g *guidelines) colorSection() {
	g.sectionHeader("Farben")

	roles := []struct{ label, hex string }{
		{"Primär", g.tok.Colors.Primary},
		{"Primär Hell", g.tok.Colors.PrimaryLight},
		{"Primär Dunkel", g.tok.Colors.PrimaryDark},
		{"Sekundär", g.tok.Colors.Secondary},
		{"Akzent", g.tok.Colors.Accent},
		{"Hintergrund", g.tok.Colors.Background},
		{"Text", g.tok.Colors.Text},
	}
	y := g.pdf.GetY()
	for _, role := range roles {
		fillHex(g.pdf, role.hex)
		g.pdf.Rect(20, y, 24, 16, "F")
		drawHex(g.pdf, g.tok.Colors.TextMuted)
		g.pdf.Rect(20, y, 24, 16, "D")

		cmyk := colormath.HexToCMYK(role.hex)
		textHex(g.pdf, g.tok.Colors.Text)
		g.pdf.SetFont(g.bodyFont, "B", 10)
		g.pdf.SetXY(50, y+2)
		g.pdf.CellFormat(120, 5, latin1(g.pdf, role.label), "", 1, "L", false, 0, "")
		g.pdf.SetFont(g.bodyFont, "", 8.5)
		g.pdf.SetXY(50, y+8)
		g.pdf.CellFormat(120, 4, latin1(g.pdf, fmt.Sprintf("%s   CMYK %d/%d/%d/%d", strings.ToUpper(role.hex), cmyk.C, cmyk.M, cmyk.Y, cmyk.K)), "", 1, "L", false, 0, "")
		y += 21
	}
}

func (g *guidelines) typeSection() {
	g.sectionHeader("Typografie")

	textHex(g.pdf, g.tok.Colors.Text)
	g.pdf.SetFont(g.bodyFont, "", 10)
	g.pdf.SetXY(20, g.pdf.GetY())
	g.pdf.MultiCell(170, 5, latin1(g.pdf, fmt.Sprintf("Headlines: %s. Fließtext: %s.", g.tok.Typography.Heading.Family, g.tok.Typography.Body.Family)), "", "L", false)
	g.pdf.SetY(g.pdf.GetY() + 6)

	for _, style := range g.tok.Typography.Scale {
		font, variant := g.bodyFont, ""
		if style.Weight >= 600 {
			font, variant = g.headingFont, "B"
		}
		// px type sizes map 1:1 onto pt for the specimen.
		g.pdf.SetFont(font, variant, float64(style.Size))
		g.pdf.SetX(20)
		g.pdf.CellFormat(120, float64(style.Size)*0.5, latin1(g.pdf, g.tok.BrandName), "", 0, "L", false, 0, "")
		g.pdf.SetFont(g.bodyFont, "", 8)
		textHex(g.pdf, g.tok.Colors.Secondary)
		g.pdf.CellFormat(50, float64(style.Size)*0.5, latin1(g.pdf, fmt.Sprintf("%s  %dpx / %d", style.Name, style.Size, style.Weight)), "", 1, "R", false, 0, "")
		textHex(g.pdf, g.tok.Colors.Text)
		g.pdf.SetY(g.pdf.GetY() + 3)
	}
}

func (g *guidelines) logoSection(ctx context.Context) {
	g.sectionHeader("Logo")

	if logo := loadLogo(ctx, g.tok, "pdf-guidelines"); logo != nil {
		embedLogo(g.pdf, logo, 20, g.pdf.GetY(), 60)
		g.pdf.SetY(g.pdf.GetY() + 60*float64(logo.Height)/float64(max(logo.Width, 1)) + 10)
	} else {
		y := g.pdf.GetY()
		drawHex(g.pdf, g.tok.Colors.TextMuted)
		g.pdf.SetDashPattern([]float64{2, 2}, 0)
		g.pdf.Rect(20, y, 60, 40, "D")
		g.pdf.SetDashPattern([]float64{}, 0)
		textHex(g.pdf, g.tok.Colors.Secondary)
		g.pdf.SetFont(g.bodyFont, "", 9)
		g.pdf.SetXY(20, y+18)
		g.pdf.CellFormat(60, 5, latin1(g.pdf, "Logo folgt"), "", 1, "C", false, 0, "")
		g.pdf.SetY(y + 50)
	}

	textHex(g.pdf, g.tok.Colors.Text)
	g.pdf.SetFont(g.bodyFont, "", 10)
	g.pdf.SetX(20)
	g.pdf.MultiCell(170, 5, latin1(g.pdf, "Schutzraum: mindestens die Höhe des Logos auf allen Seiten freihalten. "+
		"Das Logo nicht verzerren, drehen oder umfärben. Auf dunklen Flächen die helle Variante verwenden."), "", "L", false)
}

func (g *guidelines) voiceSection() {
	g.sectionHeader("Tonalität")

	textHex(g.pdf, g.tok.Colors.Text)
	g.pdf.SetFont(g.bodyFont, "", 10)
	g.pdf.SetX(20)
	g.pdf.MultiCell(170, 5, latin1(g.pdf, fmt.Sprintf("Tonfall: %s. Ansprache: %s.", g.tok.Voice.Tone, g.tok.Voice.Formality)), "", "L", false)
	if g.tok.Voice.Tagline != "" {
		g.pdf.SetFont(g.headingFont, "B", 13)
		textHex(g.pdf, g.tok.Colors.Primary)
		g.pdf.SetXY(20, g.pdf.GetY()+4)
		g.pdf.MultiCell(170, 6, latin1(g.pdf, `"`+g.tok.Voice.Tagline+`"`), "", "L", false)
	}

	g.keywordList("So klingen wir", g.tok.Voice.Dos)
	g.keywordList("So klingen wir nicht", g.tok.Voice.Donts)
}

func (g *guidelines) keywordList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	textHex(g.pdf, g.tok.Colors.Text)
	g.pdf.SetFont(g.bodyFont, "B", 11)
	g.pdf.SetXY(20, g.pdf.GetY()+8)
	g.pdf.CellFormat(170, 6, latin1(g.pdf, title), "", 1, "L", false, 0, "")
	g.pdf.SetFont(g.bodyFont, "", 10)
	for _, item := range items {
		g.pdf.SetX(24)
		g.pdf.CellFormat(166, 5.5, latin1(g.pdf, "- "+item), "", 1, "L", false, 0, "")
	}
}

// --- shared pdf helpers ---

// coreFont maps a brand font family onto one of the built-in PDF core
// fonts. Exporting never embeds brand font files; the core font keeps
// artifacts self-contained and the serif/sans distinction intact.
func coreFont(family string) string {
	f := strings.ToLower(family)
	switch {
	case strings.Contains(f, "times"), strings.Contains(f, "georgia"),
		strings.Contains(f, "garamond"), strings.Contains(f, "serif") && !strings.Contains(f, "sans"):
		return "Times"
	case strings.Contains(f, "courier"), strings.Contains(f, "mono"):
		return "Courier"
	default:
		return "Helvetica"
	}
}

func fillHex(pdf *fpdf.Fpdf, hex string) {
	c := colormath.HexToRGB(hex)
	pdf.SetFillColor(c.R, c.G, c.B)
}

func textHex(pdf *fpdf.Fpdf, hex string) {
	c := colormath.HexToRGB(hex)
	pdf.SetTextColor(c.R, c.G, c.B)
}

func drawHex(pdf *fpdf.Fpdf, hex string) {
	c := colormath.HexToRGB(hex)
	pdf.SetDrawColor(c.R, c.G, c.B)
}

// latin1 transliterates UTF-8 strings for the core fonts' cp1252 encoding.
func latin1(pdf *fpdf.Fpdf, s string) string {
	return pdf.UnicodeTranslatorFromDescriptor("")(s)
}

// scalePt scales a point size designed for A4 width down for narrower trims.
func scalePt(pt, pageW float64) float64 {
	return pt * pageW / 210
}

// loadLogo fetches and normalizes the brand logo, logging and returning nil
// on any failure so PDF exports degrade instead of erroring.
func loadLogo(ctx context.Context, tok tokens.DesignTokens, exporter string) *imaging.Logo {
	if tok.Logo == "" {
		return nil
	}
	logo, err := imaging.Load(ctx, tok.Logo)
	if err != nil {
		slog.Warn("logo unavailable, continuing without", "exporter", exporter, "error", err)
		return nil
	}
	return logo
}

// embedLogo places a normalized logo at the given position with the given
// width, preserving aspect ratio.
func embedLogo(pdf *fpdf.Fpdf, logo *imaging.Logo, x, y, w float64) {
	name := "brand-logo"
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(logo.PNG))
	h := w
	if logo.Width > 0 {
		h = w * float64(logo.Height) / float64(logo.Width)
	}
	pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func renderPDF(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// plainText strips the most common markdown markers so body copy reads
// cleanly in PDF output, which renders no rich text.
func plainText(s string) string {
	r := strings.NewReplacer("**", "", "*", "", "__", "", "`", "", "# ", "", "## ", "", "### ", "")
	return r.Replace(s)
}

// contactLine joins the available contact fields for one-line footers.
func contactLine(content *models.Content) string {
	return strings.Join(contactLines(content), "  ·  ")
}

func contactLines(content *models.Content) []string {
	var lines []string
	for _, key := range []string{"email", "phone", "website"} {
		if v := field(content, key); v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}

// vCard renders a minimal VERSION:3.0 vCard for the business card QR code.
func vCard(name, role, company string, content *models.Content) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")
	fmt.Fprintf(&b, "FN:%s\r\n", name)
	if company != "" {
		fmt.Fprintf(&b, "ORG:%s\r\n", company)
	}
	if role != "" {
		fmt.Fprintf(&b, "TITLE:%s\r\n", role)
	}
	if v := field(content, "email"); v != "" {
		fmt.Fprintf(&b, "EMAIL:%s\r\n", v)
	}
	if v := field(content, "phone"); v != "" {
		fmt.Fprintf(&b, "TEL:%s\r\n", v)
	}
	if v := field(content, "website"); v != "" {
		fmt.Fprintf(&b, "URL:%s\r\n", v)
	}
	b.WriteString("END:VCARD\r\n")
	return b.String()
}
