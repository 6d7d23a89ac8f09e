// Copyright (c) 2026 Tyrnon GmbH <hallo@tyrnon.de>
// All rights reserved. See LICENSE for details.

// pptx.go assembles a PowerPoint deck as an OpenXML zip package. The deck
// uses a fixed 16:9 canvas (12192000 × 6858000 EMU) and five layouts
// (title, bullets, image, two-column, closing) positioned with absolute
// inch coordinates. No third-party PPTX writer exists for Go with a usable
// license, so the package parts are emitted directly.
package export

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/imaging"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/models"
	"github.com/Fliegenbart/tyrnon-brand-machine-neu-sub000/internal/tokens"
)

// EMU geometry for the 16:9 canvas.
const (
	emuPerInch = 914400
	slideCX    = 12192000 // 13.333 in
	slideCY    = 6858000  // 7.5 in
)

// emu converts inches to EMU.
func emu(inches float64) int {
	return int(math.Round(inches * emuPerInch))
}

// pptxPart is one file inside the package.
type pptxPart struct {
	name string
	data []byte
}

// PPTX builds the five-slide brand deck. A logo that cannot be loaded
// degrades to a dashed placeholder on the image slide; the export itself
// never fails for asset reasons.
func PPTX(ctx context.Context, tok tokens.DesignTokens, content *models.Content) (*Artifact, error) {
	var logo *imaging.Logo
	if tok.Logo != "" {
		var err error
		logo, err = imaging.Load(ctx, tok.Logo)
		if err != nil {
			slog.Warn("pptx: logo unavailable, using placeholder", "error", err)
			logo = nil
		}
	}

	d := &deck{tok: tok, content: content, logo: logo}
	slides := []string{
		d.titleSlide(),
		d.bulletSlide(),
		d.imageSlide(),
		d.twoColumnSlide(),
		d.closingSlide(),
	}

	parts := packageParts(tok, slides, logo)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("pptx: create %s: %w", part.name, err)
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, fmt.Errorf("pptx: write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("pptx: close package: %w", err)
	}

	return &Artifact{
		Filename:    baseName(tok) + "-praesentation.pptx",
		ContentType: "application/vnd.openxmlformats-officedocument.presentationml.presentation",
		Data:        buf.Bytes(),
	}, nil
}

// deck carries the shared state while slides are generated.
type deck struct {
	tok     tokens.DesignTokens
	content *models.Content
	logo    *imaging.Logo
	shapeID int
}

// nextID hands out unique shape IDs within a slide tree. IDs restart per
// slide via resetIDs; 1 is reserved for the group shape.
func (d *deck) nextID() int {
	d.shapeID++
	return d.shapeID + 1
}

func (d *deck) resetIDs() { d.shapeID = 0 }

// --- slide builders ---

// titleSlide: brand name and tagline on the background color, with a
// primary bar along the left edge and an accent footer bar.
func (d *deck) titleSlide() string {
	d.resetIDs()
	var shapes []string

	shapes = append(shapes,
		d.rect(0, 0, 0.25, 7.5, d.tok.Colors.Primary),
		d.rect(0, 7.2, 13.333, 0.3, d.tok.Colors.Accent),
		d.text(1.2, 2.4, 10.5, 1.4, []textLine{
			{Text: d.tok.BrandName, Size: 54, Bold: true, Color: d.tok.Colors.Text, Font: d.tok.Typography.Heading.Family},
		}),
		d.text(1.2, 3.9, 10.5, 0.9, []textLine{
			{Text: orText(d.tok.Voice.Tagline, "Markenpräsentation"), Size: 24, Color: d.tok.Colors.TextMuted, Font: d.tok.Typography.Body.Family, Muted: true},
		}),
	)
	if d.logo != nil {
		shapes = append(shapes, d.picture(11.0, 0.5, 1.8))
	}
	return d.slide(d.tok.Colors.Background, shapes)
}

// bulletSlide: agenda bullets from content, falling back to the voice dos.
func (d *deck) bulletSlide() string {
	d.resetIDs()

	items := tokens.SplitKeywords(field(d.content, "agenda"))
	if len(items) == 0 {
		items = d.tok.Voice.Dos
	}
	if len(items) == 0 {
		items = []string{"Marke", "Zielgruppe", "Nächste Schritte"}
	}

	lines := make([]textLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, textLine{
			Text: item, Size: 22, Color: d.tok.Colors.Text,
			Font: d.tok.Typography.Body.Family, Bullet: true,
		})
	}

	shapes := []string{
		d.headerBar("Agenda"),
		d.text(1.2, 2.0, 10.9, 4.6, lines),
	}
	return d.slide(d.tok.Colors.Background, shapes)
}

// imageSlide: the logo at center stage, or a dashed placeholder when the
// logo could not be embedded.
func (d *deck) imageSlide() string {
	d.resetIDs()
	shapes := []string{d.headerBar("Unser Zeichen")}

	if d.logo != nil {
		shapes = append(shapes, d.picture(4.67, 2.25, 4.0))
	} else {
		shapes = append(shapes,
			d.dashedRect(4.67, 2.25, 4.0, 3.0, d.tok.Colors.TextMuted),
			d.text(4.67, 3.5, 4.0, 0.6, []textLine{
				{Text: "Logo folgt", Size: 18, Color: d.tok.Colors.TextMuted, Font: d.tok.Typography.Body.Family, Center: true, Muted: true},
			}),
		)
	}
	return d.slide(d.tok.Colors.Background, shapes)
}

// twoColumnSlide: color roles with swatches on the left, typography on the
// right.
func (d *deck) twoColumnSlide() string {
	d.resetIDs()
	shapes := []string{d.headerBar("Farben und Typografie")}

	swatches := []struct{ label, hex string }{
		{"Primär", d.tok.Colors.Primary},
		{"Sekundär", d.tok.Colors.Secondary},
		{"Akzent", d.tok.Colors.Accent},
		{"Hintergrund", d.tok.Colors.Background},
		{"Text", d.tok.Colors.Text},
	}
	y := 2.0
	for _, sw := range swatches {
		shapes = append(shapes,
			d.rect(1.2, y, 0.6, 0.6, sw.hex),
			d.text(2.0, y, 4.2, 0.6, []textLine{
				{Text: fmt.Sprintf("%s  %s", sw.label, strings.ToUpper(sw.hex)), Size: 16, Color: d.tok.Colors.Text, Font: d.tok.Typography.Body.Family},
			}),
		)
		y += 0.9
	}

	shapes = append(shapes, d.text(7.0, 2.0, 5.1, 4.2, []textLine{
		{Text: "Headline-Schrift", Size: 14, Color: d.tok.Colors.TextMuted, Font: d.tok.Typography.Body.Family, Muted: true},
		{Text: d.tok.Typography.Heading.Family, Size: 28, Bold: true, Color: d.tok.Colors.Text, Font: d.tok.Typography.Heading.Family},
		{Text: "Fließtext-Schrift", Size: 14, Color: d.tok.Colors.TextMuted, Font: d.tok.Typography.Body.Family, Muted: true},
		{Text: d.tok.Typography.Body.Family, Size: 22, Color: d.tok.Colors.Text, Font: d.tok.Typography.Body.Family},
	}))
	return d.slide(d.tok.Colors.Background, shapes)
}

// closingSlide: full primary background with an inverse call to action.
func (d *deck) closingSlide() string {
	d.resetIDs()
	shapes := []string{
		d.rect(0, 7.2, 13.333, 0.3, d.tok.Colors.Accent),
		d.text(1.2, 2.8, 10.9, 1.2, []textLine{
			{Text: field(d.content, "cta"), Size: 40, Bold: true, Color: "#ffffff", Font: d.tok.Typography.Heading.Family, Center: true},
		}),
		d.text(1.2, 4.2, 10.9, 0.8, []textLine{
			{Text: orText(d.tok.Voice.Tagline, d.tok.BrandName), Size: 20, Color: "#ffffff", Font: d.tok.Typography.Body.Family, Center: true},
		}),
	}
	return d.slide(d.tok.Colors.Primary, shapes)
}

// headerBar renders the repeated slide title with a short accent underline.
func (d *deck) headerBar(title string) string {
	return d.text(1.2, 0.6, 10.9, 0.9, []textLine{
		{Text: title, Size: 32, Bold: true, Color: d.tok.Colors.Text, Font: d.tok.Typography.Heading.Family},
	}) + d.rect(1.2, 1.55, 1.6, 0.07, d.tok.Colors.Accent)
}

// --- shape XML ---

// textLine is one paragraph inside a textbox.
type textLine struct {
	Text   string
	Size   int // points
	Bold   bool
	Color  string
	Font   string
	Bullet bool
	Center bool
	Muted  bool
}

// slide wraps shapes into a complete slide part with a solid background.
func (d *deck) slide(bgHex string, shapes []string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>
%s</p:spTree></p:cSld><p:clrMapOvr><a:overrideClrMapping bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/></p:clrMapOvr></p:sld>`,
		hexVal(bgHex), strings.Join(shapes, "\n"))
}

// rect emits a solid-filled rectangle at inch coordinates.
func (d *deck) rect(x, y, w, h float64, hex string) string {
	id := d.nextID()
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Rechteck %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:ln><a:noFill/></a:ln></p:spPr>
<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr lang="de-DE"/></a:p></p:txBody></p:sp>`,
		id, id, emu(x), emu(y), emu(w), emu(h), hexVal(hex))
}

// dashedRect emits the documented placeholder for a missing image: an
// unfilled rectangle with a dashed outline.
func (d *deck) dashedRect(x, y, w, h float64, hex string) string {
	id := d.nextID()
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Platzhalter %d"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr>
<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/><a:ln w="25400"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:prstDash val="dash"/></a:ln></p:spPr>
<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:endParaRPr lang="de-DE"/></a:p></p:txBody></p:sp>`,
		id, id, emu(x), emu(y), emu(w), emu(h), hexVal(hex))
}

// text emits a textbox with one paragraph per line.
func (d *deck) text(x, y, w, h float64, lines []textLine) string {
	id := d.nextID()
	var paras strings.Builder
	for _, line := range lines {
		align := ""
		if line.Center {
			align = ` algn="ctr"`
		}
		bullet := "<a:buNone/>"
		if line.Bullet {
			bullet = `<a:buChar char="•"/>`
		}
		bold := "0"
		if line.Bold {
			bold = "1"
		}
		fmt.Fprintf(&paras,
			`<a:p><a:pPr%s>%s</a:pPr><a:r><a:rPr lang="de-DE" sz="%d" b="%s" dirty="0"><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:latin typeface="%s"/></a:rPr><a:t>%s</a:t></a:r></a:p>`,
			align, bullet, line.Size*100, bold, hexVal(line.Color), xmlEsc(line.Font), xmlEsc(line.Text))
	}
	return fmt.Sprintf(`<p:sp><p:nvSpPr><p:cNvPr id="%d" name="Textfeld %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>
<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>
<p:txBody><a:bodyPr wrap="square" rtlCol="0"><a:spAutoFit/></a:bodyPr><a:lstStyle/>%s</p:txBody></p:sp>`,
		id, id, emu(x), emu(y), emu(w), emu(h), paras.String())
}

// picture embeds the deck logo (rId2 in the slide rels), preserving its
// aspect ratio within the given width.
func (d *deck) picture(x, y, w float64) string {
	id := d.nextID()
	h := w
	if d.logo != nil && d.logo.Width > 0 {
		h = w * float64(d.logo.Height) / float64(d.logo.Width)
	}
	return fmt.Sprintf(`<p:pic><p:nvPicPr><p:cNvPr id="%d" name="Logo"/><p:cNvPicPr><a:picLocks noChangeAspect="1"/></p:cNvPicPr><p:nvPr/></p:nvPicPr>
<p:blipFill><a:blip r:embed="rId2"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>
<p:spPr><a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr></p:pic>`,
		id, emu(x), emu(y), emu(w), emu(h))
}

// --- package assembly ---

// packageParts lays out every file of the OpenXML package.
func packageParts(tok tokens.DesignTokens, slides []string, logo *imaging.Logo) []pptxPart {
	n := len(slides)

	var types strings.Builder
	types.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Default Extension="png" ContentType="image/png"/>
<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>
<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>
<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>
<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>
<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>
<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&types, "\n"+`<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i)
	}
	types.WriteString("\n</Types>")

	rootRels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="ppt/presentation.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties" Target="docProps/core.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties" Target="docProps/app.xml"/>
</Relationships>`

	var sldIDs, presRels strings.Builder
	presRels.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="slideMasters/slideMaster1.xml"/>`)
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&sldIDs, `<p:sldId id="%d" r:id="rId%d"/>`, 255+i, i+1)
		fmt.Fprintf(&presRels, "\n"+`<Relationship Id="rId%d" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide" Target="slides/slide%d.xml"/>`, i+1, i)
	}
	presRels.WriteString("\n</Relationships>")

	presentation := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>
<p:sldIdLst>%s</p:sldIdLst>
<p:sldSz cx="%d" cy="%d"/><p:notesSz cx="6858000" cy="9144000"/>
</p:presentation>`, sldIDs.String(), slideCX, slideCY)

	slideRels := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>%s
</Relationships>`
	imageRel := "\n" + `<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="../media/image1.png"/>`

	parts := []pptxPart{
		{"[Content_Types].xml", []byte(types.String())},
		{"_rels/.rels", []byte(rootRels)},
		{"docProps/core.xml", []byte(coreProps(tok))},
		{"docProps/app.xml", []byte(appProps(n))},
		{"ppt/presentation.xml", []byte(presentation)},
		{"ppt/_rels/presentation.xml.rels", []byte(presRels.String())},
		{"ppt/slideMasters/slideMaster1.xml", []byte(slideMaster())},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(masterRels())},
		{"ppt/slideLayouts/slideLayout1.xml", []byte(slideLayout())},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(layoutRels())},
		{"ppt/theme/theme1.xml", []byte(themeXML(tok))},
	}
	for i, s := range slides {
		rels := ""
		if logo != nil {
			rels = imageRel
		}
		parts = append(parts,
			pptxPart{fmt.Sprintf("ppt/slides/slide%d.xml", i+1), []byte(s)},
			pptxPart{fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), []byte(fmt.Sprintf(slideRels, rels))},
		)
	}
	if logo != nil {
		parts = append(parts, pptxPart{"ppt/media/image1.png", logo.PNG})
	}
	return parts
}

func coreProps(tok tokens.DesignTokens) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/">
<dc:title>%s</dc:title><dc:creator>Tyrnon Brand Machine</dc:creator>
</cp:coreProperties>`, xmlEsc(tok.BrandName))
}

func appProps(slideCount int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">
<Application>Tyrnon Brand Machine</Application><Slides>%d</Slides>
</Properties>`, slideCount)
}

func slideMaster() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
<p:cSld><p:bg><p:bgRef idx="1001"><a:schemeClr val="bg1"/></p:bgRef></p:bg><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>
</p:spTree></p:cSld>
<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>
</p:sldMaster>`
}

func masterRels() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout" Target="../slideLayouts/slideLayout1.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme" Target="../theme/theme1.xml"/>
</Relationships>`
}

func slideLayout() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="blank">
<p:cSld name="Leer"><p:spTree>
<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>
<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>
</p:spTree></p:cSld>
<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>
</p:sldLayout>`
}

func layoutRels() string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster" Target="../slideMasters/slideMaster1.xml"/>
</Relationships>`
}

// themeXML maps the brand onto the deck's theme: dk1=text, lt1=background,
// accent1..3 are the brand roles, and the font scheme carries the brand
// families so inserted text defaults correctly.
func themeXML(tok tokens.DesignTokens) string {
	fill := `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	ln := `<a:ln w="9525" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>`
	effect := `<a:effectStyle><a:effectLst/></a:effectStyle>`
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Brand">
<a:themeElements>
<a:clrScheme name="Brand">
<a:dk1><a:srgbClr val="%s"/></a:dk1><a:lt1><a:srgbClr val="%s"/></a:lt1>
<a:dk2><a:srgbClr val="%s"/></a:dk2><a:lt2><a:srgbClr val="F4F4F5"/></a:lt2>
<a:accent1><a:srgbClr val="%s"/></a:accent1><a:accent2><a:srgbClr val="%s"/></a:accent2>
<a:accent3><a:srgbClr val="%s"/></a:accent3><a:accent4><a:srgbClr val="%s"/></a:accent4>
<a:accent5><a:srgbClr val="%s"/></a:accent5><a:accent6><a:srgbClr val="%s"/></a:accent6>
<a:hlink><a:srgbClr val="%s"/></a:hlink><a:folHlink><a:srgbClr val="%s"/></a:folHlink>
</a:clrScheme>
<a:fontScheme name="Brand">
<a:majorFont><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont>
<a:minorFont><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont>
</a:fontScheme>
<a:fmtScheme name="Brand">
<a:fillStyleLst>%s%s%s</a:fillStyleLst>
<a:lnStyleLst>%s%s%s</a:lnStyleLst>
<a:effectStyleLst>%s%s%s</a:effectStyleLst>
<a:bgFillStyleLst>%s%s%s</a:bgFillStyleLst>
</a:fmtScheme>
</a:themeElements>
</a:theme>`,
		hexVal(tok.Colors.Text), hexVal(tok.Colors.Background),
		hexVal(tok.Colors.PrimaryDark),
		hexVal(tok.Colors.Primary), hexVal(tok.Colors.Secondary),
		hexVal(tok.Colors.Accent), hexVal(tok.Colors.PrimaryLight),
		hexVal(tok.Colors.PrimaryDark), hexVal(tok.Colors.TextMuted),
		hexVal(tok.Colors.Primary), hexVal(tok.Colors.PrimaryDark),
		xmlEsc(tok.Typography.Heading.Family), xmlEsc(tok.Typography.Body.Family),
		fill, fill, fill, ln, ln, ln, effect, effect, effect, fill, fill, fill)
}

// hexVal strips the # prefix and uppercases for srgbClr attributes. Values
// that are not plain hex (e.g. an rgba() muted color) fall back to a
// neutral gray, since DrawingML has no alpha shorthand here.
func hexVal(hex string) string {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return "7F7F7F"
	}
	return strings.ToUpper(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;", "'", "&apos;",
)

// xmlEsc escapes text for element and attribute content.
func xmlEsc(s string) string {
	return xmlReplacer.Replace(s)
}

// orText returns s, or fallback when s is blank.
func orText(s, fallback string) string {
	if strings.TrimSpace(s) != "" {
		return s
	}
	return fallback
}
