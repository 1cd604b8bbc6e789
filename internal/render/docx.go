package render

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"math"

	"preizo/internal/layout"
)

const (
	docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	emuPerInch   = 914400
	twipsPerInch = 1440
	twipsPerPt   = 20

	highlightGray = "lightGray"
)

// DOCX writes WordprocessingML packages.
type DOCX struct {
	assets Assets
}

func NewDOCX(assets Assets) *DOCX {
	return &DOCX{assets: assets}
}

func (d *DOCX) Extension() string   { return ".docx" }
func (d *DOCX) ContentType() string { return docxContentType }

type docxPart struct {
	name string
	data []byte
}

type docxMedia struct {
	relID string
	name  string
	data  []byte
}

func (d *DOCX) Render(plan layout.Plan, w io.Writer) error {
	const operation = "render.DOCX"

	var body bytes.Buffer
	var media []docxMedia

	for _, b := range plan.Blocks {
		switch b := b.(type) {
		case layout.TextBlock:
			writeTextParagraph(&body, b)
		case layout.ImageBlock:
			img, ok := loadLogo(d.assets, b.Logo)
			if !ok {
				continue
			}
			n := len(media) + 1
			m := docxMedia{
				relID: fmt.Sprintf("rIdImg%d", n),
				name:  fmt.Sprintf("image%d.%s", n, img.format),
				data:  img.data,
			}
			media = append(media, m)
			writeImageParagraph(&body, b, img, m, n)
		}
	}
	writeSection(&body, plan.Page)

	zw := zip.NewWriter(w)
	parts := []docxPart{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(packageRelsXML)},
		{"word/styles.xml", []byte(stylesXML)},
		{"word/_rels/document.xml.rels", documentRels(media)},
		{"word/document.xml", documentXML(body.Bytes())},
	}
	for _, m := range media {
		parts = append(parts, docxPart{"word/media/" + m.name, m.data})
	}

	for _, p := range parts {
		f, err := zw.Create(p.name)
		if err != nil {
			return fmt.Errorf("%s: failed to create %s: %w", operation, p.name, err)
		}
		if _, err := f.Write(p.data); err != nil {
			return fmt.Errorf("%s: failed to write %s: %w", operation, p.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("%s: failed to close package: %w", operation, err)
	}
	return nil
}

func jc(a layout.Alignment) string {
	switch a {
	case layout.AlignLeft:
		return "left"
	case layout.AlignRight:
		return "right"
	default:
		return "center"
	}
}

func twips(pt float64) int {
	return int(math.Round(pt * twipsPerPt))
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func writeTextParagraph(buf *bytes.Buffer, t layout.TextBlock) {
	fmt.Fprintf(buf, `<w:p><w:pPr><w:spacing w:before="%d" w:after="%d"/><w:jc w:val="%s"/></w:pPr>`,
		twips(t.SpaceBeforePt), twips(t.SpaceAfterPt), jc(t.Alignment))

	buf.WriteString(`<w:r><w:rPr>`)
	if t.FontFamily != "" {
		f := escape(t.FontFamily)
		fmt.Fprintf(buf, `<w:rFonts w:ascii="%s" w:hAnsi="%s" w:cs="%s"/>`, f, f, f)
	}
	if t.Bold {
		buf.WriteString(`<w:b/>`)
	}
	if t.Italic {
		buf.WriteString(`<w:i/>`)
	}
	if t.Color != layout.ColorDefault {
		fmt.Fprintf(buf, `<w:color w:val="%s"/>`, escape(string(t.Color)))
	}
	if t.SizePt > 0 {
		half := int(math.Round(t.SizePt * 2))
		fmt.Fprintf(buf, `<w:sz w:val="%d"/><w:szCs w:val="%d"/>`, half, half)
	}
	if t.Highlighted {
		fmt.Fprintf(buf, `<w:highlight w:val="%s"/>`, highlightGray)
	}
	if t.Underline {
		buf.WriteString(`<w:u w:val="single"/>`)
	}
	buf.WriteString(`</w:rPr>`)
	fmt.Fprintf(buf, `<w:t xml:space="preserve">%s</w:t></w:r></w:p>`, escape(t.Text))
}

func writeImageParagraph(buf *bytes.Buffer, b layout.ImageBlock, img logoImage, m docxMedia, id int) {
	cx := int64(math.Round(b.WidthIn * emuPerInch))
	cy := cx * int64(img.height) / int64(img.width)

	fmt.Fprintf(buf, `<w:p><w:pPr><w:spacing w:before="0" w:after="0"/><w:jc w:val="%s"/></w:pPr><w:r><w:drawing>`, jc(b.Alignment))
	fmt.Fprintf(buf, `<wp:inline distT="0" distB="0" distL="0" distR="0"><wp:extent cx="%d" cy="%d"/>`, cx, cy)
	fmt.Fprintf(buf, `<wp:docPr id="%d" name="Logo %d"/>`, id, id)
	buf.WriteString(`<wp:cNvGraphicFramePr><a:graphicFrameLocks noChangeAspect="1"/></wp:cNvGraphicFramePr>`)
	buf.WriteString(`<a:graphic><a:graphicData uri="http://schemas.openxmlformats.org/drawingml/2006/picture"><pic:pic>`)
	fmt.Fprintf(buf, `<pic:nvPicPr><pic:cNvPr id="%d" name="%s"/><pic:cNvPicPr/></pic:nvPicPr>`, id, escape(m.name))
	fmt.Fprintf(buf, `<pic:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></pic:blipFill>`, m.relID)
	fmt.Fprintf(buf, `<pic:spPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="%d" cy="%d"/></a:xfrm><a:prstGeom prst="rect"><a:avLst/></a:prstGeom></pic:spPr>`, cx, cy)
	buf.WriteString(`</pic:pic></a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`)
}

func writeSection(buf *bytes.Buffer, p layout.Page) {
	w := int(math.Round(p.WidthIn * twipsPerInch))
	h := int(math.Round(p.HeightIn * twipsPerInch))
	m := int(math.Round(p.MarginIn * twipsPerInch))
	fmt.Fprintf(buf, `<w:sectPr><w:pgSz w:w="%d" w:h="%d"/>`, w, h)
	fmt.Fprintf(buf, `<w:pgMar w:top="%d" w:right="%d" w:bottom="%d" w:left="%d" w:header="0" w:footer="0" w:gutter="0"/></w:sectPr>`, m, m, m, m)
}

func documentXML(body []byte) []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"` +
		` xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships"` +
		` xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing"` +
		` xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main"` +
		` xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture"><w:body>`)
	buf.Write(body)
	buf.WriteString(`</w:body></w:document>`)
	return buf.Bytes()
}

func documentRels(media []docxMedia) []byte {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">`)
	buf.WriteString(`<Relationship Id="rIdStyles" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles" Target="styles.xml"/>`)
	for _, m := range media {
		fmt.Fprintf(&buf, `<Relationship Id="%s" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/image" Target="media/%s"/>`, m.relID, m.name)
	}
	buf.WriteString(`</Relationships>`)
	return buf.Bytes()
}

const contentTypesXML = xml.Header +
	`<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">` +
	`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>` +
	`<Default Extension="xml" ContentType="application/xml"/>` +
	`<Default Extension="png" ContentType="image/png"/>` +
	`<Default Extension="jpeg" ContentType="image/jpeg"/>` +
	`<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>` +
	`<Override PartName="/word/styles.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.styles+xml"/>` +
	`</Types>`

const packageRelsXML = xml.Header +
	`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">` +
	`<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>` +
	`</Relationships>`

// Calibri 11 pt body text without paragraph spacing.
const stylesXML = xml.Header +
	`<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
	`<w:docDefaults><w:rPrDefault><w:rPr>` +
	`<w:rFonts w:ascii="Calibri" w:eastAsia="Calibri" w:hAnsi="Calibri" w:cs="Calibri"/>` +
	`<w:sz w:val="22"/><w:szCs w:val="22"/><w:lang w:val="de-DE"/>` +
	`</w:rPr></w:rPrDefault>` +
	`<w:pPrDefault><w:pPr><w:spacing w:after="0" w:line="240" w:lineRule="auto"/></w:pPr></w:pPrDefault>` +
	`</w:docDefaults>` +
	`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>` +
	`</w:styles>`
