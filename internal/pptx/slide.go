package pptx

import (
	"strings"

	"github.com/alnah/go-md2office/internal/ooxml"
	"github.com/alnah/go-md2office/internal/slides"
)

// Unit conversions: angles in 60000ths of a degree, percentages in
// 1000ths, glow radius in EMU per point.
const (
	angleUnit    = 60000
	percentUnit  = 1000
	emuPerPoint  = 12700
	bulletIndent = 228600
)

// slide renders one laid-out page. Shape ids are 1-based and unique per slide.
func slide(page slides.Page) string {
	var b strings.Builder
	b.WriteString(ooxml.Header)
	b.WriteString(`<p:sld xmlns:a="` + nsA + `" xmlns:r="` + ooxml.NSOfficeRels + `" xmlns:p="` + nsP + `"><p:cSld>`)
	writeBackground(&b, page.Background)
	b.WriteString(`<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>`)

	id := 2
	writeTextBox(&b, id, "Title", page.Title)
	for i, tb := range page.Body {
		id++
		writeTextBox(&b, id, "Text "+ooxml.Itoa(i+1), tb)
	}
	for _, s := range page.Shapes {
		id++
		writeShape(&b, id, s)
	}

	b.WriteString(`</p:spTree></p:cSld><p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr></p:sld>`)
	return b.String()
}

func writeBackground(b *strings.Builder, bg slides.Background) {
	b.WriteString(`<p:bg><p:bgPr><a:gradFill rotWithShape="1"><a:gsLst>`)
	b.WriteString(`<a:gs pos="0">` + srgb(bg.From, 0) + `</a:gs>`)
	b.WriteString(`<a:gs pos="100000">` + srgb(bg.To, 0) + `</a:gs>`)
	b.WriteString(`</a:gsLst><a:lin ang="` + angle(bg.Angle) + `" scaled="0"/></a:gradFill><a:effectLst/></p:bgPr></p:bg>`)
}

func writeXfrm(b *strings.Builder, box slides.Box, rotate float64) {
	b.WriteString(`<a:xfrm`)
	if rotate != 0 {
		b.WriteString(` rot="` + angle(rotate) + `"`)
	}
	b.WriteString(`><a:off x="` + ooxml.Itoa(ooxml.EMU(box.X)) + `" y="` + ooxml.Itoa(ooxml.EMU(box.Y)) + `"/>`)
	b.WriteString(`<a:ext cx="` + ooxml.Itoa(ooxml.EMU(box.W)) + `" cy="` + ooxml.Itoa(ooxml.EMU(box.H)) + `"/></a:xfrm>`)
}

func writeTextBox(b *strings.Builder, id int, name string, tb slides.TextBox) {
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="` + ooxml.Itoa(id) + `" name="` + ooxml.Escape(name) + `"/>`)
	b.WriteString(`<p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr><p:spPr>`)
	writeXfrm(b, tb.Box, 0)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom><a:noFill/></p:spPr>`)

	b.WriteString(`<p:txBody><a:bodyPr wrap="square" lIns="91440" tIns="45720" rIns="91440" bIns="45720" rtlCol="0" anchor="ctr">`)
	if tb.Shrink {
		b.WriteString(`<a:normAutofit/>`)
	}
	b.WriteString(`</a:bodyPr><a:lstStyle/><a:p><a:pPr`)
	if tb.Align == slides.AlignCenter {
		b.WriteString(` algn="ctr"`)
	} else {
		b.WriteString(` algn="l"`)
	}
	if tb.Bullet {
		b.WriteString(` marL="` + ooxml.Itoa(bulletIndent) + `" indent="-` + ooxml.Itoa(bulletIndent) + `"><a:buFont typeface="Arial"/><a:buChar char="•"/></a:pPr>`)
	} else {
		b.WriteString(`><a:buNone/></a:pPr>`)
	}

	b.WriteString(`<a:r><a:rPr lang="es-ES" sz="` + ooxml.Itoa(tb.Size*100) + `"`)
	if tb.Bold {
		b.WriteString(` b="1"`)
	}
	b.WriteString(` dirty="0"><a:solidFill>` + srgb(tb.Color, 0) + `</a:solidFill>`)
	if g := tb.Glow; g != nil {
		rad := int64(g.Size*emuPerPoint + 0.5)
		b.WriteString(`<a:effectLst><a:glow rad="` + ooxml.Itoa(rad) + `">` + srgbAlpha(g.Color, g.Opacity) + `</a:glow></a:effectLst>`)
	}
	face := ooxml.Escape(tb.Font)
	b.WriteString(`<a:latin typeface="` + face + `"/><a:ea typeface="` + face + `"/><a:cs typeface="` + face + `"/></a:rPr>`)
	b.WriteString(`<a:t>` + ooxml.Escape(tb.Text) + `</a:t></a:r></a:p></p:txBody></p:sp>`)
}

func writeShape(b *strings.Builder, id int, s slides.Shape) {
	name := s.Name
	if name == "" {
		name = "Shape " + ooxml.Itoa(id)
	}
	b.WriteString(`<p:sp><p:nvSpPr><p:cNvPr id="` + ooxml.Itoa(id) + `" name="` + ooxml.Escape(name) + `"/><p:cNvSpPr/><p:nvPr/></p:nvSpPr><p:spPr>`)
	writeXfrm(b, s.Box, s.Rotate)
	b.WriteString(`<a:prstGeom prst="rect"><a:avLst/></a:prstGeom>`)
	b.WriteString(`<a:solidFill>` + srgb(s.Fill, s.Transparency) + `</a:solidFill>`)
	b.WriteString(`<a:ln><a:solidFill>` + srgb(s.Fill, 0) + `</a:solidFill></a:ln>`)
	b.WriteString(`</p:spPr></p:sp>`)
}

// srgb renders a color with an optional transparency percentage.
func srgb(hex string, transparency float64) string {
	if transparency <= 0 {
		return `<a:srgbClr val="` + ooxml.Escape(hex) + `"/>`
	}
	return srgbAlpha(hex, 1-transparency/100)
}

// srgbAlpha renders a color with opacity in 0..1.
func srgbAlpha(hex string, opacity float64) string {
	alpha := int64(opacity*100*percentUnit + 0.5)
	return `<a:srgbClr val="` + ooxml.Escape(hex) + `"><a:alpha val="` + ooxml.Itoa(alpha) + `"/></a:srgbClr>`
}

func angle(deg float64) string {
	return ooxml.Itoa(int64(deg*angleUnit + 0.5))
}
