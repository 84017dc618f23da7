package pptx

import (
	"strings"

	"github.com/alnah/go-md2office/internal/ooxml"
	"github.com/alnah/go-md2office/internal/theme"
)

// themePart renders the DrawingML theme: the palette becomes the color
// scheme and the slide face both font slots.
func themePart(th *theme.Theme) string {
	pal := th.Palette
	face := ooxml.Escape(th.Fonts.Face)
	clr := func(tag, hex string) string {
		return `<a:` + tag + `><a:srgbClr val="` + ooxml.Escape(hex) + `"/></a:` + tag + `>`
	}

	var b strings.Builder
	b.WriteString(ooxml.Header)
	b.WriteString(`<a:theme xmlns:a="` + nsA + `" name="` + ooxml.Escape(th.Name) + `"><a:themeElements>`)

	b.WriteString(`<a:clrScheme name="` + ooxml.Escape(th.Name) + `">`)
	b.WriteString(clr("dk1", pal.Primary))
	b.WriteString(clr("lt1", pal.Text))
	b.WriteString(clr("dk2", pal.Secondary))
	b.WriteString(clr("lt2", "E7E6E6"))
	b.WriteString(clr("accent1", pal.Accent1))
	b.WriteString(clr("accent2", pal.Accent2))
	b.WriteString(clr("accent3", pal.Accent3))
	b.WriteString(clr("accent4", pal.Secondary))
	b.WriteString(clr("accent5", pal.Primary))
	b.WriteString(clr("accent6", pal.Accent1))
	b.WriteString(clr("hlink", "0563C1"))
	b.WriteString(clr("folHlink", "954F72"))
	b.WriteString(`</a:clrScheme>`)

	b.WriteString(`<a:fontScheme name="` + ooxml.Escape(th.Name) + `">`)
	for _, slot := range []string{"majorFont", "minorFont"} {
		b.WriteString(`<a:` + slot + `><a:latin typeface="` + face + `"/><a:ea typeface=""/><a:cs typeface=""/></a:` + slot + `>`)
	}
	b.WriteString(`</a:fontScheme>`)

	b.WriteString(`<a:fmtScheme name="` + ooxml.Escape(th.Name) + `">`)
	b.WriteString(`<a:fillStyleLst>`)
	for range 3 {
		b.WriteString(`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`)
	}
	b.WriteString(`</a:fillStyleLst><a:lnStyleLst>`)
	for _, w := range []string{"6350", "12700", "19050"} {
		b.WriteString(`<a:ln w="` + w + `" cap="flat" cmpd="sng" algn="ctr"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>`)
	}
	b.WriteString(`</a:lnStyleLst><a:effectStyleLst>`)
	for range 3 {
		b.WriteString(`<a:effectStyle><a:effectLst/></a:effectStyle>`)
	}
	b.WriteString(`</a:effectStyleLst><a:bgFillStyleLst>`)
	for range 3 {
		b.WriteString(`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`)
	}
	b.WriteString(`</a:bgFillStyleLst></a:fmtScheme>`)

	b.WriteString(`</a:themeElements><a:objectDefaults/><a:extraClrSchemeLst/></a:theme>`)
	return b.String()
}
