package docx

import (
	"strings"

	"github.com/alnah/go-md2office/internal/ooxml"
	"github.com/alnah/go-md2office/internal/theme"
)

// headingSizes are the Heading1..Heading6 run sizes in half-points.
var headingSizes = [6]int{32, 28, 26, 24, 24, 24}

const settings = ooxml.Header +
	`<w:settings xmlns:w="` + nsW + `">` +
	`<w:defaultTabStop w:val="720"/>` +
	`<w:characterSpacingControl w:val="doNotCompress"/>` +
	`<w:compat><w:compatSetting w:name="compatibilityMode" w:uri="http://schemas.microsoft.com/office/word" w:val="15"/></w:compat>` +
	`</w:settings>`

// styles renders the Normal style and the six heading styles. Heading text
// uses the theme's primary color.
func styles(th *theme.Theme) string {
	var b strings.Builder
	b.WriteString(ooxml.Header)
	b.WriteString(`<w:styles xmlns:w="` + nsW + `">`)

	size := ooxml.Itoa(th.Document.RunSize)
	b.WriteString(`<w:docDefaults><w:rPrDefault><w:rPr>`)
	b.WriteString(`<w:rFonts w:ascii="Calibri" w:hAnsi="Calibri" w:eastAsia="Calibri" w:cs="Calibri"/>`)
	b.WriteString(`<w:sz w:val="` + size + `"/><w:szCs w:val="` + size + `"/>`)
	b.WriteString(`<w:lang w:val="es-ES" w:eastAsia="en-US" w:bidi="ar-SA"/>`)
	b.WriteString(`</w:rPr></w:rPrDefault><w:pPrDefault/></w:docDefaults>`)

	b.WriteString(`<w:style w:type="paragraph" w:default="1" w:styleId="Normal"><w:name w:val="Normal"/><w:qFormat/></w:style>`)

	color := ooxml.Escape(th.Palette.Primary)
	for i, hs := range headingSizes {
		level := ooxml.Itoa(i + 1)
		s := ooxml.Itoa(hs)
		b.WriteString(`<w:style w:type="paragraph" w:styleId="Heading` + level + `">`)
		b.WriteString(`<w:name w:val="heading ` + level + `"/>`)
		b.WriteString(`<w:basedOn w:val="Normal"/><w:next w:val="Normal"/><w:uiPriority w:val="9"/><w:qFormat/>`)
		b.WriteString(`<w:pPr><w:keepNext/><w:keepLines/><w:outlineLvl w:val="` + ooxml.Itoa(i) + `"/></w:pPr>`)
		b.WriteString(`<w:rPr><w:b/><w:bCs/><w:color w:val="` + color + `"/>`)
		b.WriteString(`<w:sz w:val="` + s + `"/><w:szCs w:val="` + s + `"/></w:rPr>`)
		b.WriteString(`</w:style>`)
	}

	b.WriteString(`</w:styles>`)
	return b.String()
}
