// Package pptx encodes a laid-out slides.Presentation as an Office Open XML
// PresentationML package (.pptx).
package pptx

import (
	"embed"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-md2office/internal/ooxml"
	"github.com/alnah/go-md2office/internal/slides"
	"github.com/alnah/go-md2office/internal/theme"
)

// ContentType is the media type of a .pptx file.
const ContentType = "application/vnd.openxmlformats-officedocument.presentationml.presentation"

const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"

	ctPresentation = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ctMaster       = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ctLayout       = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ctSlide        = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ctTheme        = "application/vnd.openxmlformats-officedocument.theme+xml"

	relMaster = ooxml.NSOfficeRels + "/slideMaster"
	relLayout = ooxml.NSOfficeRels + "/slideLayout"
	relSlide  = ooxml.NSOfficeRels + "/slide"
	relTheme  = ooxml.NSOfficeRels + "/theme"
)

//go:embed parts/*.xml
var parts embed.FS

// Write encodes pres to w. The theme supplies the package color and font
// scheme; a nil theme uses theme.Default.
func Write(w io.Writer, pres slides.Presentation, th *theme.Theme, title string) error {
	if th == nil {
		th = theme.Default()
	}

	master, err := parts.ReadFile("parts/slideMaster1.xml")
	if err != nil {
		return fmt.Errorf("loading slide master: %w", err)
	}
	layout, err := parts.ReadFile("parts/slideLayout1.xml")
	if err != nil {
		return fmt.Errorf("loading slide layout: %w", err)
	}

	p := ooxml.NewPackage(w)
	p.AddRels("_rels/.rels", []ooxml.Relationship{
		{ID: "rId1", Type: ooxml.RelOfficeDocument, Target: "ppt/presentation.xml"},
		{ID: "rId2", Type: ooxml.RelCoreProps, Target: "docProps/core.xml"},
		{ID: "rId3", Type: ooxml.RelExtendedProps, Target: "docProps/app.xml"},
	})

	p.Add("ppt/presentation.xml", ctPresentation, presentation(pres))
	presRels := []ooxml.Relationship{
		{ID: "rId1", Type: relMaster, Target: "slideMasters/slideMaster1.xml"},
		{ID: "rId2", Type: relTheme, Target: "theme/theme1.xml"},
	}
	for i := range pres.Pages {
		presRels = append(presRels, ooxml.Relationship{
			ID: slideRelID(i), Type: relSlide, Target: fmt.Sprintf("slides/slide%d.xml", i+1),
		})
	}
	p.AddRels("ppt/_rels/presentation.xml.rels", presRels)

	p.Add("ppt/slideMasters/slideMaster1.xml", ctMaster, string(master))
	p.AddRels("ppt/slideMasters/_rels/slideMaster1.xml.rels", []ooxml.Relationship{
		{ID: "rId1", Type: relLayout, Target: "../slideLayouts/slideLayout1.xml"},
		{ID: "rId2", Type: relTheme, Target: "../theme/theme1.xml"},
	})
	p.Add("ppt/slideLayouts/slideLayout1.xml", ctLayout, string(layout))
	p.AddRels("ppt/slideLayouts/_rels/slideLayout1.xml.rels", []ooxml.Relationship{
		{ID: "rId1", Type: relMaster, Target: "../slideMasters/slideMaster1.xml"},
	})
	p.Add("ppt/theme/theme1.xml", ctTheme, themePart(th))

	for i, page := range pres.Pages {
		name := fmt.Sprintf("ppt/slides/slide%d.xml", i+1)
		p.Add(name, ctSlide, slide(page))
		p.AddRels(fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", i+1), []ooxml.Relationship{
			{ID: "rId1", Type: relLayout, Target: "../slideLayouts/slideLayout1.xml"},
		})
	}

	p.AddProps(title, `<Slides>`+ooxml.Itoa(len(pres.Pages))+`</Slides>`)
	return p.Close()
}

// slideRelID numbers slide relationships after the master and theme.
func slideRelID(i int) string {
	return fmt.Sprintf("rId%d", i+3)
}

func presentation(pres slides.Presentation) string {
	var b strings.Builder
	b.WriteString(ooxml.Header)
	b.WriteString(`<p:presentation xmlns:a="` + nsA + `" xmlns:r="` + ooxml.NSOfficeRels + `" xmlns:p="` + nsP + `" saveSubsetFonts="1">`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	// An empty sldIdLst is invalid; a deck without slides omits it.
	if len(pres.Pages) > 0 {
		b.WriteString(`<p:sldIdLst>`)
		for i := range pres.Pages {
			b.WriteString(`<p:sldId id="` + ooxml.Itoa(256+i) + `" r:id="` + slideRelID(i) + `"/>`)
		}
		b.WriteString(`</p:sldIdLst>`)
	}
	b.WriteString(`<p:sldSz cx="` + ooxml.Itoa(ooxml.EMU(pres.Width)) + `" cy="` + ooxml.Itoa(ooxml.EMU(pres.Height)) + `"/>`)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}
