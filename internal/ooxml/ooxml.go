// Package ooxml writes Open Packaging Convention containers: a zip archive
// of XML parts plus the content-type and relationship bookkeeping shared by
// the docx and pptx encoders.
package ooxml

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Header is the declaration every part starts with.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// Namespaces and relationship types used by the encoders.
const (
	NSRelationships = "http://schemas.openxmlformats.org/package/2006/relationships"
	NSContentTypes  = "http://schemas.openxmlformats.org/package/2006/content-types"
	NSOfficeRels    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	RelOfficeDocument = NSOfficeRels + "/officeDocument"
	RelCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelExtendedProps  = NSOfficeRels + "/extended-properties"
)

// EMUPerInch converts inches to English Metric Units.
const EMUPerInch = 914400

// ErrDuplicatePart indicates a part name was added twice.
var ErrDuplicatePart = errors.New("duplicate package part")

// Relationship is one entry of a .rels part.
type Relationship struct {
	ID     string
	Type   string
	Target string
}

// Package accumulates parts and writes them to a zip archive. Parts are
// written in the order they are added; [Content_Types].xml comes first.
type Package struct {
	zw        *zip.Writer
	names     map[string]bool
	overrides []override
	pending   []part
	err       error
}

type override struct {
	part        string
	contentType string
}

// NewPackage starts a package written to w. Close must be called to finish it.
func NewPackage(w io.Writer) *Package {
	return &Package{zw: zip.NewWriter(w), names: make(map[string]bool)}
}

// Add stores an XML part and records its content type. An empty content
// type leaves the part to the xml/rels defaults.
func (p *Package) Add(name, contentType, body string) {
	if p.err != nil {
		return
	}
	if p.names[name] {
		p.err = fmt.Errorf("%w: %s", ErrDuplicatePart, name)
		return
	}
	p.names[name] = true
	if contentType != "" {
		p.overrides = append(p.overrides, override{part: "/" + name, contentType: contentType})
	}
	p.pending = append(p.pending, part{name: name, body: body})
}

// AddRels stores a relationships part.
func (p *Package) AddRels(name string, rels []Relationship) {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString(`<Relationships xmlns="` + NSRelationships + `">`)
	for _, r := range rels {
		b.WriteString(`<Relationship Id="` + r.ID + `" Type="` + r.Type + `" Target="` + Escape(r.Target) + `"/>`)
	}
	b.WriteString(`</Relationships>`)
	p.Add(name, "", b.String())
}

// Close writes [Content_Types].xml and every added part, then finishes the
// archive. It returns the first error encountered.
func (p *Package) Close() error {
	if p.err != nil {
		return p.err
	}
	if err := p.write("[Content_Types].xml", p.contentTypes()); err != nil {
		return err
	}
	for _, pt := range p.pending {
		if err := p.write(pt.name, pt.body); err != nil {
			return err
		}
	}
	if err := p.zw.Close(); err != nil {
		return fmt.Errorf("finishing archive: %w", err)
	}
	return nil
}

func (p *Package) contentTypes() string {
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString(`<Types xmlns="` + NSContentTypes + `">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	for _, o := range p.overrides {
		b.WriteString(`<Override PartName="` + o.part + `" ContentType="` + o.contentType + `"/>`)
	}
	b.WriteString(`</Types>`)
	return b.String()
}

func (p *Package) write(name, body string) error {
	// Zero Modified keeps archives byte-identical across runs.
	f, err := p.zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := io.WriteString(f, body); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

type part struct {
	name string
	body string
}

// Escape returns s escaped for XML text and attribute values. Characters
// not allowed in XML 1.0 become U+FFFD.
func Escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// EMU converts inches to EMU, rounded to the nearest unit.
func EMU(inches float64) int64 {
	if inches < 0 {
		return -int64(-inches*EMUPerInch + 0.5)
	}
	return int64(inches*EMUPerInch + 0.5)
}

// Itoa formats an integer attribute value.
func Itoa[T ~int | ~int64](v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// Content types of the package property parts.
const (
	CTCoreProps = "application/vnd.openxmlformats-package.core-properties+xml"
	CTAppProps  = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
)

// AddProps stores docProps/core.xml with title and docProps/app.xml with
// the given extra application properties (already escaped XML).
func (p *Package) AddProps(title, appExtra string) {
	p.Add("docProps/core.xml", CTCoreProps, Header+
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties"`+
		` xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/"`+
		` xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`+
		`<dc:title>`+Escape(title)+`</dc:title>`+
		`<dc:creator>md2office</dc:creator>`+
		`</cp:coreProperties>`)
	p.Add("docProps/app.xml", CTAppProps, Header+
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">`+
		`<Application>md2office</Application>`+appExtra+`</Properties>`)
}
