package ooxml

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestPackage_WritesPartsAndContentTypes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := NewPackage(&buf)
	p.AddRels("_rels/.rels", []Relationship{{ID: "rId1", Type: RelOfficeDocument, Target: "word/document.xml"}})
	p.Add("word/document.xml", "application/test+xml", Header+"<doc/>")
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip.NewReader() error = %v", err)
	}

	var names []string
	parts := map[string]string{}
	for _, f := range zr.File {
		names = append(names, f.Name)
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		data, _ := io.ReadAll(rc)
		rc.Close()
		parts[f.Name] = string(data)
	}

	want := []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("parts = %v, want %v", names, want)
	}
	if !strings.Contains(parts["[Content_Types].xml"], `<Override PartName="/word/document.xml" ContentType="application/test+xml"/>`) {
		t.Errorf("content types missing override:\n%s", parts["[Content_Types].xml"])
	}
	if !strings.Contains(parts["_rels/.rels"], `Target="word/document.xml"`) {
		t.Errorf("rels missing target:\n%s", parts["_rels/.rels"])
	}
}

func TestPackage_DuplicatePart(t *testing.T) {
	t.Parallel()

	p := NewPackage(io.Discard)
	p.Add("a.xml", "", "x")
	p.Add("a.xml", "", "y")
	if err := p.Close(); !errors.Is(err, ErrDuplicatePart) {
		t.Errorf("Close() error = %v, want %v", err, ErrDuplicatePart)
	}
}

func TestPackage_Deterministic(t *testing.T) {
	t.Parallel()

	build := func() []byte {
		var buf bytes.Buffer
		p := NewPackage(&buf)
		p.Add("a.xml", "", "<a/>")
		if err := p.Close(); err != nil {
			t.Fatalf("Close() error = %v", err)
		}
		return buf.Bytes()
	}
	if !bytes.Equal(build(), build()) {
		t.Error("two identical packages differ")
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`a < b & "c"`, "a &lt; b &amp; &#34;c&#34;"},
		{"nul\x00byte", "nul�byte"},
		{"tildes: ñ é", "tildes: ñ é"},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEMU(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want int64
	}{
		{0, 0},
		{1, 914400},
		{0.5, 457200},
		{13.33, 12188952},
		{7.5, 6858000},
	}
	for _, tt := range tests {
		if got := EMU(tt.in); got != tt.want {
			t.Errorf("EMU(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
