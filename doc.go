// Package md2office exports generated lesson text as office artifacts:
// a word-processing document (.docx), a slideshow (.pptx), plain text
// (.txt, and .pdf which carries the raw text) or an HTML preview.
//
// # Quick Start
//
// Create a converter and export:
//
//	conv, err := md2office.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Export(md2office.Input{
//	    Content:  "Objetivo: **leer** con fluidez\n| Fase | Minutos |\n| Inicio | 10 |",
//	    Format:   md2office.FormatDocx,
//	    Filename: "Plan de Clase",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.Data, 0644) // plan-de-clase.docx
//
// # Input Syntax
//
// Plain text (the default) follows the generator's conventions: a line is a
// table row when it contains "|", and **double asterisks** mark bold runs.
// Markdown input (SyntaxMarkdown) adds headings, nested lists, rules, code
// blocks and italic, code-span and strikethrough runs. HTML input
// (SyntaxHTML) is converted to markdown first.
//
// # Slides
//
// FormatPptx splits the content on blank lines into slides. The first line
// of each chunk is the title, the second the subtitle; lines starting with
// "- " are bullets. Font sizes shrink as slides get denser and lines longer.
//
// # Fallback
//
// Exports never fail on content. Unknown formats produce the raw text with a
// .txt name. The only error is ErrEncoding, raised when an encoder fails.
//
// # Themes
//
// Colors, fonts, sizes and slide geometry come from a theme. The built-in
// theme reproduces the navy classroom look; a YAML file can override any
// subset of it:
//
//	conv, err := md2office.NewConverter(
//	    md2office.WithAssetPath("/path/to/assets"), // themes/{name}.yaml
//	    md2office.WithThemeName("sunset"),
//	)
//
// A Converter holds only read-only configuration and is safe for concurrent
// use; ResolvePoolSize suggests a worker count for batch callers.
package md2office
