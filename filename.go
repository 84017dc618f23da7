package md2office

import "github.com/alnah/go-md2office/internal/fileutil"

// DefaultBaseName names exports whose title slugs to nothing.
const DefaultBaseName = "document"

// Filename returns the download name for a title and extension:
// the lowercased title with whitespace runs and path separators turned
// into hyphens.
func Filename(title, ext string) string {
	base := fileutil.Slugify(title)
	if base == "" {
		base = DefaultBaseName
	}
	return base + "." + ext
}
