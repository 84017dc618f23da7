// Package assets provides the theme files and preview stylesheet used by
// the exporters.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in theme and style)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── Resolver          - combines both with custom-first fallback
//
// Resolver is the loader used by the converter. A custom directory can
// override a single theme or stylesheet while everything else still comes
// from the embedded defaults.
//
// # Directory Structure
//
//	{basePath}/
//	├── themes/
//	│   └── {name}.yaml          # theme overrides, decoded over the default theme
//	└── styles/
//	    └── {name}.css           # preview stylesheet
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
