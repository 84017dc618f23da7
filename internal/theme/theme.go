// Package theme holds the visual constants of exported artifacts: palette,
// fonts, size tiers, spacing and slide geometry. Layout code reads every
// number from a Theme so the look can change without touching algorithms.
package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-md2office/internal/yamlutil"
)

// ErrInvalidTheme indicates a theme value is out of range or malformed.
var ErrInvalidTheme = errors.New("invalid theme")

// hexColor matches an RRGGBB color without leading #.
var hexColor = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// Theme is the full set of style constants for one export.
type Theme struct {
	Name     string   `yaml:"name"`
	Palette  Palette  `yaml:"palette"`
	Fonts    Fonts    `yaml:"fonts"`
	Slide    Slide    `yaml:"slide"`
	Document Document `yaml:"document"`
}

// Palette names the theme colors as RRGGBB hex.
type Palette struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Accent1   string `yaml:"accent1"`
	Accent2   string `yaml:"accent2"`
	Accent3   string `yaml:"accent3"`
	Text      string `yaml:"text"`
}

// Backgrounds returns the slide background rotation.
func (p Palette) Backgrounds() [3]string {
	return [3]string{p.Primary, p.Secondary, p.Accent1}
}

// Color resolves a palette role name ("primary", "accent2", ...) to its hex
// value. Unknown roles resolve to "".
func (p Palette) Color(role string) string {
	switch strings.ToLower(role) {
	case "primary":
		return p.Primary
	case "secondary":
		return p.Secondary
	case "accent1":
		return p.Accent1
	case "accent2":
		return p.Accent2
	case "accent3":
		return p.Accent3
	case "text":
		return p.Text
	}
	return ""
}

// Fonts names the typefaces.
type Fonts struct {
	Face string `yaml:"face"` // slides
	Mono string `yaml:"mono"` // code spans and code blocks
}

// Glow is a soft text halo.
type Glow struct {
	Size    float64 `yaml:"size"`    // points
	Opacity float64 `yaml:"opacity"` // 0..1
	Color   string  `yaml:"color"`   // palette role
}

// Decoration is a rectangle drawn identically on every slide. Positions and
// sizes are inches; WidthPercent, when set, overrides W as a share of the
// slide width.
type Decoration struct {
	Name         string  `yaml:"name"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	W            float64 `yaml:"w"`
	WidthPercent float64 `yaml:"widthPercent"`
	H            float64 `yaml:"h"`
	Color        string  `yaml:"color"`        // palette role
	Transparency float64 `yaml:"transparency"` // percent
	Rotate       float64 `yaml:"rotate"`       // degrees
}

// Slide holds slideshow geometry (inches) and type tiers (points).
type Slide struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	MarginX       float64 `yaml:"marginX"`
	BoxWidthPct   float64 `yaml:"boxWidthPercent"`
	GradientAngle float64 `yaml:"gradientAngle"`
	GradientTo    string  `yaml:"gradientTo"` // palette role

	TitlePrefix string  `yaml:"titlePrefix"`
	TitleY      float64 `yaml:"titleY"`
	TitleHeight float64 `yaml:"titleHeight"`
	TitleSize   float64 `yaml:"titleSize"`
	TitleGlow   Glow    `yaml:"titleGlow"`

	BodyTop        float64 `yaml:"bodyTop"`
	BottomMargin   float64 `yaml:"bottomMargin"`
	LineEstimate   float64 `yaml:"lineEstimate"`
	SubtitleSize   float64 `yaml:"subtitleSize"`
	BodySize       float64 `yaml:"bodySize"`
	SubtitleStep   float64 `yaml:"subtitleStep"`
	BodyStep       float64 `yaml:"bodyStep"`
	SubtitleHeight float64 `yaml:"subtitleHeight"`
	BodyHeight     float64 `yaml:"bodyHeight"`
	SubtitleGlow   Glow    `yaml:"subtitleGlow"`

	LongLine       int     `yaml:"longLine"`
	LongFactor     float64 `yaml:"longFactor"`
	VeryLongLine   int     `yaml:"veryLongLine"`
	VeryLongFactor float64 `yaml:"veryLongFactor"`

	Decorations []Decoration `yaml:"decorations"`
}

// Spacing is paragraph spacing in twentieths of a point.
type Spacing struct {
	Before int `yaml:"before"`
	After  int `yaml:"after"`
}

// Document holds word-processing constants.
type Document struct {
	RunSize          int     `yaml:"runSize"` // half-points
	HeadingSpacing   Spacing `yaml:"headingSpacing"`
	ParagraphSpacing Spacing `yaml:"paragraphSpacing"`
	ListSpacing      Spacing `yaml:"listSpacing"`
	RuleSpacing      Spacing `yaml:"ruleSpacing"`
	ListIndent       int     `yaml:"listIndent"` // twips per nesting level
	Bullet           string  `yaml:"bullet"`
	CodeStyle        string  `yaml:"codeStyle"` // chroma style name
}

// Default returns the built-in theme: navy palette, Century Gothic slides,
// 12pt document text.
func Default() *Theme {
	return &Theme{
		Name: "default",
		Palette: Palette{
			Primary:   "1B2A4A",
			Secondary: "2C3E67",
			Accent1:   "364B7F",
			Accent2:   "1F3355",
			Accent3:   "253C62",
			Text:      "FFFFFF",
		},
		Fonts: Fonts{
			Face: "Century Gothic",
			Mono: "Courier New",
		},
		Slide: Slide{
			Width:         13.33,
			Height:        7.5,
			MarginX:       0.5,
			BoxWidthPct:   95,
			GradientAngle: 45,
			GradientTo:    "accent2",

			TitlePrefix: "Diapositiva ",
			TitleY:      0.5,
			TitleHeight: 1.5,
			TitleSize:   44,
			TitleGlow:   Glow{Size: 3, Opacity: 0.3, Color: "accent3"},

			BodyTop:        2.3,
			BottomMargin:   1.0,
			LineEstimate:   0.8,
			SubtitleSize:   26,
			BodySize:       20,
			SubtitleStep:   1.1,
			BodyStep:       0.8,
			SubtitleHeight: 0.9,
			BodyHeight:     0.7,
			SubtitleGlow:   Glow{Size: 2, Opacity: 0.2, Color: "accent3"},

			LongLine:       80,
			LongFactor:     0.9,
			VeryLongLine:   100,
			VeryLongFactor: 0.8,

			Decorations: []Decoration{
				{Name: "bottom bar", X: 0, Y: 6.8, WidthPercent: 100, H: 0.7, Color: "accent3", Transparency: 30},
				{Name: "top bar", X: 0, Y: 0, WidthPercent: 100, H: 0.2, Color: "accent2", Transparency: 30},
				{Name: "corner accent", X: 12.5, Y: 0, W: 0.8, H: 0.8, Color: "accent1", Transparency: 40, Rotate: 45},
			},
		},
		Document: Document{
			RunSize:          24,
			HeadingSpacing:   Spacing{Before: 240, After: 120},
			ParagraphSpacing: Spacing{Before: 120, After: 120},
			ListSpacing:      Spacing{Before: 60, After: 60},
			RuleSpacing:      Spacing{Before: 240, After: 240},
			ListIndent:       720,
			Bullet:           "•",
			CodeStyle:        "github",
		},
	}
}

// Parse decodes a YAML theme over the defaults, so a theme file only needs
// the values it changes. The result is validated.
func Parse(data []byte) (*Theme, error) {
	t := Default()
	if err := yamlutil.Decode(data, t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTheme, err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Encode renders t as YAML.
func (t *Theme) Encode() ([]byte, error) {
	return yamlutil.Encode(t)
}

// Validate checks colors, sizes and geometry. Returns nil for a nil theme
// (nil means use defaults).
func (t *Theme) Validate() error {
	if t == nil {
		return nil
	}

	colors := map[string]string{
		"palette.primary":   t.Palette.Primary,
		"palette.secondary": t.Palette.Secondary,
		"palette.accent1":   t.Palette.Accent1,
		"palette.accent2":   t.Palette.Accent2,
		"palette.accent3":   t.Palette.Accent3,
		"palette.text":      t.Palette.Text,
	}
	for field, v := range colors {
		if !hexColor.MatchString(v) {
			return fmt.Errorf("%w: %s: %q is not an RRGGBB color", ErrInvalidTheme, field, v)
		}
	}

	if t.Fonts.Face == "" || t.Fonts.Mono == "" {
		return fmt.Errorf("%w: fonts.face and fonts.mono are required", ErrInvalidTheme)
	}

	s := t.Slide
	positive := map[string]float64{
		"slide.width":        s.Width,
		"slide.height":       s.Height,
		"slide.titleSize":    s.TitleSize,
		"slide.subtitleSize": s.SubtitleSize,
		"slide.bodySize":     s.BodySize,
		"slide.lineEstimate": s.LineEstimate,
	}
	for field, v := range positive {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidTheme, field, v)
		}
	}
	if s.BodyTop+s.BottomMargin >= s.Height {
		return fmt.Errorf("%w: slide.bodyTop + slide.bottomMargin (%g) leaves no room on a %g in slide",
			ErrInvalidTheme, s.BodyTop+s.BottomMargin, s.Height)
	}
	if s.BoxWidthPct <= 0 || s.BoxWidthPct > 100 {
		return fmt.Errorf("%w: slide.boxWidthPercent must be in (0, 100], got %g", ErrInvalidTheme, s.BoxWidthPct)
	}
	if s.LongLine <= 0 || s.VeryLongLine < s.LongLine {
		return fmt.Errorf("%w: slide.longLine (%d) must be positive and not exceed slide.veryLongLine (%d)",
			ErrInvalidTheme, s.LongLine, s.VeryLongLine)
	}
	if s.LongFactor <= 0 || s.LongFactor > 1 || s.VeryLongFactor <= 0 || s.VeryLongFactor > 1 {
		return fmt.Errorf("%w: slide length factors must be in (0, 1]", ErrInvalidTheme)
	}
	if t.Palette.Color(s.GradientTo) == "" {
		return fmt.Errorf("%w: slide.gradientTo: unknown palette role %q", ErrInvalidTheme, s.GradientTo)
	}
	for i, d := range s.Decorations {
		if t.Palette.Color(d.Color) == "" {
			return fmt.Errorf("%w: slide.decorations[%d].color: unknown palette role %q", ErrInvalidTheme, i, d.Color)
		}
		if d.Transparency < 0 || d.Transparency > 100 {
			return fmt.Errorf("%w: slide.decorations[%d].transparency must be 0-100, got %g", ErrInvalidTheme, i, d.Transparency)
		}
	}

	if t.Document.RunSize <= 0 {
		return fmt.Errorf("%w: document.runSize must be positive, got %d", ErrInvalidTheme, t.Document.RunSize)
	}
	if t.Document.ListIndent < 0 {
		return fmt.Errorf("%w: document.listIndent must not be negative, got %d", ErrInvalidTheme, t.Document.ListIndent)
	}

	return nil
}
