package slides

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/alnah/go-md2office/internal/theme"
)

const prefix = "Diapositiva "

// ---------------------------------------------------------------------------
// TestSplit - Chunking
// ---------------------------------------------------------------------------

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []Slide
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "only whitespace",
			input: "  \n\t\n\n   ",
			want:  nil,
		},
		{
			name:  "two slides with subtitle and list",
			input: "Diapositiva 1: Intro\nBienvenida\n- punto uno\n- punto dos\n\nDiapositiva 2: Cierre",
			want: []Slide{
				{Title: "1: Intro", Lines: []Line{
					{Text: "Bienvenida", Subtitle: true},
					{Text: "punto uno", ListItem: true},
					{Text: "punto dos", ListItem: true},
				}},
				{Title: "2: Cierre"},
			},
		},
		{
			name:  "several blank lines separate one gap",
			input: "A\n\n\n\nB",
			want:  []Slide{{Title: "A"}, {Title: "B"}},
		},
		{
			name:  "whitespace-only chunk between slides is skipped",
			input: "A\n\n   \n\t\n\nB",
			want:  []Slide{{Title: "A"}, {Title: "B"}},
		},
		{
			name:  "first body line is subtitle even as list item",
			input: "T\n- primero\nsegundo",
			want: []Slide{{Title: "T", Lines: []Line{
				{Text: "primero", ListItem: true, Subtitle: true},
				{Text: "segundo"},
			}}},
		},
		{
			name:  "body lines are trimmed",
			input: "T\n   indentado   \r\n  - lista",
			want: []Slide{{Title: "T", Lines: []Line{
				{Text: "indentado", Subtitle: true},
				{Text: "lista", ListItem: true},
			}}},
		},
		{
			name:  "dash without space is text",
			input: "T\nx\n-guion",
			want: []Slide{{Title: "T", Lines: []Line{
				{Text: "x", Subtitle: true},
				{Text: "-guion"},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Split(tt.input, prefix)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split(%q) =\n  %+v\nwant\n  %+v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestScale - Fit body lines
// ---------------------------------------------------------------------------

func TestScale(t *testing.T) {
	t.Parallel()

	st := theme.Default().Slide
	tests := []struct {
		n    int
		want float64
	}{
		{0, 1},
		{1, 1},
		{5, 1},
		{6, 4.2 / 4.800000000000001},
		{7, 0.75},
		{10, 0.525},
	}
	for _, tt := range tests {
		if got := Scale(tt.n, st); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Scale(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestScale_Monotonic(t *testing.T) {
	t.Parallel()

	st := theme.Default().Slide
	prev := Scale(0, st)
	for n := 1; n <= 40; n++ {
		s := Scale(n, st)
		if s > prev {
			t.Fatalf("Scale(%d) = %v > Scale(%d) = %v", n, s, n-1, prev)
		}
		if s > 1 || s <= 0 {
			t.Fatalf("Scale(%d) = %v out of (0, 1]", n, s)
		}
		prev = s
	}

	// Font sizes never grow as lines are added.
	line := Line{Text: "texto"}
	prevSize := FontSize(line, Scale(1, st), st)
	for n := 2; n <= 500; n++ {
		size := FontSize(line, Scale(n, st), st)
		if size > prevSize {
			t.Fatalf("FontSize at %d lines = %d > %d", n, size, prevSize)
		}
		prevSize = size
	}
}

// ---------------------------------------------------------------------------
// TestFontSize - Length tiers
// ---------------------------------------------------------------------------

func TestFontSize(t *testing.T) {
	t.Parallel()

	st := theme.Default().Slide
	tests := []struct {
		name  string
		line  Line
		scale float64
		want  int
	}{
		{"short body", Line{Text: "hola"}, 1, 20},
		{"short subtitle", Line{Text: "hola", Subtitle: true}, 1, 26},
		{"80 runes keeps full size", Line{Text: strings.Repeat("x", 80)}, 1, 20},
		{"81 runes", Line{Text: strings.Repeat("x", 81)}, 1, 18},
		{"100 runes", Line{Text: strings.Repeat("x", 100)}, 1, 18},
		{"101 runes", Line{Text: strings.Repeat("x", 101)}, 1, 16},
		{"long subtitle", Line{Text: strings.Repeat("x", 101), Subtitle: true}, 1, 21},
		{"runes not bytes", Line{Text: strings.Repeat("ñ", 80)}, 1, 20},
		{"subtitle scaled", Line{Text: "a", Subtitle: true}, 0.875, 23},
		{"body scaled", Line{Text: "a"}, 0.875, 18},
		{"crowded body floors at minimum", Line{Text: "a"}, Scale(500, st), MinFontSize},
		{"zero scale floors at minimum", Line{Text: "a", Subtitle: true}, 0, MinFontSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FontSize(tt.line, tt.scale, st); got != tt.want {
				t.Errorf("FontSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuild - Layout
// ---------------------------------------------------------------------------

func TestBuild_BackgroundRotation(t *testing.T) {
	t.Parallel()

	p := Build("A\n\nB\n\nC\n\nD", nil)
	if len(p.Pages) != 4 {
		t.Fatalf("len(Pages) = %d, want 4", len(p.Pages))
	}
	want := []string{"1B2A4A", "2C3E67", "364B7F", "1B2A4A"}
	for i, page := range p.Pages {
		if page.Background.From != want[i] {
			t.Errorf("page %d background = %s, want %s", i, page.Background.From, want[i])
		}
		if page.Background.To != "1F3355" || page.Background.Angle != 45 {
			t.Errorf("page %d gradient = %+v", i, page.Background)
		}
	}
}

func TestBuild_SixLines(t *testing.T) {
	t.Parallel()

	content := "Diapositiva 3: Repaso\nSubtítulo\n- a\n- b\n- c\n- d\n- e"
	p := Build(content, nil)
	if len(p.Pages) != 1 {
		t.Fatalf("len(Pages) = %d, want 1", len(p.Pages))
	}
	page := p.Pages[0]

	if page.Title.Text != "3: Repaso" || page.Title.Size != 44 || !page.Title.Bold || page.Title.Align != AlignCenter {
		t.Errorf("title = %+v", page.Title)
	}
	if page.Title.Glow == nil || page.Title.Glow.Color != "253C62" {
		t.Errorf("title glow = %+v", page.Title.Glow)
	}
	if len(page.Body) != 6 {
		t.Fatalf("len(Body) = %d, want 6", len(page.Body))
	}

	sub := page.Body[0]
	if sub.Size != 23 || !sub.Bold || sub.Align != AlignCenter || sub.H != 0.9 || sub.Y != 2.3 {
		t.Errorf("subtitle = %+v", sub)
	}
	if sub.Glow == nil || sub.Glow.Size != 2 {
		t.Errorf("subtitle glow = %+v", sub.Glow)
	}

	// 6 × 0.8 rounds up in binary floating point, so the scale lands just
	// below 0.875 and 20 × scale rounds down.
	item := page.Body[1]
	if item.Size != 17 || item.Bold || !item.Bullet || item.Align != AlignLeft || !item.Shrink || item.Glow != nil {
		t.Errorf("list item = %+v", item)
	}
	if math.Abs(item.Y-(2.3+1.1*0.875)) > 1e-9 {
		t.Errorf("list item Y = %v, want %v", item.Y, 2.3+1.1*0.875)
	}
	if step := page.Body[2].Y - page.Body[1].Y; math.Abs(step-0.8*0.875) > 1e-9 {
		t.Errorf("body step = %v, want %v", step, 0.8*0.875)
	}
	if math.Abs(item.W-13.33*0.95) > 1e-9 {
		t.Errorf("body width = %v, want 95%% of slide", item.W)
	}
}

func TestBuild_Decorations(t *testing.T) {
	t.Parallel()

	page := Build("Solo título", nil).Pages[0]
	if len(page.Body) != 0 {
		t.Errorf("len(Body) = %d, want 0", len(page.Body))
	}

	want := []Shape{
		{Box: Box{X: 0, Y: 6.8, W: 13.33, H: 0.7}, Name: "bottom bar", Fill: "253C62", Transparency: 30},
		{Box: Box{X: 0, Y: 0, W: 13.33, H: 0.2}, Name: "top bar", Fill: "1F3355", Transparency: 30},
		{Box: Box{X: 12.5, Y: 0, W: 0.8, H: 0.8}, Name: "corner accent", Fill: "364B7F", Transparency: 40, Rotate: 45},
	}
	if !reflect.DeepEqual(page.Shapes, want) {
		t.Errorf("Shapes =\n  %+v\nwant\n  %+v", page.Shapes, want)
	}
}

func TestBuild_CustomTheme(t *testing.T) {
	t.Parallel()

	th := theme.Default()
	th.Palette.Primary = "000000"
	th.Slide.TitlePrefix = ""
	th.Slide.Decorations = nil

	page := Build("Diapositiva 1", th).Pages[0]
	if page.Background.From != "000000" {
		t.Errorf("background = %s, want theme primary", page.Background.From)
	}
	if page.Title.Text != "Diapositiva 1" {
		t.Errorf("title = %q, want prefix kept when theme has none", page.Title.Text)
	}
	if len(page.Shapes) != 0 {
		t.Errorf("len(Shapes) = %d, want 0", len(page.Shapes))
	}
}
