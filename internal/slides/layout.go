package slides

import (
	"github.com/alnah/go-md2office/internal/theme"
)

// Align is horizontal text alignment.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Box is a rectangle in inches.
type Box struct {
	X, Y, W, H float64
}

// Glow is a resolved text halo.
type Glow struct {
	Size    float64
	Opacity float64
	Color   string
}

// TextBox is a positioned single-paragraph text frame.
type TextBox struct {
	Box
	Text   string
	Size   int // points
	Bold   bool
	Align  Align
	Bullet bool
	Shrink bool // shrink text on overflow
	Color  string
	Font   string
	Glow   *Glow
}

// Shape is a filled rectangle outlined in its fill color.
type Shape struct {
	Box
	Name         string
	Fill         string
	Transparency float64 // percent
	Rotate       float64 // degrees
}

// Background is a two-stop linear gradient.
type Background struct {
	From  string
	To    string
	Angle float64 // degrees
}

// Page is one laid-out slide. Shapes are drawn after the text.
type Page struct {
	Background Background
	Title      TextBox
	Body       []TextBox
	Shapes     []Shape
}

// Presentation is the laid-out deck.
type Presentation struct {
	Width  float64
	Height float64
	Font   string
	Pages  []Page
}

// Build splits content into slides and lays them out. A nil theme uses
// theme.Default.
func Build(content string, th *theme.Theme) Presentation {
	if th == nil {
		th = theme.Default()
	}
	ss := Split(content, th.Slide.TitlePrefix)

	p := Presentation{
		Width:  th.Slide.Width,
		Height: th.Slide.Height,
		Font:   th.Fonts.Face,
		Pages:  make([]Page, len(ss)),
	}
	for i, s := range ss {
		p.Pages[i] = Layout(s, i, th)
	}
	return p
}

// Layout places one slide at position index in the deck.
func Layout(s Slide, index int, th *theme.Theme) Page {
	st := th.Slide
	pal := th.Palette
	width := st.Width * st.BoxWidthPct / 100

	page := Page{
		Background: Background{
			From:  pal.Backgrounds()[index%3],
			To:    pal.Color(st.GradientTo),
			Angle: st.GradientAngle,
		},
		Title: TextBox{
			Box:   Box{X: st.MarginX, Y: st.TitleY, W: width, H: st.TitleHeight},
			Text:  s.Title,
			Size:  int(st.TitleSize),
			Bold:  true,
			Align: AlignCenter,
			Color: pal.Text,
			Font:  th.Fonts.Face,
			Glow:  glow(st.TitleGlow, pal),
		},
	}

	scale := Scale(len(s.Lines), st)
	y := st.BodyTop
	for _, l := range s.Lines {
		tb := TextBox{
			Box:    Box{X: st.MarginX, Y: y, W: width, H: st.BodyHeight},
			Text:   l.Text,
			Size:   FontSize(l, scale, st),
			Align:  AlignLeft,
			Bullet: l.ListItem,
			Shrink: true,
			Color:  pal.Text,
			Font:   th.Fonts.Face,
		}
		step := st.BodyStep
		if l.Subtitle {
			tb.H = st.SubtitleHeight
			tb.Bold = true
			tb.Align = AlignCenter
			tb.Glow = glow(st.SubtitleGlow, pal)
			step = st.SubtitleStep
		}
		page.Body = append(page.Body, tb)
		y += step * scale
	}

	for _, d := range st.Decorations {
		w := d.W
		if d.WidthPercent > 0 {
			w = st.Width * d.WidthPercent / 100
		}
		page.Shapes = append(page.Shapes, Shape{
			Box:          Box{X: d.X, Y: d.Y, W: w, H: d.H},
			Name:         d.Name,
			Fill:         pal.Color(d.Color),
			Transparency: d.Transparency,
			Rotate:       d.Rotate,
		})
	}
	return page
}

func glow(g theme.Glow, pal theme.Palette) *Glow {
	if g.Size <= 0 {
		return nil
	}
	return &Glow{Size: g.Size, Opacity: g.Opacity, Color: pal.Color(g.Color)}
}
