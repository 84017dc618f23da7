package preview

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-md2office/internal/slides"
)

// slidesNode renders every page as a fixed-size positioned <section>.
func slidesNode(pres slides.Presentation) *html.Node {
	root := el(atom.Div, "class", "slides")
	for i, page := range pres.Pages {
		root.AppendChild(pageNode(pres, page, i+1))
	}
	return root
}

func pageNode(pres slides.Presentation, page slides.Page, number int) *html.Node {
	bg := page.Background
	section := el(atom.Section,
		"class", "slide",
		"id", "slide-"+strconv.Itoa(number),
		"style", css(
			"width", inches(pres.Width),
			"height", inches(pres.Height),
			"font-family", pres.Font,
			"background", "linear-gradient("+strconv.FormatFloat(bg.Angle+90, 'f', -1, 64)+"deg, #"+bg.From+", #"+bg.To+")",
		),
	)

	section.AppendChild(textBoxNode(page.Title, "box title"))
	for i, tb := range page.Body {
		class := "box"
		if i == 0 {
			class = "box subtitle"
		}
		section.AppendChild(textBoxNode(tb, class))
	}
	for _, s := range page.Shapes {
		section.AppendChild(shapeNode(s))
	}
	return section
}

func textBoxNode(tb slides.TextBox, class string) *html.Node {
	align := "left"
	if tb.Align == slides.AlignCenter {
		align = "center"
	}
	weight := ""
	if tb.Bold {
		weight = "bold"
	}
	shadow := ""
	if g := tb.Glow; g != nil {
		shadow = "0 0 " + points(g.Size) + " " + rgba(g.Color, g.Opacity)
	}

	var tag atom.Atom = atom.P
	content := text(tb.Text)
	if tb.Bullet {
		tag = atom.Ul
		content = appendAll(el(atom.Li), content)
	}

	return appendAll(el(tag,
		"class", class,
		"style", css(
			"left", inches(tb.X),
			"top", inches(tb.Y),
			"width", inches(tb.W),
			"height", inches(tb.H),
			"font-size", points(float64(tb.Size)),
			"font-weight", weight,
			"text-align", align,
			"color", "#"+tb.Color,
			"text-shadow", shadow,
		),
	), content)
}

func shapeNode(s slides.Shape) *html.Node {
	transform := ""
	if s.Rotate != 0 {
		transform = "rotate(" + strconv.FormatFloat(s.Rotate, 'f', -1, 64) + "deg)"
	}
	return el(atom.Div,
		"class", "shape",
		"title", s.Name,
		"style", css(
			"left", inches(s.X),
			"top", inches(s.Y),
			"width", inches(s.W),
			"height", inches(s.H),
			"background", rgba(s.Fill, 1-s.Transparency/100),
			"transform", transform,
		),
	)
}

// rgba renders an RRGGBB color with opacity in 0..1.
func rgba(hex string, opacity float64) string {
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || len(hex) != 6 {
		return "#" + hex
	}
	return "rgba(" + strconv.FormatUint(v>>16&0xFF, 10) + "," +
		strconv.FormatUint(v>>8&0xFF, 10) + "," +
		strconv.FormatUint(v&0xFF, 10) + "," +
		strconv.FormatFloat(opacity, 'f', 2, 64) + ")"
}
