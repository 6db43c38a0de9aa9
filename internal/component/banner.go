package component

import (
	"io"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	shapeClass  = "pointer-events-none absolute h-64 w-64 rounded-full bg-sky-200/60 blur-3xl"
	actionClass = "inline-block rounded-full bg-rose-600 px-5 py-2 text-sm font-bold text-white shadow-lg md:hidden"
	bubbleClass = "absolute hidden w-36 flex-col items-center rounded-2xl bg-white/90 p-2 shadow-xl backdrop-blur md:flex"
)

// Banner renders the promotional banner. It takes no input and returns the
// same tree on every call.
func Banner() g.Node {
	return render(content)
}

// Render writes the banner markup to w.
func Render(w io.Writer) error {
	return Banner().Render(w)
}

func render(c Content) g.Node {
	return h.Section(
		h.Class("relative overflow-hidden bg-gradient-to-br from-sky-50 via-white to-rose-50 px-4 py-10 md:px-12 md:py-16"),
		g.Attr("data-component", "promo-banner"),

		shape(c.Shapes[0]),
		shape(c.Shapes[1]),

		h.Div(
			h.Class("relative z-10 mx-auto flex max-w-6xl flex-col items-center gap-8 md:flex-row md:justify-between"),

			h.Div(
				h.Class("text-center md:text-left"),
				h.H1(
					h.Class("text-3xl font-extrabold leading-tight tracking-tight text-sky-900 md:text-5xl"),
					h.Span(h.Class("block"), g.Text(c.Headline[0])),
					h.Span(h.Class("block text-sky-600"), g.Text(c.Headline[1])),
				),
				h.P(
					h.Class("mt-4 text-lg font-semibold text-rose-600 md:text-2xl"),
					g.Text(c.Subheadline),
				),
				h.Div(
					h.Class("mt-6 flex justify-center gap-3"),
					action(c.Actions[0]),
					action(c.Actions[1]),
				),
			),

			h.Div(
				h.Class("relative w-full max-w-md"),
				h.Img(
					h.Class("mx-auto w-full drop-shadow-xl"),
					h.Src(c.Featured.Src),
					h.Alt(c.Featured.Alt),
				),
				bubble(c.Bubbles[0]),
				bubble(c.Bubbles[1]),
			),
		),
	)
}

func shape(position string) g.Node {
	return h.Div(
		h.Class(shapeClass),
		h.Style(position),
		g.Attr("aria-hidden", "true"),
	)
}

func action(l Link) g.Node {
	return h.A(
		h.Class(actionClass),
		h.Href(l.Href),
		g.Text(l.Label),
	)
}

func bubble(b Bubble) g.Node {
	return h.Div(
		h.Class(bubbleClass+" "+b.Position),
		h.Img(
			h.Class("h-20 w-20 object-contain"),
			h.Src(b.Image.Src),
			h.Alt(b.Image.Alt),
		),
		h.Span(
			h.Class("mt-1 text-xs font-bold text-sky-900"),
			g.Text(b.Caption),
		),
	)
}
