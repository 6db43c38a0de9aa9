package types

import (
	"io"
)

// RenderFunc writes a component's markup.
type RenderFunc func(w io.Writer) error

type PageConfig struct {
	Route      string
	Title      string
	Lang       string
	Stylesheet string
}

type PageOption func(*PageConfig)

func WithTitle(title string) PageOption {
	return func(c *PageConfig) {
		c.Title = title
	}
}

func WithLang(lang string) PageOption {
	return func(c *PageConfig) {
		c.Lang = lang
	}
}

// WithStylesheet links the stylesheet that resolves the component's
// utility classes.
func WithStylesheet(href string) PageOption {
	return func(c *PageConfig) {
		c.Stylesheet = href
	}
}

func WithRoute(route string) PageOption {
	return func(c *PageConfig) {
		c.Route = route
	}
}
