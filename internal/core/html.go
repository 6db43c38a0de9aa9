package core

import (
	"bytes"
	"fmt"
	"html/template"
)

const DefaultTitle = "Banner"

type ShellData struct {
	Title      string
	Lang       string
	Stylesheet string
	Body       template.HTML
}

var shellTemplate = template.Must(template.New("shell").Parse(`<!doctype html>
<html lang="{{.Lang}}">
  <head>
    <meta charset="UTF-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>{{.Title}}</title>
{{- if .Stylesheet}}
    <link rel="stylesheet" href="{{.Stylesheet}}" />
{{- end}}
  </head>
  <body>
    <main id="app">{{.Body}}</main>
  </body>
</html>
`))

func RenderHTMLShell(data ShellData) (string, error) {
	if data.Body == "" {
		return "", fmt.Errorf("missing body")
	}

	if data.Title == "" {
		data.Title = DefaultTitle
	}
	if data.Lang == "" {
		data.Lang = "vi"
	}

	var buf bytes.Buffer
	if err := shellTemplate.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
