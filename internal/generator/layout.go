package generator

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/goliatone/go-docsite/pkg/interfaces"
)

// LayoutRenderer wraps a rendered page body into a complete HTML document.
type LayoutRenderer interface {
	RenderLayout(page *interfaces.Page, site SiteMetadata) ([]byte, error)
}

// SiteMetadata carries site-wide values into the layout.
type SiteMetadata struct {
	Title         string
	BaseURL       string
	DefaultLocale string
	Locales       []string
}

const defaultLayout = `<!DOCTYPE html>
<html lang="{{ .Lang }}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title }}</title>
{{- if .Summary }}
<meta name="description" content="{{ .Summary }}">
{{- end }}
</head>
<body>
<main>
{{ .Content }}
</main>
{{- if .EditURL }}
<footer><a href="{{ .EditURL }}" rel="nofollow">Edit this page</a></footer>
{{- end }}
</body>
</html>
`

type layoutData struct {
	Lang    string
	Title   string
	Summary string
	EditURL string
	Content template.HTML
}

type htmlLayout struct {
	tmpl *template.Template
}

// NewHTMLLayout parses the built-in page layout. The source can be overridden
// to brand the shell; an empty string keeps the default.
func NewHTMLLayout(source string) (LayoutRenderer, error) {
	if source == "" {
		source = defaultLayout
	}
	tmpl, err := template.New("layout").Parse(source)
	if err != nil {
		return nil, fmt.Errorf("generator: parse layout: %w", err)
	}
	return &htmlLayout{tmpl: tmpl}, nil
}

func (l *htmlLayout) RenderLayout(page *interfaces.Page, site SiteMetadata) ([]byte, error) {
	lang := page.Locale
	if lang == "" {
		lang = site.DefaultLocale
	}
	if lang == "" {
		lang = "en"
	}

	title := page.Title
	if site.Title != "" && title != "" {
		title = title + " | " + site.Title
	} else if title == "" {
		title = site.Title
	}

	data := layoutData{
		Lang:    lang,
		Title:   title,
		Summary: page.Summary,
		EditURL: page.EditURL,
		Content: template.HTML(page.HTML),
	}

	var buf bytes.Buffer
	if err := l.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("generator: render layout for %s: %w", page.Route, err)
	}
	return buf.Bytes(), nil
}
