// Package preview renders the document as styled HTML for the active visual
// template and captures it with headless Chrome. The captured bitmap feeds
// the visual export paginator.
package preview

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"resume-studio/internal/export/raster"
	"resume-studio/internal/resume"
)

//go:embed templates
var assets embed.FS

var layout = template.Must(template.New("layout.html").Funcs(template.FuncMap{
	"join": func(items []string, sep string) string { return strings.Join(items, sep) },
}).ParseFS(assets, "templates/layout.html"))

// renderData is the single payload handed to the layout template.
type renderData struct {
	Doc resume.Document

	CSS         template.CSS
	Accent      string
	FontFamily  string
	BaseFontPx  int
	LineHeight  string
	PageWidthPx int
}

// RenderHTML produces the full preview page for the document's active
// template. An unknown template id falls back to the default template's
// stylesheet; rendering itself never fails on content.
func RenderHTML(doc resume.Document, theme resume.ThemeSettings) (string, error) {
	page := raster.PageSizeFor(theme.PageSize)
	data := renderData{
		Doc:         doc,
		CSS:         templateCSS(doc.TemplateID),
		Accent:      theme.PrimaryColor,
		FontFamily:  theme.FontFamily,
		BaseFontPx:  baseFontPx(theme.FontSize),
		LineHeight:  lineHeightCSS(theme.Spacing),
		PageWidthPx: page.WidthPx,
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("preview: render %s: %w", doc.TemplateID, err)
	}
	return buf.String(), nil
}

func templateCSS(templateID string) template.CSS {
	id := templateID
	if !resume.KnownTemplateID(id) {
		id = resume.DefaultTemplateID
	}
	raw, err := assets.ReadFile("templates/css/" + id + ".css")
	if err != nil {
		// Every known id ships a stylesheet; this only trips on a broken build.
		raw, _ = assets.ReadFile("templates/css/" + resume.DefaultTemplateID + ".css")
	}
	return template.CSS(raw)
}

func baseFontPx(tier string) int {
	switch tier {
	case resume.FontSizeSmall:
		return 13
	case resume.FontSizeLarge:
		return 16
	default:
		return 14
	}
}

func lineHeightCSS(tier string) string {
	switch tier {
	case resume.SpacingCompact:
		return "1.3"
	case resume.SpacingSpacious:
		return "1.8"
	default:
		return "1.5"
	}
}
