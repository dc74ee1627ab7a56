// Package textpdf maps a document to a fixed, semantic page layout and
// emits a vector/text PDF. Every string in the document becomes selectable
// text, in a single-column reading order independent of the active visual
// template, so ATS parsers can extract it losslessly.
package textpdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"resume-studio/internal/export/raster"
	"resume-studio/internal/resume"
)

const margin = 48.0

// Render produces the ATS-mode PDF. It is a pure mapping from document and
// theme; it never mutates its inputs.
func Render(doc resume.Document, theme resume.ThemeSettings) ([]byte, error) {
	page := raster.PageSizeFor(theme.PageSize)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.WidthPt, Ht: page.HeightPt},
	})
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(doc.Name, true)
	pdf.AddPage()

	w := &writer{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
		family: coreFontFamily(theme.FontFamily),
		base:   baseFontSize(theme.FontSize),
		lead:   lineSpacing(theme.Spacing),
	}

	w.header(doc)
	w.summary(doc)
	w.experience(doc)
	w.education(doc)
	w.skills(doc)
	w.projects(doc)
	w.certifications(doc)
	w.awards(doc)
	w.languages(doc)
	w.customSections(doc)

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("textpdf: %w", err)
	}
	return out.Bytes(), nil
}

// coreFontFamily maps a theme font onto one of the built-in PDF core fonts
// so the output never depends on embedded font files.
func coreFontFamily(themeFont string) string {
	switch strings.ToLower(themeFont) {
	case "merriweather", "georgia", "times", "times new roman", "lora":
		return "Times"
	case "jetbrains mono", "courier", "ibm plex mono":
		return "Courier"
	default:
		return "Helvetica"
	}
}

func baseFontSize(tier string) float64 {
	switch tier {
	case resume.FontSizeSmall:
		return 9.5
	case resume.FontSizeLarge:
		return 11.5
	default:
		return 10.5
	}
}

func lineSpacing(tier string) float64 {
	switch tier {
	case resume.SpacingCompact:
		return 1.2
	case resume.SpacingSpacious:
		return 1.6
	default:
		return 1.4
	}
}

type writer struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	family string
	base   float64
	lead   float64
}

func (w *writer) lineHeight(size float64) float64 { return size * w.lead }

func (w *writer) text(size float64, style, s string) {
	if s == "" {
		return
	}
	w.pdf.SetFont(w.family, style, size)
	w.pdf.MultiCell(0, w.lineHeight(size), w.tr(s), "", "L", false)
}

func (w *writer) bullet(s string) {
	if s == "" {
		return
	}
	w.text(w.base, "", "• "+s)
}

func (w *writer) sectionHeading(title string) {
	w.pdf.Ln(w.lineHeight(w.base) * 0.8)
	w.text(w.base+2, "B", strings.ToUpper(title))
}

func (w *writer) entryTitle(s string) { w.text(w.base+0.5, "B", s) }

func (w *writer) header(doc resume.Document) {
	w.text(w.base+8, "B", doc.Name)

	contact := joinNonEmpty(" | ", doc.Email, doc.Phone, doc.Location)
	w.text(w.base, "", contact)

	links := []string{doc.LinkedIn, doc.GitHub, doc.Website}
	for _, l := range doc.CustomLinks {
		if l.URL != "" {
			links = append(links, l.URL)
		} else {
			links = append(links, l.Label)
		}
	}
	w.text(w.base, "", joinNonEmpty(" | ", links...))
}

func (w *writer) summary(doc resume.Document) {
	if doc.Summary == nil || *doc.Summary == "" {
		return
	}
	w.sectionHeading("Summary")
	w.text(w.base, "", *doc.Summary)
}

func (w *writer) experience(doc resume.Document) {
	if len(doc.Experience) == 0 {
		return
	}
	w.sectionHeading("Experience")
	for _, e := range doc.Experience {
		w.entryTitle(joinNonEmpty(" - ", e.Position, e.Company))
		end := e.EndDate
		if e.Current {
			end = "Present"
		}
		w.text(w.base, "I", joinNonEmpty(" | ", dateRange(e.StartDate, end), e.Location))
		w.text(w.base, "", e.Description)
		for _, a := range e.Achievements {
			w.bullet(a)
		}
	}
}

func (w *writer) education(doc resume.Document) {
	if len(doc.Education) == 0 {
		return
	}
	w.sectionHeading("Education")
	for _, e := range doc.Education {
		w.entryTitle(joinNonEmpty(" - ", joinNonEmpty(", ", e.Degree, e.Field), e.School))
		detail := joinNonEmpty(" | ", dateRange(e.StartDate, e.EndDate), e.Location)
		if e.GPA != "" {
			detail = joinNonEmpty(" | ", detail, "GPA: "+e.GPA)
		}
		w.text(w.base, "I", detail)
	}
}

func (w *writer) skills(doc resume.Document) {
	s := doc.Skills
	empty := len(s.TechnicalGroups) == 0 && len(s.Soft) == 0 && len(s.Tools) == 0 && len(s.CustomGroups) == 0
	if empty {
		return
	}
	w.sectionHeading("Skills")
	for _, g := range s.TechnicalGroups {
		w.text(w.base, "", joinNonEmpty(": ", g.Name, strings.Join(g.Skills, ", ")))
	}
	if len(s.Soft) > 0 {
		w.text(w.base, "", "Soft Skills: "+strings.Join(s.Soft, ", "))
	}
	if len(s.Tools) > 0 {
		w.text(w.base, "", "Tools: "+strings.Join(s.Tools, ", "))
	}
	for _, g := range s.CustomGroups {
		name := g.Name
		if name == "" {
			name = s.CustomGroupsTitle
		}
		w.text(w.base, "", joinNonEmpty(": ", name, strings.Join(g.Skills, ", ")))
	}
}

func (w *writer) projects(doc resume.Document) {
	if len(doc.Projects) == 0 {
		return
	}
	w.sectionHeading("Projects")
	for _, p := range doc.Projects {
		w.entryTitle(p.Name)
		w.text(w.base, "I", joinNonEmpty(" | ", p.URL, strings.Join(p.Technologies, ", ")))
		w.text(w.base, "", p.Description)
		for _, h := range p.Highlights {
			w.bullet(h)
		}
	}
}

func (w *writer) certifications(doc resume.Document) {
	if len(doc.Certifications) == 0 {
		return
	}
	w.sectionHeading("Certifications")
	for _, c := range doc.Certifications {
		w.text(w.base, "", joinNonEmpty(" - ", c.Name, c.Issuer, c.Date))
	}
}

func (w *writer) awards(doc resume.Document) {
	if len(doc.Awards) == 0 {
		return
	}
	w.sectionHeading("Awards")
	for _, a := range doc.Awards {
		w.entryTitle(joinNonEmpty(" - ", a.Title, a.Issuer, a.Date))
		w.text(w.base, "", a.Description)
	}
}

func (w *writer) languages(doc resume.Document) {
	if len(doc.Languages) == 0 {
		return
	}
	w.sectionHeading("Languages")
	for _, l := range doc.Languages {
		w.text(w.base, "", joinNonEmpty(" - ", l.Name, l.Level))
	}
}

func (w *writer) customSections(doc resume.Document) {
	for _, section := range doc.CustomSections {
		title := section.Title
		if title == "" {
			title = "Additional"
		}
		w.sectionHeading(title)
		for _, item := range section.Items {
			w.entryTitle(joinNonEmpty(" - ", item.Title, item.Subtitle, item.Date))
			w.text(w.base, "", item.Description)
		}
	}
}

func dateRange(start, end string) string {
	return joinNonEmpty(" - ", start, end)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
