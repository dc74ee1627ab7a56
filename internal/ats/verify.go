package ats

import (
	"bytes"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"resume-studio/internal/resume"
)

// ParseReport describes how much of a document's text an ATS-style PDF
// parser was able to recover from a generated export.
type ParseReport struct {
	// Found holds document strings recovered from the PDF text layer.
	Found []string `json:"found"`
	// Missing holds document strings the parser could not locate.
	Missing []string `json:"missing"`
	// Coverage is Found over Found+Missing, in percent. A document with
	// nothing to check reports 100.
	Coverage int `json:"coverage"`
}

// VerifyParseability extracts the text layer from an exported PDF and checks
// that the document's key strings survive. Visual-mode exports, which embed
// page images instead of text, will report near-zero coverage.
func VerifyParseability(doc resume.Document, pdfBytes []byte) (ParseReport, error) {
	text, err := extractText(pdfBytes)
	if err != nil {
		return ParseReport{}, err
	}
	haystack := normalize(text)

	var report ParseReport
	for _, want := range keyStrings(doc) {
		if strings.Contains(haystack, normalize(want)) {
			report.Found = append(report.Found, want)
		} else {
			report.Missing = append(report.Missing, want)
		}
	}

	checked := len(report.Found) + len(report.Missing)
	if checked == 0 {
		report.Coverage = 100
	} else {
		report.Coverage = len(report.Found) * 100 / checked
	}
	return report, nil
}

// keyStrings picks the strings an ATS must be able to read: identity,
// contact, position titles, achievements and skills.
func keyStrings(doc resume.Document) []string {
	var keys []string
	add := func(s string) {
		if strings.TrimSpace(s) != "" {
			keys = append(keys, s)
		}
	}

	add(doc.Name)
	add(doc.Email)
	add(doc.Phone)
	if doc.Summary != nil {
		add(*doc.Summary)
	}
	for _, e := range doc.Experience {
		add(e.Company)
		add(e.Position)
		for _, a := range e.Achievements {
			add(a)
		}
	}
	for _, e := range doc.Education {
		add(e.School)
		add(e.Degree)
	}
	for _, g := range doc.Skills.TechnicalGroups {
		for _, s := range g.Skills {
			add(s)
		}
	}
	return keys
}

func extractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// normalize strips all whitespace so line wrapping inside the PDF text
// layer does not defeat substring matching.
func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
