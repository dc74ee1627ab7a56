// Package ats estimates how well a résumé will survive automated applicant
// tracking systems: a heuristic score over the document's content plus a
// parseability check against a generated PDF.
package ats

import (
	"strings"
	"unicode"

	"resume-studio/internal/resume"
)

// Section score weights. The overall score is the weighted mean of the
// section scores, rounded to the nearest integer.
var sectionWeights = map[string]int{
	"contact":      20,
	"summary":      15,
	"experience":   30,
	"skills":       20,
	"completeness": 15,
}

// Scorer computes detailed ATS scores from document content alone.
type Scorer struct{}

// Score implements the editor's scoring hook.
func (Scorer) Score(doc resume.Document) (int, resume.DetailedATSScore) {
	sections := map[string]int{
		"contact":      scoreContact(doc),
		"summary":      scoreSummary(doc),
		"experience":   scoreExperience(doc),
		"skills":       scoreSkills(doc),
		"completeness": scoreCompleteness(doc),
	}

	var weighted, total int
	for name, score := range sections {
		w := sectionWeights[name]
		weighted += score * w
		total += w
	}
	overall := (weighted + total/2) / total

	return overall, resume.DetailedATSScore{
		Overall:  overall,
		Sections: sections,
	}
}

func scoreContact(doc resume.Document) int {
	score := 0
	if doc.Name != "" {
		score += 25
	}
	if doc.Email != "" {
		score += 25
	}
	if doc.Phone != "" {
		score += 20
	}
	if doc.Location != "" {
		score += 15
	}
	if doc.LinkedIn != "" || doc.GitHub != "" || doc.Website != "" || len(doc.CustomLinks) > 0 {
		score += 15
	}
	return score
}

func scoreSummary(doc resume.Document) int {
	if doc.Summary == nil || strings.TrimSpace(*doc.Summary) == "" {
		return 0
	}
	words := len(strings.Fields(*doc.Summary))
	switch {
	case words >= 20 && words <= 80:
		return 100
	case words >= 10:
		return 70
	default:
		return 40
	}
}

// scoreExperience rewards entries that carry achievements, and achievements
// that quantify impact with a number.
func scoreExperience(doc resume.Document) int {
	if len(doc.Experience) == 0 {
		return 0
	}
	score := 40
	var achievements, quantified int
	for _, e := range doc.Experience {
		achievements += len(e.Achievements)
		for _, a := range e.Achievements {
			if containsDigit(a) {
				quantified++
			}
		}
	}
	if achievements > 0 {
		score += 30
		if quantified*2 >= achievements {
			score += 30
		} else if quantified > 0 {
			score += 15
		}
	}
	return score
}

func scoreSkills(doc resume.Document) int {
	count := len(doc.Skills.Soft) + len(doc.Skills.Tools)
	for _, g := range doc.Skills.TechnicalGroups {
		count += len(g.Skills)
	}
	for _, g := range doc.Skills.CustomGroups {
		count += len(g.Skills)
	}
	switch {
	case count == 0:
		return 0
	case count >= 10:
		return 100
	case count >= 5:
		return 75
	default:
		return 50
	}
}

func scoreCompleteness(doc resume.Document) int {
	filled := 0
	if len(doc.Education) > 0 {
		filled++
	}
	if len(doc.Projects) > 0 {
		filled++
	}
	if len(doc.Certifications) > 0 {
		filled++
	}
	if len(doc.Awards) > 0 {
		filled++
	}
	if len(doc.Languages) > 0 {
		filled++
	}
	return filled * 20
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
