package ats

import (
	"testing"

	"resume-studio/internal/export/textpdf"
	"resume-studio/internal/resume"
)

func strongDocument() resume.Document {
	doc := resume.NewDocument()
	doc.Name = "Dana Whitfield"
	doc.Email = "dana@example.com"
	doc.Phone = "555-0101"
	doc.Location = "Portland, OR"
	doc.LinkedIn = "linkedin.com/in/dana"
	summary := "Backend engineer with nine years building data platforms, " +
		"focused on reliability, throughput and cost. Led teams of up to six."
	doc.Summary = &summary
	doc.Experience = []resume.WorkExperience{{
		ID:       resume.NewItemID(),
		Company:  "Acme Analytics",
		Position: "Senior Engineer",
		Achievements: []string{
			"Cut ingest latency by 40 percent",
			"Saved $120k per year in compute spend",
		},
	}}
	doc.Education = []resume.Education{{ID: resume.NewItemID(), School: "State University", Degree: "BSc"}}
	doc.Languages = []resume.LanguageSkill{{ID: resume.NewItemID(), Name: "English", Level: "Native"}}
	doc.Skills.TechnicalGroups = []resume.SkillGroup{{
		ID:     resume.NewItemID(),
		Name:   "Languages",
		Skills: []string{"Go", "SQL", "Python", "Rust", "Bash", "TypeScript", "C", "Java", "Ruby", "Lua"},
	}}
	return doc
}

func TestScoreBlankDocument(t *testing.T) {
	overall, detailed := Scorer{}.Score(resume.NewDocument())
	if overall != 0 {
		t.Fatalf("blank overall = %d, want 0", overall)
	}
	if detailed.Overall != overall {
		t.Fatalf("detailed overall %d != overall %d", detailed.Overall, overall)
	}
	for name, score := range detailed.Sections {
		if score != 0 {
			t.Fatalf("blank section %s = %d, want 0", name, score)
		}
	}
}

func TestScoreStrongDocument(t *testing.T) {
	overall, detailed := Scorer{}.Score(strongDocument())
	if overall < 80 {
		t.Fatalf("strong overall = %d, want >= 80 (sections %v)", overall, detailed.Sections)
	}
	if detailed.Sections["contact"] != 100 {
		t.Fatalf("contact = %d, want 100", detailed.Sections["contact"])
	}
	if detailed.Sections["experience"] != 100 {
		t.Fatalf("experience = %d, want 100", detailed.Sections["experience"])
	}
	if detailed.Sections["skills"] != 100 {
		t.Fatalf("skills = %d, want 100", detailed.Sections["skills"])
	}
}

func TestScoreQuantifiedAchievementsRewarded(t *testing.T) {
	doc := strongDocument()
	vague := doc
	vague.Experience = []resume.WorkExperience{{
		ID:           resume.NewItemID(),
		Company:      "Acme Analytics",
		Position:     "Senior Engineer",
		Achievements: []string{"Improved things", "Worked on stuff"},
	}}
	_, strong := Scorer{}.Score(doc)
	_, weak := Scorer{}.Score(vague)
	if weak.Sections["experience"] >= strong.Sections["experience"] {
		t.Fatalf("vague experience %d should score below quantified %d",
			weak.Sections["experience"], strong.Sections["experience"])
	}
}

func TestScoreIsInRange(t *testing.T) {
	for _, doc := range []resume.Document{resume.NewDocument(), strongDocument()} {
		overall, detailed := Scorer{}.Score(doc)
		if overall < 0 || overall > 100 {
			t.Fatalf("overall out of range: %d", overall)
		}
		for name, s := range detailed.Sections {
			if s < 0 || s > 100 {
				t.Fatalf("section %s out of range: %d", name, s)
			}
		}
	}
}

func TestVerifyParseabilityOnTextExport(t *testing.T) {
	doc := strongDocument()
	out, err := textpdf.Render(doc, resume.DefaultTheme())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	report, err := VerifyParseability(doc, out)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if report.Coverage < 90 {
		t.Fatalf("coverage = %d, missing %v", report.Coverage, report.Missing)
	}
	if len(report.Missing) > 0 {
		t.Fatalf("missing strings from text export: %v", report.Missing)
	}
}

func TestVerifyParseabilityEmptyDocument(t *testing.T) {
	doc := resume.NewDocument()
	out, err := textpdf.Render(doc, resume.DefaultTheme())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	report, err := VerifyParseability(doc, out)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if report.Coverage != 100 {
		t.Fatalf("empty document coverage = %d, want 100", report.Coverage)
	}
}

func TestVerifyParseabilityRejectsGarbage(t *testing.T) {
	if _, err := VerifyParseability(resume.NewDocument(), []byte("not a pdf")); err == nil {
		t.Fatal("expected error for non-pdf input")
	}
}
