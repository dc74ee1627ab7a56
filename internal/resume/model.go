package resume

import "github.com/google/uuid"

// Document is the canonical in-memory résumé for an editing session. It is
// produced either by NewDocument (blank) or by the schema migrator from
// persisted bytes; nothing else may construct one from untrusted input.
type Document struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`

	CustomLinks []CustomLink `json:"customLinks"`

	// Summary is rich text; nil means the user never wrote one, which
	// templates treat differently from an emptied-out summary.
	Summary *string `json:"summary"`

	Experience     []WorkExperience `json:"experience"`
	Education      []Education      `json:"education"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Awards         []Award          `json:"awards"`
	Languages      []LanguageSkill  `json:"languages"`
	CustomSections []CustomSection  `json:"customSections"`

	Skills SkillsSection `json:"skills"`

	// SectionOrder controls template render order. It is always an exact
	// permutation of the canonical section keys.
	SectionOrder []SectionKey `json:"sectionOrder"`

	TemplateID string `json:"templateId"`
	ATSScore   *int   `json:"atsScore"`
}

// CustomLink is a user-defined link shown next to the built-in socials.
type CustomLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// WorkExperience is one entry of the experience collection.
type WorkExperience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	ID        string `json:"id"`
	School    string `json:"school"`
	Degree    string `json:"degree"`
	Field     string `json:"field"`
	Location  string `json:"location"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	GPA       string `json:"gpa"`
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	URL          string   `json:"url"`
	Technologies []string `json:"technologies"`
	Highlights   []string `json:"highlights"`
}

type Certification struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

type Award struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type LanguageSkill struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type CustomSection struct {
	ID    string       `json:"id"`
	Title string       `json:"title"`
	Items []CustomItem `json:"items"`
}

type CustomItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// SkillGroup is a named, ordered list of skill tags.
type SkillGroup struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// SkillsSection holds technical skills as named groups plus the flat soft
// and tool lists. CustomGroups is a user-defined second grouped section with
// an editable title.
type SkillsSection struct {
	TechnicalGroups   []SkillGroup `json:"technicalGroups"`
	Soft              []string     `json:"soft"`
	Tools             []string     `json:"tools"`
	CustomGroups      []SkillGroup `json:"customGroups"`
	CustomGroupsTitle string       `json:"customGroupsTitle"`
}

// Default group headers used when the migrator wraps a legacy flat list.
const (
	DefaultTechnicalGroupName = "Technical Skills"
	DefaultCustomGroupsTitle  = "Other Skills"
)

// NewItemID returns a fresh identifier for a list item. IDs are stable for
// the lifetime of the item and serve as its ownership key.
func NewItemID() string {
	return uuid.NewString()
}

// NewDocument returns a blank document satisfying all invariants: empty
// collections, blank identity fields, canonical section order, default
// template.
func NewDocument() Document {
	return Document{
		CustomLinks:    []CustomLink{},
		Experience:     []WorkExperience{},
		Education:      []Education{},
		Projects:       []Project{},
		Certifications: []Certification{},
		Awards:         []Award{},
		Languages:      []LanguageSkill{},
		CustomSections: []CustomSection{},
		Skills: SkillsSection{
			TechnicalGroups:   []SkillGroup{},
			Soft:              []string{},
			Tools:             []string{},
			CustomGroups:      []SkillGroup{},
			CustomGroupsTitle: DefaultCustomGroupsTitle,
		},
		SectionOrder: DefaultSectionOrder(),
		TemplateID:   DefaultTemplateID,
	}
}
