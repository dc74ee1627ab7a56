package resume

// SectionKey identifies a renderable section for ordering purposes.
type SectionKey string

const (
	SectionSummary        SectionKey = "summary"
	SectionExperience     SectionKey = "experience"
	SectionEducation      SectionKey = "education"
	SectionSkills         SectionKey = "skills"
	SectionSoftSkills     SectionKey = "softSkills"
	SectionCustomSkills   SectionKey = "customSkills"
	SectionProjects       SectionKey = "projects"
	SectionCertifications SectionKey = "certifications"
	SectionAwards         SectionKey = "awards"
	SectionLanguages      SectionKey = "languages"
	SectionCustom         SectionKey = "custom"
)

var canonicalSectionOrder = []SectionKey{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionSoftSkills,
	SectionCustomSkills,
	SectionProjects,
	SectionCertifications,
	SectionAwards,
	SectionLanguages,
	SectionCustom,
}

// DefaultSectionOrder returns the canonical order as a fresh slice.
func DefaultSectionOrder() []SectionKey {
	order := make([]SectionKey, len(canonicalSectionOrder))
	copy(order, canonicalSectionOrder)
	return order
}

// KnownSectionKey reports whether key is part of the canonical enumeration.
func KnownSectionKey(key SectionKey) bool {
	for _, k := range canonicalSectionOrder {
		if k == key {
			return true
		}
	}
	return false
}

// SectionCount is the size of the canonical enumeration.
func SectionCount() int { return len(canonicalSectionOrder) }
