package editor

import (
	"resume-studio/internal/resume"
	"resume-studio/internal/schema"
)

// Content mutations. Each snapshots into history and marks the session
// dirty. Update/remove by id silently no-op when the id is not found: a
// concurrent UI removal can race with an in-flight edit and that is not an
// error condition.

// ContactInfo is the scalar identity portion of the document.
type ContactInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// UpdateContact replaces the identity fields.
func (s *Session) UpdateContact(c ContactInfo) {
	s.mutate(func(doc *resume.Document) {
		doc.Name = c.Name
		doc.Email = c.Email
		doc.Phone = c.Phone
		doc.Location = c.Location
		doc.LinkedIn = c.LinkedIn
		doc.GitHub = c.GitHub
		doc.Website = c.Website
	})
}

// SetSummary replaces the summary. nil clears it back to never-written.
func (s *Session) SetSummary(summary *string) {
	s.mutate(func(doc *resume.Document) {
		if summary == nil {
			doc.Summary = nil
			return
		}
		v := *summary
		doc.Summary = &v
	})
}

// SetSectionOrder replaces the render order. The input is canonicalized so
// the invariant (exact permutation of known keys) holds no matter what the
// caller sends.
func (s *Session) SetSectionOrder(order []resume.SectionKey) {
	s.mutate(func(doc *resume.Document) {
		doc.SectionOrder = schema.CanonicalizeSectionOrder(order)
	})
}

// --- custom links ---

// AddCustomLink appends a link and returns its generated id.
func (s *Session) AddCustomLink(label, url string) string {
	id := resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.CustomLinks = append(doc.CustomLinks, resume.CustomLink{ID: id, Label: label, URL: url})
	})
	return id
}

// UpdateCustomLink replaces the link with the given id.
func (s *Session) UpdateCustomLink(id, label, url string) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.CustomLinks {
			if doc.CustomLinks[i].ID == id {
				doc.CustomLinks[i].Label = label
				doc.CustomLinks[i].URL = url
				return
			}
		}
	})
}

// RemoveCustomLink deletes the link with the given id.
func (s *Session) RemoveCustomLink(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.CustomLinks = removeByID(doc.CustomLinks, id, func(l resume.CustomLink) string { return l.ID })
	})
}

// ReorderCustomLinks moves a link between positions.
func (s *Session) ReorderCustomLinks(from, to int) {
	s.mutate(func(doc *resume.Document) {
		doc.CustomLinks = reorder(doc.CustomLinks, from, to)
	})
}

// --- experience ---

// AddExperience appends an entry, assigning it a fresh id.
func (s *Session) AddExperience(item resume.WorkExperience) string {
	item.ID = resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.Experience = append(doc.Experience, item)
	})
	return item.ID
}

// UpdateExperience replaces the entry with the given id, keeping the id.
func (s *Session) UpdateExperience(id string, item resume.WorkExperience) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.Experience {
			if doc.Experience[i].ID == id {
				item.ID = id
				doc.Experience[i] = item
				return
			}
		}
	})
}

// RemoveExperience deletes the entry with the given id.
func (s *Session) RemoveExperience(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.Experience = removeByID(doc.Experience, id, func(e resume.WorkExperience) string { return e.ID })
	})
}

// ReorderExperience moves an entry between positions.
func (s *Session) ReorderExperience(from, to int) {
	s.mutate(func(doc *resume.Document) {
		doc.Experience = reorder(doc.Experience, from, to)
	})
}

// --- education ---

func (s *Session) AddEducation(item resume.Education) string {
	item.ID = resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.Education = append(doc.Education, item)
	})
	return item.ID
}

func (s *Session) UpdateEducation(id string, item resume.Education) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.Education {
			if doc.Education[i].ID == id {
				item.ID = id
				doc.Education[i] = item
				return
			}
		}
	})
}

func (s *Session) RemoveEducation(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.Education = removeByID(doc.Education, id, func(e resume.Education) string { return e.ID })
	})
}

func (s *Session) ReorderEducation(from, to int) {
	s.mutate(func(doc *resume.Document) {
		doc.Education = reorder(doc.Education, from, to)
	})
}

// --- projects ---

func (s *Session) AddProject(item resume.Project) string {
	item.ID = resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.Projects = append(doc.Projects, item)
	})
	return item.ID
}

func (s *Session) UpdateProject(id string, item resume.Project) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.Projects {
			if doc.Projects[i].ID == id {
				item.ID = id
				doc.Projects[i] = item
				return
			}
		}
	})
}

func (s *Session) RemoveProject(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.Projects = removeByID(doc.Projects, id, func(p resume.Project) string { return p.ID })
	})
}

func (s *Session) ReorderProjects(from, to int) {
	s.mutate(func(doc *resume.Document) {
		doc.Projects = reorder(doc.Projects, from, to)
	})
}

// --- certifications ---

func (s *Session) AddCertification(item resume.Certification) string {
	item.ID = resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.Certifications = append(doc.Certifications, item)
	})
	return item.ID
}

func (s *Session) UpdateCertification(id string, item resume.Certification) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.Certifications {
			if doc.Certifications[i].ID == id {
				item.ID = id
				doc.Certifications[i] = item
				return
			}
		}
	})
}

func (s *Session) RemoveCertification(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.Certifications = removeByID(doc.Certifications, id, func(c resume.Certification) string { return c.ID })
	})
}

func (s *Session) ReorderCertifications(from, to int) {
	s.mutate(func(doc *resume.Document) {
		doc.Certifications = reorder(doc.Certifications, from, to)
	})
}

// --- awards ---

func (s *Session) AddAward(item resume.Award) string {
	item.ID = resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.Awards = append(doc.Awards, item)
	})
	return item.ID
}

func (s *Session) UpdateAward(id string, item resume.Award) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.Awards {
			if doc.Awards[i].ID == id {
				item.ID = id
				doc.Awards[i] = item
				return
			}
		}
	})
}

func (s *Session) RemoveAward(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.Awards = removeByID(doc.Awards, id, func(a resume.Award) string { return a.ID })
	})
}

func (s *Session) ReorderAwards(from, to int) {
	s.mutate(func(doc *resume.Document) {
		doc.Awards = reorder(doc.Awards, from, to)
	})
}

// --- languages ---

func (s *Session) AddLanguage(item resume.LanguageSkill) string {
	item.ID = resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.Languages = append(doc.Languages, item)
	})
	return item.ID
}

func (s *Session) UpdateLanguage(id string, item resume.LanguageSkill) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.Languages {
			if doc.Languages[i].ID == id {
				item.ID = id
				doc.Languages[i] = item
				return
			}
		}
	})
}

func (s *Session) RemoveLanguage(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.Languages = removeByID(doc.Languages, id, func(l resume.LanguageSkill) string { return l.ID })
	})
}

func (s *Session) ReorderLanguages(from, to int) {
	s.mutate(func(doc *resume.Document) {
		doc.Languages = reorder(doc.Languages, from, to)
	})
}

// --- custom sections ---

func (s *Session) AddCustomSection(item resume.CustomSection) string {
	item.ID = resume.NewItemID()
	if item.Items == nil {
		item.Items = []resume.CustomItem{}
	}
	for i := range item.Items {
		if item.Items[i].ID == "" {
			item.Items[i].ID = resume.NewItemID()
		}
	}
	s.mutate(func(doc *resume.Document) {
		doc.CustomSections = append(doc.CustomSections, item)
	})
	return item.ID
}

func (s *Session) UpdateCustomSection(id string, item resume.CustomSection) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.CustomSections {
			if doc.CustomSections[i].ID == id {
				item.ID = id
				for j := range item.Items {
					if item.Items[j].ID == "" {
						item.Items[j].ID = resume.NewItemID()
					}
				}
				doc.CustomSections[i] = item
				return
			}
		}
	})
}

func (s *Session) RemoveCustomSection(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.CustomSections = removeByID(doc.CustomSections, id, func(c resume.CustomSection) string { return c.ID })
	})
}

func (s *Session) ReorderCustomSections(from, to int) {
	s.mutate(func(doc *resume.Document) {
		doc.CustomSections = reorder(doc.CustomSections, from, to)
	})
}

// --- skills ---

// AddTechnicalGroup appends a named technical group and returns its id.
func (s *Session) AddTechnicalGroup(name string, skills []string) string {
	id := resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.Skills.TechnicalGroups = append(doc.Skills.TechnicalGroups, resume.SkillGroup{
			ID: id, Name: name, Skills: append([]string{}, skills...),
		})
	})
	return id
}

// UpdateTechnicalGroup replaces the header and tags of a group.
func (s *Session) UpdateTechnicalGroup(id, name string, skills []string) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.Skills.TechnicalGroups {
			if doc.Skills.TechnicalGroups[i].ID == id {
				doc.Skills.TechnicalGroups[i].Name = name
				doc.Skills.TechnicalGroups[i].Skills = append([]string{}, skills...)
				return
			}
		}
	})
}

// RemoveTechnicalGroup deletes a group.
func (s *Session) RemoveTechnicalGroup(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.Skills.TechnicalGroups = removeByID(doc.Skills.TechnicalGroups, id,
			func(g resume.SkillGroup) string { return g.ID })
	})
}

// SetSoftSkills replaces the flat soft-skill tag list.
func (s *Session) SetSoftSkills(skills []string) {
	s.mutate(func(doc *resume.Document) {
		doc.Skills.Soft = append([]string{}, skills...)
	})
}

// SetToolSkills replaces the flat tool tag list.
func (s *Session) SetToolSkills(tools []string) {
	s.mutate(func(doc *resume.Document) {
		doc.Skills.Tools = append([]string{}, tools...)
	})
}

// AddCustomGroup appends a user-defined skill group and returns its id.
func (s *Session) AddCustomGroup(name string, skills []string) string {
	id := resume.NewItemID()
	s.mutate(func(doc *resume.Document) {
		doc.Skills.CustomGroups = append(doc.Skills.CustomGroups, resume.SkillGroup{
			ID: id, Name: name, Skills: append([]string{}, skills...),
		})
	})
	return id
}

// UpdateCustomGroup replaces the header and tags of a user-defined group.
func (s *Session) UpdateCustomGroup(id, name string, skills []string) {
	s.mutate(func(doc *resume.Document) {
		for i := range doc.Skills.CustomGroups {
			if doc.Skills.CustomGroups[i].ID == id {
				doc.Skills.CustomGroups[i].Name = name
				doc.Skills.CustomGroups[i].Skills = append([]string{}, skills...)
				return
			}
		}
	})
}

// RemoveCustomGroup deletes a user-defined group.
func (s *Session) RemoveCustomGroup(id string) {
	s.mutate(func(doc *resume.Document) {
		doc.Skills.CustomGroups = removeByID(doc.Skills.CustomGroups, id,
			func(g resume.SkillGroup) string { return g.ID })
	})
}

// SetCustomGroupsTitle renames the user-defined skill section.
func (s *Session) SetCustomGroupsTitle(title string) {
	s.mutate(func(doc *resume.Document) {
		doc.Skills.CustomGroupsTitle = title
	})
}

// removeByID filters out the item whose id matches. Missing ids are a
// silent no-op.
func removeByID[T any](items []T, id string, getID func(T) string) []T {
	for i := range items {
		if getID(items[i]) == id {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

// reorder performs a drag-to-reorder: remove at from, reinsert at to.
// Out-of-range indices leave the list unchanged. from == to is also
// unchanged, but the caller still snapshots history for it: from the user's
// perspective a drag occurred even when the result is identical.
func reorder[T any](items []T, from, to int) []T {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		return items
	}
	item := items[from]
	rest := append(append([]T{}, items[:from]...), items[from+1:]...)
	out := append(append(append([]T{}, rest[:to]...), item), rest[to:]...)
	return out
}
