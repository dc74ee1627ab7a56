package resume

// Explicit structural clones for every entity. History snapshots rely on
// these; a snapshot must never alias slices or pointers of the canonical
// document, or an in-place mutation would corrupt stored history.

// CloneDocument returns a deep copy of doc.
func CloneDocument(doc Document) Document {
	out := doc
	out.CustomLinks = cloneCustomLinks(doc.CustomLinks)
	out.Summary = cloneStringPtr(doc.Summary)
	out.Experience = cloneExperience(doc.Experience)
	out.Education = cloneEducation(doc.Education)
	out.Projects = cloneProjects(doc.Projects)
	out.Certifications = cloneCertifications(doc.Certifications)
	out.Awards = cloneAwards(doc.Awards)
	out.Languages = cloneLanguages(doc.Languages)
	out.CustomSections = cloneCustomSections(doc.CustomSections)
	out.Skills = CloneSkills(doc.Skills)
	out.SectionOrder = cloneSectionOrder(doc.SectionOrder)
	out.ATSScore = cloneIntPtr(doc.ATSScore)
	return out
}

// CloneSkills returns a deep copy of a skills section.
func CloneSkills(s SkillsSection) SkillsSection {
	return SkillsSection{
		TechnicalGroups:   CloneSkillGroups(s.TechnicalGroups),
		Soft:              cloneStrings(s.Soft),
		Tools:             cloneStrings(s.Tools),
		CustomGroups:      CloneSkillGroups(s.CustomGroups),
		CustomGroupsTitle: s.CustomGroupsTitle,
	}
}

// CloneSkillGroups returns a deep copy of a group list.
func CloneSkillGroups(groups []SkillGroup) []SkillGroup {
	if groups == nil {
		return nil
	}
	out := make([]SkillGroup, len(groups))
	for i, g := range groups {
		out[i] = g
		out[i].Skills = cloneStrings(g.Skills)
	}
	return out
}

func cloneCustomLinks(links []CustomLink) []CustomLink {
	if links == nil {
		return nil
	}
	out := make([]CustomLink, len(links))
	copy(out, links)
	return out
}

func cloneExperience(items []WorkExperience) []WorkExperience {
	if items == nil {
		return nil
	}
	out := make([]WorkExperience, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Achievements = cloneStrings(it.Achievements)
	}
	return out
}

func cloneEducation(items []Education) []Education {
	if items == nil {
		return nil
	}
	out := make([]Education, len(items))
	copy(out, items)
	return out
}

func cloneProjects(items []Project) []Project {
	if items == nil {
		return nil
	}
	out := make([]Project, len(items))
	for i, it := range items {
		out[i] = it
		out[i].Technologies = cloneStrings(it.Technologies)
		out[i].Highlights = cloneStrings(it.Highlights)
	}
	return out
}

func cloneCertifications(items []Certification) []Certification {
	if items == nil {
		return nil
	}
	out := make([]Certification, len(items))
	copy(out, items)
	return out
}

func cloneAwards(items []Award) []Award {
	if items == nil {
		return nil
	}
	out := make([]Award, len(items))
	copy(out, items)
	return out
}

func cloneLanguages(items []LanguageSkill) []LanguageSkill {
	if items == nil {
		return nil
	}
	out := make([]LanguageSkill, len(items))
	copy(out, items)
	return out
}

func cloneCustomSections(items []CustomSection) []CustomSection {
	if items == nil {
		return nil
	}
	out := make([]CustomSection, len(items))
	for i, it := range items {
		out[i] = it
		if it.Items != nil {
			out[i].Items = make([]CustomItem, len(it.Items))
			copy(out[i].Items, it.Items)
		}
	}
	return out
}

func cloneSectionOrder(order []SectionKey) []SectionKey {
	if order == nil {
		return nil
	}
	out := make([]SectionKey, len(order))
	copy(out, order)
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
