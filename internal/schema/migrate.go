package schema

import (
	"github.com/google/uuid"

	"resume-studio/internal/resume"
	"resume-studio/internal/shared/util"
)

// Migrated is the result of migrating one persisted draft record. It is the
// only way a resume.Document is ever produced from raw bytes.
type Migrated struct {
	DraftID     string
	DraftName   string
	Document    resume.Document
	Theme       resume.ThemeSettings
	Share       resume.ShareSettings
	DetailedATS resume.DetailedATSScore
}

const defaultDraftName = "Untitled Resume"

// Migrate upgrades a persisted draft record of unknown vintage to the
// current shape. It never fails: any field it cannot interpret is replaced
// by its default. Re-running on already-current data is a no-op.
func Migrate(raw []byte) Migrated {
	record := parseObject(raw)

	content, _ := asObject(record["content"])
	if content == nil {
		content = map[string]any{}
	}

	// The record-level template id wins over one embedded in content; both
	// go through the retired-id remap.
	templateID := stringField(record, "templateId", "")
	if templateID == "" {
		templateID = stringField(content, "templateId", "")
	}
	templateID = migrateTemplateID(templateID)

	draftID := stringField(record, "draftId", "")
	if draftID == "" {
		draftID = uuid.NewString()
	}

	theme := resume.DefaultTheme()
	if m, ok := asObject(record["themeSettings"]); ok {
		theme = migrateTheme(m)
	}

	share := resume.DefaultShareSettings()
	if m, ok := asObject(record["shareSettings"]); ok {
		share = migrateShare(m)
	}
	// A public draft always has a slug; old records enabled sharing before
	// slugs existed.
	if share.Public && share.Slug == "" {
		share.Slug = util.ShareSlug(draftID)
	}

	detailed := resume.DefaultDetailedATSScore()
	if m, ok := asObject(record["detailedAtsScore"]); ok {
		detailed = migrateDetailedATS(m)
	}

	return Migrated{
		DraftID:     draftID,
		DraftName:   stringField(record, "draftName", defaultDraftName),
		Document:    MigrateDocument(content, templateID),
		Theme:       theme,
		Share:       share,
		DetailedATS: detailed,
	}
}

// MigrateDocument upgrades the document portion of a persisted record.
// templateID must already be resolved to a current identifier.
func MigrateDocument(content map[string]any, templateID string) resume.Document {
	doc := resume.NewDocument()
	doc.TemplateID = templateID

	doc.Name = stringField(content, "name", "")
	doc.Email = stringField(content, "email", "")
	doc.Phone = stringField(content, "phone", "")
	doc.Location = stringField(content, "location", "")
	doc.LinkedIn = stringField(content, "linkedin", "")
	doc.GitHub = stringField(content, "github", "")
	doc.Website = stringField(content, "website", "")

	if s, ok := asString(content["summary"]); ok {
		doc.Summary = &s
	}

	doc.CustomLinks = migrateCustomLinks(content["customLinks"])
	doc.Experience = migrateExperience(content["experience"])
	doc.Education = migrateEducation(content["education"])
	doc.Projects = migrateProjects(content["projects"])
	doc.Certifications = migrateCertifications(content["certifications"])
	doc.Awards = migrateAwards(content["awards"])
	doc.Languages = migrateLanguages(content["languages"])
	doc.CustomSections = migrateCustomSections(content["customSections"])
	doc.Skills = migrateSkills(content["skills"])
	doc.SectionOrder = CanonicalizeSectionOrder(sectionKeys(content["sectionOrder"]))
	doc.ATSScore = intPointer(content["atsScore"])

	return doc
}

// migrateSkills accepts both the legacy flat-list shape and the current
// grouped shape. A flat list is wrapped into a single synthetic group with
// the default header.
func migrateSkills(v any) resume.SkillsSection {
	skills := resume.SkillsSection{
		TechnicalGroups:   []resume.SkillGroup{},
		Soft:              []string{},
		Tools:             []string{},
		CustomGroups:      []resume.SkillGroup{},
		CustomGroupsTitle: resume.DefaultCustomGroupsTitle,
	}
	m, ok := asObject(v)
	if !ok {
		return skills
	}

	switch {
	case m["technicalGroups"] != nil:
		skills.TechnicalGroups = migrateSkillGroups(m["technicalGroups"])
	case isStringArray(m["technical"]):
		if flat := stringList(m["technical"]); len(flat) > 0 {
			skills.TechnicalGroups = []resume.SkillGroup{{
				ID:     resume.NewItemID(),
				Name:   resume.DefaultTechnicalGroupName,
				Skills: flat,
			}}
		}
	}

	skills.Soft = stringList(m["soft"])
	skills.Tools = stringList(m["tools"])
	skills.CustomGroupsTitle = stringField(m, "customGroupsTitle", resume.DefaultCustomGroupsTitle)

	switch {
	case m["customGroups"] != nil:
		skills.CustomGroups = migrateSkillGroups(m["customGroups"])
	case isStringArray(m["custom"]):
		if flat := stringList(m["custom"]); len(flat) > 0 {
			skills.CustomGroups = []resume.SkillGroup{{
				ID:     resume.NewItemID(),
				Name:   skills.CustomGroupsTitle,
				Skills: flat,
			}}
		}
	}

	return skills
}

func migrateSkillGroups(v any) []resume.SkillGroup {
	groups := []resume.SkillGroup{}
	for _, m := range objectList(v) {
		groups = append(groups, resume.SkillGroup{
			ID:     itemID(m),
			Name:   stringField(m, "name", ""),
			Skills: stringList(m["skills"]),
		})
	}
	return groups
}

func sectionKeys(v any) []resume.SectionKey {
	raw := stringList(v)
	keys := make([]resume.SectionKey, 0, len(raw))
	for _, s := range raw {
		keys = append(keys, resume.SectionKey(s))
	}
	return keys
}

// CanonicalizeSectionOrder makes order an exact permutation of the canonical
// enumeration: unknown keys are dropped, duplicates removed, and each missing
// key is inserted immediately after its closest canonical predecessor that is
// present (at the front when none is), preserving all other relative order.
// In particular softSkills lands right after skills and customSkills right
// after softSkills.
func CanonicalizeSectionOrder(order []resume.SectionKey) []resume.SectionKey {
	seen := map[resume.SectionKey]bool{}
	out := make([]resume.SectionKey, 0, resume.SectionCount())
	for _, key := range order {
		if !resume.KnownSectionKey(key) || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}

	canonical := resume.DefaultSectionOrder()
	for ci, key := range canonical {
		if seen[key] {
			continue
		}
		insertAt := 0
		for pi := ci - 1; pi >= 0; pi-- {
			if pos := indexOf(out, canonical[pi]); pos >= 0 {
				insertAt = pos + 1
				break
			}
		}
		out = append(out, "")
		copy(out[insertAt+1:], out[insertAt:])
		out[insertAt] = key
		seen[key] = true
	}
	return out
}

func indexOf(keys []resume.SectionKey, key resume.SectionKey) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return -1
}

func migrateCustomLinks(v any) []resume.CustomLink {
	links := []resume.CustomLink{}
	for _, m := range objectList(v) {
		links = append(links, resume.CustomLink{
			ID:    itemID(m),
			Label: stringField(m, "label", ""),
			URL:   stringField(m, "url", ""),
		})
	}
	return links
}

func migrateExperience(v any) []resume.WorkExperience {
	items := []resume.WorkExperience{}
	for _, m := range objectList(v) {
		items = append(items, resume.WorkExperience{
			ID:           itemID(m),
			Company:      stringField(m, "company", ""),
			Position:     stringField(m, "position", ""),
			Location:     stringField(m, "location", ""),
			StartDate:    stringField(m, "startDate", ""),
			EndDate:      stringField(m, "endDate", ""),
			Current:      boolField(m, "current", false),
			Description:  stringField(m, "description", ""),
			Achievements: stringList(m["achievements"]),
		})
	}
	return items
}

func migrateEducation(v any) []resume.Education {
	items := []resume.Education{}
	for _, m := range objectList(v) {
		items = append(items, resume.Education{
			ID:        itemID(m),
			School:    stringField(m, "school", ""),
			Degree:    stringField(m, "degree", ""),
			Field:     stringField(m, "field", ""),
			Location:  stringField(m, "location", ""),
			StartDate: stringField(m, "startDate", ""),
			EndDate:   stringField(m, "endDate", ""),
			GPA:       stringField(m, "gpa", ""),
		})
	}
	return items
}

func migrateProjects(v any) []resume.Project {
	items := []resume.Project{}
	for _, m := range objectList(v) {
		items = append(items, resume.Project{
			ID:           itemID(m),
			Name:         stringField(m, "name", ""),
			Description:  stringField(m, "description", ""),
			URL:          stringField(m, "url", ""),
			Technologies: stringList(m["technologies"]),
			Highlights:   stringList(m["highlights"]),
		})
	}
	return items
}

func migrateCertifications(v any) []resume.Certification {
	items := []resume.Certification{}
	for _, m := range objectList(v) {
		items = append(items, resume.Certification{
			ID:     itemID(m),
			Name:   stringField(m, "name", ""),
			Issuer: stringField(m, "issuer", ""),
			Date:   stringField(m, "date", ""),
			URL:    stringField(m, "url", ""),
		})
	}
	return items
}

func migrateAwards(v any) []resume.Award {
	items := []resume.Award{}
	for _, m := range objectList(v) {
		items = append(items, resume.Award{
			ID:          itemID(m),
			Title:       stringField(m, "title", ""),
			Issuer:      stringField(m, "issuer", ""),
			Date:        stringField(m, "date", ""),
			Description: stringField(m, "description", ""),
		})
	}
	return items
}

func migrateLanguages(v any) []resume.LanguageSkill {
	items := []resume.LanguageSkill{}
	for _, m := range objectList(v) {
		items = append(items, resume.LanguageSkill{
			ID:    itemID(m),
			Name:  stringField(m, "name", ""),
			Level: stringField(m, "level", ""),
		})
	}
	return items
}

func migrateCustomSections(v any) []resume.CustomSection {
	sections := []resume.CustomSection{}
	for _, m := range objectList(v) {
		items := []resume.CustomItem{}
		for _, im := range objectList(m["items"]) {
			items = append(items, resume.CustomItem{
				ID:          itemID(im),
				Title:       stringField(im, "title", ""),
				Subtitle:    stringField(im, "subtitle", ""),
				Date:        stringField(im, "date", ""),
				Description: stringField(im, "description", ""),
			})
		}
		sections = append(sections, resume.CustomSection{
			ID:    itemID(m),
			Title: stringField(m, "title", ""),
			Items: items,
		})
	}
	return sections
}

func migrateTheme(m map[string]any) resume.ThemeSettings {
	theme := resume.DefaultTheme()
	if s, ok := asString(m["primaryColor"]); ok && s != "" {
		theme.PrimaryColor = s
	}
	if s, ok := asString(m["fontFamily"]); ok && s != "" {
		theme.FontFamily = s
	}
	switch stringField(m, "fontSize", "") {
	case resume.FontSizeSmall, resume.FontSizeMedium, resume.FontSizeLarge:
		theme.FontSize = stringField(m, "fontSize", "")
	}
	switch stringField(m, "spacing", "") {
	case resume.SpacingCompact, resume.SpacingNormal, resume.SpacingSpacious:
		theme.Spacing = stringField(m, "spacing", "")
	}
	switch stringField(m, "pageSize", "") {
	case resume.PageSizeA4, resume.PageSizeLetter:
		theme.PageSize = stringField(m, "pageSize", "")
	}
	return theme
}

func migrateShare(m map[string]any) resume.ShareSettings {
	return resume.ShareSettings{
		Public: boolField(m, "public", false),
		Slug:   stringField(m, "slug", ""),
	}
}

func migrateDetailedATS(m map[string]any) resume.DetailedATSScore {
	detailed := resume.DefaultDetailedATSScore()
	if p := intPointer(m["overall"]); p != nil {
		detailed.Overall = *p
	}
	if sections, ok := asObject(m["sections"]); ok {
		for k, v := range sections {
			if p := intPointer(v); p != nil {
				detailed.Sections[k] = *p
			}
		}
	}
	return detailed
}

// itemID keeps an existing id and generates one only when absent, so
// re-migrating already-current data stays a no-op.
func itemID(m map[string]any) string {
	if id := stringField(m, "id", ""); id != "" {
		return id
	}
	return resume.NewItemID()
}
