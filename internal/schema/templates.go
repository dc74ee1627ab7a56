package schema

import "resume-studio/internal/resume"

// legacyTemplateIDs remaps the retired template naming scheme onto current
// identifiers. Anything not in this table and not a current id falls back to
// the default template.
var legacyTemplateIDs = map[string]string{
	"classic":       "onyx",
	"modern":        "azurill",
	"two-column":    "chikorita",
	"single-column": "rhyhorn",
	"minimal":       "ditto",
	"creative":      "gengar",
}

// migrateTemplateID resolves any persisted template id to a current one.
func migrateTemplateID(id string) string {
	if resume.KnownTemplateID(id) {
		return id
	}
	if current, ok := legacyTemplateIDs[id]; ok {
		return current
	}
	return resume.DefaultTemplateID
}
