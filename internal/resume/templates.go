package resume

// Current template identifiers. Template renderers are external; the engine
// only validates ids and falls back to the default.
const DefaultTemplateID = "onyx"

var knownTemplateIDs = map[string]bool{
	"onyx":      true,
	"azurill":   true,
	"chikorita": true,
	"ditto":     true,
	"gengar":    true,
	"rhyhorn":   true,
}

// KnownTemplateID reports whether id names a current template.
func KnownTemplateID(id string) bool { return knownTemplateIDs[id] }

// TemplateIDs returns the current template ids in a stable order.
func TemplateIDs() []string {
	return []string{"onyx", "azurill", "chikorita", "ditto", "gengar", "rhyhorn"}
}
