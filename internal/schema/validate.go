package schema

import (
	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed draft.schema.json
var draftSchema string

// ValidateRaw checks raw persisted bytes against the current draft schema
// and returns human-readable findings. It is advisory only: callers log the
// findings and proceed to Migrate regardless, because a persisted-but-odd
// draft must never block the user from re-entering the editor.
func ValidateRaw(raw []byte) []string {
	schemaLoader := gojsonschema.NewStringLoader(draftSchema)
	docLoader := gojsonschema.NewBytesLoader(raw)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return []string{err.Error()}
	}
	if res.Valid() {
		return nil
	}
	findings := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		findings = append(findings, e.String())
	}
	return findings
}
