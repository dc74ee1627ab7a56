package schema

import (
	"encoding/json"

	"resume-studio/internal/resume"
)

// Record is the current persisted draft layout. History and transient UI
// state are never part of it.
type Record struct {
	DraftID          string                  `json:"draftId"`
	DraftName        string                  `json:"draftName"`
	Content          resume.Document         `json:"content"`
	TemplateID       string                  `json:"templateId"`
	ThemeSettings    resume.ThemeSettings    `json:"themeSettings"`
	ShareSettings    resume.ShareSettings    `json:"shareSettings"`
	DetailedATSScore resume.DetailedATSScore `json:"detailedAtsScore"`
}

// Record converts a migration result into the current persisted layout.
func (m Migrated) Record() Record {
	return Record{
		DraftID:          m.DraftID,
		DraftName:        m.DraftName,
		Content:          m.Document,
		TemplateID:       m.Document.TemplateID,
		ThemeSettings:    m.Theme,
		ShareSettings:    m.Share,
		DetailedATSScore: m.DetailedATS,
	}
}

// Encode serializes a record for storage. Whole-record overwrites are the
// only write shape, so this is the single marshalling point.
func (r Record) Encode() ([]byte, error) {
	return json.Marshal(r)
}
