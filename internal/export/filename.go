package export

import "resume-studio/internal/shared/util"

const defaultBaseName = "Resume"

// FileName derives the download name for an export from the document's
// display name: sanitized base plus a mode suffix.
func FileName(docName string, mode Mode) string {
	base := util.SanitizeFileName(docName, defaultBaseName)
	switch mode {
	case ModeVisual:
		return base + "_Visual.pdf"
	default:
		return base + "_ATS.pdf"
	}
}
