package editor

import "resume-studio/internal/resume"

// Scalar setters apply immediately and are not content edits: they mark the
// session dirty but never push history.

// SetActiveSection records which section the editor has focused.
func (s *Session) SetActiveSection(key resume.SectionKey) {
	if !resume.KnownSectionKey(key) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSection = key
}

// ActiveSection returns the focused section key.
func (s *Session) ActiveSection() resume.SectionKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeSection
}

// SetZoom sets the preview zoom scale. Values outside (0, 4] are ignored.
func (s *Session) SetZoom(scale float64) {
	if scale <= 0 || scale > 4 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.zoom = scale
}

// Zoom returns the preview zoom scale.
func (s *Session) Zoom() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.zoom
}

// SetSidebarOpen toggles the editor sidebar.
func (s *Session) SetSidebarOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidebarOpen = open
}

// SetTemplate switches the active template. Unknown ids are ignored.
func (s *Session) SetTemplate(id string) {
	if !resume.KnownTemplateID(id) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.TemplateID = id
	s.dirty = true
}

// SetDraftName renames the draft.
func (s *Session) SetDraftName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draftName = name
	s.dirty = true
}

// SetTheme replaces the theme settings. Theme is independent of the
// document and outside history: undo restores document snapshots only, so a
// history entry for a theme edit could never be honored.
func (s *Session) SetTheme(theme resume.ThemeSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.dirty = true
}

// SetATSScore stores computed ATS metadata. Computed, not authored, so it
// is not a content edit.
func (s *Session) SetATSScore(overall int, detailed resume.DetailedATSScore) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.ATSScore = &overall
	s.detailedATS = detailed
	s.dirty = true
}
