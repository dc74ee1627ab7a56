package editor

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"resume-studio/internal/resume"
	"resume-studio/internal/schema"
)

// Session owns the canonical document for one editing session. Exactly one
// canonical instance exists per session; all operations serialize on the
// session mutex, the Go rendition of the source's single-threaded event
// loop. Content mutations snapshot into history; scalar setters do not.
type Session struct {
	mu sync.Mutex

	id        string
	draftID   string
	draftName string

	doc         resume.Document
	theme       resume.ThemeSettings
	share       resume.ShareSettings
	detailedATS resume.DetailedATSScore
	history     *History

	// Transient UI state, never persisted.
	activeSection resume.SectionKey
	zoom          float64
	sidebarOpen   bool

	dirty     bool
	lastSaved time.Time
}

// NewSession creates a session around a blank document.
func NewSession() *Session {
	doc := resume.NewDocument()
	return &Session{
		id:            uuid.NewString(),
		draftID:       uuid.NewString(),
		draftName:     "Untitled Resume",
		doc:           doc,
		theme:         resume.DefaultTheme(),
		share:         resume.DefaultShareSettings(),
		detailedATS:   resume.DefaultDetailedATSScore(),
		history:       NewHistory(doc),
		activeSection: resume.SectionSummary,
		zoom:          1,
	}
}

// NewSessionFromDraft creates a session around a migrated draft.
func NewSessionFromDraft(m schema.Migrated) *Session {
	s := NewSession()
	s.draftID = m.DraftID
	s.draftName = m.DraftName
	s.doc = m.Document
	s.theme = m.Theme
	s.share = m.Share
	s.detailedATS = m.DetailedATS
	s.history = NewHistory(m.Document)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// DraftID returns the backing draft identifier.
func (s *Session) DraftID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftID
}

// Document returns a deep copy of the canonical document.
func (s *Session) Document() resume.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resume.CloneDocument(s.doc)
}

// Theme returns the current theme settings.
func (s *Session) Theme() resume.ThemeSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Record returns the persisted layout for the current state. History and UI
// state are excluded deliberately.
func (s *Session) Record() schema.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return schema.Record{
		DraftID:          s.draftID,
		DraftName:        s.draftName,
		Content:          resume.CloneDocument(s.doc),
		TemplateID:       s.doc.TemplateID,
		ThemeSettings:    s.theme,
		ShareSettings:    s.share,
		DetailedATSScore: s.detailedATS,
	}
}

// mutate runs a content mutation: it applies fn to the canonical document,
// snapshots the result into history, and marks the session dirty. The
// initial document is the history baseline, so undo after any mutation
// restores the exact pre-mutation state.
func (s *Session) mutate(fn func(doc *resume.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.doc)
	s.history.Push(s.doc)
	s.dirty = true
}

// PushHistory snapshots the current document without mutating it. Exposed
// for composite operations that apply several scalar changes as one
// undoable step.
func (s *Session) PushHistory() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.Push(s.doc)
}

// Undo replaces the canonical document with the previous snapshot. No-op at
// the baseline.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.doc = doc
	s.dirty = true
	return true
}

// Redo replaces the canonical document with the next snapshot. No-op at the
// end of history.
func (s *Session) Redo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.doc = doc
	s.dirty = true
	return true
}

// CanUndo reports whether undo would change state.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanUndo()
}

// CanRedo reports whether redo would change state.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.CanRedo()
}

// HistoryLen returns the number of stored snapshots.
func (s *Session) HistoryLen() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Len()
}

// IsDirty reports whether unsaved changes exist.
func (s *Session) IsDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// LastSaved returns the last save timestamp (zero if never saved).
func (s *Session) LastSaved() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// MarkSaved clears the dirty flag and stamps the save time. Called by the
// persistence layer after a successful whole-record write.
func (s *Session) MarkSaved(at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirty = false
	s.lastSaved = at
}

// Reset discards the current document for an explicit "new résumé" action.
// The history restarts from the blank baseline.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = resume.NewDocument()
	s.theme = resume.DefaultTheme()
	s.share = resume.DefaultShareSettings()
	s.detailedATS = resume.DefaultDetailedATSScore()
	s.history = NewHistory(s.doc)
	s.draftID = uuid.NewString()
	s.draftName = "Untitled Resume"
	s.dirty = false
	s.lastSaved = time.Time{}
}
