package editor

import "resume-studio/internal/resume"

// HistoryCap bounds the undo depth. The oldest snapshots are dropped first.
const HistoryCap = 50

// History is a linear undo/redo sequence of full document snapshots plus a
// cursor. Entries at or before the cursor are reachable by undo, entries
// after it by redo. Snapshots are deep copies both on the way in and on the
// way out, so a later in-place mutation of the canonical document can never
// corrupt stored state.
type History struct {
	snapshots []resume.Document
	cursor    int
}

// NewHistory seeds the history with the initial document as the baseline
// entry. Undo never goes past the baseline.
func NewHistory(initial resume.Document) *History {
	return &History{
		snapshots: []resume.Document{resume.CloneDocument(initial)},
		cursor:    0,
	}
}

// Push records the current document, truncating any redo tail beyond the
// cursor and evicting the oldest entry when the cap is exceeded.
func (h *History) Push(doc resume.Document) {
	h.snapshots = append(h.snapshots[:h.cursor+1], resume.CloneDocument(doc))
	if len(h.snapshots) > HistoryCap {
		h.snapshots = h.snapshots[1:]
	}
	h.cursor = len(h.snapshots) - 1
}

// CanUndo reports whether an earlier snapshot exists.
func (h *History) CanUndo() bool { return h.cursor > 0 }

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool { return h.cursor < len(h.snapshots)-1 }

// Undo moves the cursor back and returns a deep copy of that snapshot.
// It is a no-op at the baseline.
func (h *History) Undo() (resume.Document, bool) {
	if !h.CanUndo() {
		return resume.Document{}, false
	}
	h.cursor--
	return resume.CloneDocument(h.snapshots[h.cursor]), true
}

// Redo moves the cursor forward and returns a deep copy of that snapshot.
// It is a no-op at the end.
func (h *History) Redo() (resume.Document, bool) {
	if !h.CanRedo() {
		return resume.Document{}, false
	}
	h.cursor++
	return resume.CloneDocument(h.snapshots[h.cursor]), true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Cursor returns the current cursor index, or -1 when the history is empty.
func (h *History) Cursor() int {
	if len(h.snapshots) == 0 {
		return -1
	}
	return h.cursor
}
