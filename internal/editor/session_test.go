package editor

import (
	"reflect"
	"strconv"
	"testing"

	"resume-studio/internal/resume"
)

func TestUndoRestoresPreMutationDocument(t *testing.T) {
	sess := NewSession()
	sess.UpdateContact(ContactInfo{Name: "Ada"})
	before := sess.Document()

	sess.AddExperience(resume.WorkExperience{Company: "Acme"})
	after := sess.Document()

	if !sess.Undo() {
		t.Fatalf("expected undo to apply")
	}
	if !reflect.DeepEqual(sess.Document(), before) {
		t.Fatalf("undo did not restore pre-mutation document")
	}

	if !sess.Redo() {
		t.Fatalf("expected redo to apply")
	}
	if !reflect.DeepEqual(sess.Document(), after) {
		t.Fatalf("redo did not restore post-mutation document")
	}
}

func TestUndoNoOpAtBaseline(t *testing.T) {
	sess := NewSession()
	if sess.CanUndo() {
		t.Fatalf("fresh session should not allow undo")
	}
	if sess.Undo() {
		t.Fatalf("undo at baseline should be a no-op")
	}

	sess.UpdateContact(ContactInfo{Name: "Ada"})
	if !sess.Undo() {
		t.Fatalf("expected one undo after one mutation")
	}
	if sess.Undo() {
		t.Fatalf("second undo should hit the baseline")
	}
	if sess.Document().Name != "" {
		t.Fatalf("baseline document should be blank, got %q", sess.Document().Name)
	}
}

func TestRedoNoOpAtEnd(t *testing.T) {
	sess := NewSession()
	if sess.Redo() {
		t.Fatalf("redo with no history should be a no-op")
	}
	sess.UpdateContact(ContactInfo{Name: "Ada"})
	if sess.Redo() {
		t.Fatalf("redo at end of history should be a no-op")
	}
}

func TestMutationTruncatesRedoTail(t *testing.T) {
	sess := NewSession()
	sess.UpdateContact(ContactInfo{Name: "Ada"})
	sess.UpdateContact(ContactInfo{Name: "Grace"})
	sess.Undo()

	sess.UpdateContact(ContactInfo{Name: "Katherine"})
	if sess.CanRedo() {
		t.Fatalf("new mutation should truncate the redo tail")
	}
	if sess.Document().Name != "Katherine" {
		t.Fatalf("unexpected document name %q", sess.Document().Name)
	}
}

func TestHistoryBoundFIFO(t *testing.T) {
	sess := NewSession()
	for i := 0; i < HistoryCap+20; i++ {
		sess.UpdateContact(ContactInfo{Name: "v" + strconv.Itoa(i)})
	}

	if got := sess.HistoryLen(); got > HistoryCap {
		t.Fatalf("history length %d exceeds cap %d", got, HistoryCap)
	}

	// Undo to the oldest retained snapshot: with FIFO eviction that is the
	// state after mutation 20, not the baseline.
	for sess.CanUndo() {
		sess.Undo()
	}
	if got := sess.Document().Name; got != "v20" {
		t.Fatalf("expected oldest retained snapshot v20, got %q", got)
	}
}

func TestNoOpReorderStillHistoricized(t *testing.T) {
	sess := NewSession()
	sess.AddExperience(resume.WorkExperience{Company: "A"})
	sess.AddExperience(resume.WorkExperience{Company: "B"})
	before := sess.Document()
	lenBefore := sess.HistoryLen()

	sess.ReorderExperience(1, 1)

	if got := sess.HistoryLen(); got != lenBefore+1 {
		t.Fatalf("expected history length %d, got %d", lenBefore+1, got)
	}
	if !reflect.DeepEqual(sess.Document(), before) {
		t.Fatalf("no-op reorder changed list contents")
	}
}

func TestReorderMovesItem(t *testing.T) {
	sess := NewSession()
	sess.AddExperience(resume.WorkExperience{Company: "A"})
	sess.AddExperience(resume.WorkExperience{Company: "B"})
	sess.AddExperience(resume.WorkExperience{Company: "C"})

	sess.ReorderExperience(0, 2)

	var got []string
	for _, e := range sess.Document().Experience {
		got = append(got, e.Company)
	}
	want := []string{"B", "C", "A"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestUpdateMissingIDIsSilentNoOp(t *testing.T) {
	sess := NewSession()
	sess.AddExperience(resume.WorkExperience{Company: "Acme"})
	before := sess.Document()
	lenBefore := sess.HistoryLen()

	sess.UpdateExperience("no-such-id", resume.WorkExperience{Company: "Ghost"})
	sess.RemoveExperience("no-such-id")

	if !reflect.DeepEqual(sess.Document(), before) {
		t.Fatalf("missing-id mutation changed the document")
	}
	// Still historicized: the mutation happened from the caller's view.
	if got := sess.HistoryLen(); got != lenBefore+2 {
		t.Fatalf("expected history length %d, got %d", lenBefore+2, got)
	}
}

func TestUpdatePreservesItemID(t *testing.T) {
	sess := NewSession()
	id := sess.AddExperience(resume.WorkExperience{Company: "Acme"})

	sess.UpdateExperience(id, resume.WorkExperience{ID: "attacker-chosen", Company: "Updated"})

	exp := sess.Document().Experience
	if len(exp) != 1 || exp[0].ID != id || exp[0].Company != "Updated" {
		t.Fatalf("update did not preserve identifier: %+v", exp)
	}
}

func TestScalarSettersSkipHistory(t *testing.T) {
	sess := NewSession()
	lenBefore := sess.HistoryLen()

	sess.SetZoom(1.5)
	sess.SetTemplate("chikorita")
	sess.SetDraftName("My Resume")
	sess.SetTheme(resume.ThemeSettings{PrimaryColor: "#000", FontFamily: "Inter",
		FontSize: resume.FontSizeSmall, Spacing: resume.SpacingCompact, PageSize: resume.PageSizeA4})
	sess.SetActiveSection(resume.SectionExperience)

	if got := sess.HistoryLen(); got != lenBefore {
		t.Fatalf("scalar setters pushed history: %d -> %d", lenBefore, got)
	}
	if !sess.IsDirty() {
		t.Fatalf("scalar setters should mark the session dirty")
	}
	if sess.Document().TemplateID != "chikorita" {
		t.Fatalf("template not applied")
	}
}

func TestSetTemplateRejectsUnknownID(t *testing.T) {
	sess := NewSession()
	sess.SetTemplate("holographic")
	if got := sess.Document().TemplateID; got != resume.DefaultTemplateID {
		t.Fatalf("unknown template applied: %q", got)
	}
}

func TestUndoSnapshotsAreIsolated(t *testing.T) {
	sess := NewSession()
	sess.AddExperience(resume.WorkExperience{Company: "Acme", Achievements: []string{"Shipped"}})
	id := sess.Document().Experience[0].ID

	// Mutate after snapshotting, then undo: the earlier snapshot must not
	// have been affected by the in-place update.
	sess.UpdateExperience(id, resume.WorkExperience{Company: "Acme", Achievements: []string{"Changed"}})
	sess.Undo()

	if got := sess.Document().Experience[0].Achievements[0]; got != "Shipped" {
		t.Fatalf("snapshot corrupted by later mutation: %q", got)
	}
}

func TestSkillsMutations(t *testing.T) {
	sess := NewSession()
	gid := sess.AddTechnicalGroup("Backend", []string{"Go"})
	sess.UpdateTechnicalGroup(gid, "Backend", []string{"Go", "Postgres"})
	sess.SetSoftSkills([]string{"Communication"})
	sess.SetToolSkills([]string{"Docker"})
	sess.SetCustomGroupsTitle("Platforms")

	doc := sess.Document()
	if len(doc.Skills.TechnicalGroups) != 1 || len(doc.Skills.TechnicalGroups[0].Skills) != 2 {
		t.Fatalf("unexpected technical groups: %+v", doc.Skills.TechnicalGroups)
	}
	if doc.Skills.CustomGroupsTitle != "Platforms" {
		t.Fatalf("custom groups title not applied")
	}

	sess.RemoveTechnicalGroup(gid)
	if len(sess.Document().Skills.TechnicalGroups) != 0 {
		t.Fatalf("group not removed")
	}
}

func TestMarkSavedClearsDirty(t *testing.T) {
	sess := NewSession()
	sess.UpdateContact(ContactInfo{Name: "Ada"})
	if !sess.IsDirty() {
		t.Fatalf("mutation should mark dirty")
	}

	at := sess.LastSaved()
	if !at.IsZero() {
		t.Fatalf("expected zero lastSaved before first save")
	}

	sess.MarkSaved(at.Add(1))
	if sess.IsDirty() {
		t.Fatalf("MarkSaved should clear dirty")
	}
	if sess.LastSaved().IsZero() {
		t.Fatalf("MarkSaved should stamp lastSaved")
	}
}

func TestResetRestoresBlankState(t *testing.T) {
	sess := NewSession()
	sess.UpdateContact(ContactInfo{Name: "Ada"})
	oldDraftID := sess.DraftID()

	sess.Reset()

	if sess.Document().Name != "" {
		t.Fatalf("reset did not blank the document")
	}
	if sess.CanUndo() {
		t.Fatalf("reset should restart history")
	}
	if sess.DraftID() == oldDraftID {
		t.Fatalf("reset should allocate a new draft id")
	}
	if sess.IsDirty() {
		t.Fatalf("reset state should be clean")
	}
}
