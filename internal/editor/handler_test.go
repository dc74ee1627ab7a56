package editor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/resume"
	"resume-studio/internal/schema"
)

type stubDrafts struct {
	records map[string]schema.Record
	savedAt time.Time
}

func newStubDrafts() *stubDrafts {
	return &stubDrafts{
		records: make(map[string]schema.Record),
		savedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (s *stubDrafts) Load(_ context.Context, draftID string) (schema.Migrated, error) {
	rec, ok := s.records[draftID]
	if !ok {
		return schema.Migrated{}, ErrDraftNotFound
	}
	raw, _ := json.Marshal(rec)
	return schema.Migrate(raw), nil
}

func (s *stubDrafts) Save(_ context.Context, record schema.Record) (time.Time, error) {
	s.records[record.DraftID] = record
	return s.savedAt, nil
}

type stubScorer struct{}

func (stubScorer) Score(resume.Document) (int, resume.DetailedATSScore) {
	return 77, resume.DefaultDetailedATSScore()
}

func newHandlerRouter(t *testing.T) (*gin.Engine, *stubDrafts) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	drafts := newStubDrafts()
	h := NewHandler(NewRegistry(), drafts, stubScorer{})
	r := gin.New()
	h.RegisterRoutes(r.Group(""))
	return r, drafts
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, State) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var st State
	if resp.Code < 300 && resp.Body.Len() > 0 {
		if err := json.Unmarshal(resp.Body.Bytes(), &st); err != nil {
			t.Fatalf("decode state: %v, body = %s", err, resp.Body.String())
		}
	}
	return resp, st
}

func TestHandlerCreateBlankSession(t *testing.T) {
	r, _ := newHandlerRouter(t)

	resp, st := doJSON(t, r, http.MethodPost, "/sessions", "")
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if st.SessionID == "" || st.DraftID == "" {
		t.Fatalf("missing ids in state: %+v", st)
	}
	if st.DraftName != "Untitled Resume" {
		t.Fatalf("draft name = %q", st.DraftName)
	}
	if st.CanUndo || st.CanRedo || st.IsDirty {
		t.Fatalf("new session should be pristine: %+v", st)
	}
}

func TestHandlerCreateFromUnknownDraft(t *testing.T) {
	r, _ := newHandlerRouter(t)

	resp, _ := doJSON(t, r, http.MethodPost, "/sessions", `{"draftId":"nope"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status = %d", resp.Code)
	}
}

func TestHandlerCommandUndoRedoRoundTrip(t *testing.T) {
	r, _ := newHandlerRouter(t)

	_, st := doJSON(t, r, http.MethodPost, "/sessions", "")
	base := "/sessions/" + st.SessionID

	resp, st := doJSON(t, r, http.MethodPost, base+"/commands",
		`{"op":"updateContact","payload":{"name":"Ada Lovelace","email":"ada@example.com"}}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("command status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if st.Document.Name != "Ada Lovelace" {
		t.Fatalf("full name = %q", st.Document.Name)
	}
	if !st.CanUndo || !st.IsDirty {
		t.Fatalf("expected undoable dirty state: %+v", st)
	}

	_, st = doJSON(t, r, http.MethodPost, base+"/undo", "")
	if st.Document.Name != "" {
		t.Fatalf("undo kept name %q", st.Document.Name)
	}
	if !st.CanRedo {
		t.Fatal("expected redo available after undo")
	}

	_, st = doJSON(t, r, http.MethodPost, base+"/redo", "")
	if st.Document.Name != "Ada Lovelace" {
		t.Fatalf("redo restored %q", st.Document.Name)
	}
}

func TestHandlerCommandUnknownOp(t *testing.T) {
	r, _ := newHandlerRouter(t)

	_, st := doJSON(t, r, http.MethodPost, "/sessions", "")
	resp, _ := doJSON(t, r, http.MethodPost, "/sessions/"+st.SessionID+"/commands",
		`{"op":"explode","payload":{}}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "validation_error") {
		t.Fatalf("body = %s", resp.Body.String())
	}
}

func TestHandlerSavePersistsRecord(t *testing.T) {
	r, drafts := newHandlerRouter(t)

	_, st := doJSON(t, r, http.MethodPost, "/sessions", "")
	base := "/sessions/" + st.SessionID

	doJSON(t, r, http.MethodPost, base+"/commands",
		`{"op":"setSummary","payload":{"summary":"Backend engineer."}}`)

	resp, st := doJSON(t, r, http.MethodPost, base+"/save", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("save status = %d", resp.Code)
	}
	if st.IsDirty {
		t.Fatal("save should clear dirty")
	}
	if st.LastSaved == nil || !st.LastSaved.Equal(drafts.savedAt) {
		t.Fatalf("last saved = %v", st.LastSaved)
	}

	rec, ok := drafts.records[st.DraftID]
	if !ok {
		t.Fatal("record not persisted")
	}
	if rec.Content.Summary == nil || *rec.Content.Summary != "Backend engineer." {
		t.Fatalf("persisted summary = %v", rec.Content.Summary)
	}
}

func TestHandlerCreateFromSavedDraft(t *testing.T) {
	r, _ := newHandlerRouter(t)

	_, st := doJSON(t, r, http.MethodPost, "/sessions", "")
	base := "/sessions/" + st.SessionID
	doJSON(t, r, http.MethodPost, base+"/commands",
		`{"op":"updateContact","payload":{"name":"Grace Hopper"}}`)
	doJSON(t, r, http.MethodPost, base+"/save", "")

	resp, st2 := doJSON(t, r, http.MethodPost, "/sessions", `{"draftId":"`+st.DraftID+`"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", resp.Code, resp.Body.String())
	}
	if st2.Document.Name != "Grace Hopper" {
		t.Fatalf("reloaded name = %q", st2.Document.Name)
	}
	if st2.CanUndo {
		t.Fatal("reloaded session should start at a fresh baseline")
	}
}

func TestHandlerATSScoreEndpoint(t *testing.T) {
	r, _ := newHandlerRouter(t)

	_, st := doJSON(t, r, http.MethodPost, "/sessions", "")
	resp, st := doJSON(t, r, http.MethodPost, "/sessions/"+st.SessionID+"/ats-score", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("status = %d", resp.Code)
	}
	if st.Document.ATSScore == nil || *st.Document.ATSScore != 77 {
		t.Fatalf("ats score = %v", st.Document.ATSScore)
	}
}

func TestHandlerCloseRemovesSession(t *testing.T) {
	r, _ := newHandlerRouter(t)

	_, st := doJSON(t, r, http.MethodPost, "/sessions", "")
	base := "/sessions/" + st.SessionID

	resp, _ := doJSON(t, r, http.MethodDelete, base, "")
	if resp.Code != http.StatusNoContent {
		t.Fatalf("close status = %d", resp.Code)
	}
	resp, _ = doJSON(t, r, http.MethodGet, base, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("status after close = %d", resp.Code)
	}
}
