package editor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/resume"
	"resume-studio/internal/schema"
	"resume-studio/internal/shared/server/respond"
)

// DraftStore is the persistence boundary the editor needs: load raw drafts
// through the migrator and write whole-record overwrites.
type DraftStore interface {
	Load(ctx context.Context, draftID string) (schema.Migrated, error)
	Save(ctx context.Context, record schema.Record) (time.Time, error)
}

// ErrDraftNotFound must be returned by DraftStore.Load for unknown ids.
var ErrDraftNotFound = errors.New("draft not found")

// Scorer computes ATS metadata for a document.
type Scorer interface {
	Score(doc resume.Document) (int, resume.DetailedATSScore)
}

// Handler exposes editing sessions over HTTP.
type Handler struct {
	Sessions *Registry
	Drafts   DraftStore
	Scorer   Scorer
}

// NewHandler constructs a Handler.
func NewHandler(sessions *Registry, drafts DraftStore, scorer Scorer) *Handler {
	return &Handler{Sessions: sessions, Drafts: drafts, Scorer: scorer}
}

// RegisterRoutes attaches session routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sessions", h.create)
	rg.GET("/sessions/:id", h.get)
	rg.DELETE("/sessions/:id", h.close)
	rg.POST("/sessions/:id/commands", h.dispatch)
	rg.POST("/sessions/:id/undo", h.undo)
	rg.POST("/sessions/:id/redo", h.redo)
	rg.POST("/sessions/:id/save", h.save)
	rg.POST("/sessions/:id/reset", h.reset)
	rg.POST("/sessions/:id/ats-score", h.refreshATSScore)
}

// State is the session snapshot returned to editor clients.
type State struct {
	SessionID     string               `json:"sessionId"`
	DraftID       string               `json:"draftId"`
	DraftName     string               `json:"draftName"`
	Document      resume.Document      `json:"document"`
	Theme         resume.ThemeSettings `json:"theme"`
	ActiveSection resume.SectionKey    `json:"activeSection"`
	Zoom          float64              `json:"zoom"`
	SidebarOpen   bool                 `json:"sidebarOpen"`
	CanUndo       bool                 `json:"canUndo"`
	CanRedo       bool                 `json:"canRedo"`
	IsDirty       bool                 `json:"isDirty"`
	LastSaved     *time.Time           `json:"lastSaved"`
}

// State assembles a consistent snapshot under one lock.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		SessionID:     s.id,
		DraftID:       s.draftID,
		DraftName:     s.draftName,
		Document:      resume.CloneDocument(s.doc),
		Theme:         s.theme,
		ActiveSection: s.activeSection,
		Zoom:          s.zoom,
		SidebarOpen:   s.sidebarOpen,
		CanUndo:       s.history.CanUndo(),
		CanRedo:       s.history.CanRedo(),
		IsDirty:       s.dirty,
	}
	if !s.lastSaved.IsZero() {
		saved := s.lastSaved
		st.LastSaved = &saved
	}
	return st
}

type createRequest struct {
	DraftID string `json:"draftId"`
}

func (h *Handler) create(c *gin.Context) {
	// An absent or empty body means "new blank résumé".
	var req createRequest
	_ = c.ShouldBindJSON(&req)

	var sess *Session
	if req.DraftID != "" {
		migrated, err := h.Drafts.Load(c.Request.Context(), req.DraftID)
		if err != nil {
			if errors.Is(err, ErrDraftNotFound) {
				respond.Error(c, http.StatusNotFound, "not_found", "draft not found", nil)
				return
			}
			respond.Error(c, http.StatusInternalServerError, "load_failed", "failed to load draft", nil)
			return
		}
		sess = NewSessionFromDraft(migrated)
	} else {
		sess = NewSession()
	}

	h.Sessions.Add(sess)
	respond.JSON(c, http.StatusCreated, sess.State())
}

func (h *Handler) get(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	respond.OK(c, sess.State())
}

func (h *Handler) close(c *gin.Context) {
	h.Sessions.Remove(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) undo(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Undo()
	respond.OK(c, sess.State())
}

func (h *Handler) redo(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Redo()
	respond.OK(c, sess.State())
}

func (h *Handler) save(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	savedAt, err := h.Drafts.Save(c.Request.Context(), sess.Record())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "save_failed", "failed to save draft", nil)
		return
	}
	sess.MarkSaved(savedAt)
	respond.OK(c, sess.State())
}

func (h *Handler) reset(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	sess.Reset()
	respond.OK(c, sess.State())
}

func (h *Handler) refreshATSScore(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}
	overall, detailed := h.Scorer.Score(sess.Document())
	sess.SetATSScore(overall, detailed)
	respond.OK(c, sess.State())
}

type command struct {
	Op      string          `json:"op"`
	Payload json.RawMessage `json:"payload"`
}

type idPayload struct {
	ID string `json:"id"`
}

type reorderPayload struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type linkPayload struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

type groupPayload struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

func (h *Handler) dispatch(c *gin.Context) {
	sess, ok := h.session(c)
	if !ok {
		return
	}

	var cmd command
	if err := c.ShouldBindJSON(&cmd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid command payload", nil)
		return
	}

	if err := applyCommand(sess, cmd); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}
	respond.OK(c, sess.State())
}

// applyCommand decodes and runs one named mutation. Unknown ops are an
// input error; unknown item ids inside a valid op are not.
func applyCommand(sess *Session, cmd command) error {
	decode := func(v any) error {
		if len(cmd.Payload) == 0 {
			return errors.New("missing payload for op " + cmd.Op)
		}
		if err := json.Unmarshal(cmd.Payload, v); err != nil {
			return errors.New("invalid payload for op " + cmd.Op)
		}
		return nil
	}

	switch cmd.Op {
	// scalar setters
	case "setActiveSection":
		var p struct {
			Section resume.SectionKey `json:"section"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetActiveSection(p.Section)
	case "setZoom":
		var p struct {
			Scale float64 `json:"scale"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetZoom(p.Scale)
	case "setTemplate":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetTemplate(p.ID)
	case "setDraftName":
		var p struct {
			Name string `json:"name"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetDraftName(p.Name)
	case "setTheme":
		var p resume.ThemeSettings
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetTheme(p)
	case "setSidebarOpen":
		var p struct {
			Open bool `json:"open"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetSidebarOpen(p.Open)

	// contact, summary, section order
	case "updateContact":
		var p ContactInfo
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateContact(p)
	case "setSummary":
		var p struct {
			Summary *string `json:"summary"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetSummary(p.Summary)
	case "setSectionOrder":
		var p struct {
			Order []resume.SectionKey `json:"order"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetSectionOrder(p.Order)

	// custom links
	case "addCustomLink":
		var p linkPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddCustomLink(p.Label, p.URL)
	case "updateCustomLink":
		var p linkPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateCustomLink(p.ID, p.Label, p.URL)
	case "removeCustomLink":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveCustomLink(p.ID)
	case "reorderCustomLinks":
		var p reorderPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.ReorderCustomLinks(p.From, p.To)

	// experience
	case "addExperience":
		var p resume.WorkExperience
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddExperience(p)
	case "updateExperience":
		var p struct {
			ID   string                `json:"id"`
			Item resume.WorkExperience `json:"item"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateExperience(p.ID, p.Item)
	case "removeExperience":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveExperience(p.ID)
	case "reorderExperience":
		var p reorderPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.ReorderExperience(p.From, p.To)

	// education
	case "addEducation":
		var p resume.Education
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddEducation(p)
	case "updateEducation":
		var p struct {
			ID   string           `json:"id"`
			Item resume.Education `json:"item"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateEducation(p.ID, p.Item)
	case "removeEducation":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveEducation(p.ID)
	case "reorderEducation":
		var p reorderPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.ReorderEducation(p.From, p.To)

	// projects
	case "addProject":
		var p resume.Project
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddProject(p)
	case "updateProject":
		var p struct {
			ID   string         `json:"id"`
			Item resume.Project `json:"item"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateProject(p.ID, p.Item)
	case "removeProject":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveProject(p.ID)
	case "reorderProjects":
		var p reorderPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.ReorderProjects(p.From, p.To)

	// certifications
	case "addCertification":
		var p resume.Certification
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddCertification(p)
	case "updateCertification":
		var p struct {
			ID   string               `json:"id"`
			Item resume.Certification `json:"item"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateCertification(p.ID, p.Item)
	case "removeCertification":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveCertification(p.ID)
	case "reorderCertifications":
		var p reorderPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.ReorderCertifications(p.From, p.To)

	// awards
	case "addAward":
		var p resume.Award
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddAward(p)
	case "updateAward":
		var p struct {
			ID   string       `json:"id"`
			Item resume.Award `json:"item"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateAward(p.ID, p.Item)
	case "removeAward":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveAward(p.ID)
	case "reorderAwards":
		var p reorderPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.ReorderAwards(p.From, p.To)

	// languages
	case "addLanguage":
		var p resume.LanguageSkill
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddLanguage(p)
	case "updateLanguage":
		var p struct {
			ID   string               `json:"id"`
			Item resume.LanguageSkill `json:"item"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateLanguage(p.ID, p.Item)
	case "removeLanguage":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveLanguage(p.ID)
	case "reorderLanguages":
		var p reorderPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.ReorderLanguages(p.From, p.To)

	// custom sections
	case "addCustomSection":
		var p resume.CustomSection
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddCustomSection(p)
	case "updateCustomSection":
		var p struct {
			ID   string               `json:"id"`
			Item resume.CustomSection `json:"item"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateCustomSection(p.ID, p.Item)
	case "removeCustomSection":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveCustomSection(p.ID)
	case "reorderCustomSections":
		var p reorderPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.ReorderCustomSections(p.From, p.To)

	// skills
	case "addTechnicalGroup":
		var p groupPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddTechnicalGroup(p.Name, p.Skills)
	case "updateTechnicalGroup":
		var p groupPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateTechnicalGroup(p.ID, p.Name, p.Skills)
	case "removeTechnicalGroup":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveTechnicalGroup(p.ID)
	case "setSoftSkills":
		var p struct {
			Skills []string `json:"skills"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetSoftSkills(p.Skills)
	case "setToolSkills":
		var p struct {
			Tools []string `json:"tools"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetToolSkills(p.Tools)
	case "addCustomGroup":
		var p groupPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.AddCustomGroup(p.Name, p.Skills)
	case "updateCustomGroup":
		var p groupPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.UpdateCustomGroup(p.ID, p.Name, p.Skills)
	case "removeCustomGroup":
		var p idPayload
		if err := decode(&p); err != nil {
			return err
		}
		sess.RemoveCustomGroup(p.ID)
	case "setCustomGroupsTitle":
		var p struct {
			Title string `json:"title"`
		}
		if err := decode(&p); err != nil {
			return err
		}
		sess.SetCustomGroupsTitle(p.Title)

	default:
		return errors.New("unknown op: " + cmd.Op)
	}
	return nil
}

func (h *Handler) session(c *gin.Context) (*Session, bool) {
	sess, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return nil, false
	}
	return sess, true
}
