package export

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/editor"
	"resume-studio/internal/shared/server/respond"
	"resume-studio/internal/shared/telemetry"
)

// Handler serves PDF downloads for live editing sessions. Each session gets
// its own coordinator, so one slow visual export never blocks another
// session's download, while repeat requests for the same session fail fast.
type Handler struct {
	Sessions *editor.Registry
	Preview  PreviewRenderer

	mu     sync.Mutex
	coords map[string]*Coordinator
}

// RegisterRoutes mounts the export endpoint under the session routes.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/sessions/:id/export", h.export)
}

func (h *Handler) coordinator(sessionID string) *Coordinator {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.coords == nil {
		h.coords = make(map[string]*Coordinator)
	}
	coord, ok := h.coords[sessionID]
	if !ok {
		coord = &Coordinator{Preview: h.Preview}
		h.coords[sessionID] = coord
	}
	return coord
}

type exportRequest struct {
	Mode string `json:"mode"`
}

func (h *Handler) export(c *gin.Context) {
	sess, err := h.Sessions.Get(c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusNotFound, "not_found", "session not found", nil)
		return
	}

	var req exportRequest
	_ = c.ShouldBindJSON(&req)
	mode, err := ParseMode(req.Mode)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		return
	}

	artifact, err := h.coordinator(sess.ID()).Export(c.Request.Context(), mode, sess.Document(), sess.Theme())
	if err != nil {
		switch {
		case errors.Is(err, ErrInProgress):
			respond.Error(c, http.StatusConflict, "export_in_progress", "an export is already running for this session", nil)
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			// Client went away; nothing to deliver and nothing to report.
			c.Abort()
		default:
			telemetry.Error("export.failed", map[string]any{
				"session_id": sess.ID(),
				"mode":       string(mode),
				"error":      err.Error(),
			})
			respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to generate PDF", nil)
		}
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+artifact.FileName+`"`)
	if artifact.Pages > 0 {
		c.Header("X-Page-Count", strconv.Itoa(artifact.Pages))
	}
	c.Data(http.StatusOK, "application/pdf", artifact.PDF)
}
