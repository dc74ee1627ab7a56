package drafts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-studio/internal/shared/server/respond"
)

// Handler exposes the draft picker endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches draft routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/drafts", h.list)
	rg.DELETE("/drafts/:id", h.remove)
}

func (h *Handler) list(c *gin.Context) {
	summaries, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "list_failed", "failed to list drafts", nil)
		return
	}
	respond.OK(c, gin.H{"drafts": summaries})
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respond.Error(c, http.StatusInternalServerError, "delete_failed", "failed to delete draft", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
