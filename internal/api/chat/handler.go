package chat

import (
	"errors"
	"net/http"

	"github.com/docmindhq/docmind/internal/domain"
	"github.com/docmindhq/docmind/internal/render"
	"github.com/docmindhq/docmind/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler handles conversation API requests
type Handler struct {
	manager *service.ConversationManager
}

// NewHandler creates a new chat handler
func NewHandler(manager *service.ConversationManager) *Handler {
	return &Handler{manager: manager}
}

// RegisterRoutes registers conversation routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("", h.Create)
	r.GET("/:id", h.Get)
	r.GET("/:id/html", h.GetHTML)
	r.POST("/:id/messages", h.Submit)
	r.DELETE("/:id", h.Delete)
}

// CreateRequest optionally overrides the configured organization and user.
type CreateRequest struct {
	OrganizationID string `json:"organization_id,omitempty"`
	UserID         string `json:"user_id,omitempty"`
}

// SubmitRequest carries one user turn.
type SubmitRequest struct {
	Message string `json:"message" binding:"required"`
}

// Create starts a new conversation
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	// Body is optional; ignore bind errors on an empty body
	_ = c.ShouldBindJSON(&req)

	conv := h.manager.Create(req.OrganizationID, req.UserID)
	c.JSON(http.StatusCreated, gin.H{"id": conv.ID()})
}

// Get returns a conversation's transcript and session token
func (h *Handler) Get(c *gin.Context) {
	conv, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         conv.ID(),
		"session_id": conv.SessionID(),
		"messages":   conv.Messages(),
	})
}

// GetHTML returns the rendered transcript fragment
func (h *Handler) GetHTML(c *gin.Context) {
	conv, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.String(http.StatusNotFound, "conversation not found")
		return
	}

	html, err := render.Transcript(conv.Messages())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to render transcript")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Submit posts one user turn and returns the resulting assistant turn.
// Empty input and submissions while a reply is pending are refused without
// touching the transcript.
func (h *Handler) Submit(c *gin.Context) {
	conv, ok := h.manager.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reply, err := conv.Submit(c.Request.Context(), req.Message)
	switch {
	case errors.Is(err, domain.ErrEmptyMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case errors.Is(err, domain.ErrConversationBusy):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    reply,
		"session_id": conv.SessionID(),
	})
}

// Delete discards a conversation
func (h *Handler) Delete(c *gin.Context) {
	h.manager.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}
