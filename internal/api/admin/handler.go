package admin

import (
	"errors"
	"net/http"

	"github.com/docmindhq/docmind/internal/domain"
	"github.com/docmindhq/docmind/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler handles admin API requests
type Handler struct {
	adminService *service.AdminService
	syncService  *service.SyncService
}

// NewHandler creates a new admin handler
func NewHandler(adminService *service.AdminService, syncService *service.SyncService) *Handler {
	return &Handler{
		adminService: adminService,
		syncService:  syncService,
	}
}

// RegisterRoutes registers admin routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	orgs := r.Group("/organizations")
	{
		orgs.POST("", h.CreateOrganization)
		orgs.GET("", h.ListOrganizations)
		orgs.GET("/:id", h.GetOrganization)
		orgs.PUT("/:id", h.UpdateOrganization)
		orgs.DELETE("/:id", h.DeleteOrganization)

		orgs.GET("/:id/members", h.ListMembers)
		orgs.POST("/:id/members", h.AddMember)

		orgs.GET("/:id/integration", h.GetIntegration)
		orgs.POST("/:id/integration", h.ConnectIntegration)

		orgs.POST("/:id/sync", h.TriggerSync)
		orgs.GET("/:id/sync", h.SyncStatus)
	}

	members := r.Group("/members")
	{
		members.PUT("/:id", h.UpdateMemberRole)
		members.DELETE("/:id", h.RemoveMember)
	}

	r.DELETE("/integrations/:id", h.DisconnectIntegration)
}

// Organization handlers

func (h *Handler) CreateOrganization(c *gin.Context) {
	var req domain.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.adminService.CreateOrganization(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, org)
}

func (h *Handler) ListOrganizations(c *gin.Context) {
	orgs, err := h.adminService.ListOrganizations(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}

func (h *Handler) GetOrganization(c *gin.Context) {
	org, err := h.adminService.GetOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if org == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "organization not found"})
		return
	}

	c.JSON(http.StatusOK, org)
}

func (h *Handler) UpdateOrganization(c *gin.Context) {
	var req domain.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	org, err := h.adminService.UpdateOrganization(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

func (h *Handler) DeleteOrganization(c *gin.Context) {
	if err := h.adminService.DeleteOrganization(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Member handlers

func (h *Handler) ListMembers(c *gin.Context) {
	members, err := h.adminService.ListMembers(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"members": members})
}

func (h *Handler) AddMember(c *gin.Context) {
	var req domain.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.adminService.AddMember(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *Handler) UpdateMemberRole(c *gin.Context) {
	var req domain.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.adminService.UpdateMemberRole(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *Handler) RemoveMember(c *gin.Context) {
	if err := h.adminService.RemoveMember(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Integration handlers

func (h *Handler) GetIntegration(c *gin.Context) {
	integration, err := h.adminService.GetIntegration(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if integration == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no integration connected"})
		return
	}

	c.JSON(http.StatusOK, integration)
}

func (h *Handler) ConnectIntegration(c *gin.Context) {
	var req domain.ConnectIntegrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	integration, err := h.adminService.ConnectIntegration(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, integration)
}

func (h *Handler) DisconnectIntegration(c *gin.Context) {
	if err := h.adminService.DisconnectIntegration(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// Sync handlers

func (h *Handler) TriggerSync(c *gin.Context) {
	result, err := h.syncService.Trigger(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	// The backend's outcome envelope is returned as-is; a failed sync is
	// data, not a transport error.
	c.JSON(http.StatusOK, result)
}

func (h *Handler) SyncStatus(c *gin.Context) {
	result := h.syncService.Status(c.Request.Context(), c.Param("id"))
	c.JSON(http.StatusOK, result)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
