package api

import (
	"net/http"

	"github.com/docmindhq/docmind/internal/api/admin"
	"github.com/docmindhq/docmind/internal/api/chat"
	"github.com/docmindhq/docmind/internal/api/middleware"
	"github.com/docmindhq/docmind/internal/render"
	"github.com/docmindhq/docmind/internal/service"
	"github.com/gin-gonic/gin"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	APIKey       string
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	manager *service.ConversationManager,
	adminService *service.AdminService,
	syncService *service.SyncService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Chat page; the conversation itself is created through the API once the
	// first message is sent
	r.GET("/", func(c *gin.Context) {
		html, err := render.Page(render.PageData{})
		if err != nil {
			c.String(http.StatusInternalServerError, "failed to render page")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
	})

	// Conversation API (public)
	chatHandler := chat.NewHandler(manager)
	chatGroup := r.Group("/api/conversations")
	chatHandler.RegisterRoutes(chatGroup)

	// Admin API (requires API key)
	adminHandler := admin.NewHandler(adminService, syncService)
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.Auth(cfg.APIKey))
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
