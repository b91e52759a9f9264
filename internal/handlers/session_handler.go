package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/docterbee/membership-system/internal/httpresp"
	"github.com/docterbee/membership-system/internal/middleware"
)

// SessionHandler lets the dashboard ask "is my session still valid?" on page
// load instead of trusting a client-side timestamp. The auth middleware has
// already rejected expired or revoked sessions by the time this runs.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

func (h *SessionHandler) Get(c *gin.Context) {
	httpresp.OK(c, gin.H{
		"admin_id": c.MustGet(middleware.ContextAdminID),
		"username": c.MustGet(middleware.ContextAdminName),
		"role":     c.MustGet(middleware.ContextAdminRole),
	})
}
