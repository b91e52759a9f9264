package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/docterbee/membership-system/internal/config"
	"github.com/docterbee/membership-system/internal/httperr"
	"github.com/docterbee/membership-system/internal/session"
)

const (
	ContextAdminID   = "adminID"
	ContextAdminName = "adminName"
	ContextAdminRole = "adminRole"
	ContextSessionID = "sessionID"
)

// Authenticator resolves the acting admin from a bearer token. The token
// signature proves who issued it; the Redis record proves the session is
// still live. Both must hold.
type Authenticator struct {
	cfg      *config.Config
	sessions *session.Store
}

func NewAuthenticator(cfg *config.Config, sessions *session.Store) *Authenticator {
	return &Authenticator{cfg: cfg, sessions: sessions}
}

// Session validates the request's bearer token and returns the live session.
func (a *Authenticator) Session(c *gin.Context) (*session.Session, *session.Claims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, nil, httperr.Auth("missing_authorization_header", "Login required")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, nil, httperr.Auth("invalid_authorization_header", "Login required")
	}

	claims, err := session.ParseToken(a.cfg.JWTSecret, parts[1])
	if err != nil {
		return nil, nil, httperr.Auth("invalid_token", "Session expired, please login again")
	}

	sess, err := a.sessions.Get(c.Request.Context(), claims.SessionID)
	if err == session.ErrNotFound {
		return nil, nil, httperr.Auth("session_expired", "Session expired, please login again")
	}
	if err != nil {
		return nil, nil, httperr.Store("session_lookup_failed", err)
	}

	return sess, claims, nil
}

// Middleware guards a route group, stashing the acting admin in the context.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, claims, err := a.Session(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": httperr.MessageOf(err),
			})
			return
		}

		c.Set(ContextAdminID, sess.AdminID)
		c.Set(ContextAdminName, sess.Username)
		c.Set(ContextAdminRole, sess.Role)
		c.Set(ContextSessionID, claims.SessionID)

		c.Next()
	}
}
