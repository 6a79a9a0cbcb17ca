package handlers

import (
	"errors"
	"net/http"
	"strings"

	dr "dealership_review"
	"dealership_review/internal/models"

	"github.com/gin-gonic/gin"
)

const sessionCtxKey = "session"

// sessionMiddleware resolves the request's token, if any, to a session and
// stores it on the context. Requests without a valid session proceed
// anonymously; handlers decide what needs one.
func (h *Handler) sessionMiddleware(c *gin.Context) {
	token := h.tokenFromRequest(c)
	if token == "" {
		c.Next()
		return
	}

	session, err := h.services.ParseSession(c.Request.Context(), token)
	switch {
	case err == nil:
		c.Set(sessionCtxKey, session)
	case errors.Is(err, dr.ErrUnauthenticated):
		h.log.Debugw("session_rejected", "err", err)
	default:
		h.log.Errorw("session_lookup_failed", "err", err)
	}
	c.Next()
}

// tokenFromRequest prefers the session cookie and falls back to a Bearer
// Authorization header.
func (h *Handler) tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(h.opts.CookieName); err == nil && cookie != "" {
		return cookie
	}
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

// sessionFrom returns the session attached by sessionMiddleware, or nil.
func sessionFrom(c *gin.Context) *models.Session {
	v, ok := c.Get(sessionCtxKey)
	if !ok {
		return nil
	}
	s, _ := v.(*models.Session)
	return s
}

func requirePost(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errPostRequired})
		return
	}
	c.Next()
}
