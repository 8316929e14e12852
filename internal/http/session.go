package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"propertysource-web/internal/backend"
	"propertysource-web/internal/domain"
	"propertysource-web/internal/service"
)

const sessionKey = "session"

func currentSession(c *gin.Context) *domain.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*domain.Session)
	return session
}

func currentUser(c *gin.Context) *domain.User {
	if session := currentSession(c); session != nil {
		return &session.User
	}
	return nil
}

// loadSession resolves the session cookie and puts the backend token on the
// request context for the backend client.
func (h *Handler) loadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(h.opts.CookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		session, err := h.sessions.Lookup(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(sessionKey, session)
			c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), session.Token))
		case errors.Is(err, service.ErrSessionNotFound):
			h.clearSessionCookie(c)
		default:
			h.logger.WithError(err).Warn("load session")
		}
		c.Next()
	}
}

func (h *Handler) setSessionCookie(c *gin.Context, session *domain.Session) {
	cookie := &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = session.ExpiresAt.UTC()
		cookie.MaxAge = int(time.Until(*session.ExpiresAt).Seconds())
	}
	http.SetCookie(c.Writer, cookie)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     h.opts.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// requireRole keeps anonymous visitors out (redirect to login) and renders
// 403 for the wrong role.
func (h *Handler) requireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		if user.Role != role {
			h.renderError(c, http.StatusForbidden, "Not allowed", "You don't have access to this page.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// expiredLogin ends the session when the backend no longer accepts its token.
func (h *Handler) expiredLogin(c *gin.Context, err error) bool {
	if !backend.IsUnauthorized(err) {
		return false
	}
	h.endCurrentSession(c)
	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
	return true
}

// endCurrentSession drops the session the request arrived with, if any.
func (h *Handler) endCurrentSession(c *gin.Context) {
	session := currentSession(c)
	if session == nil {
		return
	}
	if err := h.sessions.End(c.Request.Context(), session.ID); err != nil {
		h.logger.WithError(err).WithField("session", session.ID).Warn("end session")
	}
}
