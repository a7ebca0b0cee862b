package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/pokerbankroll/internal/http/middleware"
)

const (
	sessionCookie = "bankroll_session"
	flashCookie   = "bankroll_flash"
)

// requireLogin authenticates the session cookie or redirects to the login page
func (h *Handler) requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(sessionCookie); err == nil && token != "" {
			if claims, err := h.jwtService.ValidateToken(token); err == nil {
				middleware.SetActor(c, claims.Actor())
				c.Next()
				return
			}
			h.clearSession(c)
		}

		c.Redirect(http.StatusFound, LoginPath+"?next="+url.QueryEscape(c.Request.URL.RequestURI()))
		c.Abort()
	}
}

func (h *Handler) startSession(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, int(h.opts.SessionTTL.Seconds()), "/", "", h.opts.SecureCookie, true)
}

func (h *Handler) clearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", h.opts.SecureCookie, true)
}

// flash stores a message shown once by the next rendered page
func (h *Handler) flash(c *gin.Context, message string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(flashCookie, message, 60, "/", "", h.opts.SecureCookie, true)
}

func (h *Handler) popFlash(c *gin.Context) string {
	message, err := c.Cookie(flashCookie)
	if err != nil || message == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", h.opts.SecureCookie, true)
	return message
}

// safeNext keeps post-login redirects on this site
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return DashboardPath
	}
	return next
}
