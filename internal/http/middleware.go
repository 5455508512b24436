package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const userKey = "currentUser"

// resolveSession restores the authentication state from the session cookie.
// A missing or invalid cookie leaves the request anonymous; it is never an error.
func (h *Handler) resolveSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err == nil {
			if username, ok := h.auth.Resolve(c.Request.Context(), token); ok {
				c.Set(userKey, username)
			}
		}
		c.Next()
	}
}

// requireAuth guards mutating routes: anonymous requests are redirected to the
// login page and the wrapped handler never runs.
func (h *Handler) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUsername(c); !ok {
			c.Redirect(http.StatusFound, "/login/")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUsername(c *gin.Context) (string, bool) {
	username, ok := c.Get(userKey)
	if !ok {
		return "", false
	}
	name, ok := username.(string)
	return name, ok && name != ""
}

func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Header("X-Request-Id", requestID)

		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start),
		}).Info("request")
	}
}
