package middleware

import (
	"github.com/discorre/cyberbank-panel/logger"
	"github.com/discorre/cyberbank-panel/web/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditMiddleware logs every mutating request with a request id, the acting
// user and the outcome status. Reads are not audited.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isMutating(c.Request.Method) || shouldSkipAudit(c.Request.URL.Path) {
			c.Next()
			return
		}

		requestId := uuid.NewString()
		username := session.GetUsername(c)
		if username == "" {
			username = "-"
		}

		c.Next()

		logger.Infof("audit [%s] %s %s user=%s ip=%s status=%d",
			requestId, c.Request.Method, c.Request.URL.Path,
			username, c.ClientIP(), c.Writer.Status())
	}
}

func isMutating(method string) bool {
	switch method {
	case "POST", "PUT", "DELETE":
		return true
	}
	return false
}

// shouldSkipAudit checks if path should be skipped from audit
func shouldSkipAudit(path string) bool {
	skipPaths := []string{
		"/assets/",
		"/favicon.ico",
	}
	for _, skipPath := range skipPaths {
		if len(path) >= len(skipPath) && path[:len(skipPath)] == skipPath {
			return true
		}
	}
	return false
}
