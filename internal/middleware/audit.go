package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/observability"
	"go.uber.org/zap"
)

// Audit actions
const (
	AuditActionCreate = "create"
	AuditActionUpdate = "update"
	AuditActionDelete = "delete"
)

// Audit resources
const (
	AuditResourceSession         = "session"
	AuditResourceProfile         = "profile"
	AuditResourcePreferences     = "preferences"
	AuditResourceCollectionPoint = "collection_point"
)

// AuditMiddleware logs every successful write request. Request bodies are
// never logged since they carry passwords and CPFs.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method != http.MethodPost && method != http.MethodPut && method != http.MethodDelete && method != http.MethodPatch {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/v1/health") || strings.HasPrefix(path, "/metrics") || strings.HasPrefix(path, "/v1/forms") {
			c.Next()
			return
		}

		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		fields := []zap.Field{
			zap.String("action", mapHTTPMethodToAction(method)),
			zap.String("resource", extractResourceFromPath(path)),
			zap.String("resource_id", extractResourceID(c)),
			zap.String("endpoint", path),
			zap.String("ip_address", c.ClientIP()),
			zap.Int("status", status),
		}
		if deviceID := GetDeviceID(c); deviceID != "" {
			fields = append(fields, zap.String("device_id", deviceID))
		}
		if session, ok := GetSession(c); ok {
			if user := session.User(); user != nil {
				fields = append(fields, zap.String("user_id", user.ID))
			}
		}

		observability.Logger().Info("audit event", fields...)
	}
}

// mapHTTPMethodToAction maps HTTP methods to audit actions
func mapHTTPMethodToAction(method string) string {
	switch method {
	case http.MethodPost:
		return AuditActionCreate
	case http.MethodDelete:
		return AuditActionDelete
	default:
		return AuditActionUpdate
	}
}

// extractResourceFromPath extracts the resource type from the request path
func extractResourceFromPath(path string) string {
	path = strings.TrimPrefix(path, "/v1/")

	switch {
	case strings.HasPrefix(path, "session/profile"):
		return AuditResourceProfile
	case strings.HasPrefix(path, "session"):
		return AuditResourceSession
	case strings.HasPrefix(path, "preferences"):
		return AuditResourcePreferences
	case strings.HasPrefix(path, "collection-points"):
		return AuditResourceCollectionPoint
	}

	if parts := strings.Split(path, "/"); parts[0] != "" {
		return parts[0]
	}
	return "unknown"
}

// extractResourceID extracts the resource identifier from the route params
func extractResourceID(c *gin.Context) string {
	if id := c.Param("id"); id != "" {
		return id
	}
	return ""
}
