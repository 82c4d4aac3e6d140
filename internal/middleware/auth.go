package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/services"
	"github.com/recicla365/app-ecopontos/internal/utils"
)

// DeviceIDHeader identifies the client device whose session storage a
// request works on
const DeviceIDHeader = "X-Device-ID"

const (
	deviceIDKey = "device_id"
	sessionKey  = "session"
)

var deviceIDRegex = regexp.MustCompile(`^[A-Za-z0-9_-]{8,64}$`)

// SessionLoader builds the initialized session of a device
type SessionLoader func(ctx context.Context, deviceID string) *services.Session

// DeviceID requires a well formed X-Device-ID header
func DeviceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.GetHeader(DeviceIDHeader))
		if deviceID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Device-ID header is required"})
			c.Abort()
			return
		}
		if !deviceIDRegex.MatchString(deviceID) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid X-Device-ID header"})
			c.Abort()
			return
		}

		c.Set(deviceIDKey, deviceID)
		c.Next()
	}
}

// LoadSession attaches the device session to the context. It must run after DeviceID.
func LoadSession(loader SessionLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := GetDeviceID(c)
		if deviceID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Device-ID header is required"})
			c.Abort()
			return
		}

		c.Set(sessionKey, loader(c.Request.Context(), deviceID))
		c.Next()
	}
}

// RequireSession rejects requests without an authenticated session. When
// a bearer token is sent it must match the session token and have been
// issued to the session user.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := GetSession(c)
		if !ok || !session.IsAuthenticated() {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || !tokenMatches(session, parts[1]) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}

func tokenMatches(session *services.Session, token string) bool {
	info := session.Info()
	if info.User == nil || token != info.Token {
		return false
	}
	userID, ok := utils.TokenUserID(token)
	return ok && userID == info.User.ID
}

// GetDeviceID returns the device id set by DeviceID
func GetDeviceID(c *gin.Context) string {
	return c.GetString(deviceIDKey)
}

// GetSession returns the session set by LoadSession
func GetSession(c *gin.Context) (*services.Session, bool) {
	value, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	session, ok := value.(*services.Session)
	return session, ok && session != nil
}
