package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateID builds an opaque record id of the form <prefix>_<unix millis>_<random>.
func GenerateID(prefix string, now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("%s_%d_%s", prefix, now.UnixMilli(), random)
}

// GenerateToken builds the opaque session token for a user.
func GenerateToken(userID string, now time.Time) string {
	return fmt.Sprintf("token_%s_%d", userID, now.UnixMilli())
}

// TokenUserID extracts the user id embedded in a session token.
// It returns false when the token does not have the expected shape.
func TokenUserID(token string) (string, bool) {
	if !strings.HasPrefix(token, "token_") {
		return "", false
	}
	rest := strings.TrimPrefix(token, "token_")
	idx := strings.LastIndex(rest, "_")
	if idx <= 0 || idx == len(rest)-1 {
		return "", false
	}
	return rest[:idx], true
}
