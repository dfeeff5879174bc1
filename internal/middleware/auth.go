package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/pkg/token"
)

const bearerPrefix = "Bearer "

const identityKey = "identity"

// Identity is the decoded claim set attached to an authenticated request.
// Downstream handlers read it via IdentityFrom and scope every query by
// UserID; it is the sole authorization mechanism.
type Identity struct {
	UserID string
	Email  string
}

// accessVerifier is the slice of the token codec the guard needs.
type accessVerifier interface {
	VerifyAccess(tok string) (token.Payload, error)
}

// Auth extracts and verifies the bearer access token. It never consults the
// refresh-token ledger: an access token cannot be revoked, only outlived.
func Auth(codec accessVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}

		tokenStr := header[len(bearerPrefix):]
		payload, err := codec.VerifyAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired access token"})
			return
		}

		c.Set(identityKey, Identity{UserID: payload.UserID, Email: payload.Email})
		c.Next()
	}
}

// IdentityFrom returns the identity attached by Auth. The second return is
// false on routes that never passed through the guard.
func IdentityFrom(c *gin.Context) (Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return Identity{}, false
	}
	id, ok := v.(Identity)
	return id, ok
}
