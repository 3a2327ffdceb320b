package middleware

import (
	"time"

	"rota-console/internal/identity"

	"github.com/gin-gonic/gin"
)

const (
	ctxIdentityKey = "identity"
	ctxTokenIDKey  = "session_token_id"
	ctxTokenExpKey = "session_token_exp"
)

func SetIdentity(c *gin.Context, id identity.Identity) {
	c.Set(ctxIdentityKey, id)
}

// CurrentIdentity returns the identity Session resolved for this request.
func CurrentIdentity(c *gin.Context) (identity.Identity, bool) {
	v, ok := c.Get(ctxIdentityKey)
	if !ok {
		return identity.Identity{}, false
	}
	id, ok := v.(identity.Identity)
	return id, ok
}

func SetSessionToken(c *gin.Context, tokenID string, expiresAt time.Time) {
	c.Set(ctxTokenIDKey, tokenID)
	c.Set(ctxTokenExpKey, expiresAt)
}

// SessionToken returns the denylist id and expiry of the caller's token.
func SessionToken(c *gin.Context) (string, time.Time, bool) {
	tokenID := c.GetString(ctxTokenIDKey)
	if tokenID == "" {
		return "", time.Time{}, false
	}
	return tokenID, c.GetTime(ctxTokenExpKey), true
}
