package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	autherrors "rota-console/internal/auth/errors"
	"rota-console/internal/identity"
	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/contextutil"
	"rota-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenDenylist reports whether a session token was signed out before expiry.
type TokenDenylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type SessionConfig struct {
	CookieName string
	// JWTSecret enables HMAC verification. Empty means claims are decoded
	// without verification and the Gateway stays the verifier.
	JWTSecret string
	Denylist  TokenDenylist
	Resolver  *identity.Resolver
	Now       func() time.Time
}

// Session recovers the caller's Gateway token from the cookie or the bearer
// header, resolves the identity once and propagates the token to outbound
// Gateway calls. A request without a token continues anonymously.
func Session(cfg SessionConfig) gin.HandlerFunc {
	if cfg.Resolver == nil {
		cfg.Resolver = identity.NewResolver()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}

	return func(c *gin.Context) {
		raw := tokenFromRequest(c, cfg.CookieName)
		if raw == "" {
			c.Next()
			return
		}

		claims, err := parseSessionToken(raw, cfg.JWTSecret, cfg.Now())
		if err != nil {
			if errors.Is(err, autherrors.ErrTokenExpired) && cfg.CookieName != "" {
				c.SetCookie(cfg.CookieName, "", -1, "/", "", false, true)
			}
			abortWith(c, err)
			return
		}

		tokenID := TokenID(raw, claims)
		if cfg.Denylist != nil {
			revoked, err := cfg.Denylist.IsRevoked(c.Request.Context(), tokenID)
			if err != nil {
				contextutil.GetLogger(c.Request.Context(), zap.L()).Error("denylist lookup failed", zap.Error(err))
				abortWith(c, autherrors.ErrDenylistUnavailable)
				return
			}
			if revoked {
				abortWith(c, autherrors.ErrTokenRevoked)
				return
			}
		}

		id := cfg.Resolver.Resolve(identity.ClaimsFromMap(claims))
		SetIdentity(c, id)

		var expiresAt time.Time
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			expiresAt = exp.Time
		}
		SetSessionToken(c, tokenID, expiresAt)

		ctx := c.Request.Context()
		reqLogger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user", id.Username()),
			zap.Stringer("identity", id),
		)
		ctx = contextutil.WithAccessToken(ctx, raw)
		ctx = contextutil.WithUserID(ctx, id.Username())
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireSession stops anonymous requests.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentIdentity(c); !ok {
			abortWith(c, autherrors.ErrSessionRequired)
			return
		}
		c.Next()
	}
}

// TokenID identifies a token in the denylist: the jti claim when present,
// otherwise a digest of the raw token.
func TokenID(raw string, claims jwt.MapClaims) string {
	if jti, ok := claims["jti"].(string); ok && strings.TrimSpace(jti) != "" {
		return jti
	}
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if tok, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); found {
		if tok = strings.TrimSpace(tok); tok != "" {
			return tok
		}
	}
	if cookieName != "" {
		if cookie, err := c.Cookie(cookieName); err == nil {
			return strings.TrimSpace(cookie)
		}
	}
	return ""
}

func parseSessionToken(raw, secret string, now time.Time) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	if secret != "" {
		parser := jwt.NewParser(
			jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}),
			jwt.WithTimeFunc(func() time.Time { return now }),
		)
		_, err := parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, autherrors.ErrTokenExpired
			}
			return nil, autherrors.ErrInvalidToken.WithErr(err)
		}
		return claims, nil
	}

	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, autherrors.ErrInvalidToken.WithErr(err)
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, autherrors.ErrInvalidToken.WithErr(fmt.Errorf("exp: %w", err))
	}
	if exp != nil && !now.Before(exp.Time) {
		return nil, autherrors.ErrTokenExpired
	}
	return claims, nil
}

func abortWith(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Abort(c, httpErr.Status, httpErr.Code, httpErr.Message)
}
