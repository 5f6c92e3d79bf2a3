package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/you/scandine/domain"
)

// Context keys for values attached by the auth gates.
const (
	ctxUserKey  = "auth_user"
	ctxTokenKey = "auth_token"
	ctxCafeKey  = "auth_cafe"
)

// TokenCookieName is the cookie carrying the session token.
const TokenCookieName = "token"

// AuthMW is the identity gate. It authorizes a request by composing the token
// verifier, the revocation ledger, and the user store, then attaches the
// identity to the request context. It mutates nothing.
type AuthMW struct {
	tokenSvc  domain.TokenService
	userRepo  domain.UserRepository
	blacklist domain.TokenBlacklist
	logger    *slog.Logger
}

// NewAuthMW creates the identity gate middleware
func NewAuthMW(tokenSvc domain.TokenService, userRepo domain.UserRepository, blacklist domain.TokenBlacklist, logger *slog.Logger) *AuthMW {
	return &AuthMW{
		tokenSvc:  tokenSvc,
		userRepo:  userRepo,
		blacklist: blacklist,
		logger:    logger,
	}
}

// RequireIdentity returns the identity gate handler. Checks run cheapest
// first: signature and expiry before the ledger lookup, the ledger before the
// user load. Every failure collapses to the same generic 401 body; the
// concrete reason goes to the server log only.
func (mw *AuthMW) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ExtractToken(c)
		if token == "" {
			mw.reject(c, domain.ErrMissingToken)
			return
		}

		claims, err := mw.tokenSvc.Verify(token)
		if err != nil {
			mw.reject(c, err)
			return
		}

		revoked, err := mw.blacklist.IsRevoked(c.Request.Context(), token)
		if err != nil {
			mw.logger.Error("revocation ledger lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if revoked {
			mw.reject(c, domain.ErrTokenRevoked)
			return
		}

		user, err := mw.userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			if err == domain.ErrUserNotFound {
				mw.reject(c, err)
				return
			}
			mw.logger.Error("user lookup failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		if user.SessionEpoch != claims.SessionEpoch {
			mw.reject(c, domain.ErrEpochMismatch)
			return
		}

		c.Set(ctxUserKey, user)
		c.Set(ctxTokenKey, token)
		c.Next()
	}
}

func (mw *AuthMW) reject(c *gin.Context, reason error) {
	mw.logger.Warn("authentication failed",
		"reason", reason.Error(),
		"path", c.Request.URL.Path,
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
}

// ExtractToken pulls the session token from the request. The cookie takes
// precedence over the Authorization bearer header.
func ExtractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// CurrentUser returns the identity attached by RequireIdentity.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}

// RawToken returns the raw token the request authenticated with.
func RawToken(c *gin.Context) (string, bool) {
	v, ok := c.Get(ctxTokenKey)
	if !ok {
		return "", false
	}
	token, ok := v.(string)
	return token, ok
}
