package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you/scandine/domain"
)

// CafeAuthMW is the ownership gate. It runs after the identity gate and
// additionally resolves the cafe owned by the authenticated user, failing
// with 403 (distinct from authentication failure) when none exists.
type CafeAuthMW struct {
	cafeRepo domain.CafeRepository
	logger   *slog.Logger
}

// NewCafeAuthMW creates the ownership gate middleware
func NewCafeAuthMW(cafeRepo domain.CafeRepository, logger *slog.Logger) *CafeAuthMW {
	return &CafeAuthMW{
		cafeRepo: cafeRepo,
		logger:   logger,
	}
}

// RequireCafe returns the ownership gate handler. Must be mounted after
// RequireIdentity.
func (mw *CafeAuthMW) RequireCafe() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed"})
			return
		}

		cafe, err := mw.cafeRepo.FindByUserID(c.Request.Context(), user.ID)
		if err != nil {
			if err == domain.ErrCafeNotFound {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "User does not own a cafe"})
				return
			}
			mw.logger.Error("cafe ownership lookup failed", "user_id", user.ID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.Set(ctxCafeKey, cafe)
		c.Next()
	}
}

// CurrentCafe returns the cafe attached by RequireCafe.
func CurrentCafe(c *gin.Context) (*domain.Cafe, bool) {
	v, ok := c.Get(ctxCafeKey)
	if !ok {
		return nil, false
	}
	cafe, ok := v.(*domain.Cafe)
	return cafe, ok
}
