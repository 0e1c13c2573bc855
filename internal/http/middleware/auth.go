package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/gigpay/internal/auth"
	"github.com/nurpe/gigpay/internal/model"
)

const principalKey = "principal"

// ProfileLoader resolves token subjects to stored profiles so unknown
// identities are rejected before any handler runs.
type ProfileLoader interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*model.Profile, error)
}

func Auth(parser *auth.Parser, profiles ProfileLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := parser.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		profile, err := profiles.GetProfile(c.Request.Context(), claims.ProfileID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown profile"})
			return
		}

		SetPrincipal(c, model.Principal{
			ProfileID: profile.ID,
			Type:      profile.Type,
		})
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, principal model.Principal) {
	c.Set(principalKey, principal)
}

func MustPrincipal(c *gin.Context) (model.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return model.Principal{}, false
	}
	principal, ok := value.(model.Principal)
	return principal, ok
}
