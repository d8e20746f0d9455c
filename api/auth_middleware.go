package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"

	"github.com/fixora/fixora-backend/auth"
)

const principalKey = "principal"

type AuthService interface {
	Resolve(ctx context.Context, token string) (auth.Principal, error)
}

// BearerAuth resolves the Authorization header into an authenticated
// principal and puts it in the request context. Resolved principals are
// cached briefly per token so a burst of requests does not hit the user
// store on every call.
func BearerAuth(authService AuthService) gin.HandlerFunc {
	principals := cache.New(1*time.Minute, 5*time.Minute)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")

		if !ok || len(strings.TrimSpace(token)) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		if cached, found := principals.Get(token); found {
			c.Set(principalKey, cached.(auth.Principal))
			return
		}

		principal, err := authService.Resolve(c.Request.Context(), token)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		principals.Set(token, principal, cache.DefaultExpiration)
		c.Set(principalKey, principal)
	}
}

// CurrentPrincipal returns the principal resolved by BearerAuth.
func CurrentPrincipal(c *gin.Context) auth.Principal {
	return c.MustGet(principalKey).(auth.Principal)
}

func CustomerOnly() gin.HandlerFunc {
	return requireRole(auth.RoleCustomer, "customers only")
}

func WorkerOnly() gin.HandlerFunc {
	return requireRole(auth.RoleWorker, "workers only")
}

func requireRole(role auth.Role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentPrincipal(c).Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": message})
			c.Abort()
			return
		}
	}
}
