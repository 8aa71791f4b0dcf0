package auth

import (
	"net/http"
	"strings"

	apperrors "crestora-backend/internal/errors"
	"crestora-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const claimsContextKey = "auth_claims"

// Middleware guards routes with JWT validation and role checks
type Middleware struct {
	service *Service
}

// NewMiddleware creates a new auth middleware
func NewMiddleware(service *Service) *Middleware {
	return &Middleware{service: service}
}

// RequireAuth validates the bearer token and stores the claims in the
// request context. Requests without a valid token are rejected.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingAuthHeader.Error()})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header must be a bearer token"})
			return
		}

		claims, err := m.service.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects requests whose token is not the admin role.
// Must run after RequireAuth.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingAuthHeader.Error()})
			return
		}
		actor := claimsToActor(claims)
		if !actor.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrAdminOnly.Error()})
			return
		}
		c.Next()
	}
}

// GetClaims retrieves the verified claims stored by RequireAuth
func GetClaims(c *gin.Context) (*Claims, bool) {
	value, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*Claims)
	return claims, ok
}

// GetActor builds the service-level actor from the request's claims.
// Unauthenticated requests yield a zero actor with no permissions.
func GetActor(c *gin.Context) service.Actor {
	claims, ok := GetClaims(c)
	if !ok {
		return service.Actor{}
	}
	return claimsToActor(claims)
}

func claimsToActor(claims *Claims) service.Actor {
	return service.Actor{
		Username: claims.Username,
		Role:     claims.Role,
		Club:     claims.Club,
	}
}
