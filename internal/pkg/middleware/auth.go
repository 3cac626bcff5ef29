package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/staynest/service-stay/internal/domain/identity"
	"github.com/staynest/service-stay/internal/pkg/auth"
	"github.com/staynest/service-stay/internal/pkg/response"
)

const authContextKey = "auth_context"

// AuthMiddleware requires a valid bearer token and stores the caller's
// AuthContext on the request.
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac, ok, err := authenticate(c, jwtManager)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}
		if !ok {
			response.Unauthorized(c, "missing bearer token")
			return
		}
		c.Set(authContextKey, ac)
		c.Next()
	}
}

// OptionalAuthMiddleware stores an AuthContext when a valid token is
// present and lets anonymous requests through. A bad token is still rejected.
func OptionalAuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		ac, ok, err := authenticate(c, jwtManager)
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			return
		}
		if ok {
			c.Set(authContextKey, ac)
		}
		c.Next()
	}
}

// RequireAdmin rejects callers that the policy does not recognise as admin.
// It must run after AuthMiddleware.
func RequireAdmin(policy identity.AdminPolicy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !policy.IsAdmin(GetAuthContext(c)) {
			response.Forbidden(c, "admin access required")
			return
		}
		c.Next()
	}
}

// GetAuthContext returns the caller stored by the auth middleware, or an
// anonymous context.
func GetAuthContext(c *gin.Context) identity.AuthContext {
	v, ok := c.Get(authContextKey)
	if !ok {
		return identity.Anonymous()
	}
	ac, ok := v.(identity.AuthContext)
	if !ok {
		return identity.Anonymous()
	}
	return ac
}

func authenticate(c *gin.Context, jwtManager *auth.JWTManager) (identity.AuthContext, bool, error) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return identity.AuthContext{}, false, nil
	}
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return identity.AuthContext{}, false, auth.ErrInvalidToken
	}
	claims, err := jwtManager.ValidateToken(token)
	if err != nil {
		return identity.AuthContext{}, false, err
	}
	return identity.AuthContext{UserID: claims.UserID(), Email: claims.Email}, true, nil
}
