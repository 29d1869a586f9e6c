package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"biodata-api/internal/policy"
	"biodata-api/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	claimsCtx           = "claims" // Key to store token claims in context
)

// TokenVerifier turns a bearer token into claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*services.Claims, error)
}

// Authorize enforces the policy table for the matched route. Routes that are
// not in the table require an admin.
func Authorize(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		fullPath := c.FullPath()
		if fullPath == "" {
			// Unmatched route, let gin answer 404.
			c.Next()
			return
		}

		rule, known := policy.LookupAPI(c.Request.Method, fullPath)
		if !known {
			log.Printf("Auth middleware: no policy rule for %s %s", c.Request.Method, fullPath)
		}
		if !rule.Access.RequiresToken() {
			c.Next()
			return
		}

		claims, err := verifier.Verify(c.Request.Context(), bearerToken(c.GetHeader(authorizationHeader)))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access denied. No token provided."})
			case errors.Is(err, services.ErrInvalidToken):
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token."})
			default:
				log.Printf("Auth middleware: Error verifying token: %v", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify token"})
			}
			return
		}

		viewer := policy.Viewer{Authenticated: true, Role: claims.Role}
		if !rule.Access.Permits(viewer) {
			msg := "Access denied."
			if rule.Access == policy.AdminOnly {
				msg = "Access denied. Admin only."
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": msg})
			return
		}

		c.Set(claimsCtx, claims)
		c.Next()
	}
}

// bearerToken strips the "Bearer " scheme. A header without a scheme is
// taken as the raw token.
func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) >= 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	if strings.EqualFold(header, "bearer") {
		return ""
	}
	return header
}

// GetClaimsFromContext returns the claims stored by Authorize.
func GetClaimsFromContext(c *gin.Context) (*services.Claims, error) {
	value, exists := c.Get(claimsCtx)
	if !exists {
		return nil, errors.New("claims not found in context")
	}

	claims, ok := value.(*services.Claims)
	if !ok {
		return nil, errors.New("claims in context are of invalid type")
	}
	return claims, nil
}
