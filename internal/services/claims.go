package services

import (
	"biodata-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity carried in an access token. The role is the one the
// user had when the token was issued.
type Claims struct {
	UserID int64       `json:"userId"`
	Email  string      `json:"email"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == models.RoleAdmin
}
