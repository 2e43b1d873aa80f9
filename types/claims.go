package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/translationdesk/platform-go/models"
)

type Claims struct {
	UserID uint            `json:"userId"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}
