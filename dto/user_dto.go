package dto

import "github.com/translationdesk/platform-go/models"

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type CreateUserDTO struct {
	Email             string          `json:"email" binding:"required,email"`
	Password          string          `json:"password" binding:"required,min=8"`
	FirstName         string          `json:"firstName" binding:"required"`
	LastName          string          `json:"lastName" binding:"required"`
	Role              models.UserRole `json:"role" binding:"required,oneof=admin agent languageExpert tsscManager"`
	PreferredLanguage string          `json:"preferredLanguage"`
}

type SetPreferenceDTO struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}
