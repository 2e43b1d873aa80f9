package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin          UserRole = "admin"
	RoleAgent          UserRole = "agent"
	RoleLanguageExpert UserRole = "languageExpert"
	RoleTSSCManager    UserRole = "tsscManager"
)

type User struct {
	gorm.Model
	Email             string   `json:"email" gorm:"uniqueIndex;not null"`
	Password          string   `json:"-" gorm:"not null"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Role              UserRole `json:"role" gorm:"type:varchar(32);index;not null"`
	PreferredLanguage string   `json:"preferredLanguage" gorm:"type:varchar(16)"`
	Active            bool     `json:"active" gorm:"default:true"`

	Projects []Project `json:"projects,omitempty" gorm:"many2many:user_projects"`
}
