package models

import "gorm.io/gorm"

// StandardReply is a canned agent response scoped to a project.
type StandardReply struct {
	gorm.Model
	ProjectID uint   `json:"projectId" gorm:"index;not null"`
	Title     string `json:"title" gorm:"not null"`
	Text      string `json:"text" gorm:"type:text;not null"`
	Language  string `json:"language" gorm:"type:varchar(16)"`
	SortOrder int    `json:"sortOrder" gorm:"default:0"`
}

// RejectionCategory enumerates the reasons a language expert may pick
// when rejecting a translation.
type RejectionCategory struct {
	gorm.Model
	Key   string `json:"key" gorm:"uniqueIndex;not null"`
	Label string `json:"label" gorm:"not null"`
}

// Preference is a per-user key-value setting, e.g. the last used
// translation workflow or target language per project.
type Preference struct {
	gorm.Model
	UserID uint   `json:"userId" gorm:"index:idx_pref_user_key,unique;not null"`
	Key    string `json:"key" gorm:"index:idx_pref_user_key,unique;not null"`
	Value  string `json:"value" gorm:"type:text"`
}
