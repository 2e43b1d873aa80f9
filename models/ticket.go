package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketOpen                   TicketStatus = "OPEN"
	TicketVerificationPending    TicketStatus = "VERIFICATION_PENDING"
	TicketVerificationInProgress TicketStatus = "VERIFICATION_IN_PROGRESS"
	TicketVerified               TicketStatus = "VERIFIED"
	TicketRejected               TicketStatus = "REJECTED"
	TicketClosed                 TicketStatus = "CLOSED"
	TicketInactive               TicketStatus = "INACTIVE"
)

type TicketSource string

const (
	SourceWeb   TicketSource = "web"
	SourceEmail TicketSource = "email"
	SourceAPI   TicketSource = "api"
)

type Ticket struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	ClientID  uint `json:"clientId" gorm:"index;not null"`
	ProjectID uint `json:"projectId" gorm:"index;not null"`

	Status TicketStatus `json:"status" gorm:"type:varchar(32);index;not null"`

	// OriginalLanguage is empty until the first ORIGINAL entry is
	// translated, and cleared again when the sole ORIGINAL entry is
	// deleted on an autodetect project.
	OriginalLanguage string `json:"originalLanguage" gorm:"type:varchar(16)"`

	TicketNumber string `json:"ticketNumber"`
	TicketURL    string `json:"ticketUrl"`

	AgentID          *uint `json:"agentId" gorm:"index"`
	LanguageExpertID *uint `json:"languageExpertId" gorm:"index"`

	TranslationWorkflow Workflow     `json:"translationWorkflow" gorm:"type:varchar(16)"`
	Source              TicketSource `json:"source" gorm:"type:varchar(16)"`

	Deadline   *time.Time `json:"deadline"`
	Reassigned bool       `json:"reassigned" gorm:"default:false"`

	Metadata datatypes.JSON `json:"metadata,omitempty"`

	Client         Client        `json:"client" gorm:"foreignKey:ClientID"`
	Project        Project       `json:"project" gorm:"foreignKey:ProjectID"`
	Agent          *User         `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	LanguageExpert *User         `json:"languageExpert,omitempty" gorm:"foreignKey:LanguageExpertID"`
	Translations   []Translation `json:"translations" gorm:"foreignKey:TicketID"`
}

// LastTranslation returns the newest entry, or nil when none exist.
// Translations are expected to be loaded ordered by Seq.
func (t *Ticket) LastTranslation() *Translation {
	if len(t.Translations) == 0 {
		return nil
	}
	return &t.Translations[len(t.Translations)-1]
}

// HasPendingVerification reports whether any entry still awaits a
// language expert decision.
func (t *Ticket) HasPendingVerification() bool {
	for i := range t.Translations {
		if t.Translations[i].Status == TranslationPendingVerification {
			return true
		}
	}
	return false
}

// OriginalCount returns how many ORIGINAL entries the ticket holds.
func (t *Ticket) OriginalCount() int {
	n := 0
	for i := range t.Translations {
		if t.Translations[i].Type == TranslationOriginal {
			n++
		}
	}
	return n
}
