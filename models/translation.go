package models

import (
	"time"

	"gorm.io/gorm"
)

type TranslationStatus string

const (
	TranslationMachineTranslated   TranslationStatus = "MACHINE_TRANSLATED"
	TranslationPendingVerification TranslationStatus = "PENDING_VERIFICATION"
	TranslationVerified            TranslationStatus = "VERIFIED"
	TranslationRejected            TranslationStatus = "REJECTED"
)

type TranslationType string

const (
	TranslationOriginal TranslationType = "ORIGINAL"
	TranslationReply    TranslationType = "REPLY"
)

type Translation struct {
	ID        string         `json:"id" gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	TicketID string `json:"ticketId" gorm:"type:uuid;index;not null"`

	// Seq orders entries within a ticket. A resent rejected entry keeps
	// its ID but is moved to the highest Seq.
	Seq int `json:"seq" gorm:"index;not null"`

	Type           TranslationType   `json:"type" gorm:"type:varchar(16);not null"`
	Text           string            `json:"text" gorm:"type:text;not null"`
	TranslatedText string            `json:"translatedText" gorm:"type:text"`
	SourceLanguage string            `json:"sourceLanguage" gorm:"type:varchar(16)"`
	TargetLanguage string            `json:"targetLanguage" gorm:"type:varchar(16)"`
	Status         TranslationStatus `json:"status" gorm:"type:varchar(32);index;not null"`

	RejectionCategory string `json:"rejectionCategory,omitempty" gorm:"type:varchar(64)"`
	RejectionReason   string `json:"rejectionReason,omitempty" gorm:"type:text"`

	// Date is the moment the current status was set, carried separately
	// from UpdatedAt so push events can preserve the decision time.
	Date time.Time `json:"date"`

	Copied         bool `json:"copied" gorm:"default:false"`
	WithConfidence bool `json:"withConfidence" gorm:"default:false"`

	SenderID *uint `json:"senderId" gorm:"index"`
	Sender   *User `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
}
