package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Workflow string

const (
	WorkflowSupervised   Workflow = "supervised"
	WorkflowUnsupervised Workflow = "unsupervised"
)

type ProjectType string

const (
	ProjectTypeCase ProjectType = "case"
	ProjectTypeChat ProjectType = "chat"
)

// Mandatory ticket detail keys a project may require before closing.
const (
	TicketDetailNumber = "number"
	TicketDetailURL    = "url"
)

type Client struct {
	gorm.Model
	Name   string `json:"name" gorm:"uniqueIndex;not null"`
	Active bool   `json:"active" gorm:"default:true"`
}

type Project struct {
	gorm.Model
	ClientID uint        `json:"clientId" gorm:"index;not null"`
	Name     string      `json:"name" gorm:"not null"`
	Type     ProjectType `json:"type" gorm:"type:varchar(16);not null"`
	Active   bool        `json:"active" gorm:"default:true"`

	// Workflows enabled for agents, e.g. ["supervised","unsupervised"].
	Workflows datatypes.JSON `json:"workflows"`
	// Ticket details that must be present before a close is accepted,
	// e.g. ["number"] or ["number","url"].
	MandatoryTicketDetails datatypes.JSON `json:"mandatoryTicketDetails"`

	LanguageAutodetection bool    `json:"languageAutodetection" gorm:"default:false"`
	ConfidenceThreshold   float64 `json:"confidenceThreshold" gorm:"default:1"`
	SLAMinutes            int     `json:"slaMinutes"`
	NearDeadlineMinutes   int     `json:"nearDeadlineMinutes"`

	Client Client `json:"client" gorm:"foreignKey:ClientID"`
}

// HasWorkflow reports whether the project allows the given workflow.
func (p *Project) HasWorkflow(w Workflow) bool {
	return jsonContains(p.Workflows, string(w))
}

// RequiresDetail reports whether the given ticket detail is mandatory.
func (p *Project) RequiresDetail(detail string) bool {
	return jsonContains(p.MandatoryTicketDetails, detail)
}
