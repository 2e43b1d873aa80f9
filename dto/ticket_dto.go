package dto

import "github.com/translationdesk/platform-go/models"

type CreateTicketDTO struct {
	ClientID         uint                `json:"clientId" binding:"required"`
	ProjectID        uint                `json:"projectId" binding:"required"`
	TicketNumber     string              `json:"ticketNumber"`
	TicketURL        string              `json:"ticketUrl"`
	OriginalLanguage string              `json:"originalLanguage"`
	Source           models.TicketSource `json:"source"`
	Text             string              `json:"text"`
}

type SaveTicketDTO struct {
	TicketNumber        string          `json:"ticketNumber"`
	TicketURL           string          `json:"ticketUrl"`
	OriginalLanguage    string          `json:"originalLanguage"`
	TranslationWorkflow models.Workflow `json:"translationWorkflow"`
}

type CloseTicketDTO struct {
	TicketNumber string `json:"ticketNumber"`
	TicketURL    string `json:"ticketUrl"`
}

type TicketListQuery struct {
	Status           string `form:"status"`
	ProjectID        uint   `form:"projectId"`
	ClientID         uint   `form:"clientId"`
	Language         string `form:"language"`
	TargetLanguage   string `form:"targetLanguage"`
	AgentID          uint   `form:"agentId"`
	LanguageExpertID uint   `form:"expertId"`
	Search           string `form:"search"`
	SLAState         string `form:"slaState"`
	SortBy           string `form:"sortBy"`
	Limit            int    `form:"limit"`
	Offset           int    `form:"offset"`
}
