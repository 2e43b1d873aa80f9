package dto

import "github.com/translationdesk/platform-go/models"

type SubmitTranslationDTO struct {
	Type           models.TranslationType `json:"type" binding:"required,oneof=ORIGINAL REPLY"`
	Text           string                 `json:"text"`
	TargetLanguage string                 `json:"targetLanguage"`
	Workflow       models.Workflow        `json:"workflow" binding:"omitempty,oneof=supervised unsupervised"`
}

type ResendTranslationDTO struct {
	Text string `json:"text"`
}

type RejectTranslationDTO struct {
	RejectionCategory string `json:"rejectionCategory" binding:"required"`
	RejectionReason   string `json:"rejectionReason"`
}

type VerifyTranslationDTO struct {
	TranslatedText string `json:"translatedText"`
}

// SubmitTranslationResponse carries the workflow actually applied by
// the server, which may differ from the one requested when confidence
// scoring flipped the ticket to unsupervised mid-flight.
type SubmitTranslationResponse struct {
	Ticket              *models.Ticket     `json:"ticket"`
	Translation         models.Translation `json:"translation"`
	TranslationWorkflow models.Workflow    `json:"translationWorkflow"`
}
