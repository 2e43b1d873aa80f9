package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/kafka"
	"github.com/translationdesk/platform-go/models"
	"github.com/translationdesk/platform-go/pkg/workflow"
	"github.com/translationdesk/platform-go/translator"
)

type TranslationService struct {
	deps Deps
}

func NewTranslationService(deps Deps) *TranslationService {
	return &TranslationService{deps: deps}
}

// SubmitReply translates and records an agent reply. A supervised
// submission can come back unsupervised: when the translator's
// confidence clears the project threshold the entry is auto-verified
// and marked copied instead of entering the verification queue. The
// response reports the workflow actually applied so callers can
// re-route.
func (s *TranslationService) SubmitReply(ctx context.Context, userID uint, ticketID string, input dto.SubmitTranslationDTO) (*dto.SubmitTranslationResponse, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, errs.ErrRequired
	}

	ticket, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketClosed {
		return nil, errs.ErrTicketClosed
	}

	requested := input.Workflow
	if requested == "" {
		requested = ticket.TranslationWorkflow
	}
	if !ticket.Project.HasWorkflow(requested) {
		return nil, errs.ErrWorkflowDisabled
	}

	targetLanguage := input.TargetLanguage
	if targetLanguage == "" {
		targetLanguage = ticket.OriginalLanguage
	}

	res, err := s.deps.Translator.Translate(ctx, translator.Request{
		Text:           input.Text,
		TargetLanguage: targetLanguage,
	})
	if err != nil {
		return nil, err
	}

	action, effective := s.resolveAction(ticket, requested, res.Confidence)
	outcome, err := workflow.Next("", action)
	if err != nil {
		return nil, err
	}

	seq, err := s.deps.Repos.Translation.NextSeq(ticketID)
	if err != nil {
		return nil, err
	}

	entry := models.Translation{
		ID:             uuid.NewString(),
		TicketID:       ticketID,
		Seq:            seq,
		Type:           input.Type,
		Text:           input.Text,
		TranslatedText: res.TranslatedText,
		TargetLanguage: targetLanguage,
		Status:         outcome.Status,
		Date:           time.Now(),
		Copied:         outcome.Copied,
		WithConfidence: outcome.WithConfidence,
		SenderID:       &userID,
	}
	if err := s.deps.Repos.Translation.Create(&entry); err != nil {
		return nil, err
	}

	if err := s.finishSubmission(ctx, ticket, effective, action, userID); err != nil {
		return nil, err
	}

	updated, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitTranslationResponse{
		Ticket:              updated,
		Translation:         entry,
		TranslationWorkflow: effective,
	}, nil
}

// resolveAction maps the requested workflow to the entry action,
// flipping a supervised request to the confidence path when the score
// clears the project threshold.
func (s *TranslationService) resolveAction(ticket *models.Ticket, requested models.Workflow, confidence float64) (workflow.Action, models.Workflow) {
	if requested == models.WorkflowUnsupervised {
		return workflow.ActionSubmitUnsupervised, models.WorkflowUnsupervised
	}
	if confidence >= ticket.Project.ConfidenceThreshold && ticket.Project.HasWorkflow(models.WorkflowUnsupervised) {
		return workflow.ActionConfidenceVerify, models.WorkflowUnsupervised
	}
	return workflow.ActionSubmitSupervised, models.WorkflowSupervised
}

func (s *TranslationService) finishSubmission(ctx context.Context, ticket *models.Ticket, effective models.Workflow, action workflow.Action, userID uint) error {
	changes := map[string]interface{}{
		"translation_workflow": effective,
	}

	switch action {
	case workflow.ActionSubmitSupervised:
		changes["status"] = models.TicketVerificationPending
		s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventVerificationRequested, map[string]interface{}{
			"ticketId": ticket.ID,
			"agentId":  userID,
		})
	default:
		changes["status"] = workflow.TicketStatusAfter(action, ticket.HasPendingVerification())
	}

	if err := s.deps.Repos.Ticket.UpdateFields(ticket.ID, changes); err != nil {
		return err
	}

	// resubmission always removes the ticket from the agent's
	// rejected counter
	if ticket.AgentID != nil {
		s.deps.Hub.ClearRejected(*ticket.AgentID, ticket.ID)
	}

	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTranslationSubmitted, map[string]interface{}{
		"ticketId": ticket.ID,
		"workflow": string(effective),
	})
	s.broadcastPendingCount()
	return nil
}

// ResendRejected rewrites a rejected reply and puts it back in the
// verification queue. The entry keeps its identifier but moves to the
// end of the sequence, with its rejection fields cleared.
func (s *TranslationService) ResendRejected(ctx context.Context, userID uint, ticketID, translationID string, input dto.ResendTranslationDTO) (*dto.SubmitTranslationResponse, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, errs.ErrRequired
	}

	ticket, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketClosed {
		return nil, errs.ErrTicketClosed
	}

	entry, err := s.deps.Repos.Translation.GetByID(translationID)
	if err != nil {
		return nil, err
	}
	if entry.TicketID != ticketID {
		return nil, errs.ErrTranslationNotFound
	}

	outcome, err := workflow.Next(entry.Status, workflow.ActionResend)
	if err != nil {
		return nil, err
	}

	res, err := s.deps.Translator.Translate(ctx, translator.Request{
		Text:           input.Text,
		TargetLanguage: entry.TargetLanguage,
	})
	if err != nil {
		return nil, err
	}

	action, effective := s.resolveAction(ticket, models.WorkflowSupervised, res.Confidence)
	if action == workflow.ActionConfidenceVerify {
		outcome, _ = workflow.Next("", workflow.ActionConfidenceVerify)
	} else {
		action = workflow.ActionResend
	}

	seq, err := s.deps.Repos.Translation.NextSeq(ticketID)
	if err != nil {
		return nil, err
	}

	entry.Seq = seq
	entry.Text = input.Text
	entry.TranslatedText = res.TranslatedText
	entry.Status = outcome.Status
	entry.Copied = outcome.Copied
	entry.WithConfidence = outcome.WithConfidence
	entry.RejectionCategory = ""
	entry.RejectionReason = ""
	entry.Date = time.Now()
	if err := s.deps.Repos.Translation.Update(entry); err != nil {
		return nil, err
	}

	if err := s.finishSubmission(ctx, ticket, effective, actionForFinish(action), userID); err != nil {
		return nil, err
	}

	updated, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	return &dto.SubmitTranslationResponse{
		Ticket:              updated,
		Translation:         *entry,
		TranslationWorkflow: effective,
	}, nil
}

// actionForFinish folds a resend into the supervised submission path
// for ticket-level status handling.
func actionForFinish(action workflow.Action) workflow.Action {
	if action == workflow.ActionResend {
		return workflow.ActionSubmitSupervised
	}
	return action
}

func (s *TranslationService) broadcastPendingCount() {
	_, total, err := s.deps.Repos.Ticket.List(repositoriesPendingFilter())
	if err != nil {
		return
	}
	s.deps.Hub.BroadcastPendingCount(int(total))
}
