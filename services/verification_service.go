package services

import (
	"context"
	"time"

	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/kafka"
	"github.com/translationdesk/platform-go/models"
	"github.com/translationdesk/platform-go/pkg/reconcile"
	"github.com/translationdesk/platform-go/pkg/workflow"
)

type VerificationService struct {
	deps Deps
}

func NewVerificationService(deps Deps) *VerificationService {
	return &VerificationService{deps: deps}
}

// StartVerification claims a pending ticket for a language expert so
// two experts do not review the same reply.
func (s *VerificationService) StartVerification(expertID uint, ticketID string) (*models.Ticket, error) {
	ticket, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.Status != models.TicketVerificationPending {
		return nil, errs.ErrInvalidTransition
	}

	ticket.Status = models.TicketVerificationInProgress
	ticket.LanguageExpertID = &expertID
	if err := s.deps.Repos.Ticket.Update(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// Verify approves a pending reply. The decision is pushed to every
// session mirroring the ticket as a verification event.
func (s *VerificationService) Verify(ctx context.Context, expertID uint, ticketID, translationID string, input dto.VerifyTranslationDTO) (*models.Ticket, error) {
	ticket, entry, err := s.loadPendingEntry(ticketID, translationID)
	if err != nil {
		return nil, err
	}

	outcome, err := workflow.Next(entry.Status, workflow.ActionVerify)
	if err != nil {
		return nil, err
	}

	if input.TranslatedText != "" {
		entry.TranslatedText = input.TranslatedText
	}
	entry.Status = outcome.Status
	entry.Date = time.Now()
	if err := s.deps.Repos.Translation.Update(entry); err != nil {
		return nil, err
	}

	othersPending := false
	for i := range ticket.Translations {
		t := &ticket.Translations[i]
		if t.ID != entry.ID && t.Status == models.TranslationPendingVerification {
			othersPending = true
			break
		}
	}
	status := workflow.TicketStatusAfter(workflow.ActionVerify, othersPending)
	if err := s.deps.Repos.Ticket.UpdateFields(ticket.ID, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}

	s.deps.Hub.Publish(reconcile.Event{
		TicketID:     ticket.ID,
		TicketStatus: status,
		Kind:         reconcile.KindVerification,
		Deltas: []reconcile.Delta{{
			ID:           entry.ID,
			VerifiedText: entry.TranslatedText,
			Date:         entry.Date,
		}},
	})
	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTranslationVerified, map[string]interface{}{
		"ticketId":      ticket.ID,
		"translationId": entry.ID,
		"expertId":      expertID,
	})
	s.broadcastPendingCount()

	return s.deps.Repos.Ticket.GetByID(ticket.ID)
}

// Reject sends a pending reply back to the agent with a category and
// reason, pushes the rejection event, and bumps the agent's rejected
// counter.
func (s *VerificationService) Reject(ctx context.Context, expertID uint, ticketID, translationID string, input dto.RejectTranslationDTO) (*models.Ticket, error) {
	ticket, entry, err := s.loadPendingEntry(ticketID, translationID)
	if err != nil {
		return nil, err
	}

	outcome, err := workflow.Next(entry.Status, workflow.ActionReject)
	if err != nil {
		return nil, err
	}

	entry.Status = outcome.Status
	entry.RejectionCategory = input.RejectionCategory
	entry.RejectionReason = input.RejectionReason
	entry.Date = time.Now()
	if err := s.deps.Repos.Translation.Update(entry); err != nil {
		return nil, err
	}

	status := workflow.TicketStatusAfter(workflow.ActionReject, false)
	if err := s.deps.Repos.Ticket.UpdateFields(ticket.ID, map[string]interface{}{"status": status}); err != nil {
		return nil, err
	}

	s.deps.Hub.Publish(reconcile.Event{
		TicketID:     ticket.ID,
		TicketStatus: status,
		Kind:         reconcile.KindRejection,
		Deltas: []reconcile.Delta{{
			ID:                entry.ID,
			RejectionCategory: entry.RejectionCategory,
			RejectionReason:   entry.RejectionReason,
			Date:              entry.Date,
		}},
	})
	if ticket.AgentID != nil {
		s.deps.Hub.MarkRejected(*ticket.AgentID, ticket.ID)
	}
	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTranslationRejected, map[string]interface{}{
		"ticketId":      ticket.ID,
		"translationId": entry.ID,
		"expertId":      expertID,
		"category":      input.RejectionCategory,
	})
	s.broadcastPendingCount()

	return s.deps.Repos.Ticket.GetByID(ticket.ID)
}

// ListVerified returns tickets the expert has already processed.
func (s *VerificationService) ListVerified(expertID uint, query dto.TicketListQuery) ([]models.Ticket, int64, error) {
	filter := repoFilterFromQuery(query)
	filter.Statuses = []models.TicketStatus{models.TicketVerified, models.TicketRejected}
	filter.LanguageExpertID = expertID
	return s.deps.Repos.Ticket.List(filter)
}

func (s *VerificationService) RejectionCategories() ([]models.RejectionCategory, error) {
	return s.deps.Repos.RejectionCategory.List()
}

func (s *VerificationService) loadPendingEntry(ticketID, translationID string) (*models.Ticket, *models.Translation, error) {
	ticket, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, nil, err
	}
	if ticket.Status == models.TicketClosed {
		return nil, nil, errs.ErrTicketClosed
	}

	entry, err := s.deps.Repos.Translation.GetByID(translationID)
	if err != nil {
		return nil, nil, err
	}
	if entry.TicketID != ticketID {
		return nil, nil, errs.ErrTranslationNotFound
	}
	return ticket, entry, nil
}

func (s *VerificationService) broadcastPendingCount() {
	_, total, err := s.deps.Repos.Ticket.List(repositoriesPendingFilter())
	if err != nil {
		return
	}
	s.deps.Hub.BroadcastPendingCount(int(total))
}
