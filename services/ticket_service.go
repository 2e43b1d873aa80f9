package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/translationdesk/platform-go/config"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/kafka"
	"github.com/translationdesk/platform-go/models"
	"github.com/translationdesk/platform-go/pkg/workflow"
	"github.com/translationdesk/platform-go/translator"
)

// PrefLastTranslation is the user preference key holding the
// quick-fill snapshot of the last closed ticket's final reply.
const PrefLastTranslation = "lastTranslation"

type TicketService struct {
	deps Deps
}

func NewTicketService(deps Deps) *TicketService {
	return &TicketService{deps: deps}
}

func (s *TicketService) CreateTicket(ctx context.Context, userID uint, input dto.CreateTicketDTO) (*models.Ticket, error) {
	project, err := s.deps.Repos.Project.GetByID(input.ProjectID)
	if err != nil {
		return nil, err
	}

	sla := config.SLA.ProfileFor(project.Name)
	minutes := project.SLAMinutes
	if minutes == 0 {
		minutes = sla.Minutes
	}
	deadline := time.Now().Add(time.Duration(minutes) * time.Minute)

	source := input.Source
	if source == "" {
		source = models.SourceWeb
	}

	ticket := &models.Ticket{
		ID:                  uuid.NewString(),
		ClientID:            input.ClientID,
		ProjectID:           input.ProjectID,
		Status:              models.TicketOpen,
		OriginalLanguage:    input.OriginalLanguage,
		TicketNumber:        input.TicketNumber,
		TicketURL:           input.TicketURL,
		AgentID:             &userID,
		TranslationWorkflow: defaultWorkflow(project),
		Source:              source,
		Deadline:            &deadline,
	}
	if err := s.deps.Repos.Ticket.Create(ticket); err != nil {
		return nil, err
	}

	if input.Text != "" {
		if err := s.translateOriginal(ctx, ticket, project, input.Text); err != nil {
			return nil, err
		}
	}

	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTicketCreated, map[string]interface{}{
		"ticketId":  ticket.ID,
		"projectId": ticket.ProjectID,
		"agentId":   userID,
	})
	return s.deps.Repos.Ticket.GetByID(ticket.ID)
}

// translateOriginal machine-translates the customer's first message
// into the agent's working language and records the detected source
// language on autodetect projects.
func (s *TicketService) translateOriginal(ctx context.Context, ticket *models.Ticket, project *models.Project, text string) error {
	req := translator.Request{Text: text, TargetLanguage: "en"}
	if !project.LanguageAutodetection {
		req.SourceLanguage = ticket.OriginalLanguage
	}

	res, err := s.deps.Translator.Translate(ctx, req)
	if err != nil {
		return err
	}

	entry := &models.Translation{
		ID:             uuid.NewString(),
		TicketID:       ticket.ID,
		Seq:            0,
		Type:           models.TranslationOriginal,
		Text:           text,
		TranslatedText: res.TranslatedText,
		SourceLanguage: res.DetectedLanguage,
		TargetLanguage: req.TargetLanguage,
		Status:         models.TranslationMachineTranslated,
		Date:           time.Now(),
	}
	if entry.SourceLanguage == "" {
		entry.SourceLanguage = ticket.OriginalLanguage
	}
	if err := s.deps.Repos.Translation.Create(entry); err != nil {
		return err
	}

	if project.LanguageAutodetection && ticket.OriginalLanguage == "" && res.DetectedLanguage != "" {
		return s.deps.Repos.Ticket.UpdateFields(ticket.ID, map[string]interface{}{
			"original_language": res.DetectedLanguage,
		})
	}
	return nil
}

func (s *TicketService) GetTicket(id string) (*models.Ticket, error) {
	return s.deps.Repos.Ticket.GetByID(id)
}

func (s *TicketService) ListTickets(query dto.TicketListQuery) ([]models.Ticket, int64, error) {
	filter := repoFilterFromQuery(query)
	return s.deps.Repos.Ticket.List(filter)
}

// SaveTicket persists editable ticket details. A workflow change is
// checked against the workflows the project enables.
func (s *TicketService) SaveTicket(id string, input dto.SaveTicketDTO) (*models.Ticket, error) {
	ticket, err := s.deps.Repos.Ticket.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketClosed {
		return nil, errs.ErrTicketClosed
	}

	if input.TranslationWorkflow != "" && input.TranslationWorkflow != ticket.TranslationWorkflow {
		if !ticket.Project.HasWorkflow(input.TranslationWorkflow) {
			return nil, errs.ErrWorkflowDisabled
		}
		ticket.TranslationWorkflow = input.TranslationWorkflow
	}
	if input.TicketNumber != "" {
		ticket.TicketNumber = input.TicketNumber
	}
	if input.TicketURL != "" {
		ticket.TicketURL = input.TicketURL
	}
	if input.OriginalLanguage != "" {
		ticket.OriginalLanguage = input.OriginalLanguage
	}

	if err := s.deps.Repos.Ticket.Update(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// CloseTicket validates the close-specific required details, closes
// the ticket, refreshes the caller's quick-fill cache, and archives a
// snapshot. The ticket also leaves the agent's rejected counter.
func (s *TicketService) CloseTicket(ctx context.Context, userID uint, id string, input dto.CloseTicketDTO) (*models.Ticket, error) {
	ticket, err := s.deps.Repos.Ticket.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == models.TicketClosed {
		return nil, errs.ErrTicketClosed
	}

	if input.TicketNumber != "" {
		ticket.TicketNumber = input.TicketNumber
	}
	if input.TicketURL != "" {
		ticket.TicketURL = input.TicketURL
	}
	if ticket.Project.RequiresDetail(models.TicketDetailNumber) && ticket.TicketNumber == "" {
		return nil, errs.ErrRequired
	}
	if ticket.Project.RequiresDetail(models.TicketDetailURL) && ticket.TicketURL == "" {
		return nil, errs.ErrRequired
	}

	ticket.Status = models.TicketClosed
	if err := s.deps.Repos.Ticket.Update(ticket); err != nil {
		return nil, err
	}

	s.cacheLastTranslation(userID, ticket)
	if ticket.AgentID != nil {
		s.deps.Hub.ClearRejected(*ticket.AgentID, ticket.ID)
	}

	go func(snapshot models.Ticket) {
		actx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.deps.Archiver.ArchiveTicket(actx, &snapshot); err != nil {
			log.Printf("ticket %s: archive: %v", snapshot.ID, err)
		}
	}(*ticket)

	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTicketClosed, map[string]interface{}{
		"ticketId": ticket.ID,
		"userId":   userID,
	})
	return ticket, nil
}

// cacheLastTranslation stores the closing ticket's final reply so the
// next "start new ticket" form can prefill from it.
func (s *TicketService) cacheLastTranslation(userID uint, ticket *models.Ticket) {
	last := ticket.LastTranslation()
	if last == nil || last.Type != models.TranslationReply {
		return
	}
	snapshot, err := json.Marshal(map[string]string{
		"text":           last.Text,
		"targetLanguage": last.TargetLanguage,
		"workflow":       string(ticket.TranslationWorkflow),
	})
	if err != nil {
		return
	}
	if err := s.deps.Repos.Preference.Set(userID, PrefLastTranslation, string(snapshot)); err != nil {
		log.Printf("ticket %s: cache last translation: %v", ticket.ID, err)
	}
}

func (s *TicketService) ReopenTicket(ctx context.Context, id string) (*models.Ticket, error) {
	ticket, err := s.deps.Repos.Ticket.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ticket.Status != models.TicketClosed {
		return nil, errs.ErrInvalidTransition
	}

	ticket.Status = models.TicketOpen
	if err := s.deps.Repos.Ticket.Update(ticket); err != nil {
		return nil, err
	}

	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTicketReopened, map[string]interface{}{
		"ticketId": ticket.ID,
	})
	return ticket, nil
}

// MarkCopied records that the agent copied the reply to the live
// channel.
func (s *TicketService) MarkCopied(ctx context.Context, ticketID, translationID string) error {
	entry, err := s.deps.Repos.Translation.GetByID(translationID)
	if err != nil {
		return err
	}
	if entry.TicketID != ticketID {
		return errs.ErrTranslationNotFound
	}
	entry.Copied = true
	if err := s.deps.Repos.Translation.Update(entry); err != nil {
		return err
	}

	s.deps.Producer.ProduceTicketEvent(ctx, kafka.EventTranslationCopied, map[string]interface{}{
		"ticketId":      ticketID,
		"translationId": translationID,
	})
	return nil
}

// DeleteTranslation removes the last entry of an open ticket. When
// the removed entry was the sole ORIGINAL one on an autodetect
// project, the ticket's original-language selection is cleared too.
func (s *TicketService) DeleteTranslation(ticketID, translationID string) (*models.Ticket, error) {
	ticket, err := s.deps.Repos.Ticket.GetByID(ticketID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range ticket.Translations {
		if ticket.Translations[i].ID == translationID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, errs.ErrTranslationNotFound
	}
	if err := workflow.CanDeleteEntry(ticket, index); err != nil {
		return nil, err
	}

	clearLanguage := workflow.ClearsOriginalLanguage(ticket, index, ticket.Project.LanguageAutodetection)

	if err := s.deps.Repos.Translation.Delete(translationID); err != nil {
		return nil, err
	}
	if clearLanguage {
		if err := s.deps.Repos.Ticket.UpdateFields(ticket.ID, map[string]interface{}{
			"original_language": "",
		}); err != nil {
			return nil, err
		}
	}
	return s.deps.Repos.Ticket.GetByID(ticketID)
}

func defaultWorkflow(project *models.Project) models.Workflow {
	if project.HasWorkflow(models.WorkflowSupervised) {
		return models.WorkflowSupervised
	}
	return models.WorkflowUnsupervised
}
