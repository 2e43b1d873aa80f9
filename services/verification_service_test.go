package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/translationdesk/platform-go/dto"
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/models"
)

func pendingTicket(f *fixture) {
	f.addProject(1, nil)
	f.addTicket("ticket-1", func(t *models.Ticket) { t.Status = models.TicketVerificationPending })
	f.addEntry(models.Translation{
		ID: "e1", TicketID: "ticket-1", Seq: 0,
		Type: models.TranslationReply, Text: "hi", TranslatedText: "hallo",
		Status: models.TranslationPendingVerification,
	})
}

func TestVerify_ApprovesEntry(t *testing.T) {
	f := newFixture()
	pendingTicket(f)
	svc := NewVerificationService(f.deps)

	ticket, err := svc.Verify(context.Background(), 20, "ticket-1", "e1", dto.VerifyTranslationDTO{})
	require.NoError(t, err)

	entry := ticket.Translations[0]
	assert.Equal(t, models.TranslationVerified, entry.Status)
	assert.Empty(t, entry.RejectionCategory)
	assert.Empty(t, entry.RejectionReason)
	assert.Equal(t, models.TicketVerified, ticket.Status)
}

func TestVerify_ExpertEditsTranslation(t *testing.T) {
	f := newFixture()
	pendingTicket(f)
	svc := NewVerificationService(f.deps)

	ticket, err := svc.Verify(context.Background(), 20, "ticket-1", "e1", dto.VerifyTranslationDTO{
		TranslatedText: "hallo zusammen",
	})
	require.NoError(t, err)
	assert.Equal(t, "hallo zusammen", ticket.Translations[0].TranslatedText)
}

func TestVerify_OtherEntriesStillPending(t *testing.T) {
	f := newFixture()
	pendingTicket(f)
	f.addEntry(models.Translation{
		ID: "e2", TicketID: "ticket-1", Seq: 1,
		Type: models.TranslationReply, Status: models.TranslationPendingVerification,
	})
	svc := NewVerificationService(f.deps)

	ticket, err := svc.Verify(context.Background(), 20, "ticket-1", "e1", dto.VerifyTranslationDTO{})
	require.NoError(t, err)
	assert.Equal(t, models.TicketVerificationPending, ticket.Status)
}

func TestVerify_RequiresPendingEntry(t *testing.T) {
	f := newFixture()
	f.addProject(1, nil)
	f.addTicket("ticket-1", nil)
	f.addEntry(models.Translation{
		ID: "e1", TicketID: "ticket-1", Seq: 0,
		Type: models.TranslationReply, Status: models.TranslationVerified,
	})
	svc := NewVerificationService(f.deps)

	_, err := svc.Verify(context.Background(), 20, "ticket-1", "e1", dto.VerifyTranslationDTO{})
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestReject_PopulatesRejectionFields(t *testing.T) {
	f := newFixture()
	pendingTicket(f)
	svc := NewVerificationService(f.deps)

	ticket, err := svc.Reject(context.Background(), 20, "ticket-1", "e1", dto.RejectTranslationDTO{
		RejectionCategory: "terminology",
		RejectionReason:   "wrong term for product name",
	})
	require.NoError(t, err)

	entry := ticket.Translations[0]
	assert.Equal(t, models.TranslationRejected, entry.Status)
	assert.Equal(t, "terminology", entry.RejectionCategory)
	assert.Equal(t, "wrong term for product name", entry.RejectionReason)
	assert.Equal(t, models.TicketRejected, ticket.Status)
}

func TestReject_BumpsAgentRejectedCounter(t *testing.T) {
	f := newFixture()
	pendingTicket(f)
	svc := NewVerificationService(f.deps)

	_, err := svc.Reject(context.Background(), 20, "ticket-1", "e1", dto.RejectTranslationDTO{
		RejectionCategory: "tone",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, f.hub.RejectedCount(10), "assigned agent's counter incremented")
}

func TestStartVerification_ClaimsTicket(t *testing.T) {
	f := newFixture()
	pendingTicket(f)
	svc := NewVerificationService(f.deps)

	ticket, err := svc.StartVerification(20, "ticket-1")
	require.NoError(t, err)
	assert.Equal(t, models.TicketVerificationInProgress, ticket.Status)
	require.NotNil(t, ticket.LanguageExpertID)
	assert.Equal(t, uint(20), *ticket.LanguageExpertID)

	// a second expert cannot claim it again
	_, err = svc.StartVerification(21, "ticket-1")
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
}

func TestVerify_TranslationFromOtherTicket(t *testing.T) {
	f := newFixture()
	pendingTicket(f)
	f.addTicket("ticket-2", func(tk *models.Ticket) { tk.Status = models.TicketVerificationPending })
	svc := NewVerificationService(f.deps)

	_, err := svc.Verify(context.Background(), 20, "ticket-2", "e1", dto.VerifyTranslationDTO{})
	assert.ErrorIs(t, err, errs.ErrTranslationNotFound)
}
