package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/translationdesk/platform-go/models"
)

func sampleView() View {
	return View{
		TicketID:     "ticket-1",
		TicketStatus: models.TicketVerificationPending,
		Translations: []models.Translation{
			{ID: "t1", Type: models.TranslationOriginal, Text: "hola", TranslatedText: "hello", Status: models.TranslationMachineTranslated},
			{ID: "t2", Type: models.TranslationReply, Text: "thanks", Status: models.TranslationPendingVerification},
		},
	}
}

func TestApply_VerificationOwnsItsFields(t *testing.T) {
	view := sampleView()
	date := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	merged, changed := Apply(view, Event{
		TicketID:     "ticket-1",
		TicketStatus: models.TicketVerified,
		Kind:         KindVerification,
		Deltas:       []Delta{{ID: "t2", VerifiedText: "gracias", Date: date}},
	})

	assert.True(t, changed)
	assert.Equal(t, models.TicketVerified, merged.TicketStatus)

	entry := merged.Translations[1]
	assert.Equal(t, "gracias", entry.TranslatedText)
	assert.Equal(t, models.TranslationVerified, entry.Status)
	assert.Equal(t, date, entry.Date)
	// local fields stay local
	assert.Equal(t, "thanks", entry.Text)
	assert.Empty(t, entry.RejectionCategory)
	assert.Empty(t, entry.RejectionReason)

	// untouched entry passes through
	assert.Equal(t, view.Translations[0], merged.Translations[0])
}

func TestApply_RejectionPopulatesRejectionFields(t *testing.T) {
	view := sampleView()
	date := time.Date(2026, 3, 4, 11, 0, 0, 0, time.UTC)

	merged, changed := Apply(view, Event{
		TicketID:     "ticket-1",
		TicketStatus: models.TicketRejected,
		Kind:         KindRejection,
		Deltas:       []Delta{{ID: "t2", RejectionCategory: "terminology", RejectionReason: "wrong term", Date: date}},
	})

	assert.True(t, changed)
	assert.Equal(t, models.TicketRejected, merged.TicketStatus)

	entry := merged.Translations[1]
	assert.Equal(t, models.TranslationRejected, entry.Status)
	assert.Equal(t, "terminology", entry.RejectionCategory)
	assert.Equal(t, "wrong term", entry.RejectionReason)
	assert.Equal(t, date, entry.Date)
}

func TestApply_Idempotent(t *testing.T) {
	view := sampleView()
	ev := Event{
		TicketID:     "ticket-1",
		TicketStatus: models.TicketVerified,
		Kind:         KindVerification,
		Deltas:       []Delta{{ID: "t2", VerifiedText: "gracias", Date: time.Now().UTC()}},
	}

	once, changed := Apply(view, ev)
	require.True(t, changed)

	twice, changedAgain := Apply(once, ev)
	assert.False(t, changedAgain)
	assert.Equal(t, once, twice)
}

func TestApply_NeverReordersOrRetypes(t *testing.T) {
	view := sampleView()
	merged, _ := Apply(view, Event{
		TicketID:     "ticket-1",
		TicketStatus: models.TicketVerified,
		Kind:         KindVerification,
		Deltas: []Delta{
			{ID: "t2", VerifiedText: "b"},
			{ID: "t1", VerifiedText: "a"},
		},
	})

	require.Len(t, merged.Translations, 2)
	assert.Equal(t, "t1", merged.Translations[0].ID)
	assert.Equal(t, "t2", merged.Translations[1].ID)
	assert.Equal(t, models.TranslationOriginal, merged.Translations[0].Type)
	assert.Equal(t, models.TranslationReply, merged.Translations[1].Type)
}

func TestApply_ForeignTicketIgnored(t *testing.T) {
	view := sampleView()
	merged, changed := Apply(view, Event{
		TicketID:     "ticket-other",
		TicketStatus: models.TicketClosed,
		Kind:         KindRejection,
		Deltas:       []Delta{{ID: "t2", RejectionReason: "nope"}},
	})

	assert.False(t, changed)
	assert.Equal(t, view, merged)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	view := sampleView()
	_, _ = Apply(view, Event{
		TicketID:     "ticket-1",
		TicketStatus: models.TicketVerified,
		Kind:         KindVerification,
		Deltas:       []Delta{{ID: "t2", VerifiedText: "changed"}},
	})

	assert.Equal(t, models.TicketVerificationPending, view.TicketStatus)
	assert.Empty(t, view.Translations[1].TranslatedText)
	assert.Equal(t, models.TranslationPendingVerification, view.Translations[1].Status)
}

func TestApply_UnknownDeltaIDsAreSkipped(t *testing.T) {
	view := sampleView()
	merged, changed := Apply(view, Event{
		TicketID:     "ticket-1",
		TicketStatus: view.TicketStatus,
		Kind:         KindVerification,
		Deltas:       []Delta{{ID: "missing", VerifiedText: "x"}},
	})

	assert.False(t, changed)
	assert.Equal(t, view.Translations, merged.Translations)
}
