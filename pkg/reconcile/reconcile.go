// Package reconcile merges asynchronous verification and rejection
// push events into a locally held translation sequence. Apply is a
// pure reducer so sessions can replay events without any transport
// or storage dependency.
package reconcile

import (
	"time"

	"github.com/translationdesk/platform-go/models"
)

// EventKind selects which fields of a delta the event owns.
type EventKind string

const (
	KindVerification EventKind = "verification"
	KindRejection    EventKind = "rejection"
)

// Delta amends a single translation entry, matched by ID.
type Delta struct {
	ID                string    `json:"id"`
	VerifiedText      string    `json:"verifiedText,omitempty"`
	RejectionCategory string    `json:"rejectionCategory,omitempty"`
	RejectionReason   string    `json:"reason,omitempty"`
	Date              time.Time `json:"date"`
}

// Event is one verification or rejection push for a ticket.
type Event struct {
	TicketID     string              `json:"ticketId"`
	TicketStatus models.TicketStatus `json:"ticketStatus"`
	Kind         EventKind           `json:"kind"`
	Deltas       []Delta             `json:"deltas"`
}

// View is the slice of ticket state a session mirrors.
type View struct {
	TicketID     string               `json:"ticketId"`
	TicketStatus models.TicketStatus  `json:"ticketStatus"`
	Translations []models.Translation `json:"translations"`
}

// Apply merges ev into view and returns the merged copy plus whether
// anything changed. The input view is never mutated.
//
// Events for a different ticket are ignored. Entries with no matching
// delta pass through unchanged, in their original order. A
// verification delta owns translatedText, status, and date; a
// rejection delta owns rejectionCategory, rejectionReason, status,
// and date. All other entry fields stay local.
func Apply(view View, ev Event) (View, bool) {
	if ev.TicketID != view.TicketID {
		return view, false
	}

	byID := make(map[string]Delta, len(ev.Deltas))
	for _, d := range ev.Deltas {
		byID[d.ID] = d
	}

	out := View{
		TicketID:     view.TicketID,
		TicketStatus: ev.TicketStatus,
		Translations: make([]models.Translation, len(view.Translations)),
	}
	copy(out.Translations, view.Translations)

	changed := out.TicketStatus != view.TicketStatus
	for i := range out.Translations {
		d, ok := byID[out.Translations[i].ID]
		if !ok {
			continue
		}
		if applyDelta(&out.Translations[i], ev.Kind, d) {
			changed = true
		}
	}
	return out, changed
}

func applyDelta(entry *models.Translation, kind EventKind, d Delta) bool {
	switch kind {
	case KindVerification:
		if entry.Status == models.TranslationVerified &&
			entry.TranslatedText == d.VerifiedText &&
			entry.Date.Equal(d.Date) {
			return false
		}
		entry.TranslatedText = d.VerifiedText
		entry.Status = models.TranslationVerified
		entry.Date = d.Date
		return true

	case KindRejection:
		if entry.Status == models.TranslationRejected &&
			entry.RejectionCategory == d.RejectionCategory &&
			entry.RejectionReason == d.RejectionReason &&
			entry.Date.Equal(d.Date) {
			return false
		}
		entry.RejectionCategory = d.RejectionCategory
		entry.RejectionReason = d.RejectionReason
		entry.Status = models.TranslationRejected
		entry.Date = d.Date
		return true
	}
	return false
}
