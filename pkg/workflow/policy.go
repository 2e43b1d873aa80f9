// Package workflow holds the translation status transition rules as
// pure functions, so services and handlers share a single source of
// truth for which moves are legal.
package workflow

import (
	"github.com/translationdesk/platform-go/errs"
	"github.com/translationdesk/platform-go/models"
)

// Action is something an agent, expert, or the machine translator does
// to a translation entry.
type Action string

const (
	ActionMachineTranslate   Action = "machineTranslate"
	ActionSubmitSupervised   Action = "submitSupervised"
	ActionSubmitUnsupervised Action = "submitUnsupervised"
	ActionVerify             Action = "verify"
	ActionReject             Action = "reject"
	ActionResend             Action = "resend"
	ActionConfidenceVerify   Action = "confidenceVerify"
)

// Result is the outcome of a legal transition.
type Result struct {
	Status         models.TranslationStatus
	Copied         bool
	WithConfidence bool
}

// Next maps a current entry status plus an action to the resulting
// entry state. Current is empty for actions that create a new entry.
func Next(current models.TranslationStatus, action Action) (Result, error) {
	switch action {
	case ActionMachineTranslate:
		if current != "" {
			return Result{}, errs.ErrInvalidTransition
		}
		return Result{Status: models.TranslationMachineTranslated}, nil

	case ActionSubmitUnsupervised:
		if current != "" {
			return Result{}, errs.ErrInvalidTransition
		}
		return Result{Status: models.TranslationMachineTranslated, Copied: true}, nil

	case ActionSubmitSupervised:
		if current != "" {
			return Result{}, errs.ErrInvalidTransition
		}
		return Result{Status: models.TranslationPendingVerification}, nil

	case ActionVerify:
		if current != models.TranslationPendingVerification {
			return Result{}, errs.ErrInvalidTransition
		}
		return Result{Status: models.TranslationVerified}, nil

	case ActionReject:
		if current != models.TranslationPendingVerification {
			return Result{}, errs.ErrInvalidTransition
		}
		return Result{Status: models.TranslationRejected}, nil

	case ActionResend:
		if current != models.TranslationRejected {
			return Result{}, errs.ErrInvalidTransition
		}
		return Result{Status: models.TranslationPendingVerification}, nil

	case ActionConfidenceVerify:
		// Confidence scoring can flip any reply mid-flight regardless
		// of the status the sender thought it had.
		return Result{Status: models.TranslationVerified, Copied: true, WithConfidence: true}, nil
	}

	return Result{}, errs.ErrInvalidTransition
}

// CanDeleteEntry reports whether the entry at index may be removed
// from the ticket. Only the last entry is deletable and never on a
// closed ticket.
func CanDeleteEntry(ticket *models.Ticket, index int) error {
	if ticket.Status == models.TicketClosed {
		return errs.ErrTicketClosed
	}
	if index != len(ticket.Translations)-1 || index < 0 {
		return errs.ErrNotLastEntry
	}
	return nil
}

// ClearsOriginalLanguage reports whether deleting the entry at index
// must also clear the ticket's original-language selection: the entry
// is the sole ORIGINAL one and the project autodetects languages.
func ClearsOriginalLanguage(ticket *models.Ticket, index int, autodetect bool) bool {
	if !autodetect {
		return false
	}
	if index < 0 || index >= len(ticket.Translations) {
		return false
	}
	if ticket.Translations[index].Type != models.TranslationOriginal {
		return false
	}
	return ticket.OriginalCount() == 1
}

// TicketStatusAfter derives the ticket-level status following an entry
// transition, given whether any other entry still awaits verification.
func TicketStatusAfter(action Action, othersPending bool) models.TicketStatus {
	switch action {
	case ActionSubmitSupervised, ActionResend:
		return models.TicketVerificationPending
	case ActionReject:
		return models.TicketRejected
	case ActionVerify, ActionConfidenceVerify:
		if othersPending {
			return models.TicketVerificationPending
		}
		return models.TicketVerified
	case ActionSubmitUnsupervised:
		// an unsupervised reply must not pull the ticket out of the
		// verification queue while an earlier one still sits in it
		if othersPending {
			return models.TicketVerificationPending
		}
		return models.TicketOpen
	}
	return models.TicketOpen
}
