package services

import (
	"github.com/translationdesk/platform-go/archive"
	"github.com/translationdesk/platform-go/kafka"
	"github.com/translationdesk/platform-go/repositories"
	"github.com/translationdesk/platform-go/translator"
	"github.com/translationdesk/platform-go/websocket"
)

// Deps bundles the collaborators services need besides repositories.
type Deps struct {
	Repos      *repositories.Repos
	Hub        *websocket.Hub
	Producer   kafka.TicketEventProducer
	Translator translator.Translator
	Archiver   archive.Archiver
}

type Services struct {
	Ticket        *TicketService
	Translation   *TranslationService
	Verification  *VerificationService
	Pending       *PendingService
	Project       *ProjectService
	User          *UserService
	StandardReply *StandardReplyService
}

func New(deps Deps) *Services {
	return &Services{
		Ticket:        NewTicketService(deps),
		Translation:   NewTranslationService(deps),
		Verification:  NewVerificationService(deps),
		Pending:       NewPendingService(deps),
		Project:       NewProjectService(deps),
		User:          NewUserService(deps),
		StandardReply: NewStandardReplyService(deps),
	}
}
