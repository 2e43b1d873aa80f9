package handlers

import (
	"github.com/translationdesk/platform-go/services"
	"github.com/translationdesk/platform-go/websocket"
)

type Handlers struct {
	Ticket        *TicketHandler
	Translation   *TranslationHandler
	Verification  *VerificationHandler
	Pending       *PendingHandler
	Project       *ProjectHandler
	User          *UserHandler
	StandardReply *StandardReplyHandler
	WS            *WSHandler
}

func New(svc *services.Services, hub *websocket.Hub) *Handlers {
	return &Handlers{
		Ticket:        NewTicketHandler(svc.Ticket),
		Translation:   NewTranslationHandler(svc.Translation),
		Verification:  NewVerificationHandler(svc.Verification),
		Pending:       NewPendingHandler(svc.Pending),
		Project:       NewProjectHandler(svc.Project),
		User:          NewUserHandler(svc.User),
		StandardReply: NewStandardReplyHandler(svc.StandardReply),
		WS:            NewWSHandler(hub, svc.Ticket),
	}
}
