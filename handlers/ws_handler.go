package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	gorilla "github.com/gorilla/websocket"
	"github.com/translationdesk/platform-go/pkg/reconcile"
	"github.com/translationdesk/platform-go/response"
	"github.com/translationdesk/platform-go/services"
	"github.com/translationdesk/platform-go/utils"
	"github.com/translationdesk/platform-go/websocket"
)

var upgrader = gorilla.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub    *websocket.Hub
	ticket *services.TicketService
}

func NewWSHandler(hub *websocket.Hub, ticket *services.TicketService) *WSHandler {
	return &WSHandler{hub: hub, ticket: ticket}
}

// subscribeMessage is the only inbound message clients send: it points
// the session at the ticket whose events they want mirrored.
type subscribeMessage struct {
	Type     string `json:"type"`
	TicketID string `json:"ticketId"`
}

// Subscribe upgrades the connection and runs it until the client goes
// away. Outbound pushes flow through the session's buffered channel;
// a write error tears the connection down.
func (h *WSHandler) Subscribe(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	session := websocket.NewSession(userID)
	h.hub.Register(session)
	defer h.hub.Unregister(session)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		defer conn.Close()
		for {
			select {
			case msg, ok := <-session.Outbound():
				if !ok {
					return
				}
				if err := conn.WriteMessage(gorilla.TextMessage, msg); err != nil {
					cancel()
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			cancel()
			return
		}

		var msg subscribeMessage
		if err := json.Unmarshal(raw, &msg); err != nil || msg.Type != "subscribe" {
			continue
		}

		ticket, err := h.ticket.GetTicket(msg.TicketID)
		if err != nil {
			log.Printf("ws: subscribe ticket %s: %v", msg.TicketID, err)
			continue
		}
		h.hub.Subscribe(session, reconcile.View{
			TicketID:     ticket.ID,
			TicketStatus: ticket.Status,
			Translations: ticket.Translations,
		})
	}
}
