// Package websocket pushes verification and rejection events to
// connected agent and expert sessions. Each session mirrors the
// ticket it has open and merges incoming events through the
// reconcile reducer before anything is written to the wire.
package websocket

import (
	"encoding/json"
	"sync"

	"github.com/translationdesk/platform-go/pkg/reconcile"
)

// Message is the wire envelope for every push.
type Message struct {
	Type          string           `json:"type"`
	Event         *reconcile.Event `json:"event,omitempty"`
	View          *reconcile.View  `json:"view,omitempty"`
	RejectedCount int              `json:"rejectedCount,omitempty"`
	PendingCount  int              `json:"pendingCount,omitempty"`
	TicketID      string           `json:"ticketId,omitempty"`
}

// Push message types.
const (
	TypeTicketEvent     = "ticketEvent"
	TypeRejectedCount   = "rejectedCount"
	TypePendingCount    = "pendingCount"
	TypeTicketAbandoned = "ticketAbandoned"
)

// Hub fans events out to sessions. It also tracks, per agent, which
// tickets currently hold a rejected reply, so the header counter in
// every client stays consistent without a round trip.
type Hub struct {
	mu        sync.RWMutex
	sessions  map[string]*Session
	byTicket  map[string]map[string]*Session
	lastEvent map[string]reconcile.Event
	rejected  map[uint]map[string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		sessions:  make(map[string]*Session),
		byTicket:  make(map[string]map[string]*Session),
		lastEvent: make(map[string]reconcile.Event),
		rejected:  make(map[uint]map[string]struct{}),
	}
}

func (h *Hub) Register(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[s.id] = s
}

func (h *Hub) Unregister(s *Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, s.id)
	if tid := s.View().TicketID; tid != "" {
		if subs, ok := h.byTicket[tid]; ok {
			delete(subs, s.id)
			if len(subs) == 0 {
				delete(h.byTicket, tid)
			}
		}
	}
	s.close()
}

// Subscribe points a session at a ticket. The last event seen for
// that ticket is replayed so a reconnecting client does not miss the
// latest state; the session skips it as the stale first event.
func (h *Hub) Subscribe(s *Session, view reconcile.View) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if prev := s.View().TicketID; prev != "" && prev != view.TicketID {
		if subs, ok := h.byTicket[prev]; ok {
			delete(subs, s.id)
			if len(subs) == 0 {
				delete(h.byTicket, prev)
			}
		}
	}

	s.setView(view)
	if h.byTicket[view.TicketID] == nil {
		h.byTicket[view.TicketID] = make(map[string]*Session)
	}
	h.byTicket[view.TicketID][s.id] = s

	if last, ok := h.lastEvent[view.TicketID]; ok {
		s.deliver(last)
	}
}

// Publish merges ev into every subscribed session and records it for
// replay. Sessions mirroring a different ticket never see it.
func (h *Hub) Publish(ev reconcile.Event) {
	h.mu.Lock()
	h.lastEvent[ev.TicketID] = ev
	subs := make([]*Session, 0, len(h.byTicket[ev.TicketID]))
	for _, s := range h.byTicket[ev.TicketID] {
		subs = append(subs, s)
	}
	h.mu.Unlock()

	for _, s := range subs {
		s.deliver(ev)
	}
}

// MarkRejected records a rejected reply on one of the agent's tickets
// and pushes the new counter to all of the agent's sessions.
func (h *Hub) MarkRejected(agentID uint, ticketID string) {
	h.mu.Lock()
	if h.rejected[agentID] == nil {
		h.rejected[agentID] = make(map[string]struct{})
	}
	h.rejected[agentID][ticketID] = struct{}{}
	count := len(h.rejected[agentID])
	h.mu.Unlock()

	h.pushToUser(agentID, Message{Type: TypeRejectedCount, RejectedCount: count})
}

// ClearRejected removes a ticket from the agent's rejected counter,
// used when the agent resends or the ticket closes.
func (h *Hub) ClearRejected(agentID uint, ticketID string) {
	h.mu.Lock()
	delete(h.rejected[agentID], ticketID)
	count := len(h.rejected[agentID])
	h.mu.Unlock()

	h.pushToUser(agentID, Message{Type: TypeRejectedCount, RejectedCount: count})
}

// RejectedCount returns how many of the agent's tickets hold a
// rejected reply.
func (h *Hub) RejectedCount(agentID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rejected[agentID])
}

// BroadcastPendingCount pushes the verification-queue size to every
// connected session.
func (h *Hub) BroadcastPendingCount(count int) {
	h.broadcast(Message{Type: TypePendingCount, PendingCount: count})
}

// NotifyAbandoned tells every session that a ticket returned to the
// pool so open queue views refresh.
func (h *Hub) NotifyAbandoned(ticketID string) {
	h.broadcast(Message{Type: TypeTicketAbandoned, TicketID: ticketID})
}

func (h *Hub) pushToUser(userID uint, msg Message) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.sessions {
		if s.userID == userID {
			s.send(raw)
		}
	}
}

func (h *Hub) broadcast(msg Message) {
	raw, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, s := range h.sessions {
		s.send(raw)
	}
}
