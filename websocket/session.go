package websocket

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/translationdesk/platform-go/pkg/reconcile"
)

// Session is one connected client. It mirrors the ticket the client
// has open and applies events through the reducer before pushing, so
// the client and server never disagree on merge semantics.
//
// The first event delivered after a subscribe is dropped: it is the
// hub's replay of possibly stale state from before the subscription.
type Session struct {
	id     string
	userID uint

	mu       sync.Mutex
	view     reconcile.View
	sawFirst bool

	writeChan chan []byte
	closeOnce sync.Once
}

func NewSession(userID uint) *Session {
	return &Session{
		id:        uuid.NewString(),
		userID:    userID,
		writeChan: make(chan []byte, 100),
	}
}

// Outbound is drained by the connection's write pump.
func (s *Session) Outbound() <-chan []byte {
	return s.writeChan
}

func (s *Session) UserID() uint { return s.userID }

// View returns a copy of the session's current mirror.
func (s *Session) View() reconcile.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Session) setView(view reconcile.View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
	s.sawFirst = false
}

// deliver merges ev into the mirror and, when the merge changed
// anything, queues a push for the client.
func (s *Session) deliver(ev reconcile.Event) {
	s.mu.Lock()
	if !s.sawFirst {
		s.sawFirst = true
		s.mu.Unlock()
		return
	}

	merged, changed := reconcile.Apply(s.view, ev)
	if !changed {
		s.mu.Unlock()
		return
	}
	s.view = merged
	s.mu.Unlock()

	raw, err := json.Marshal(Message{Type: TypeTicketEvent, Event: &ev, View: &merged})
	if err != nil {
		return
	}
	s.send(raw)
}

// send queues raw without blocking; a slow client just loses the
// message and resynchronizes from the next one.
func (s *Session) send(raw []byte) {
	select {
	case s.writeChan <- raw:
	default:
	}
}

func (s *Session) close() {
	s.closeOnce.Do(func() { close(s.writeChan) })
}
