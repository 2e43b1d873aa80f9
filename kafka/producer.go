package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Ticket event names published to the broker.
const (
	EventTicketCreated         = "ticket.created"
	EventTicketClosed          = "ticket.closed"
	EventTicketReopened        = "ticket.reopened"
	EventTicketReassigned      = "ticket.reassigned"
	EventTicketAbandoned       = "ticket.abandoned"
	EventTranslationSubmitted  = "translation.submitted"
	EventTranslationCopied     = "translation.copied"
	EventTranslationVerified   = "translation.verified"
	EventTranslationRejected   = "translation.rejected"
	EventVerificationRequested = "verification.requested"
)

// TicketEventProducer is the queue/acknowledgement collaborator used
// by services. Swappable with a fake in tests.
type TicketEventProducer interface {
	ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{})
}

// Producer writes ticket events to a Kafka topic. Best effort: it
// never blocks a request on broker errors, it only logs them.
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer returns a producer. With no brokers or an empty topic
// every method is a no-op, so local setups run without Kafka.
func NewProducer(brokers []string, topic string) *Producer {
	if len(brokers) == 0 || topic == "" {
		return &Producer{}
	}
	return &Producer{
		topic: topic,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

func (p *Producer) ProduceTicketEvent(ctx context.Context, event string, payload map[string]interface{}) {
	if p.writer == nil {
		return
	}
	msg := map[string]interface{}{"event": event}
	for k, v := range payload {
		msg[k] = v
	}
	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("kafka: marshal ticket event: %v", err)
		return
	}
	if err := p.writer.WriteMessages(ctx, kafka.Message{Value: body}); err != nil {
		log.Printf("kafka: write ticket event: %v", err)
	}
}

func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
