package models

import (
	"time"

	"github.com/google/uuid"
)

// Message is one pending mail in a PC's mailbox.
type Message struct {
	ID         uuid.UUID
	Body       string
	ReceivedAt time.Time
}

// NewMessage stamps a body with a fresh id and the current time.
func NewMessage(body string) Message {
	return Message{
		ID:         uuid.New(),
		Body:       body,
		ReceivedAt: time.Now().UTC(),
	}
}

// mailbox is the FIFO queue of pending messages attached to a PC's mutable
// state. It is unbounded; delivery order is enqueue order. Synchronization is
// the owning entry's concern.
type mailbox struct {
	queue []Message
}

func (m *mailbox) enqueue(msg Message) {
	m.queue = append(m.queue, msg)
}

func (m *mailbox) snapshot() []Message {
	out := make([]Message, len(m.queue))
	copy(out, m.queue)
	return out
}

func (m *mailbox) len() int {
	return len(m.queue)
}
