// Package notify publishes accepted form submissions to a message broker.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Message describes an accepted form submission.
type Message struct {
	UnitID        string    `json:"unidade_id"`
	UnitName      string    `json:"nome_unidade"`
	RequesterName string    `json:"nome_solicitante"`
	Events        int       `json:"eventos"`
	Timestamp     time.Time `json:"timestamp"`
}

// Publisher sends submission messages.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// Nop discards all messages.
type Nop struct{}

func (Nop) Publish(context.Context, Message) error { return nil }
func (Nop) Close() error                           { return nil }

var (
	mu        sync.RWMutex
	publisher Publisher = Nop{}
)

// Set replaces the publisher used by Publish and returns the previous one.
// A nil publisher resets to Nop.
func Set(p Publisher) Publisher {
	if p == nil {
		p = Nop{}
	}

	mu.Lock()
	defer mu.Unlock()

	previous := publisher
	publisher = p
	return previous
}

// Publish sends msg with the configured publisher.
//
// Submissions are accepted regardless of the broker, so errors are only logged.
func Publish(ctx context.Context, msg Message) {
	mu.RLock()
	p := publisher
	mu.RUnlock()

	if err := p.Publish(ctx, msg); err != nil {
		log.Error().Err(err).Str("unit", msg.UnitName).Int("events", msg.Events).Msg("notify")
	}
}
