// Package contact persists contact-form submissions to a configurable
// destination: a Postgres table, a spreadsheet worksheet, or the log.
package contact

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Submission is one contact-form post.
type Submission struct {
	Name       string    `db:"name"`
	Email      string    `db:"email"`
	Message    string    `db:"message"`
	ReceivedAt time.Time `db:"received_at"`
}

// Store receives contact submissions.
type Store interface {
	Save(ctx context.Context, s Submission) error
}

// LogStore writes submissions to the application log. It is the fallback
// destination when neither Postgres nor a contact worksheet is configured.
type LogStore struct{}

func NewLogStore() *LogStore {
	return &LogStore{}
}

func (l *LogStore) Save(ctx context.Context, s Submission) error {
	log.Info().
		Str("name", s.Name).
		Str("email", s.Email).
		Str("message", s.Message).
		Time("received_at", s.ReceivedAt).
		Msg("contact submission received")
	return nil
}
