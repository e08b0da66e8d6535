// Package mailer defines the email-dispatch boundary consumed by the
// request submission pipeline, plus an SMTP implementation.
package mailer

import "context"

// Message is one outbound email.
type Message struct {
	To         string
	From       string
	SenderName string
	ReplyTo    string
	Subject    string
	HTMLBody   string
}

// Dispatcher transmits a single message. Implementations report failure via
// the returned error; the pipeline owns turning that into a user-visible
// outcome.
type Dispatcher interface {
	Dispatch(ctx context.Context, msg Message) error
}
