package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPDispatcher sends messages through an SMTP relay using gomail.
type SMTPDispatcher struct {
	dialer      *gomail.Dialer
	defaultFrom string
	logger      *zap.Logger
}

// NewSMTPDispatcher configures a dispatcher against the given relay.
// defaultFrom is used when a message carries no From address.
func NewSMTPDispatcher(host string, port int, username, password, defaultFrom string, logger *zap.Logger) *SMTPDispatcher {
	return &SMTPDispatcher{
		dialer:      gomail.NewDialer(host, port, username, password),
		defaultFrom: defaultFrom,
		logger:      logger,
	}
}

func (d *SMTPDispatcher) Dispatch(ctx context.Context, msg Message) error {
	// The SMTP dial itself is not context-aware; honor cancellation before
	// committing to the send so an abandoned request stops here.
	if err := ctx.Err(); err != nil {
		return err
	}

	from := msg.From
	if from == "" {
		from = d.defaultFrom
	}

	m := gomail.NewMessage()
	if msg.SenderName != "" {
		m.SetAddressHeader("From", from, msg.SenderName)
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", msg.To)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if err := d.dialer.DialAndSend(m); err != nil {
		d.logger.Error("SMTP dispatch failed",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email to %s: %w", msg.To, err)
	}

	d.logger.Info("Email dispatched",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
