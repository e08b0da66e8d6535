package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"tendas-backend/internal/domain"
	"tendas-backend/internal/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Result is the terminal outcome of one submission. Success requires every
// dispatched message to have gone out; any individual failure yields a
// failed result carrying the first failure's message. The request itself is
// never stored, so a failed submission can simply be retried.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RequestService is the submission pipeline for quote requests and
// contact-form messages.
type RequestService interface {
	SubmitQuote(ctx context.Context, req domain.QuoteRequest) Result
	SubmitContact(ctx context.Context, req domain.ContactRequest) Result
}

// MailSettings carries the fixed addressing used for every submission.
type MailSettings struct {
	BusinessAddress string
	FromAddress     string
	FromName        string
}

type requestService struct {
	dispatcher mailer.Dispatcher
	settings   MailSettings
	logger     *zap.Logger
}

// NewRequestService creates the pipeline around a dispatch boundary.
func NewRequestService(dispatcher mailer.Dispatcher, settings MailSettings, logger *zap.Logger) RequestService {
	return &requestService{
		dispatcher: dispatcher,
		settings:   settings,
		logger:     logger,
	}
}

func (s *requestService) SubmitQuote(ctx context.Context, req domain.QuoteRequest) Result {
	if msg := validateRequired(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	}); msg != "" {
		return Result{Success: false, Message: msg}
	}

	business := mailer.Message{
		To:       s.settings.BusinessAddress,
		From:     s.settings.FromAddress,
		ReplyTo:  req.Email,
		Subject:  "New Quote Request: " + req.ProductName,
		HTMLBody: renderBody(quoteBusinessTemplate, req),
	}
	requester := mailer.Message{
		To:         req.Email,
		From:       s.settings.FromAddress,
		SenderName: s.settings.FromName,
		Subject:    "Your Quote Request for " + req.ProductName,
		HTMLBody:   renderBody(quoteRequesterTemplate, req),
	}

	return s.dispatchPair(ctx, "quote", business, requester, "Quote request sent successfully")
}

func (s *requestService) SubmitContact(ctx context.Context, req domain.ContactRequest) Result {
	if msg := validateRequired(map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"subject": req.Subject,
		"message": req.Message,
	}); msg != "" {
		return Result{Success: false, Message: msg}
	}

	business := mailer.Message{
		To:       s.settings.BusinessAddress,
		From:     s.settings.FromAddress,
		ReplyTo:  req.Email,
		Subject:  "New Contact Form Submission: " + req.Subject,
		HTMLBody: renderBody(contactBusinessTemplate, req),
	}
	requester := mailer.Message{
		To:         req.Email,
		From:       s.settings.FromAddress,
		SenderName: s.settings.FromName,
		Subject:    "Your Contact Form Submission: " + req.Subject,
		HTMLBody:   renderBody(contactRequesterTemplate, req),
	}

	return s.dispatchPair(ctx, "contact", business, requester, "Contact form submitted successfully")
}

// dispatchPair sends the business notification and the requester
// confirmation concurrently and waits for both. The two sends are logically
// independent, but the combined result is all-or-nothing.
func (s *requestService) dispatchPair(ctx context.Context, kind string, business, requester mailer.Message, successMsg string) Result {
	submissionID := uuid.New().String()

	var g errgroup.Group
	g.Go(func() error { return s.dispatcher.Dispatch(ctx, business) })
	g.Go(func() error { return s.dispatcher.Dispatch(ctx, requester) })

	if err := g.Wait(); err != nil {
		s.logger.Warn("Submission dispatch failed",
			zap.String("submission_id", submissionID),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return Result{Success: false, Message: err.Error()}
	}

	s.logger.Info("Submission dispatched",
		zap.String("submission_id", submissionID),
		zap.String("kind", kind),
	)
	return Result{Success: true, Message: successMsg}
}

func validateRequired(fields map[string]string) string {
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			return fmt.Sprintf("the %s field is required", name)
		}
	}
	return ""
}

func renderBody(tmpl *template.Template, data interface{}) string {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Templates are static and data is plain strings; execution cannot
		// fail in practice, but keep the body non-empty if it ever does.
		return "<p>(failed to render message body)</p>"
	}
	return buf.String()
}

var (
	quoteBusinessTemplate = template.Must(template.New("quote_business").Parse(`
<h2>New Quote Request</h2>
<p><strong>Product:</strong> {{.ProductName}}</p>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

	quoteRequesterTemplate = template.Must(template.New("quote_requester").Parse(`
<h2>Thank You for Your Quote Request</h2>
<p>Dear {{.Name}},</p>
<p>We have received your request for a quote for {{.ProductName}}. Our team will review your request and get back to you within 24 hours.</p>
<p><strong>Your Request Details:</strong></p>
<p><strong>Product:</strong> {{.ProductName}}</p>
<p><strong>Message:</strong> {{.Message}}</p>
<p>If you have any questions in the meantime, please don't hesitate to contact us.</p>
<p>Best regards,</p>
<p>The Team</p>
`))

	contactBusinessTemplate = template.Must(template.New("contact_business").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
`))

	contactRequesterTemplate = template.Must(template.New("contact_requester").Parse(`
<h2>Thank You for Contacting Us</h2>
<p>Dear {{.Name}},</p>
<p>We have received your message. Our team will review it and get back to you as soon as possible.</p>
<p><strong>Your Message Details:</strong></p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong> {{.Message}}</p>
<p>If you have any additional questions, please don't hesitate to contact us.</p>
<p>Best regards,</p>
<p>The Team</p>
`))
)
