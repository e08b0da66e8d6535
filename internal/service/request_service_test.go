package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"tendas-backend/internal/domain"
	"tendas-backend/internal/mailer"

	"go.uber.org/zap"
)

// scriptedDispatcher records every message and fails the recipients listed
// in failFor.
type scriptedDispatcher struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]error
}

func (d *scriptedDispatcher) Dispatch(_ context.Context, msg mailer.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, msg)
	if err, ok := d.failFor[msg.To]; ok {
		return err
	}
	return nil
}

func (d *scriptedDispatcher) recipients() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.sent))
	for _, m := range d.sent {
		out = append(out, m.To)
	}
	return out
}

var testSettings = MailSettings{
	BusinessAddress: "sales@business.example",
	FromAddress:     "noreply@business.example",
	FromName:        "Tendas",
}

func newTestRequestService(dispatcher mailer.Dispatcher) RequestService {
	logger, _ := zap.NewDevelopment()
	return NewRequestService(dispatcher, testSettings, logger)
}

func validQuote() domain.QuoteRequest {
	return domain.QuoteRequest{
		Name:        "Ana Silva",
		Email:       "ana@example.com",
		Phone:       "+258 84 000 0000",
		Message:     "I need a quote for two large tents.",
		ProductName: "Tents",
	}
}

func validContact() domain.ContactRequest {
	return domain.ContactRequest{
		Name:    "Carlos M",
		Email:   "carlos@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Saturdays?",
	}
}

func TestSubmitQuoteDispatchesBothMessages(t *testing.T) {
	dispatcher := &scriptedDispatcher{}
	svc := newTestRequestService(dispatcher)

	result := svc.SubmitQuote(context.Background(), validQuote())

	if !result.Success {
		t.Fatalf("expected success, got failure: %q", result.Message)
	}
	if result.Message == "" {
		t.Error("successful result must carry a confirmation message")
	}

	recipients := dispatcher.recipients()
	if len(recipients) != 2 {
		t.Fatalf("expected 2 dispatched messages, got %d", len(recipients))
	}
	seen := map[string]bool{}
	for _, to := range recipients {
		seen[to] = true
	}
	if !seen[testSettings.BusinessAddress] {
		t.Error("business notification was not dispatched")
	}
	if !seen["ana@example.com"] {
		t.Error("requester confirmation was not dispatched")
	}
}

func TestSubmitQuoteFailsWhenRequesterSendFails(t *testing.T) {
	dispatcher := &scriptedDispatcher{
		failFor: map[string]error{
			"ana@example.com": errors.New("mailbox unavailable"),
		},
	}
	svc := newTestRequestService(dispatcher)

	result := svc.SubmitQuote(context.Background(), validQuote())

	if result.Success {
		t.Fatal("expected failure when the requester confirmation cannot be sent")
	}
	if result.Message == "" {
		t.Error("failed result must carry a non-empty message")
	}
	if len(dispatcher.recipients()) != 2 {
		t.Error("both messages must still be attempted")
	}
}

func TestSubmitQuoteFailsWhenBusinessSendFails(t *testing.T) {
	dispatcher := &scriptedDispatcher{
		failFor: map[string]error{
			testSettings.BusinessAddress: errors.New("connection refused"),
		},
	}
	svc := newTestRequestService(dispatcher)

	result := svc.SubmitQuote(context.Background(), validQuote())

	if result.Success {
		t.Fatal("expected failure when the business notification cannot be sent")
	}
	if !strings.Contains(result.Message, "connection refused") {
		t.Errorf("expected the dispatch error in the message, got %q", result.Message)
	}
}

func TestSubmitQuoteRejectsMissingFieldsWithoutDispatch(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*domain.QuoteRequest)
	}{
		{"missing name", func(r *domain.QuoteRequest) { r.Name = "" }},
		{"missing email", func(r *domain.QuoteRequest) { r.Email = "   " }},
		{"missing message", func(r *domain.QuoteRequest) { r.Message = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dispatcher := &scriptedDispatcher{}
			svc := newTestRequestService(dispatcher)

			req := validQuote()
			tc.mutate(&req)

			result := svc.SubmitQuote(context.Background(), req)
			if result.Success {
				t.Error("expected validation failure")
			}
			if result.Message == "" {
				t.Error("validation failure must carry a message")
			}
			if len(dispatcher.recipients()) != 0 {
				t.Error("nothing may be dispatched for an invalid request")
			}
		})
	}
}

func TestSubmitQuoteAllowsMissingPhone(t *testing.T) {
	dispatcher := &scriptedDispatcher{}
	svc := newTestRequestService(dispatcher)

	req := validQuote()
	req.Phone = ""

	if result := svc.SubmitQuote(context.Background(), req); !result.Success {
		t.Errorf("phone is optional; got failure: %q", result.Message)
	}
}

func TestSubmitContactDispatchesBothMessages(t *testing.T) {
	dispatcher := &scriptedDispatcher{}
	svc := newTestRequestService(dispatcher)

	result := svc.SubmitContact(context.Background(), validContact())

	if !result.Success {
		t.Fatalf("expected success, got failure: %q", result.Message)
	}

	recipients := dispatcher.recipients()
	if len(recipients) != 2 {
		t.Fatalf("expected 2 dispatched messages, got %d", len(recipients))
	}
}

func TestSubmitContactRequiresSubject(t *testing.T) {
	dispatcher := &scriptedDispatcher{}
	svc := newTestRequestService(dispatcher)

	req := validContact()
	req.Subject = ""

	result := svc.SubmitContact(context.Background(), req)
	if result.Success {
		t.Error("expected validation failure for a missing subject")
	}
	if len(dispatcher.recipients()) != 0 {
		t.Error("nothing may be dispatched for an invalid request")
	}
}

func TestSubmitContactFailureIsAllOrNothing(t *testing.T) {
	dispatcher := &scriptedDispatcher{
		failFor: map[string]error{
			"carlos@example.com": errors.New("smtp timeout"),
		},
	}
	svc := newTestRequestService(dispatcher)

	result := svc.SubmitContact(context.Background(), validContact())

	if result.Success {
		t.Fatal("one failed send must fail the whole submission")
	}
	if result.Message == "" {
		t.Error("failed result must carry a non-empty message")
	}
}

func TestQuoteEmailBodiesCarryRequestDetails(t *testing.T) {
	dispatcher := &scriptedDispatcher{}
	svc := newTestRequestService(dispatcher)

	req := validQuote()
	if result := svc.SubmitQuote(context.Background(), req); !result.Success {
		t.Fatal(result.Message)
	}

	for _, msg := range dispatcher.sent {
		if !strings.Contains(msg.HTMLBody, req.ProductName) {
			t.Errorf("message to %s does not mention the product", msg.To)
		}
		if !strings.Contains(msg.HTMLBody, req.Message) {
			t.Errorf("message to %s does not carry the request message", msg.To)
		}
		if !strings.Contains(msg.Subject, req.ProductName) {
			t.Errorf("message to %s has subject %q without the product name", msg.To, msg.Subject)
		}
	}

	// The business copy must be replyable directly to the requester.
	for _, msg := range dispatcher.sent {
		if msg.To == testSettings.BusinessAddress && msg.ReplyTo != req.Email {
			t.Errorf("business notification reply-to is %q, want %q", msg.ReplyTo, req.Email)
		}
	}
}
