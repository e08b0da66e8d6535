package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"tendas-backend/internal/mailer"
	"tendas-backend/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type recordingDispatcher struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failAll error
}

func (d *recordingDispatcher) Dispatch(_ context.Context, msg mailer.Message) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sent = append(d.sent, msg)
	return d.failAll
}

func (d *recordingDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sent)
}

func newRequestRouter(t *testing.T, dispatcher mailer.Dispatcher) chi.Router {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	requests := service.NewRequestService(dispatcher, service.MailSettings{
		BusinessAddress: "sales@business.example",
		FromAddress:     "noreply@business.example",
		FromName:        "Tendas",
	}, logger)

	r := chi.NewRouter()
	NewRequestHandler(requests, logger).RegisterRoutes(r, nil)
	return r
}

func postJSON(t *testing.T, r chi.Router, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitQuoteEndpoint(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	r := newRequestRouter(t, dispatcher)

	w := postJSON(t, r, "/api/requests/quote", QuotePayload{
		Name:        "Ana Silva",
		Email:       "ana@example.com",
		Phone:       "+258 84 000 0000",
		Message:     "Quote for two tents please",
		ProductName: "Tents",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result service.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if !result.Success {
		t.Errorf("expected success, got %q", result.Message)
	}
	if dispatcher.count() != 2 {
		t.Errorf("expected 2 dispatched messages, got %d", dispatcher.count())
	}
}

func TestSubmitQuoteDispatchFailureStaysHTTP200(t *testing.T) {
	dispatcher := &recordingDispatcher{failAll: errors.New("smtp unavailable")}
	r := newRequestRouter(t, dispatcher)

	w := postJSON(t, r, "/api/requests/quote", QuotePayload{
		Name:        "Ana Silva",
		Email:       "ana@example.com",
		Message:     "Quote please",
		ProductName: "Tents",
	})

	// A failed dispatch is an application result, not a transport error.
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result service.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Success {
		t.Error("expected a failed result")
	}
	if result.Message == "" {
		t.Error("failed result must carry a message")
	}
}

func TestSubmitQuoteRejectsInvalidPayload(t *testing.T) {
	cases := []struct {
		name    string
		payload QuotePayload
	}{
		{"missing name", QuotePayload{Email: "a@b.com", Message: "m", ProductName: "Tents"}},
		{"bad email", QuotePayload{Name: "Ana", Email: "not-an-email", Message: "m", ProductName: "Tents"}},
		{"missing message", QuotePayload{Name: "Ana", Email: "a@b.com", ProductName: "Tents"}},
		{"missing product", QuotePayload{Name: "Ana", Email: "a@b.com", Message: "m"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dispatcher := &recordingDispatcher{}
			r := newRequestRouter(t, dispatcher)

			w := postJSON(t, r, "/api/requests/quote", tc.payload)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if dispatcher.count() != 0 {
				t.Error("invalid payloads must not reach the dispatcher")
			}
		})
	}
}

func TestSubmitContactEndpoint(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	r := newRequestRouter(t, dispatcher)

	w := postJSON(t, r, "/api/requests/contact", ContactPayload{
		Name:    "Carlos M",
		Email:   "carlos@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Saturdays?",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result service.Result
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if !result.Success {
		t.Errorf("expected success, got %q", result.Message)
	}
	if dispatcher.count() != 2 {
		t.Errorf("expected 2 dispatched messages, got %d", dispatcher.count())
	}
}

func TestSubmitContactRejectsMissingSubject(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	r := newRequestRouter(t, dispatcher)

	w := postJSON(t, r, "/api/requests/contact", ContactPayload{
		Name:    "Carlos M",
		Email:   "carlos@example.com",
		Message: "no subject here",
	})

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	if dispatcher.count() != 0 {
		t.Error("invalid payloads must not reach the dispatcher")
	}
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	dispatcher := &recordingDispatcher{}
	r := newRequestRouter(t, dispatcher)

	req := httptest.NewRequest("POST", "/api/requests/quote", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
