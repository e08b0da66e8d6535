package domain

// QuoteRequest is a quote or rental inquiry captured from a form. It is a
// transient value object: validated, dispatched as a pair of emails, then
// discarded. Never persisted.
type QuoteRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	ProductName string `json:"product_name"`
}

// ContactRequest is a general contact-form submission. Transient, like
// QuoteRequest.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
