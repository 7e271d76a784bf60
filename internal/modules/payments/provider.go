package payments

import (
	"context"
	"errors"
)

// ErrInvalidSignature is returned by VerifyAndParseWebhook when the payload
// does not match the signature header. It is the only trust boundary for
// payment confirmation and maps to a client error, never a server fault.
var ErrInvalidSignature = errors.New("invalid webhook signature")

type CreateSessionRequest struct {
	Amount     float64 // currency-major units
	Currency   string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string // echoed back verbatim by the processor
}

type CreateSessionResponse struct {
	SessionID   string
	RedirectURL string
}

type SessionStatus struct {
	SessionID     string
	Status        string // session lifecycle: open|complete|expired
	PaymentStatus string // settlement: pending|paid|...
	AmountTotal   float64
	Currency      string
	Metadata      map[string]string
}

type WebhookEvent struct {
	EventID       string
	Type          string
	SessionID     string
	Status        string
	PaymentStatus string
	Metadata      map[string]string
}

// Provider abstracts the hosted-checkout API of the payment processor.
type Provider interface {
	Name() string
	CreateSession(ctx context.Context, req CreateSessionRequest) (CreateSessionResponse, error)
	GetSessionStatus(ctx context.Context, sessionID string) (SessionStatus, error)

	// Webhook: verify signature + parse event
	VerifyAndParseWebhook(body []byte, signatureHeader string) (WebhookEvent, error)
}
