package payments

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/orders"
)

type TxStore interface {
	Insert(ctx context.Context, t Transaction) error
	FindBySession(ctx context.Context, sessionID string) (Transaction, error)
	ApplyStatus(ctx context.Context, sessionID, status, paymentStatus string) (bool, error)
}

type OrderStore interface {
	FindByID(ctx context.Context, id string) (orders.Order, error)
	SetPaymentSession(ctx context.Context, orderID, sessionID string) error
	MarkPaid(ctx context.Context, orderID string) error
}

type EventStore interface {
	InsertOnce(ctx context.Context, provider, eventID, eventType string, payload []byte) (bool, error)
}

type Service struct {
	provider Provider // nil when no processor credentials are configured
	txs      TxStore
	orders   OrderStore
	events   EventStore
	currency string
	logger   *slog.Logger
	locks    *sessionLocks
}

func NewService(provider Provider, txs TxStore, orderStore OrderStore, events EventStore, currency string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		provider: provider,
		txs:      txs,
		orders:   orderStore,
		events:   events,
		currency: currency,
		logger:   logger,
		locks:    newSessionLocks(),
	}
}

type CheckoutSession struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// CreateCheckoutSession starts a hosted checkout for an existing order.
// The origin URL is client-supplied and used verbatim for the redirect
// targets; it identifies the storefront deployment, nothing more.
// Each call creates a fresh transaction; retried checkouts stack up and
// reconciliation sorts out which one (if any) wins.
func (s *Service) CreateCheckoutSession(ctx context.Context, orderID, originURL string) (CheckoutSession, error) {
	if s.provider == nil {
		return CheckoutSession{}, ErrNotConfigured
	}

	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return CheckoutSession{}, err
	}

	origin := strings.TrimRight(originURL, "/")
	resp, err := s.provider.CreateSession(ctx, CreateSessionRequest{
		Amount:     order.Total,
		Currency:   s.currency,
		SuccessURL: origin + "/order-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  origin + "/checkout",
		Metadata: map[string]string{
			"order_id":       order.ID,
			"customer_email": order.CustomerEmail,
		},
	})
	if err != nil {
		return CheckoutSession{}, err
	}

	now := time.Now().UTC()
	t := Transaction{
		ID:            uuid.NewString(),
		SessionID:     resp.SessionID,
		OrderID:       order.ID,
		Amount:        order.Total,
		Currency:      s.currency,
		Status:        StatusPending,
		PaymentStatus: PaymentPending,
		Metadata:      map[string]string{"order_id": order.ID},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.txs.Insert(ctx, t); err != nil {
		return CheckoutSession{}, err
	}

	if err := s.orders.SetPaymentSession(ctx, order.ID, resp.SessionID); err != nil {
		return CheckoutSession{}, err
	}

	s.logger.InfoContext(ctx, "checkout session created",
		"order_id", order.ID, "session_id", resp.SessionID, "amount", order.Total)

	return CheckoutSession{URL: resp.RedirectURL, SessionID: resp.SessionID}, nil
}

type StatusResult struct {
	SessionID     string  `json:"session_id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	AmountTotal   float64 `json:"amount_total"`
	Currency      string  `json:"currency"`
}

// CheckStatus is the poll path. A transaction already settled as paid is
// returned without contacting the processor; otherwise the live status is
// read and reconciled.
func (s *Service) CheckStatus(ctx context.Context, sessionID string) (StatusResult, error) {
	if s.provider == nil {
		return StatusResult{}, ErrNotConfigured
	}

	t, err := s.txs.FindBySession(ctx, sessionID)
	if err != nil {
		return StatusResult{}, err
	}
	if t.PaymentStatus == PaymentPaid {
		return StatusResult{
			SessionID:     t.SessionID,
			Status:        t.Status,
			PaymentStatus: t.PaymentStatus,
			AmountTotal:   t.Amount,
			Currency:      t.Currency,
		}, nil
	}

	live, err := s.provider.GetSessionStatus(ctx, sessionID)
	if err != nil {
		return StatusResult{}, err
	}

	if err := s.reconcile(ctx, sessionID, live.Status, live.PaymentStatus, t.OrderID); err != nil {
		return StatusResult{}, err
	}

	return StatusResult{
		SessionID:     sessionID,
		Status:        live.Status,
		PaymentStatus: live.PaymentStatus,
		AmountTotal:   live.AmountTotal,
		Currency:      live.Currency,
	}, nil
}

// HandleWebhook is the push path. Signature verification happens in the
// provider; a verified paid event promotes the order named by the event's
// own metadata, not by a lookup the payload could influence.
func (s *Service) HandleWebhook(ctx context.Context, body []byte, signatureHeader string) error {
	if s.provider == nil {
		return ErrNotConfigured
	}

	ev, err := s.provider.VerifyAndParseWebhook(body, signatureHeader)
	if err != nil {
		return err
	}

	first, err := s.events.InsertOnce(ctx, s.provider.Name(), ev.EventID, ev.Type, body)
	if err != nil {
		return err
	}
	if !first {
		s.logger.InfoContext(ctx, "webhook event redelivered",
			"event_id", ev.EventID, "type", ev.Type)
		// fall through: re-applying is idempotent and heals a crash between
		// the transaction write and the order promotion
	}

	status := ev.Status
	if ev.PaymentStatus == PaymentPaid {
		status = StatusComplete
	}
	return s.reconcile(ctx, ev.SessionID, status, ev.PaymentStatus, ev.Metadata["order_id"])
}

// reconcile merges one payment-status observation into local state. Both
// input channels land here so the monotonic-promotion rule lives in exactly
// one place:
//   - no promotion without a stored transaction: an observation for an
//     unknown session errors out (the processor redelivers) rather than
//     marking an order paid on event metadata alone
//   - the transaction write is a CAS that refuses to downgrade paid
//   - the order write only ever sets paid, and is re-run even when the
//     transaction was already settled, catching up an order that lagged
func (s *Service) reconcile(ctx context.Context, sessionID, status, paymentStatus, orderID string) error {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	t, err := s.txs.FindBySession(ctx, sessionID)
	if err != nil {
		return err
	}

	applied, err := s.txs.ApplyStatus(ctx, sessionID, status, paymentStatus)
	if err != nil {
		return err
	}

	if paymentStatus != PaymentPaid {
		return nil
	}

	if orderID == "" {
		orderID = t.OrderID
	}

	if err := s.orders.MarkPaid(ctx, orderID); err != nil {
		return err
	}

	if applied {
		s.logger.InfoContext(ctx, "payment settled",
			"session_id", sessionID, "order_id", orderID)
	}
	return nil
}
