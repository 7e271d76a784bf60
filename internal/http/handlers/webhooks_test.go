package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/orders"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/payments"
)

type stubProvider struct {
	event payments.WebhookEvent
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) CreateSession(context.Context, payments.CreateSessionRequest) (payments.CreateSessionResponse, error) {
	return payments.CreateSessionResponse{}, nil
}

func (s *stubProvider) GetSessionStatus(context.Context, string) (payments.SessionStatus, error) {
	return payments.SessionStatus{}, nil
}

func (s *stubProvider) VerifyAndParseWebhook(_ []byte, signatureHeader string) (payments.WebhookEvent, error) {
	if signatureHeader != "valid" {
		return payments.WebhookEvent{}, payments.ErrInvalidSignature
	}
	return s.event, nil
}

type stubTxStore struct {
	tx payments.Transaction
}

func (s *stubTxStore) Insert(context.Context, payments.Transaction) error { return nil }

func (s *stubTxStore) FindBySession(context.Context, string) (payments.Transaction, error) {
	return s.tx, nil
}

func (s *stubTxStore) ApplyStatus(_ context.Context, _, status, paymentStatus string) (bool, error) {
	s.tx.Status = status
	s.tx.PaymentStatus = paymentStatus
	return true, nil
}

type stubOrderStore struct {
	order orders.Order
}

func (s *stubOrderStore) FindByID(context.Context, string) (orders.Order, error) {
	return s.order, nil
}

func (s *stubOrderStore) SetPaymentSession(context.Context, string, string) error { return nil }

func (s *stubOrderStore) MarkPaid(_ context.Context, orderID string) error {
	s.order.Status = orders.StatusPaid
	return nil
}

type stubEventStore struct{}

func (stubEventStore) InsertOnce(context.Context, string, string, string, []byte) (bool, error) {
	return true, nil
}

func webhookRouter(t *testing.T, svc *payments.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(testWriter{t}, nil))

	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler(logger))
	h := NewWebhookHandler(logger, svc)
	r.POST("/api/webhook/stripe", h.Stripe)
	return r
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}

func TestWebhookInvalidSignature(t *testing.T) {
	txs := &stubTxStore{}
	os := &stubOrderStore{order: orders.Order{ID: "ord-1", Status: orders.StatusPending}}
	svc := payments.NewService(&stubProvider{}, txs, os, stubEventStore{}, "eur", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "forged")
	w := httptest.NewRecorder()
	webhookRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid webhook signature")

	// rejected delivery must not touch order state
	assert.Equal(t, orders.StatusPending, os.order.Status)
}

func TestWebhookAcceptsVerifiedEvent(t *testing.T) {
	prov := &stubProvider{event: payments.WebhookEvent{
		EventID: "evt_1", Type: "checkout.session.completed",
		SessionID: "cs_1", Status: "complete", PaymentStatus: payments.PaymentPaid,
		Metadata: map[string]string{"order_id": "ord-1"},
	}}
	txs := &stubTxStore{tx: payments.Transaction{SessionID: "cs_1", OrderID: "ord-1"}}
	os := &stubOrderStore{order: orders.Order{ID: "ord-1", Status: orders.StatusPending}}
	svc := payments.NewService(prov, txs, os, stubEventStore{}, "eur", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "valid")
	w := httptest.NewRecorder()
	webhookRouter(t, svc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"success"}`, w.Body.String())
	assert.Equal(t, orders.StatusPaid, os.order.Status)
	assert.Equal(t, payments.PaymentPaid, txs.tx.PaymentStatus)
}

func TestWebhookNotConfigured(t *testing.T) {
	svc := payments.NewService(nil, &stubTxStore{}, &stubOrderStore{}, stubEventStore{}, "eur", nil)

	req := httptest.NewRequest(http.MethodPost, "/api/webhook/stripe", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	webhookRouter(t, svc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
