// Package stripe implements payments.Provider on Stripe hosted checkout.
package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/payments"
)

type Provider struct {
	api           *client.API
	webhookSecret string
	productLabel  string
}

func New(apiKey, webhookSecret string) *Provider {
	api := &client.API{}
	// external calls are bounded; a timeout surfaces as retryable
	api.Init(apiKey, stripe.NewBackends(&http.Client{Timeout: 15 * time.Second}))
	return &Provider{
		api:           api,
		webhookSecret: webhookSecret,
		productLabel:  "Gulum Mobilya Order",
	}
}

func (p *Provider) Name() string { return "stripe" }

func (p *Provider) CreateSession(ctx context.Context, req payments.CreateSessionRequest) (payments.CreateSessionResponse, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(req.Currency),
				UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(p.productLabel),
				},
			},
			Quantity: stripe.Int64(1),
		}},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return payments.CreateSessionResponse{}, wrapTransport(err)
	}
	return payments.CreateSessionResponse{SessionID: sess.ID, RedirectURL: sess.URL}, nil
}

func (p *Provider) GetSessionStatus(ctx context.Context, sessionID string) (payments.SessionStatus, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return payments.SessionStatus{}, wrapTransport(err)
	}
	return payments.SessionStatus{
		SessionID:     sess.ID,
		Status:        string(sess.Status),
		PaymentStatus: settlementStatus(sess.PaymentStatus),
		AmountTotal:   fromMinorUnits(sess.AmountTotal),
		Currency:      string(sess.Currency),
		Metadata:      sess.Metadata,
	}, nil
}

func (p *Provider) VerifyAndParseWebhook(body []byte, signatureHeader string) (payments.WebhookEvent, error) {
	event, err := webhook.ConstructEvent(body, signatureHeader, p.webhookSecret)
	if err != nil {
		return payments.WebhookEvent{}, fmt.Errorf("%w: %v", payments.ErrInvalidSignature, err)
	}

	ev := payments.WebhookEvent{EventID: event.ID, Type: string(event.Type)}
	if strings.HasPrefix(string(event.Type), "checkout.session.") {
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return payments.WebhookEvent{}, fmt.Errorf("%w: %v", payments.ErrInvalidSignature, err)
		}
		ev.SessionID = sess.ID
		ev.Status = string(sess.Status)
		ev.PaymentStatus = settlementStatus(sess.PaymentStatus)
		ev.Metadata = sess.Metadata
	}
	return ev, nil
}

// settlementStatus folds Stripe's "unpaid" into the local "pending" so both
// input channels speak the same vocabulary.
func settlementStatus(s stripe.CheckoutSessionPaymentStatus) string {
	if s == stripe.CheckoutSessionPaymentStatusUnpaid {
		return payments.PaymentPending
	}
	return string(s)
}

// Amounts travel as currency-major floats; Stripe wants minor units.
func toMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

func fromMinorUnits(amount int64) float64 {
	return float64(amount) / 100
}

func wrapTransport(err error) error {
	var ue *url.Error
	if errors.As(err, &ue) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", payments.ErrProcessorUnavailable, err)
	}
	return err
}
