package stripe

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	stripelib "github.com/stripe/stripe-go/v79"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/payments"
)

const testSecret = "whsec_test"

func signPayload(t *testing.T, secret string, body []byte) string {
	t.Helper()
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, body)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutEventBody(paymentStatus string) []byte {
	return []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_1",
				"object": "checkout.session",
				"status": "complete",
				"payment_status": %q,
				"metadata": {"order_id": "ord-1"}
			}
		}
	}`, stripelib.APIVersion, paymentStatus))
}

func TestVerifyAndParseWebhook(t *testing.T) {
	p := New("sk_test", testSecret)
	body := checkoutEventBody("paid")

	ev, err := p.VerifyAndParseWebhook(body, signPayload(t, testSecret, body))
	require.NoError(t, err)

	assert.Equal(t, "evt_1", ev.EventID)
	assert.Equal(t, "checkout.session.completed", ev.Type)
	assert.Equal(t, "cs_1", ev.SessionID)
	assert.Equal(t, "complete", ev.Status)
	assert.Equal(t, payments.PaymentPaid, ev.PaymentStatus)
	assert.Equal(t, "ord-1", ev.Metadata["order_id"])
}

func TestVerifyAndParseWebhookUnpaidMapsToPending(t *testing.T) {
	p := New("sk_test", testSecret)
	body := checkoutEventBody("unpaid")

	ev, err := p.VerifyAndParseWebhook(body, signPayload(t, testSecret, body))
	require.NoError(t, err)
	assert.Equal(t, payments.PaymentPending, ev.PaymentStatus)
}

func TestVerifyAndParseWebhookRejectsBadSignature(t *testing.T) {
	p := New("sk_test", testSecret)
	body := checkoutEventBody("paid")

	_, err := p.VerifyAndParseWebhook(body, signPayload(t, "whsec_other", body))
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)
}

func TestVerifyAndParseWebhookRejectsTamperedBody(t *testing.T) {
	p := New("sk_test", testSecret)
	body := checkoutEventBody("unpaid")
	header := signPayload(t, testSecret, body)

	tampered := checkoutEventBody("paid")
	_, err := p.VerifyAndParseWebhook(tampered, header)
	assert.ErrorIs(t, err, payments.ErrInvalidSignature)
}

func TestVerifyAndParseWebhookIgnoresForeignEventPayload(t *testing.T) {
	p := New("sk_test", testSecret)
	body := []byte(fmt.Sprintf(`{
		"id": "evt_2",
		"api_version": %q,
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_1", "object": "payment_intent"}}
	}`, stripelib.APIVersion))

	ev, err := p.VerifyAndParseWebhook(body, signPayload(t, testSecret, body))
	require.NoError(t, err)
	assert.Equal(t, "evt_2", ev.EventID)
	assert.Empty(t, ev.SessionID)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(2500), toMinorUnits(25.00))
	assert.Equal(t, int64(1999), toMinorUnits(19.99))
	assert.Equal(t, int64(10), toMinorUnits(0.1))
	assert.Equal(t, 25.00, fromMinorUnits(2500))
}
