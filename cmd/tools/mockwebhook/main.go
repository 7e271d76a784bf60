// Signs and sends a fake Stripe checkout webhook for local testing.
package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/stripe/stripe-go/v79"
)

func main() {
	url := flag.String("url", "http://localhost:8080/api/webhook/stripe", "Webhook URL")
	secret := flag.String("secret", os.Getenv("STRIPE_WEBHOOK_SECRET"), "Webhook signing secret")
	eventID := flag.String("event-id", "evt_"+randomHex(12), "Event ID")
	sessionID := flag.String("session-id", "cs_test_"+randomHex(12), "Checkout session ID")
	orderID := flag.String("order-id", "", "Order ID carried in metadata")
	paymentStatus := flag.String("payment-status", "paid", "Settlement status (paid, unpaid)")
	dryRun := flag.Bool("dry-run", false, "Only print signature header, don't send")

	flag.Parse()

	if *secret == "" {
		fmt.Fprintln(os.Stderr, "Error: secret not provided and STRIPE_WEBHOOK_SECRET not set")
		os.Exit(1)
	}

	event := map[string]any{
		"id": *eventID,
		// the SDK's verifier rejects version mismatches
		"api_version": stripe.APIVersion,
		"type":        "checkout.session.completed",
		"data": map[string]any{
			"object": map[string]any{
				"id":             *sessionID,
				"object":         "checkout.session",
				"status":         "complete",
				"payment_status": *paymentStatus,
				"metadata":       map[string]string{"order_id": *orderID},
			},
		},
	}

	body, err := json.Marshal(event)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling payload: %v\n", err)
		os.Exit(1)
	}

	t := time.Now().Unix()
	sigHeader := fmt.Sprintf("t=%d,v1=%s", t, computeSig([]byte(*secret), t, body))

	fmt.Printf("Stripe-Signature: %s\n", sigHeader)
	fmt.Printf("Body: %s\n", string(body))

	if *dryRun {
		fmt.Println("\n[DRY RUN] Not sending request")
		return
	}

	fmt.Printf("\nSending to %s...\n", *url)
	req, err := http.NewRequest(http.MethodPost, *url, bytes.NewReader(body))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Stripe-Signature", sigHeader)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error sending request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	fmt.Printf("Status: %s\nResponse: %s\n", resp.Status, string(respBody))
}

// Stripe signature scheme: HMAC-SHA256 over "<timestamp>.<payload>"
func computeSig(secret []byte, t int64, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.%s", t, body)
	return hex.EncodeToString(mac.Sum(nil))
}

func randomHex(nBytes int) string {
	b := make([]byte, nBytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
