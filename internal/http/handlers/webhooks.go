package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/payments"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
)

type WebhookHandler struct {
	Logger   *slog.Logger
	Payments *payments.Service
}

func NewWebhookHandler(logger *slog.Logger, svc *payments.Service) *WebhookHandler {
	return &WebhookHandler{Logger: logger, Payments: svc}
}

// POST /api/webhook/stripe
// Body must stay raw; the signature covers the exact bytes.
func (h *WebhookHandler) Stripe(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid body.", nil))
		return
	}

	err = h.Payments.HandleWebhook(c.Request.Context(), body, c.GetHeader("Stripe-Signature"))
	switch {
	case errors.Is(err, payments.ErrInvalidSignature):
		h.Logger.Warn("webhook signature rejected", "request_id", middleware.GetRequestID(c))
		middleware.Fail(c, apperr.InvalidErr("Invalid webhook signature.", nil))
	case errors.Is(err, payments.ErrNotConfigured):
		middleware.Fail(c, apperr.UnavailableErr("Payments are not configured.", err))
	case err != nil:
		// 500 so the processor retries the delivery
		middleware.Fail(c, apperr.Wrap(err))
	default:
		c.JSON(http.StatusOK, gin.H{"status": "success"})
	}
}
