package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/validation"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/orders"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/payments"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
)

type CheckoutHandler struct {
	Payments *payments.Service
}

func NewCheckoutHandler(svc *payments.Service) *CheckoutHandler {
	return &CheckoutHandler{Payments: svc}
}

type checkoutInput struct {
	OrderID   string `json:"order_id" binding:"required"`
	OriginURL string `json:"origin_url" binding:"required,url"`
}

// POST /api/checkout/session
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var in checkoutInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid checkout data.", validation.FromBindError(err, &in)))
		return
	}

	sess, err := h.Payments.CreateCheckoutSession(c.Request.Context(), in.OrderID, in.OriginURL)
	if err != nil {
		h.failPayment(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GET /api/checkout/status/:session_id
func (h *CheckoutHandler) Status(c *gin.Context) {
	res, err := h.Payments.CheckStatus(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		h.failPayment(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CheckoutHandler) failPayment(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payments.ErrNotConfigured):
		middleware.Fail(c, apperr.UnavailableErr("Payments are not configured.", err))
	case errors.Is(err, payments.ErrProcessorUnavailable):
		middleware.Fail(c, apperr.UnavailableErr("Payment processor unavailable, try again.", err))
	case errors.Is(err, payments.ErrTransactionNotFound):
		middleware.Fail(c, apperr.NotFoundErr("Payment session not found."))
	case errors.Is(err, orders.ErrOrderNotFound):
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
	default:
		middleware.Fail(c, apperr.Wrap(err))
	}
}
