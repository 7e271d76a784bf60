package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/validation"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/orders"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
)

type OrdersHandler struct {
	Orders *orders.Service
}

func NewOrdersHandler(svc *orders.Service) *OrdersHandler {
	return &OrdersHandler{Orders: svc}
}

// POST /api/orders. Guest checkout allowed, a bearer token stamps ownership.
func (h *OrdersHandler) Create(c *gin.Context) {
	var in orders.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid order data.", validation.FromBindError(err, &in)))
		return
	}

	userID := ""
	if u, ok := middleware.CurrentUser(c); ok {
		userID = u.ID
	}

	o, err := h.Orders.CreateFromCart(c.Request.Context(), in, userID)
	if errors.Is(err, orders.ErrCartEmpty) {
		middleware.Fail(c, apperr.InvalidErr("Cart is empty.", nil))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, o)
}

// GET /api/orders/:id
func (h *OrdersHandler) Get(c *gin.Context) {
	o, err := h.Orders.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, orders.ErrOrderNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Order not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, o)
}

// GET /api/orders
func (h *OrdersHandler) List(c *gin.Context) {
	list, err := h.Orders.ListAll(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, list)
}
