package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/validation"
	cartmod "github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/cart"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
)

type CartHandler struct {
	Cart *cartmod.Service
}

func NewCartHandler(svc *cartmod.Service) *CartHandler {
	return &CartHandler{Cart: svc}
}

// GET /api/cart/:session_id
func (h *CartHandler) Get(c *gin.Context) {
	v, err := h.Cart.Get(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/cart/:session_id/add
func (h *CartHandler) Add(c *gin.Context) {
	var item cartmod.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid cart item.", validation.FromBindError(err, &item)))
		return
	}

	if err := h.Cart.Add(c.Request.Context(), c.Param("session_id"), item); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart"})
}

// POST /api/cart/:session_id/update
func (h *CartHandler) Update(c *gin.Context) {
	var item cartmod.Item
	if err := c.ShouldBindJSON(&item); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid cart item.", validation.FromBindError(err, &item)))
		return
	}

	err := h.Cart.Update(c.Request.Context(), c.Param("session_id"), item)
	if errors.Is(err, cartmod.ErrCartNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Cart not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// DELETE /api/cart/:session_id/item/:product_id
func (h *CartHandler) Remove(c *gin.Context) {
	err := h.Cart.Remove(c.Request.Context(), c.Param("session_id"), c.Param("product_id"))
	if errors.Is(err, cartmod.ErrCartNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Cart not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

// DELETE /api/cart/:session_id
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.Cart.Clear(c.Request.Context(), c.Param("session_id")); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
