package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/validation"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/orders"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/users"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
)

type AuthHandler struct {
	Users  *users.Service
	Orders *orders.Service
}

func NewAuthHandler(u *users.Service, o *orders.Service) *AuthHandler {
	return &AuthHandler{Users: u, Orders: o}
}

// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var in users.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid registration data.", validation.FromBindError(err, &in)))
		return
	}

	res, err := h.Users.Register(c.Request.Context(), in)
	if errors.Is(err, users.ErrEmailTaken) {
		middleware.Fail(c, apperr.ConflictErr("Email already in use."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in users.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid login data.", validation.FromBindError(err, &in)))
		return
	}

	res, err := h.Users.Login(c.Request.Context(), in)
	if errors.Is(err, users.ErrInvalidCredentials) {
		middleware.Fail(c, apperr.UnauthorizedErr("Invalid email or password."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, u)
}

// PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	var in users.ProfileUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid profile data.", validation.FromBindError(err, &in)))
		return
	}

	updated, err := h.Users.UpdateProfile(c.Request.Context(), u.ID, in)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GET /api/auth/orders
func (h *AuthHandler) MyOrders(c *gin.Context) {
	u, _ := middleware.CurrentUser(c)

	list, err := h.Orders.ListByUser(c.Request.Context(), u.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, list)
}
