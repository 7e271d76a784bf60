package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/validation"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/contact"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
)

type ContactHandler struct {
	Contact *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{Contact: svc}
}

// POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var in contact.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid contact data.", validation.FromBindError(err, &in)))
		return
	}

	m, err := h.Contact.Create(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, m)
}

// GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	list, err := h.Contact.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, list)
}
