package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/catalog"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
)

type MiscHandler struct {
	Catalog *catalog.Service
}

func NewMiscHandler(svc *catalog.Service) *MiscHandler {
	return &MiscHandler{Catalog: svc}
}

// GET /api/
func (h *MiscHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Gül Mobilya API", "version": "1.0.0"})
}

// POST /api/seed
func (h *MiscHandler) Seed(c *gin.Context) {
	res, err := h.Catalog.Seed(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	if !res.Seeded {
		c.JSON(http.StatusOK, gin.H{"message": "Data already seeded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":    "Data seeded successfully",
		"categories": res.Categories,
		"products":   res.Products,
	})
}
