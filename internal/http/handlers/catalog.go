package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/middleware"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/http/validation"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/modules/catalog"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/shared/apperr"
	"github.com/cancoskuner690-cmd/gulum-mobilya/internal/storage"
)

type CatalogHandler struct {
	Catalog *catalog.Service
	Images  storage.Storage
}

func NewCatalogHandler(svc *catalog.Service, images storage.Storage) *CatalogHandler {
	return &CatalogHandler{Catalog: svc, Images: images}
}

// GET /api/categories
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.Catalog.Categories(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var in catalog.Category
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid category data.", validation.FromBindError(err, &in)))
		return
	}

	created, err := h.Catalog.CreateCategory(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, created)
}

// GET /api/products?category_id=&featured=
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	f := catalog.ProductFilter{CategoryID: c.Query("category_id")}
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			middleware.Fail(c, apperr.InvalidErr("featured must be true or false.", nil))
			return
		}
		f.Featured = &b
	}

	list, err := h.Catalog.Products(c.Request.Context(), f)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/products/:id
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	p, err := h.Catalog.Product(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /api/products
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var in catalog.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product data.", validation.FromBindError(err, &in)))
		return
	}

	created, err := h.Catalog.CreateProduct(c.Request.Context(), in)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, created)
}

// PUT /api/products/:id
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var in catalog.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Invalid product data.", validation.FromBindError(err, &in)))
		return
	}

	updated, err := h.Catalog.UpdateProduct(c.Request.Context(), c.Param("id"), in)
	if errors.Is(err, catalog.ErrProductNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /api/products/:id
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	err := h.Catalog.DeleteProduct(c.Request.Context(), c.Param("id"))
	if errors.Is(err, catalog.ErrProductNotFound) {
		middleware.Fail(c, apperr.NotFoundErr("Product not found."))
		return
	}
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// POST /api/products/:id/image (multipart "image")
func (h *CatalogHandler) UploadProductImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		middleware.Fail(c, apperr.InvalidErr("An image file is required.", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	defer f.Close()

	res, err := h.Images.Put(c.Request.Context(), f, storage.PutInput{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if err := h.Catalog.AttachProductImage(c.Request.Context(), c.Param("id"), res.URL); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Product not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": res.URL})
}
