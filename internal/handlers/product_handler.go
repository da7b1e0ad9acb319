package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"product-inventory/internal/models"
	"product-inventory/internal/service"
)

const MsgProductDeleted = "Product deleted successfully"

// ProductService es lo que el handler necesita del servicio
type ProductService interface {
	List(ctx context.Context) ([]models.Product, error)
	GetOne(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, in models.ProductCreate) (*models.Product, error)
	Update(ctx context.Context, id string, in models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

type ProductHandler struct {
	svc ProductService
}

func NewProductHandler(svc ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// MessageResponse es el cuerpo de errores y de la confirmación de borrado
type MessageResponse struct {
	Message string `json:"message"`
}

// ListProducts GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.svc.GetOne(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var in models.ProductCreate
	if err := bindBody(c, &in); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	product, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var in models.ProductUpdate
	if err := bindBody(c, &in); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	product, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// DeleteProduct DELETE /products/:id (borrado físico)
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: MsgProductDeleted})
}

// --- Métodos auxiliares ---

// bindBody acepta JSON o formulario; un cuerpo vacío es un fragmento vacío
func bindBody(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBind(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// respondError traduce los errores del servicio a status y cuerpo {message}
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)

	var verr *models.ValidationError
	var serr *service.StoreError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, MessageResponse{Message: verr.Message})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, MessageResponse{Message: service.ErrProductNotFound.Error()})
	case errors.As(err, &serr):
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: serr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: err.Error()})
	}
}
