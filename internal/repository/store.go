package repository

import (
	"context"
	"errors"
	"fmt"

	"product-inventory/internal/models"
)

// ErrNotFound se devuelve cuando no existe un documento para el id (o el id no es válido)
var ErrNotFound = errors.New("product not found")

// Store es la interfaz de persistencia que consume el servicio
type Store interface {
	// Find devuelve todos los productos, los más recientes primero
	Find(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	// Create asigna id y timestamps a product y lo inserta
	Create(ctx context.Context, product *models.Product) error
	// FindByIDAndUpdate aplica update y devuelve el documento anterior
	FindByIDAndUpdate(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	// FindByIDAndDelete borra el documento y lo devuelve
	FindByIDAndDelete(ctx context.Context, id string) (*models.Product, error)
}

// ConstraintError es una violación de esquema detectada por el store
type ConstraintError struct {
	Path    string
	Message string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("Product validation failed: %s: %s", e.Path, e.Message)
}

// checkProduct aplica las restricciones del esquema a un documento completo
func checkProduct(p *models.Product) error {
	if p.Name == "" {
		return &ConstraintError{Path: "name", Message: models.MsgNameRequired}
	}
	return checkUpdate(models.ProductUpdate{Price: &p.Price, Quantity: &p.Quantity})
}

// checkUpdate aplica las restricciones solo a los campos presentes
func checkUpdate(u models.ProductUpdate) error {
	if u.Price != nil && *u.Price < 0 {
		return &ConstraintError{Path: "price", Message: models.MsgPriceNegative}
	}
	if u.Quantity != nil && *u.Quantity < 0 {
		return &ConstraintError{Path: "quantity", Message: models.MsgQuantityNegative}
	}
	if u.Name != nil && *u.Name == "" {
		return &ConstraintError{Path: "name", Message: models.MsgNameRequired}
	}
	return nil
}
