package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"product-inventory/internal/models"
	"product-inventory/internal/repository"
)

// ErrProductNotFound indica que no hay producto para el id pedido
var ErrProductNotFound = errors.New("Product not found")

// StoreError envuelve una falla inesperada del store. El mensaje es el del error original.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ProductService media entre el HTTP y el store
type ProductService struct {
	store repository.Store
	log   *zap.Logger
}

func NewProductService(store repository.Store, log *zap.Logger) *ProductService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductService{store: store, log: log}
}

// List devuelve todos los productos, los más nuevos primero
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.store.Find(ctx)
	if err != nil {
		return nil, s.storeError("list", err)
	}
	return products, nil
}

// GetOne busca un producto por id
func (s *ProductService) GetOne(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.storeError("get", err)
	}
	return product, nil
}

// Create valida y persiste un producto nuevo
func (s *ProductService) Create(ctx context.Context, in models.ProductCreate) (*models.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	product := in.Product()
	if err := s.store.Create(ctx, product); err != nil {
		return nil, s.storeError("create", err)
	}

	s.log.Info("product created", zap.String("id", product.ID.Hex()))
	return product, nil
}

// Update aplica una actualización parcial y devuelve el producto ya actualizado
func (s *ProductService) Update(ctx context.Context, id string, in models.ProductUpdate) (*models.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.store.FindByIDAndUpdate(ctx, id, in); err != nil {
		return nil, s.storeError("update", err)
	}

	// el store devuelve el estado previo; releer el documento
	updated, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, s.storeError("update", err)
	}

	s.log.Info("product updated", zap.String("id", id))
	return updated, nil
}

// Delete borra el producto
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if _, err := s.store.FindByIDAndDelete(ctx, id); err != nil {
		return s.storeError("delete", err)
	}

	s.log.Info("product deleted", zap.String("id", id))
	return nil
}

func (s *ProductService) storeError(op string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrProductNotFound
	}
	s.log.Error("store operation failed", zap.String("op", op), zap.Error(err))
	return &StoreError{Op: op, Err: err}
}
