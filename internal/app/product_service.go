package app

import (
	"context"
	"fmt"

	"github.com/example/stockbook/internal/models"
	"github.com/example/stockbook/internal/ports/primary"
	"github.com/example/stockbook/internal/ports/secondary"
)

// ProductServiceImpl implements the ProductService interface.
type ProductServiceImpl struct {
	productRepo secondary.ProductRepository
}

// NewProductService creates a new ProductService with injected dependencies.
func NewProductService(productRepo secondary.ProductRepository) *ProductServiceImpl {
	return &ProductServiceImpl{productRepo: productRepo}
}

// SaveProduct creates or updates a product. Editing day counts never
// rewrites the end dates on treatments already recorded.
func (s *ProductServiceImpl) SaveProduct(ctx context.Context, req primary.SaveProductRequest) (*models.Product, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	product := &models.Product{
		ID:               req.ID,
		Name:             req.Name,
		ActiveIngredient: req.ActiveIngredient,
		Category:         req.Category,
		MeatWHPDays:      req.MeatWHPDays,
		MilkWHPDays:      req.MilkWHPDays,
		ESIDays:          req.ESIDays,
		DefaultDose:      req.DefaultDose,
		DefaultRoute:     req.DefaultRoute,
		Notes:            req.Notes,
	}

	saved, err := s.productRepo.Save(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return saved, nil
}

// GetProduct retrieves a product by ID.
func (s *ProductServiceImpl) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d not found", id)
	}
	return product, nil
}

// ListProducts lists all products.
func (s *ProductServiceImpl) ListProducts(ctx context.Context) ([]*models.Product, error) {
	return s.productRepo.List(ctx)
}

// DeleteProduct deletes a product.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id int64) error {
	return s.productRepo.Delete(ctx, id)
}

var _ primary.ProductService = (*ProductServiceImpl)(nil)
