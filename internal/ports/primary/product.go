package primary

import (
	"context"

	"github.com/example/stockbook/internal/models"
)

// SaveProductRequest creates a product when ID is zero, updates it
// otherwise. Day counts of zero mean the product imposes no
// withholding on that channel.
type SaveProductRequest struct {
	ID               int64
	Name             string `validate:"required"`
	ActiveIngredient string
	Category         string
	MeatWHPDays      int    `validate:"gte=0"`
	MilkWHPDays      int    `validate:"gte=0"`
	ESIDays          int    `validate:"gte=0"`
	DefaultDose      string
	DefaultRoute     string `validate:"omitempty,oneof=oral subcutaneous intramuscular pour_on spray ear_tag intraruminal other"`
	Notes            string
}

// ProductService manages treatment products.
type ProductService interface {
	SaveProduct(ctx context.Context, req SaveProductRequest) (*models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ListProducts(ctx context.Context) ([]*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}
