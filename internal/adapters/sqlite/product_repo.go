package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stockbook/internal/models"
)

// ProductRepository implements secondary.ProductRepository with SQLite.
type ProductRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new SQLite product repository.
func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productSelectCols = "id, name, active_ingredient, category, meat_whp_days, milk_whp_days, esi_days, default_dose, default_route, notes, created_at, updated_at"

func scanProduct(scanner interface {
	Scan(dest ...any) error
}) (*models.Product, error) {
	var ingredient, category, dose, route, notes sql.NullString

	product := &models.Product{}
	err := scanner.Scan(
		&product.ID, &product.Name, &ingredient, &category,
		&product.MeatWHPDays, &product.MilkWHPDays, &product.ESIDays,
		&dose, &route, &notes, &product.CreatedAt, &product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.ActiveIngredient = ingredient.String
	product.Category = category.String
	product.DefaultDose = dose.String
	product.DefaultRoute = route.String
	product.Notes = notes.String
	return product, nil
}

// Save inserts the product when its ID is zero, otherwise updates in
// place. Treatments already recorded keep their stored end dates.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO products (name, active_ingredient, category, meat_whp_days, milk_whp_days, esi_days, default_dose, default_route, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			product.Name, product.ActiveIngredient, product.Category,
			product.MeatWHPDays, product.MilkWHPDays, product.ESIDays,
			product.DefaultDose, product.DefaultRoute, product.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert product: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get product id: %w", err)
		}
		return r.GetByID(ctx, id)
	}

	_, err := r.db.ExecContext(ctx,
		`UPDATE products SET name = ?, active_ingredient = ?, category = ?, meat_whp_days = ?, milk_whp_days = ?,
		 esi_days = ?, default_dose = ?, default_route = ?, notes = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		product.Name, product.ActiveIngredient, product.Category,
		product.MeatWHPDays, product.MilkWHPDays, product.ESIDays,
		product.DefaultDose, product.DefaultRoute, product.Notes, product.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return r.GetByID(ctx, product.ID)
}

// GetByID retrieves a product, returning (nil, nil) when it does not exist.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+productSelectCols+" FROM products WHERE id = ?", id,
	)

	product, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// List retrieves all products ordered by name.
func (r *ProductRepository) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+productSelectCols+" FROM products ORDER BY name",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Delete removes a product.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
