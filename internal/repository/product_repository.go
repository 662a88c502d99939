package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/triosart/storefront/internal/db"
	"github.com/triosart/storefront/internal/domain"
	"github.com/triosart/storefront/internal/port"
	"golang.org/x/text/currency"
)

type productRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewProduct(pool *pgxpool.Pool) port.ProductRepository {
	return &productRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewProductWithTx(tx pgx.Tx) port.ProductRepository {
	return &productRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.q.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListProducts: %w", err)
	}

	products, err := mapProductRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapProductRowsToDomain: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	row, err := r.q.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("q.GetProduct: %w", err)
	}

	product, err := mapProductRowToDomain(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("mapProductRowToDomain: %w", err)
	}

	return product, nil
}

func (r *productRepository) InsertProduct(ctx context.Context, product domain.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("product.Validate: %w", err)
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		err := q.InsertProduct(ctx, db.InsertProductParams{
			ID:            product.ID,
			Name:          product.Name,
			PriceAmount:   product.Price.Amount,
			PriceCurrency: product.Price.Currency.String(),
			Description:   product.Description,
			Images:        product.Images,
			Category:      string(product.Category),
			Featured:      product.Featured,
			InStock:       product.InStock,
			Rating:        product.Rating,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.InsertProduct: %w", err)
		}
		return struct{}{}, nil
	})

	return err
}

func mapProductRowToDomain(row db.Product) (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	category, err := domain.ParseCategory(row.Category)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseCategory: %w", err)
	}

	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Price:       domain.Money{Amount: row.PriceAmount, Currency: parsedCurrency},
		Description: row.Description,
		Images:      row.Images,
		Category:    category,
		Featured:    row.Featured,
		InStock:     row.InStock,
		Rating:      row.Rating,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func mapProductRowsToDomain(rows []db.Product) ([]domain.Product, error) {
	var products []domain.Product

	for _, row := range rows {
		product, err := mapProductRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapProductRowToDomain: %w", err)
		}

		products = append(products, product)
	}

	return products, nil
}
