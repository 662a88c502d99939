// Package cache holds the redis-backed product list cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/triosart/storefront/internal/domain"
	"github.com/triosart/storefront/internal/port"
	"golang.org/x/text/currency"
)

const productsKey = "catalog:products"

type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) port.ProductCache {
	return &ProductCache{
		client: client,
		ttl:    ttl,
	}
}

// cachedProduct is the JSON shape stored in redis. currency.Unit does not
// marshal, so price is flattened the same way the products table stores it.
type cachedProduct struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	PriceAmount   decimal.Decimal `json:"price_amount"`
	PriceCurrency string          `json:"price_currency"`
	Description   string          `json:"description"`
	Images        []string        `json:"images"`
	Category      string          `json:"category"`
	Featured      bool            `json:"featured"`
	InStock       bool            `json:"in_stock"`
	Rating        decimal.Decimal `json:"rating"`
	CreatedAt     time.Time       `json:"created_at"`
}

func (c *ProductCache) GetProducts(ctx context.Context) ([]domain.Product, error) {
	payload, err := c.client.Get(ctx, productsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("client.Get: %w", err)
	}

	var rows []cachedProduct
	if err := json.Unmarshal(payload, &rows); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %w", err)
	}

	products := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		product, err := row.toDomain()
		if err != nil {
			return nil, fmt.Errorf("row.toDomain: %w", err)
		}
		products = append(products, product)
	}

	return products, nil
}

func (c *ProductCache) SetProducts(ctx context.Context, products []domain.Product) error {
	rows := make([]cachedProduct, 0, len(products))
	for _, p := range products {
		rows = append(rows, toCached(p))
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := c.client.Set(ctx, productsKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("client.Set: %w", err)
	}

	return nil
}

func (c *ProductCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, productsKey).Err(); err != nil {
		return fmt.Errorf("client.Del: %w", err)
	}
	return nil
}

func toCached(p domain.Product) cachedProduct {
	return cachedProduct{
		ID:            p.ID,
		Name:          p.Name,
		PriceAmount:   p.Price.Amount,
		PriceCurrency: p.Price.Currency.String(),
		Description:   p.Description,
		Images:        p.Images,
		Category:      string(p.Category),
		Featured:      p.Featured,
		InStock:       p.InStock,
		Rating:        p.Rating,
		CreatedAt:     p.CreatedAt,
	}
}

func (r cachedProduct) toDomain() (domain.Product, error) {
	parsedCurrency, err := currency.ParseISO(r.PriceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", r.PriceCurrency, err)
	}

	category, err := domain.ParseCategory(r.Category)
	if err != nil {
		return domain.Product{}, fmt.Errorf("domain.ParseCategory: %w", err)
	}

	return domain.Product{
		ID:          r.ID,
		Name:        r.Name,
		Price:       domain.Money{Amount: r.PriceAmount, Currency: parsedCurrency},
		Description: r.Description,
		Images:      r.Images,
		Category:    category,
		Featured:    r.Featured,
		InStock:     r.InStock,
		Rating:      r.Rating,
		CreatedAt:   r.CreatedAt,
	}, nil
}
