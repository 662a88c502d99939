package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/triosart/storefront/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error)
	InsertProduct(ctx context.Context, product domain.Product) error
}

// ProductCache is a best-effort read-through cache for the full product
// list. GetProducts returns (nil, nil) on a cache miss.
type ProductCache interface {
	GetProducts(ctx context.Context) ([]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	Invalidate(ctx context.Context) error
}
