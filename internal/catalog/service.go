package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/triosart/storefront/internal/domain"
	"github.com/triosart/storefront/internal/port"
)

// Service reads the catalog through an optional cache and applies the
// listing filter. Writes go to the repository and invalidate the cache.
type Service struct {
	repo   port.ProductRepository
	cache  port.ProductCache // may be nil
	logger zerolog.Logger
}

func NewService(repo port.ProductRepository, cache port.ProductCache, logger zerolog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List returns the filtered, ordered product list. A failed catalog fetch
// is logged and degrades to an empty list rather than an error.
func (s *Service) List(ctx context.Context, f Filter) []domain.Product {
	products, err := s.fetchAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("catalog fetch failed")
		return nil
	}

	return Apply(products, f)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	product, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return domain.Product{}, err
		}
		return domain.Product{}, fmt.Errorf("repo.GetProduct: %w", err)
	}

	return product, nil
}

func (s *Service) Insert(ctx context.Context, product domain.Product) error {
	if err := s.repo.InsertProduct(ctx, product); err != nil {
		return fmt.Errorf("repo.InsertProduct: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("product cache invalidation failed")
		}
	}

	return nil
}

// fetchAll reads products from the cache when possible, falling back to the
// repository. Cache failures are logged and never fail the read.
func (s *Service) fetchAll(ctx context.Context) ([]domain.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.GetProducts(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("product cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("repo.ListProducts: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetProducts(ctx, products); err != nil {
			s.logger.Warn().Err(err).Msg("product cache write failed")
		}
	}

	return products, nil
}
