package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triosart/storefront/internal/catalog"
	"github.com/triosart/storefront/internal/domain"
)

type fakeRepo struct {
	products []domain.Product
	listErr  error
	inserted []domain.Product
	listed   int
}

func (f *fakeRepo) ListProducts(_ context.Context) ([]domain.Product, error) {
	f.listed++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeRepo) GetProduct(_ context.Context, id uuid.UUID) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrProductNotFound
}

func (f *fakeRepo) InsertProduct(_ context.Context, product domain.Product) error {
	f.inserted = append(f.inserted, product)
	f.products = append(f.products, product)
	return nil
}

type fakeCache struct {
	products    []domain.Product
	getErr      error
	invalidated int
}

func (f *fakeCache) GetProducts(_ context.Context) ([]domain.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.products, nil
}

func (f *fakeCache) SetProducts(_ context.Context, products []domain.Product) error {
	f.products = products
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context) error {
	f.products = nil
	f.invalidated++
	return nil
}

func TestListDegradesToEmptyOnFetchFailure(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection refused")}
	svc := catalog.NewService(repo, nil, zerolog.Nop())

	result := svc.List(t.Context(), catalog.DefaultFilter())

	assert.Empty(t, result)
}

func TestListReadsThroughCache(t *testing.T) {
	products := seedCatalog()
	repo := &fakeRepo{products: products}
	cache := &fakeCache{}
	svc := catalog.NewService(repo, cache, zerolog.Nop())

	// first read misses the cache and fills it
	first := svc.List(t.Context(), catalog.DefaultFilter())
	require.Len(t, first, len(products))
	assert.Equal(t, 1, repo.listed)

	// second read is served from the cache
	second := svc.List(t.Context(), catalog.DefaultFilter())
	require.Len(t, second, len(products))
	assert.Equal(t, 1, repo.listed)
}

func TestListToleratesCacheFailure(t *testing.T) {
	repo := &fakeRepo{products: seedCatalog()}
	cache := &fakeCache{getErr: errors.New("redis down")}
	svc := catalog.NewService(repo, cache, zerolog.Nop())

	result := svc.List(t.Context(), catalog.DefaultFilter())

	assert.Len(t, result, 6)
}

func TestGet(t *testing.T) {
	products := seedCatalog()
	svc := catalog.NewService(&fakeRepo{products: products}, nil, zerolog.Nop())

	found, err := svc.Get(t.Context(), products[2].ID)
	require.NoError(t, err)
	assert.Equal(t, products[2].Name, found.Name)

	_, err = svc.Get(t.Context(), uuid.New())
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestInsertInvalidatesCache(t *testing.T) {
	repo := &fakeRepo{}
	cache := &fakeCache{products: seedCatalog()}
	svc := catalog.NewService(repo, cache, zerolog.Nop())

	product := seedCatalog()[0]
	require.NoError(t, svc.Insert(t.Context(), product))

	assert.Len(t, repo.inserted, 1)
	assert.Equal(t, 1, cache.invalidated)
}
