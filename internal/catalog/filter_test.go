package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triosart/storefront/internal/catalog"
	"github.com/triosart/storefront/internal/domain"
)

// seedCatalog mirrors the demo storefront: six bags, three of them totes.
func seedCatalog() []domain.Product {
	build := func(name string, price float64, category domain.Category, featured, inStock bool, rating float64) domain.Product {
		return domain.Product{
			ID:       uuid.New(),
			Name:     name,
			Price:    domain.USD(decimal.NewFromFloat(price)),
			Images:   []string{"https://images.example.com/" + name + ".jpeg"},
			Category: category,
			Featured: featured,
			InStock:  inStock,
			Rating:   decimal.NewFromFloat(rating),
		}
	}

	return []domain.Product{
		build("floral-paradise-tote", 49.99, domain.CategoryTotes, true, true, 4.8),
		build("ocean-waves-shoulder", 59.99, domain.CategoryShoulder, true, true, 4.7),
		build("abstract-art-clutch", 39.99, domain.CategoryClutch, false, true, 4.5),
		build("botanical-garden-tote", 54.99, domain.CategoryTotes, true, true, 4.9),
		build("geometric-messenger", 64.99, domain.CategoryMessenger, false, true, 4.6),
		build("sunset-dreams-mini-tote", 44.99, domain.CategoryTotes, false, true, 4.7),
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	f := catalog.DefaultFilter()
	f.Category = string(domain.CategoryTotes)

	result := catalog.Apply(seedCatalog(), f)

	require.Len(t, result, 3)
	for _, p := range result {
		assert.Equal(t, domain.CategoryTotes, p.Category)
	}
}

func TestApplyAllCategories(t *testing.T) {
	result := catalog.Apply(seedCatalog(), catalog.DefaultFilter())
	assert.Len(t, result, 6)
}

func TestApplyPriceCeiling(t *testing.T) {
	tests := []struct {
		name      string
		ceiling   string
		wantNames []string
	}{
		{
			name:      "ceiling excludes higher-priced products",
			ceiling:   "50",
			wantNames: []string{"floral-paradise-tote", "abstract-art-clutch", "sunset-dreams-mini-tote"},
		},
		{
			name:      "ceiling is inclusive",
			ceiling:   "49.99",
			wantNames: []string{"floral-paradise-tote", "abstract-art-clutch", "sunset-dreams-mini-tote"},
		},
		{
			name:      "ceiling below all prices yields empty",
			ceiling:   "10",
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := catalog.DefaultFilter()
			f.PriceCeiling = decimal.RequireFromString(tt.ceiling)

			result := catalog.Apply(seedCatalog(), f)

			var names []string
			for _, p := range result {
				names = append(names, p.Name)
			}
			assert.ElementsMatch(t, tt.wantNames, names)
		})
	}
}

func TestApplyInStockOnly(t *testing.T) {
	products := seedCatalog()
	products[1].InStock = false
	products[4].InStock = false

	f := catalog.DefaultFilter()
	result := catalog.Apply(products, f)
	assert.Len(t, result, 4)

	f.InStockOnly = false
	result = catalog.Apply(products, f)
	assert.Len(t, result, 6)
}

func TestApplySortPriceLow(t *testing.T) {
	prices := []float64{49.99, 59.99, 39.99}
	products := make([]domain.Product, 0, len(prices))
	for _, price := range prices {
		products = append(products, domain.Product{
			ID:       uuid.New(),
			Name:     "bag",
			Price:    domain.USD(decimal.NewFromFloat(price)),
			Category: domain.CategoryTotes,
			InStock:  true,
		})
	}

	f := catalog.DefaultFilter()
	f.SortBy = catalog.SortPriceLow

	result := catalog.Apply(products, f)

	require.Len(t, result, 3)
	assert.True(t, result[0].Price.Amount.Equal(decimal.RequireFromString("39.99")))
	assert.True(t, result[1].Price.Amount.Equal(decimal.RequireFromString("49.99")))
	assert.True(t, result[2].Price.Amount.Equal(decimal.RequireFromString("59.99")))
}

func TestApplySortPriceHigh(t *testing.T) {
	f := catalog.DefaultFilter()
	f.SortBy = catalog.SortPriceHigh

	result := catalog.Apply(seedCatalog(), f)

	require.NotEmpty(t, result)
	for i := 1; i < len(result); i++ {
		assert.True(t, result[i-1].Price.Amount.GreaterThanOrEqual(result[i].Price.Amount))
	}
}

func TestApplySortRating(t *testing.T) {
	f := catalog.DefaultFilter()
	f.SortBy = catalog.SortRating

	result := catalog.Apply(seedCatalog(), f)

	require.NotEmpty(t, result)
	for i := 1; i < len(result); i++ {
		assert.True(t, result[i-1].Rating.GreaterThanOrEqual(result[i].Rating))
	}
}

func TestApplySortFeatured(t *testing.T) {
	result := catalog.Apply(seedCatalog(), catalog.DefaultFilter())
	require.Len(t, result, 6)

	// featured first, ties broken by descending rating
	wantNames := []string{
		"botanical-garden-tote",   // featured, 4.9
		"floral-paradise-tote",    // featured, 4.8
		"ocean-waves-shoulder",    // featured, 4.7
		"sunset-dreams-mini-tote", // 4.7
		"geometric-messenger",     // 4.6
		"abstract-art-clutch",     // 4.5
	}
	var names []string
	for _, p := range result {
		names = append(names, p.Name)
	}
	assert.Equal(t, wantNames, names)
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	products := seedCatalog()
	firstID := products[0].ID

	f := catalog.DefaultFilter()
	f.SortBy = catalog.SortPriceHigh
	catalog.Apply(products, f)

	assert.Equal(t, firstID, products[0].ID)
}
