package catalog

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/triosart/storefront/internal/domain"
)

type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// Filter derives the displayed product list from the full catalog.
type Filter struct {
	// Category is a concrete category or domain.CategoryAll.
	Category string
	// PriceCeiling is inclusive; products priced in [0, ceiling] are kept.
	PriceCeiling decimal.Decimal
	InStockOnly  bool
	SortBy       SortKey
}

// DefaultFilter mirrors the storefront listing defaults: all categories,
// ceiling 100, in-stock only, featured ordering.
func DefaultFilter() Filter {
	return Filter{
		Category:     domain.CategoryAll,
		PriceCeiling: decimal.NewFromInt(100),
		InStockOnly:  true,
		SortBy:       SortFeatured,
	}
}

// Apply selects and orders products without mutating the input slice.
//
// Ordering of products with equal price or rating is unspecified for the
// price and rating sorts. The featured sort is featured-first with ties
// broken by descending rating, and is stable beyond that.
func Apply(products []domain.Product, f Filter) []domain.Product {
	result := make([]domain.Product, 0, len(products))

	for _, p := range products {
		if f.Category != domain.CategoryAll && string(p.Category) != f.Category {
			continue
		}
		if p.Price.Amount.IsNegative() || p.Price.Amount.GreaterThan(f.PriceCeiling) {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		result = append(result, p)
	}

	switch f.SortBy {
	case SortPriceLow:
		sort.Slice(result, func(i, j int) bool {
			return result[i].Price.Amount.LessThan(result[j].Price.Amount)
		})
	case SortPriceHigh:
		sort.Slice(result, func(i, j int) bool {
			return result[i].Price.Amount.GreaterThan(result[j].Price.Amount)
		})
	case SortRating:
		sort.Slice(result, func(i, j int) bool {
			return result[i].Rating.GreaterThan(result[j].Rating)
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			if result[i].Featured != result[j].Featured {
				return result[i].Featured
			}
			return result[i].Rating.GreaterThan(result[j].Rating)
		})
	}

	return result
}
