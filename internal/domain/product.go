package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryTotes     Category = "totes"
	CategoryShoulder  Category = "shoulder"
	CategoryClutch    Category = "clutch"
	CategoryMessenger Category = "messenger"
)

// CategoryAll is a filter sentinel, not a product category.
const CategoryAll = "all"

func Categories() []Category {
	return []Category{CategoryTotes, CategoryShoulder, CategoryClutch, CategoryMessenger}
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if s == string(c) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Product is immutable once fetched from the catalog.
type Product struct {
	ID          uuid.UUID
	Name        string
	Price       Money
	Description string
	Images      []string
	Category    Category
	Featured    bool
	InStock     bool
	Rating      decimal.Decimal

	CreatedAt time.Time
}

func (p Product) Validate() error {
	if p.ID == uuid.Nil {
		return fmt.Errorf("product ID is empty")
	}
	if p.Name == "" {
		return fmt.Errorf("product name is empty")
	}
	if p.Price.Amount.IsNegative() {
		return fmt.Errorf("product price[%s] is negative", p.Price.Amount)
	}
	if len(p.Images) == 0 {
		return fmt.Errorf("product has no images")
	}
	if p.Rating.IsNegative() || p.Rating.GreaterThan(decimal.NewFromInt(5)) {
		return fmt.Errorf("product rating[%s] is out of range", p.Rating)
	}
	return nil
}
