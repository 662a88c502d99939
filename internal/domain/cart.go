package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// Cart holds the selected products of one owner. Entries are unique by
// product ID and keep insertion order.
type Cart struct {
	OwnerID string
	Items   []CartItem
}

type CartItem struct {
	Product  Product
	Quantity int

	AddedAt time.Time
}

func (i CartItem) Subtotal() Money {
	return i.Product.Price.Mul(i.Quantity)
}

// Total recomputes the cart total as the sum of price times quantity over
// all items. An empty cart totals to zero USD.
func (c Cart) Total() Money {
	if len(c.Items) == 0 {
		return Money{Amount: decimal.Zero, Currency: currency.USD}
	}

	sum := decimal.Zero
	for _, item := range c.Items {
		sum = sum.Add(item.Subtotal().Amount)
	}

	return Money{Amount: sum, Currency: c.Items[0].Product.Price.Currency}
}
