// Package dto holds the JSON shapes of the storefront API.
package dto

import (
	"github.com/triosart/storefront/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
	}
}

type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Currency    string   `json:"currency"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Featured    bool     `json:"featured"`
	InStock     bool     `json:"in_stock"`
	Rating      string   `json:"rating"`
}

func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Price:       p.Price.Amount.String(),
		Currency:    p.Price.Currency.String(),
		Description: p.Description,
		Images:      p.Images,
		Category:    string(p.Category),
		Featured:    p.Featured,
		InStock:     p.InStock,
		Rating:      p.Rating.String(),
	}
}

func ToProductResponses(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CartItemResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal string          `json:"subtotal"`
}

type CartResponse struct {
	Items    []CartItemResponse `json:"items"`
	Total    string             `json:"total"`
	Currency string             `json:"currency"`
}

func ToCartResponse(c domain.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemResponse{
			Product:  ToProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal().Amount.StringFixed(2),
		})
	}

	total := c.Total()
	return CartResponse{
		Items:    items,
		Total:    total.Amount.StringFixed(2),
		Currency: total.Currency.String(),
	}
}
