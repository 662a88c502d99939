// Package cart keeps per-owner shopping carts in process memory. Carts are
// session-local and do not survive a restart.
package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/triosart/storefront/internal/domain"
)

type Store struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

func NewStore() *Store {
	return &Store{
		carts: make(map[string]*domain.Cart),
	}
}

// Add puts a product into the owner's cart. Adding a product that is
// already present increments its quantity instead of duplicating the entry.
func (s *Store) Add(ownerID string, product domain.Product, quantity int) error {
	if quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ownerID)
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			return nil
		}
	}

	c.Items = append(c.Items, domain.CartItem{
		Product:  product,
		Quantity: quantity,
		AddedAt:  time.Now(),
	})

	return nil
}

// UpdateQuantity sets the quantity of an existing entry. A quantity of zero
// or less removes the entry. An absent product ID is a no-op.
func (s *Store) UpdateQuantity(ownerID string, productID uuid.UUID, quantity int) {
	if quantity <= 0 {
		s.Remove(ownerID, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ownerID)
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Remove deletes the entry if present. Removing an absent product is a no-op.
func (s *Store) Remove(ownerID string, productID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.cart(ownerID)
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// Get returns a snapshot of the owner's cart.
func (s *Store) Get(ownerID string) domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[ownerID]
	if !ok {
		return domain.Cart{OwnerID: ownerID}
	}

	items := make([]domain.CartItem, len(c.Items))
	copy(items, c.Items)

	return domain.Cart{OwnerID: ownerID, Items: items}
}

// cart returns the live cart for ownerID, creating it if needed.
// Callers must hold s.mu.
func (s *Store) cart(ownerID string) *domain.Cart {
	c, ok := s.carts[ownerID]
	if !ok {
		c = &domain.Cart{OwnerID: ownerID}
		s.carts[ownerID] = c
	}
	return c
}
