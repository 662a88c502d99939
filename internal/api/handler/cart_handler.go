package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/triosart/storefront/internal/api/dto"
	"github.com/triosart/storefront/internal/cart"
	"github.com/triosart/storefront/internal/catalog"
	"github.com/triosart/storefront/internal/domain"
)

const cartCookieName = "cart_id"

type CartHandler struct {
	carts   *cart.Store
	catalog *catalog.Service
}

func NewCartHandler(carts *cart.Store, catalogService *catalog.Service) *CartHandler {
	if carts == nil || catalogService == nil {
		panic("carts and catalogService cannot be nil")
	}
	return &CartHandler{
		carts:   carts,
		catalog: catalogService,
	}
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID := h.ownerID(w, r)
	writeJSON(w, http.StatusOK, dto.ToCartResponse(h.carts.Get(ownerID)))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.Get(r.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, domain.ErrProductNotFound.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	ownerID := h.ownerID(w, r)
	if err := h.carts.Add(ownerID, product, req.Quantity); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCartResponse(h.carts.Get(ownerID)))
}

func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req dto.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ownerID := h.ownerID(w, r)
	h.carts.UpdateQuantity(ownerID, productID, req.Quantity)

	writeJSON(w, http.StatusOK, dto.ToCartResponse(h.carts.Get(ownerID)))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := uuid.Parse(chi.URLParam(r, "productID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	ownerID := h.ownerID(w, r)
	h.carts.Remove(ownerID, productID)

	writeJSON(w, http.StatusOK, dto.ToCartResponse(h.carts.Get(ownerID)))
}

// ownerID identifies the cart owner via a cookie, minting one on first use.
func (h *CartHandler) ownerID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(cartCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	ownerID := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     cartCookieName,
		Value:    ownerID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ownerID
}
