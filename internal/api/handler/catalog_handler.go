package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/triosart/storefront/internal/api/dto"
	"github.com/triosart/storefront/internal/catalog"
	"github.com/triosart/storefront/internal/domain"
)

type CatalogHandler struct {
	catalog *catalog.Service
}

func NewCatalogHandler(catalogService *catalog.Service) *CatalogHandler {
	if catalogService == nil {
		panic("catalogService cannot be nil")
	}
	return &CatalogHandler{catalog: catalogService}
}

// List serves the filtered, sorted product listing. Unset query parameters
// fall back to the storefront defaults.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	f := catalog.DefaultFilter()
	query := r.URL.Query()

	if category := query.Get("category"); category != "" && category != domain.CategoryAll {
		parsed, err := domain.ParseCategory(category)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		f.Category = string(parsed)
	}

	if maxPrice := query.Get("max_price"); maxPrice != "" {
		ceiling, err := decimal.NewFromString(maxPrice)
		if err != nil || ceiling.IsNegative() {
			writeError(w, http.StatusBadRequest, "max_price must be a non-negative number")
			return
		}
		f.PriceCeiling = ceiling
	}

	if inStock := query.Get("in_stock"); inStock != "" {
		f.InStockOnly = inStock != "false"
	}

	if sortBy := query.Get("sort"); sortBy != "" {
		switch catalog.SortKey(sortBy) {
		case catalog.SortFeatured, catalog.SortPriceLow, catalog.SortPriceHigh, catalog.SortRating:
			f.SortBy = catalog.SortKey(sortBy)
		default:
			writeError(w, http.StatusBadRequest, "unknown sort key "+sortBy)
			return
		}
	}

	products := h.catalog.List(r.Context(), f)
	writeJSON(w, http.StatusOK, dto.ToProductResponses(products))
}

func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	product, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, domain.ErrProductNotFound.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToProductResponse(product))
}
