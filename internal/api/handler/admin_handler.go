package handler

import (
	"errors"
	"net/http"

	"github.com/triosart/storefront/internal/admin"
	"github.com/triosart/storefront/internal/api/dto"
	"github.com/triosart/storefront/internal/domain"
)

// maxUploadSize caps a whole admin submission, images included.
const maxUploadSize = 32 << 20

type AdminHandler struct {
	uploader *admin.Uploader
}

func NewAdminHandler(uploader *admin.Uploader) *AdminHandler {
	if uploader == nil {
		panic("uploader cannot be nil")
	}
	return &AdminHandler{uploader: uploader}
}

// CreateProduct accepts the multipart admin form: text fields plus one or
// more files under "images".
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	form := admin.ProductForm{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Featured:    r.FormValue("featured") == "true",
		InStock:     r.FormValue("in_stock") != "false",
		Rating:      r.FormValue("rating"),
	}

	var images []admin.ImageFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				writeError(w, http.StatusBadRequest, "unreadable image "+header.Filename)
				return
			}
			defer file.Close()

			images = append(images, admin.ImageFile{
				Name:        header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Size:        header.Size,
				Data:        file,
			})
		}
	}

	product, err := h.uploader.Create(r.Context(), form, images)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIncompleteForm):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUploadFailed):
			writeError(w, http.StatusBadGateway, err.Error())
		default:
			// insert failures surface the backend message verbatim
			writeError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToProductResponse(product))
}
