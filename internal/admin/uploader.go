// Package admin implements the product submission flow: validate the form,
// upload images, insert the catalog record.
package admin

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/triosart/storefront/internal/domain"
	"github.com/triosart/storefront/internal/port"
)

// ProductForm carries the raw admin form fields. Price and rating arrive as
// strings and are parsed during submission.
type ProductForm struct {
	Name        string
	Price       string
	Description string
	Category    string
	Featured    bool
	InStock     bool
	Rating      string
}

type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Data        io.Reader
}

type productInserter interface {
	Insert(ctx context.Context, product domain.Product) error
}

type Uploader struct {
	store   port.ObjectStore
	catalog productInserter
	logger  zerolog.Logger
}

func NewUploader(store port.ObjectStore, catalog productInserter, logger zerolog.Logger) *Uploader {
	return &Uploader{
		store:   store,
		catalog: catalog,
		logger:  logger,
	}
}

// Create validates the form, uploads the images sequentially and inserts
// one catalog record referencing the collected URLs.
//
// A failed image upload is logged and skipped; the submission aborts only
// when every upload fails. Cancelling ctx aborts the flow between images.
func (u *Uploader) Create(ctx context.Context, form ProductForm, images []ImageFile) (domain.Product, error) {
	if form.Name == "" || form.Price == "" || form.Description == "" || len(images) == 0 {
		return domain.Product{}, domain.ErrIncompleteForm
	}

	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: price[%s] is not a number", domain.ErrIncompleteForm, form.Price)
	}

	rating := decimal.Zero
	if form.Rating != "" {
		rating, err = decimal.NewFromString(form.Rating)
		if err != nil {
			return domain.Product{}, fmt.Errorf("%w: rating[%s] is not a number", domain.ErrIncompleteForm, form.Rating)
		}
	}

	category, err := domain.ParseCategory(form.Category)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: %v", domain.ErrIncompleteForm, err)
	}

	// The product ID is assigned up front so image keys and the catalog
	// record reference the same identifier.
	productID := uuid.New()

	urls, err := u.uploadImages(ctx, productID, images)
	if err != nil {
		return domain.Product{}, err
	}
	if len(urls) == 0 {
		return domain.Product{}, domain.ErrUploadFailed
	}

	product := domain.Product{
		ID:          productID,
		Name:        form.Name,
		Price:       domain.USD(price),
		Description: form.Description,
		Images:      urls,
		Category:    category,
		Featured:    form.Featured,
		InStock:     form.InStock,
		Rating:      rating,
	}

	if err := u.catalog.Insert(ctx, product); err != nil {
		return domain.Product{}, fmt.Errorf("catalog.Insert: %w", err)
	}

	return product, nil
}

func (u *Uploader) uploadImages(ctx context.Context, productID uuid.UUID, images []ImageFile) ([]string, error) {
	urls := make([]string, 0, len(images))

	for _, image := range images {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		key := imageKey(productID, image.Name)

		if err := u.store.Upload(ctx, key, image.ContentType, image.Data, image.Size); err != nil {
			u.logger.Warn().Err(err).
				Str("product_id", productID.String()).
				Str("key", key).
				Msg("image upload failed, skipping")
			continue
		}

		urls = append(urls, u.store.PublicURL(key))
	}

	return urls, nil
}

// imageKey scopes the object key by product ID with a timestamp plus random
// suffix so re-uploads of the same filename never collide.
func imageKey(productID uuid.UUID, fileName string) string {
	return fmt.Sprintf("products/%s/%d-%s%s",
		productID, time.Now().UnixMilli(), randomToken(), path.Ext(fileName))
}

func randomToken() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
