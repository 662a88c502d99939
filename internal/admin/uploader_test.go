package admin_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/triosart/storefront/internal/admin"
	"github.com/triosart/storefront/internal/domain"
)

type fakeObjectStore struct {
	uploads  []string
	failKeys func(key string) bool
}

func (f *fakeObjectStore) Upload(_ context.Context, key, _ string, r io.Reader, _ int64) error {
	if f.failKeys != nil && f.failKeys(key) {
		return errors.New("connection reset")
	}
	if _, err := io.Copy(io.Discard, r); err != nil {
		return err
	}
	f.uploads = append(f.uploads, key)
	return nil
}

func (f *fakeObjectStore) PublicURL(key string) string {
	return "https://cdn.example.com/product-images/" + key
}

type fakeInserter struct {
	inserted  []domain.Product
	insertErr error
}

func (f *fakeInserter) Insert(_ context.Context, product domain.Product) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, product)
	return nil
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func validForm() admin.ProductForm {
	return admin.ProductForm{
		Name:        "Floral Paradise Jute Tote",
		Price:       "49.99",
		Description: "Hand-painted floral design on a sturdy jute tote bag.",
		Category:    "totes",
		Featured:    true,
		InStock:     true,
		Rating:      "4.8",
	}
}

func images(names ...string) []admin.ImageFile {
	files := make([]admin.ImageFile, 0, len(names))
	for _, name := range names {
		files = append(files, admin.ImageFile{
			Name:        name,
			ContentType: "image/jpeg",
			Size:        4,
			Data:        strings.NewReader("data"),
		})
	}
	return files
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*admin.ProductForm)
		images []admin.ImageFile
	}{
		{
			name:   "empty name",
			mutate: func(f *admin.ProductForm) { f.Name = "" },
			images: images("a.jpg"),
		},
		{
			name:   "empty price",
			mutate: func(f *admin.ProductForm) { f.Price = "" },
			images: images("a.jpg"),
		},
		{
			name:   "empty description",
			mutate: func(f *admin.ProductForm) { f.Description = "" },
			images: images("a.jpg"),
		},
		{
			name:   "no images",
			mutate: func(f *admin.ProductForm) {},
			images: nil,
		},
		{
			name:   "price is not a number",
			mutate: func(f *admin.ProductForm) { f.Price = "abc" },
			images: images("a.jpg"),
		},
		{
			name:   "unknown category",
			mutate: func(f *admin.ProductForm) { f.Category = "hats" },
			images: images("a.jpg"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeObjectStore{}
			inserter := &fakeInserter{}
			uploader := admin.NewUploader(store, inserter, zerolog.Nop())

			form := validForm()
			tt.mutate(&form)

			_, err := uploader.Create(t.Context(), form, tt.images)

			require.ErrorIs(t, err, domain.ErrIncompleteForm)
			// validation fails before any network call
			assert.Empty(t, store.uploads)
			assert.Empty(t, inserter.inserted)
		})
	}
}

func TestCreate(t *testing.T) {
	store := &fakeObjectStore{}
	inserter := &fakeInserter{}
	uploader := admin.NewUploader(store, inserter, zerolog.Nop())

	product, err := uploader.Create(t.Context(), validForm(), images("front.jpg", "back.jpg"))
	require.NoError(t, err)

	require.Len(t, inserter.inserted, 1)
	require.Len(t, product.Images, 2)
	assert.Equal(t, "Floral Paradise Jute Tote", product.Name)
	assert.True(t, product.Price.Amount.Equal(decimalFromString(t, "49.99")))
	assert.True(t, product.Rating.Equal(decimalFromString(t, "4.8")))
	assert.Equal(t, domain.CategoryTotes, product.Category)

	// image keys are scoped by the inserted product's ID
	for _, key := range store.uploads {
		assert.Contains(t, key, "products/"+product.ID.String()+"/")
		assert.True(t, strings.HasSuffix(key, ".jpg"))
	}
	for _, url := range product.Images {
		assert.Contains(t, url, "https://cdn.example.com/product-images/products/")
	}
}

func TestCreateSkipsFailedUploads(t *testing.T) {
	calls := 0
	store := &fakeObjectStore{failKeys: func(string) bool {
		calls++
		return calls == 1 // first image fails
	}}
	inserter := &fakeInserter{}
	uploader := admin.NewUploader(store, inserter, zerolog.Nop())

	product, err := uploader.Create(t.Context(), validForm(), images("a.jpg", "b.jpg", "c.jpg"))
	require.NoError(t, err)

	assert.Len(t, product.Images, 2)
	require.Len(t, inserter.inserted, 1)
}

func TestCreateFailsWhenAllUploadsFail(t *testing.T) {
	store := &fakeObjectStore{failKeys: func(string) bool { return true }}
	inserter := &fakeInserter{}
	uploader := admin.NewUploader(store, inserter, zerolog.Nop())

	_, err := uploader.Create(t.Context(), validForm(), images("a.jpg", "b.jpg"))

	require.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Empty(t, inserter.inserted)
}

func TestCreateSurfacesInsertError(t *testing.T) {
	store := &fakeObjectStore{}
	inserter := &fakeInserter{insertErr: errors.New(`duplicate key value violates unique constraint "products_pkey"`)}
	uploader := admin.NewUploader(store, inserter, zerolog.Nop())

	_, err := uploader.Create(t.Context(), validForm(), images("a.jpg"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "products_pkey")
}

func TestCreateCancelledContext(t *testing.T) {
	store := &fakeObjectStore{}
	inserter := &fakeInserter{}
	uploader := admin.NewUploader(store, inserter, zerolog.Nop())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := uploader.Create(ctx, validForm(), images("a.jpg"))

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, inserter.inserted)
}
