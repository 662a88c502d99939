package domain

import "errors"

var (
	// ErrInvalidQuantity rejects cart additions with a non-positive quantity.
	ErrInvalidQuantity = errors.New("quantity must be positive")

	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidCredentials is returned by login when a required field is empty.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidInformation is returned by signup when a required field is empty.
	ErrInvalidInformation = errors.New("invalid information")

	// ErrIncompleteForm rejects an admin product submission before any
	// network call is made.
	ErrIncompleteForm = errors.New("incomplete product form")

	// ErrUploadFailed means every image upload of a submission failed.
	ErrUploadFailed = errors.New("all image uploads failed")
)
