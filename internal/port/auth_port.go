package port

import (
	"context"

	"github.com/triosart/storefront/internal/domain"
)

// CredentialProvider verifies user credentials. The shipped implementation
// is a demo stub; a real backend replaces it without touching callers.
type CredentialProvider interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	Signup(ctx context.Context, name, email, password string) (domain.User, error)
}
