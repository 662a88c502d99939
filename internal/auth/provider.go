// Package auth carries the storefront's session state and the demo
// credential provider standing in for a real backend.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/triosart/storefront/internal/domain"
)

// demoUser is the fixed identity every successful login resolves to.
var demoUser = domain.User{
	ID:    uuid.MustParse("00000000-0000-0000-0000-000000000001"),
	Name:  "Demo User",
	Email: "demo@triosart.com",
}

// MockProvider implements port.CredentialProvider with a fixed artificial
// delay and no credential verification beyond presence checks.
type MockProvider struct {
	delay time.Duration
}

func NewMockProvider(delay time.Duration) *MockProvider {
	return &MockProvider{delay: delay}
}

// Login validates field presence before any delay and always resolves to
// the demo identity. A name or email chosen at signup is not carried over.
func (p *MockProvider) Login(ctx context.Context, email, password string) (domain.User, error) {
	if email == "" || password == "" {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	if err := p.wait(ctx); err != nil {
		return domain.User{}, err
	}

	return demoUser, nil
}

// Signup produces a user record with the supplied name and email.
func (p *MockProvider) Signup(ctx context.Context, name, email, password string) (domain.User, error) {
	if name == "" || email == "" || password == "" {
		return domain.User{}, domain.ErrInvalidInformation
	}

	if err := p.wait(ctx); err != nil {
		return domain.User{}, err
	}

	return domain.User{
		ID:    uuid.New(),
		Name:  name,
		Email: email,
	}, nil
}

func (p *MockProvider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
