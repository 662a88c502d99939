package auth

import (
	"sync"

	"github.com/triosart/storefront/internal/domain"
)

// Session is the process-wide authentication state: the current user and
// whether a login or signup has completed. Logout resets it to anonymous.
type Session struct {
	mu            sync.RWMutex
	user          domain.User
	authenticated bool
}

func NewSession() *Session {
	return &Session{}
}

func (s *Session) Establish(user domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = user
	s.authenticated = true
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = domain.User{}
	s.authenticated = false
}

func (s *Session) Current() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user, s.authenticated
}
