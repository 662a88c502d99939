package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/triosart/storefront/internal/api/dto"
	"github.com/triosart/storefront/internal/auth"
	"github.com/triosart/storefront/internal/domain"
	"github.com/triosart/storefront/internal/port"
)

type AuthHandler struct {
	provider port.CredentialProvider
	session  *auth.Session
}

func NewAuthHandler(provider port.CredentialProvider, session *auth.Session) *AuthHandler {
	if provider == nil || session == nil {
		panic("provider and session cannot be nil")
	}
	return &AuthHandler{
		provider: provider,
		session:  session,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.provider.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.session.Establish(user)
	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.provider.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInformation) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.session.Establish(user)
	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}

func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	h.session.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Me(w http.ResponseWriter, _ *http.Request) {
	user, authenticated := h.session.Current()
	if !authenticated {
		writeError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(user))
}
