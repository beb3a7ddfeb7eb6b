package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/marcuslim/authd/internal/http/respond"
	"github.com/marcuslim/authd/internal/models/dto"
	"github.com/marcuslim/authd/internal/service"
)

// AuthHandler owns the signup, token, and private endpoints.
type AuthHandler struct {
	svc *service.Auth
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(svc *service.Auth) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register attaches auth routes to the mux.
func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/signup", h.handleSignup)
	mux.HandleFunc("/token", h.handleToken)
	mux.HandleFunc("/private", h.handlePrivate)
}

func (h *AuthHandler) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req dto.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	if _, err := h.svc.Signup(r.Context(), req.Email, req.Username, req.Phone, req.Password); err != nil {
		writeAuthError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, "Signup success")
}

func (h *AuthHandler) handleToken(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		respond.Detail(w, http.StatusBadRequest, "invalid form payload")
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := h.svc.Login(r.Context(), username, password)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, dto.Token{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) handlePrivate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	token, ok := bearerToken(r)
	if !ok {
		respond.Unauthorized(w, "Could not validate credentials")
		return
	}

	user, err := h.svc.Authorize(r.Context(), token)
	if err != nil {
		writeAuthError(w, err)
		return
	}
	respond.JSON(w, http.StatusOK, user)
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", false
	}
	return token, true
}

// writeAuthError maps service errors onto the HTTP error contract. Anything
// outside the taxonomy is a storage or crypto failure and reads as a 500.
func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		respond.Detail(w, http.StatusBadRequest, "Email registered already")
	case errors.Is(err, service.ErrInvalidPassword):
		respond.Detail(w, http.StatusBadRequest, "Password invalid")
	case errors.Is(err, service.ErrInvalidCredentials):
		respond.Unauthorized(w, "Incorrect username or password")
	case errors.Is(err, service.ErrInvalidToken):
		respond.Unauthorized(w, "Could not validate credentials")
	case errors.Is(err, service.ErrTokenExpired):
		respond.Unauthorized(w, "Token expired")
	default:
		slog.Error("auth request failed", "error", err)
		respond.Detail(w, http.StatusInternalServerError, "internal server error")
	}
}
