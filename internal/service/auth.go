// Package service implements the credential and token lifecycle: signup,
// password-grant login, and bearer-token authorization.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/marcuslim/authd/internal/auth"
	"github.com/marcuslim/authd/internal/models"
	"github.com/marcuslim/authd/internal/storage"
)

var (
	// ErrDuplicateEmail rejects signup for an already-registered address.
	ErrDuplicateEmail = errors.New("email registered already")
	// ErrInvalidPassword rejects signup with an empty password.
	ErrInvalidPassword = errors.New("password invalid")
	// ErrInvalidCredentials covers both unknown identifier and wrong password
	// so login failures carry no enumeration signal.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrInvalidToken covers malformed tokens, bad signatures, missing
	// subjects, and subjects that no longer resolve to a user.
	ErrInvalidToken = errors.New("could not validate credentials")
	// ErrTokenExpired marks a well-signed token past its expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Auth orchestrates the credential store, password hasher, and token manager.
// It holds no mutable state; everything durable lives in the store.
type Auth struct {
	store  storage.UserStore
	hasher *auth.PasswordHasher
	tokens *auth.TokenManager
}

// NewAuth wires the service from its collaborators.
func NewAuth(store storage.UserStore, hasher *auth.PasswordHasher, tokens *auth.TokenManager) *Auth {
	return &Auth{store: store, hasher: hasher, tokens: tokens}
}

// Signup registers a new user. The duplicate check runs first, then the
// password check; the insert itself is the backstop for signups racing past
// the lookup, since the store enforces email uniqueness.
func (s *Auth) Signup(ctx context.Context, email string, username, phone *string, password string) (models.User, error) {
	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return models.User{}, ErrDuplicateEmail
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, err
	}

	if password == "" {
		return models.User{}, ErrInvalidPassword
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Email:          email,
		Username:       username,
		Phone:          phone,
		HashedPassword: hashed,
		ID:             uuid.NewString(),
		IsActive:       true,
	}
	created, err := s.store.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return created, nil
}

// Login verifies credentials and issues a bearer token.
//
// The submitted username is resolved against the store's email key, so in
// practice callers put the email address in the username slot; the token's
// subject is that submitted identifier, not the generated user id. Both
// behaviors are inherited from the service being reproduced and are kept
// as-is.
func (s *Auth) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.store.FindByEmail(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, user.HashedPassword) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(username)
}

// Authorize resolves a bearer token to its user. A missing user is reported
// as ErrInvalidToken, not distinctly, so a valid-token-for-gone-user case
// leaks nothing.
func (s *Auth) Authorize(ctx context.Context, token string) (models.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return models.User{}, ErrInvalidToken
	}
	if claims.Subject == "" {
		return models.User{}, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Before(time.Now()) {
		return models.User{}, ErrTokenExpired
	}

	user, err := s.store.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.User{}, ErrInvalidToken
		}
		return models.User{}, err
	}
	return user, nil
}
