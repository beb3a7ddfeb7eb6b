package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcuslim/authd/internal/auth"
	"github.com/marcuslim/authd/internal/models"
	"github.com/marcuslim/authd/internal/storage"
	"github.com/marcuslim/authd/internal/storage/memstore"
)

const (
	testSecret = "test-secret"
	testSalt   = "test-salt"
)

func newTestAuth(ttl time.Duration) (*Auth, *memstore.Store) {
	store := memstore.New()
	svc := NewAuth(store, auth.NewPasswordHasher(testSalt), auth.NewTokenManager(testSecret, ttl))
	return svc, store
}

func TestSignupLoginAuthorize_Roundtrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuth(30 * time.Minute)

	created, err := svc.Signup(ctx, "a@x.com", nil, nil, "pw1")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", created.Email)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Nil(t, created.Username)
	assert.Nil(t, created.Phone)
	assert.NotEqual(t, "pw1", created.HashedPassword)

	// Login takes the email in the username slot.
	token, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.Authorize(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
	assert.Equal(t, "a@x.com", user.Email)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuth(30 * time.Minute)

	_, err := svc.Signup(ctx, "a@x.com", nil, nil, "pw1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "a@x.com", ptr("other"), ptr("+100"), "different")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestSignup_EmptyPassword(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(30 * time.Minute)

	_, err := svc.Signup(ctx, "a@x.com", nil, nil, "")
	assert.ErrorIs(t, err, ErrInvalidPassword)
	assert.Equal(t, 0, store.Len(), "rejected signup must not mutate the store")
}

// racingStore simulates the losing side of two concurrent signups: the
// duplicate lookup sees nothing, but the insert hits the uniqueness
// constraint.
type racingStore struct{}

func (racingStore) CreateUser(context.Context, models.User) (models.User, error) {
	return models.User{}, storage.ErrAlreadyExists
}

func (racingStore) FindByEmail(context.Context, string) (models.User, error) {
	return models.User{}, storage.ErrNotFound
}

func TestSignup_RacingDuplicateHitsStoreConstraint(t *testing.T) {
	ctx := context.Background()
	svc := NewAuth(racingStore{}, auth.NewPasswordHasher(testSalt), auth.NewTokenManager(testSecret, 30*time.Minute))

	_, err := svc.Signup(ctx, "a@x.com", nil, nil, "pw1")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLogin_UnknownAndWrongPasswordIndistinguishable(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuth(30 * time.Minute)

	_, err := svc.Signup(ctx, "a@x.com", nil, nil, "pw1")
	require.NoError(t, err)

	_, errUnknown := svc.Login(ctx, "nobody@x.com", "pw1")
	_, errWrongPw := svc.Login(ctx, "a@x.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
}

func TestLogin_UsernameFieldIsNotTheUsernameColumn(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuth(30 * time.Minute)

	_, err := svc.Signup(ctx, "a@x.com", ptr("alice"), nil, "pw1")
	require.NoError(t, err)

	// The stored username does not resolve; only the email does.
	_, err = svc.Login(ctx, "alice", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "a@x.com", "pw1")
	assert.NoError(t, err)
}

func TestAuthorize_ExpiredToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuth(-1 * time.Second)

	_, err := svc.Signup(ctx, "a@x.com", nil, nil, "pw1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestAuthorize_TamperedToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuth(30 * time.Minute)

	_, err := svc.Signup(ctx, "a@x.com", nil, nil, "pw1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.Authorize(ctx, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAuthorize_UserGone(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestAuth(30 * time.Minute)

	_, err := svc.Signup(ctx, "a@x.com", nil, nil, "pw1")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	store.Delete("a@x.com")

	_, err = svc.Authorize(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken, "gone user must not be distinguishable from a bad token")
}

func TestAuthorize_TokenFromAnotherSecret(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuth(30 * time.Minute)

	_, err := svc.Signup(ctx, "a@x.com", nil, nil, "pw1")
	require.NoError(t, err)

	foreign, err := auth.NewTokenManager("another-secret", 30*time.Minute).Issue("a@x.com")
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func ptr(s string) *string { return &s }
