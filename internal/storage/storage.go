package storage

import (
	"context"
	"errors"

	"github.com/marcuslim/authd/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures the persistence operations the auth service needs.
//
// CreateUser must enforce email uniqueness itself: two concurrent signups for
// the same address can both pass a prior FindByEmail check, and the second
// insert has to fail with ErrAlreadyExists rather than corrupt state.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindByEmail(ctx context.Context, email string) (models.User, error)
}
