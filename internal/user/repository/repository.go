package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/AlibekovAA/users-api/internal/user/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.User, error)
	SearchByName(ctx context.Context, term string) ([]domain.User, error)
	FindByID(ctx context.Context, id domain.ID) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Create(ctx context.Context, user domain.User) error
	Delete(ctx context.Context, id domain.ID) error
	Migrate(ctx context.Context) error
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrIDAlreadyExists    = errors.New("user id already exists")
	ErrEmailAlreadyExists = errors.New("user email already exists")
)

const table = "users"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern that matches term literally anywhere in the column.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}
