package repo

import (
	"errors"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

var (
	// ErrUserNotFound is returned when no user matches the username.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicatedValueUnique is returned on unique constraint violations.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique column")
)

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}
