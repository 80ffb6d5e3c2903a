package user

import (
	"context"
	"errors"

	"github.com/driveshare/car-rental-backend/auth"
)

var ErrUserNotFound = errors.New("user not found")

var ErrInvalidSession = errors.New("invalid session token")

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Role      auth.Role `json:"role"`
}

func (u User) Name() string {
	return u.FirstName + " " + u.LastName
}

//go:generate mockgen -source=user.go -destination=mocks/directory_mock.go -package=mocks

// Directory resolves session tokens to users. Registration, passwords and
// token issuance live outside this service.
type Directory interface {
	GetBySessionToken(ctx context.Context, token string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}
