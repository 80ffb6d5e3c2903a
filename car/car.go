package car

import (
	"context"
	"errors"
)

var ErrCarNotFound = errors.New("car not found")

// Car is the slice of a listing the booking engine needs: ownership, daily
// price and whether it can be booked at all.
type Car struct {
	ID          string `json:"id"`
	OwnerID     string `json:"ownerId"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	PricePerDay int    `json:"pricePerDay"`
	IsActive    bool   `json:"isActive"`
}

//go:generate mockgen -source=car.go -destination=mocks/directory_mock.go -package=mocks

// Directory resolves car ids for the booking engine. Listing CRUD lives
// elsewhere; this is a read-only lookup surface.
type Directory interface {
	GetByID(ctx context.Context, id string) (Car, error)
	IsOwnedBy(ctx context.Context, carID, userID string) (bool, error)
}
