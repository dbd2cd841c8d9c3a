// Package service contains the business logic.
//
// It sits between callers (the CLI, or any transport built on top) and the
// repository layer. It validates input, applies defaults and guards, calls
// repository methods and logs the outcome of each operation.
package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
)

// UserRepository is the storage the UserService needs.
type UserRepository interface {
	GetUserWithEmail(ctx context.Context, email string) (*model.User, error)
	GetUserWithID(ctx context.Context, id int64) (*model.User, error)
	AddUser(ctx context.Context, user model.NewUser) (*model.User, error)
}

// PropertyRepository is the storage the PropertyService needs.
type PropertyRepository interface {
	GetAllProperties(ctx context.Context, criteria model.SearchCriteria, limit int) ([]model.PropertyListing, error)
	AddProperty(ctx context.Context, property model.NewProperty) (*model.Property, error)
}

// ReservationRepository is the storage the ReservationService needs.
type ReservationRepository interface {
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error)
}
