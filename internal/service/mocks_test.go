package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/stretchr/testify/mock"
)

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetUserWithEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) GetUserWithID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) AddUser(ctx context.Context, user model.NewUser) (*model.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*model.User)
	return created, args.Error(1)
}

type mockPropertyRepository struct {
	mock.Mock
}

func (m *mockPropertyRepository) GetAllProperties(ctx context.Context, criteria model.SearchCriteria, limit int) ([]model.PropertyListing, error) {
	args := m.Called(ctx, criteria, limit)
	listings, _ := args.Get(0).([]model.PropertyListing)
	return listings, args.Error(1)
}

func (m *mockPropertyRepository) AddProperty(ctx context.Context, property model.NewProperty) (*model.Property, error) {
	args := m.Called(ctx, property)
	created, _ := args.Get(0).(*model.Property)
	return created, args.Error(1)
}

type mockReservationRepository struct {
	mock.Mock
}

func (m *mockReservationRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	args := m.Called(ctx, guestID, limit)
	reservations, _ := args.Get(0).([]model.Reservation)
	return reservations, args.Error(1)
}
