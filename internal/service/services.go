package service

import (
	"github.com/deppfellow/lightbnb/internal/repository"
	"github.com/deppfellow/lightbnb/internal/server"
)

type Services struct {
	Users        *UserService
	Properties   *PropertyService
	Reservations *ReservationService
}

func NewServices(s *server.Server, repos *repository.Repositories) *Services {
	return &Services{
		Users:        NewUserService(s.Logger, repos.Users),
		Properties:   NewPropertyService(s.Logger, repos.Properties),
		Reservations: NewReservationService(s.Logger, repos.Reservations),
	}
}
