// Package repository holds the SQL of the application.
//
// Every statement is parameterized with positional placeholders. Lookups of a
// single record return nil when nothing matches; any database failure comes
// back as an *errs.HTTPError produced by sqlerr.HandleError.
package repository

import (
	"github.com/deppfellow/lightbnb/internal/server"
)

// Repositories groups every repository so services receive a single value.
type Repositories struct {
	Users        *UserRepository
	Properties   *PropertyRepository
	Reservations *ReservationRepository
}

// NewRepositories builds the repositories on top of the server's pool.
func NewRepositories(s *server.Server) *Repositories {
	db := s.DB.Querier()
	return &Repositories{
		Users:        NewUserRepository(db),
		Properties:   NewPropertyRepository(db),
		Reservations: NewReservationRepository(db),
	}
}
