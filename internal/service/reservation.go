package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/rs/zerolog"
)

type ReservationService struct {
	logger       *zerolog.Logger
	reservations ReservationRepository
}

func NewReservationService(logger *zerolog.Logger, reservations ReservationRepository) *ReservationService {
	return &ReservationService{logger: logger, reservations: reservations}
}

// ListPast returns the guest's reservations that ended before today.
func (s *ReservationService) ListPast(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	limit = model.NormalizeLimit(limit)

	reservations, err := s.reservations.GetAllReservations(ctx, guestID, limit)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("operation", "list_past_reservations").
			Int64("guest_id", guestID).
			Msg("failed to list reservations")
		return nil, err
	}

	s.logger.Debug().
		Str("operation", "list_past_reservations").
		Int64("guest_id", guestID).
		Int("count", len(reservations)).
		Msg("listed reservations")
	return reservations, nil
}
