package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const getAllReservationsQuery = `
	SELECT reservations.id, reservations.guest_id, reservations.property_id,
		reservations.start_date, reservations.end_date,
		` + propertyColumns + `,
		avg(property_reviews.rating)::float8 AS average_rating
	FROM reservations
	JOIN properties ON reservations.property_id = properties.id
	JOIN property_reviews ON properties.id = property_reviews.property_id
	WHERE reservations.guest_id = $1
	AND reservations.end_date < now()::date
	GROUP BY properties.id, reservations.id
	ORDER BY reservations.start_date
	LIMIT $2;`

type ReservationRepository struct {
	db database.Querier
}

func NewReservationRepository(db database.Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// GetAllReservations returns the guest's past reservations (ended before
// today), oldest first, with the reserved property and its average rating.
func (r *ReservationRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.Reservation, error) {
	rows, err := r.db.Query(ctx, getAllReservationsQuery, guestID, model.NormalizeLimit(limit))
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	reservations, err := pgx.CollectRows(rows, scanReservation)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return reservations, nil
}

func scanReservation(row pgx.CollectableRow) (model.Reservation, error) {
	var res model.Reservation
	targets := []any{&res.ID, &res.GuestID, &res.PropertyID, &res.StartDate, &res.EndDate}
	targets = append(targets, propertyScanTargets(&res.Property)...)
	targets = append(targets, &res.AverageRating)

	err := row.Scan(targets...)
	return res, err
}
