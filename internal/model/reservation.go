package model

import "time"

// Reservation is a row of the reservations table joined with the reserved
// property and that property's average rating.
type Reservation struct {
	ID         int64     `json:"id"`
	GuestID    int64     `json:"guest_id"`
	PropertyID int64     `json:"property_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`

	Property      Property `json:"property"`
	AverageRating float64  `json:"average_rating"`
}
