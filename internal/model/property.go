package model

import "github.com/shopspring/decimal"

// Property is a row of the properties table. CostPerNight is stored in minor
// units (cents).
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int    `json:"parking_spaces"`
	NumberOfBathrooms int    `json:"number_of_bathrooms"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
}

// PricePerNight returns CostPerNight in whole currency units.
func (p Property) PricePerNight() decimal.Decimal {
	return FromMinorUnits(p.CostPerNight)
}

// NewProperty is the input of an insert into properties.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" validate:"required"`
	Title             string `json:"title" validate:"required,max=255"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" validate:"required,url,max=255"`
	CoverPhotoURL     string `json:"cover_photo_url" validate:"required,url,max=255"`
	CostPerNight      int64  `json:"cost_per_night" validate:"min=0"`
	ParkingSpaces     int    `json:"parking_spaces" validate:"min=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" validate:"min=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" validate:"min=0"`
	Country           string `json:"country" validate:"required,max=255"`
	Street            string `json:"street" validate:"required,max=255"`
	City              string `json:"city" validate:"required,max=255"`
	Province          string `json:"province" validate:"required,max=255"`
	PostCode          string `json:"post_code" validate:"required,max=255"`
}

// PropertyListing is a property together with the average rating of its
// reviews, as returned by a search.
type PropertyListing struct {
	Property
	AverageRating float64 `json:"average_rating"`
}
