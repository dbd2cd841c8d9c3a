package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const addPropertyQuery = `
	INSERT INTO properties (
		owner_id, title, description, thumbnail_photo_url, cover_photo_url,
		cost_per_night, parking_spaces, number_of_bathrooms, number_of_bedrooms,
		country, street, city, province, post_code
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING ` + propertyColumns + `;`

type PropertyRepository struct {
	db database.Querier
}

func NewPropertyRepository(db database.Querier) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// GetAllProperties returns up to limit properties matching criteria, cheapest
// first, each with the average rating of its reviews. An empty result is an
// empty slice, not an error. City matches as a literal substring.
func (r *PropertyRepository) GetAllProperties(ctx context.Context, criteria model.SearchCriteria, limit int) ([]model.PropertyListing, error) {
	query, args, err := buildPropertySearch(criteria, limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	listings, err := pgx.CollectRows(rows, scanPropertyListing)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return listings, nil
}

// AddProperty inserts a property and returns the stored row.
func (r *PropertyRepository) AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	row := r.db.QueryRow(ctx, addPropertyQuery,
		p.OwnerID,
		p.Title,
		p.Description,
		p.ThumbnailPhotoURL,
		p.CoverPhotoURL,
		p.CostPerNight,
		p.ParkingSpaces,
		p.NumberOfBathrooms,
		p.NumberOfBedrooms,
		p.Country,
		p.Street,
		p.City,
		p.Province,
		p.PostCode,
	)

	var created model.Property
	if err := row.Scan(propertyScanTargets(&created)...); err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return &created, nil
}

// propertyScanTargets returns pointers to p's fields in propertyColumns order.
func propertyScanTargets(p *model.Property) []any {
	return []any{
		&p.ID,
		&p.OwnerID,
		&p.Title,
		&p.Description,
		&p.ThumbnailPhotoURL,
		&p.CoverPhotoURL,
		&p.CostPerNight,
		&p.ParkingSpaces,
		&p.NumberOfBathrooms,
		&p.NumberOfBedrooms,
		&p.Country,
		&p.Street,
		&p.City,
		&p.Province,
		&p.PostCode,
	}
}

func scanPropertyListing(row pgx.CollectableRow) (model.PropertyListing, error) {
	var l model.PropertyListing
	targets := append(propertyScanTargets(&l.Property), &l.AverageRating)
	err := row.Scan(targets...)
	return l, err
}
