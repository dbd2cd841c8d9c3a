package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/validation"
	"github.com/rs/zerolog"
)

type PropertyService struct {
	logger     *zerolog.Logger
	properties PropertyRepository
}

func NewPropertyService(logger *zerolog.Logger, properties PropertyRepository) *PropertyService {
	return &PropertyService{logger: logger, properties: properties}
}

// Search returns up to limit listings matching criteria, cheapest first.
// A non-positive limit means model.DefaultLimit.
func (s *PropertyService) Search(ctx context.Context, criteria model.SearchCriteria, limit int) ([]model.PropertyListing, error) {
	limit = model.NormalizeLimit(limit)

	listings, err := s.properties.GetAllProperties(ctx, criteria, limit)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("operation", "search_properties").
			Interface("criteria", criteria).
			Msg("failed to search properties")
		return nil, err
	}

	s.logger.Debug().
		Str("operation", "search_properties").
		Bool("filtered", !criteria.IsEmpty()).
		Int("limit", limit).
		Int("count", len(listings)).
		Msg("searched properties")
	return listings, nil
}

// Add validates input and stores a new property.
func (s *PropertyService) Add(ctx context.Context, input model.NewProperty) (*model.Property, error) {
	logger := s.logger.With().
		Str("operation", "add_property").
		Int64("owner_id", input.OwnerID).
		Logger()

	if err := validation.Struct(input); err != nil {
		logger.Debug().Err(err).Msg("rejected invalid property")
		return nil, err
	}

	created, err := s.properties.AddProperty(ctx, input)
	if err != nil {
		logger.Error().Err(err).Msg("failed to add property")
		return nil, err
	}

	logger.Debug().Int64("property_id", created.ID).Msg("added property")
	return created, nil
}
