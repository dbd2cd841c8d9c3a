//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/deppfellow/lightbnb/internal/database"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/testinfra"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	loggerPkg "github.com/deppfellow/lightbnb/internal/logger"
)

func newIntegrationDatabase(t *testing.T) *database.Database {
	t.Helper()
	testinfra.SkipIfNoDocker(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	t.Cleanup(cancel)

	pg, err := testinfra.NewPostgresContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { testinfra.CleanupContainer(t, context.Background(), pg) })

	log := zerolog.New(zerolog.NewTestWriter(t))
	require.NoError(t, database.Migrate(ctx, &log, pg.Database.DSN()))

	cfg := &config.Config{
		Primary:       config.Primary{Env: "test"},
		Database:      pg.Database,
		Observability: config.DefaultObservabilityConfig(),
	}
	db, err := database.New(ctx, cfg, &log, &loggerPkg.LoggerService{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestIntegrationRepositories(t *testing.T) {
	db := newIntegrationDatabase(t)
	ctx := context.Background()

	users := NewUserRepository(db.Querier())
	properties := NewPropertyRepository(db.Querier())
	reservations := NewReservationRepository(db.Querier())

	owner, err := users.AddUser(ctx, model.NewUser{Name: "Devin Sanders", Email: "tristanjacobs@gmail.com", Password: "hash"})
	require.NoError(t, err)

	t.Run("user round trip", func(t *testing.T) {
		found, err := users.GetUserWithEmail(ctx, "tristanjacobs@gmail.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, owner.ID, found.ID)
		assert.Equal(t, "Devin Sanders", found.Name)

		missing, err := users.GetUserWithEmail(ctx, "nonexistent@example.com")
		assert.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := users.AddUser(ctx, model.NewUser{Name: "Other", Email: "tristanjacobs@gmail.com", Password: "x"})
		assert.ErrorContains(t, err, "already exists")
	})

	property, err := properties.AddProperty(ctx, model.NewProperty{
		OwnerID:           owner.ID,
		Title:             "Speed lamp",
		ThumbnailPhotoURL: "https://images.pexels.com/photos/2086676/pexels-photo-2086676.jpeg",
		CoverPhotoURL:     "https://images.pexels.com/photos/2086676/pexels-photo-2086676.jpeg",
		CostPerNight:      9300,
		ParkingSpaces:     6,
		NumberOfBathrooms: 4,
		NumberOfBedrooms:  8,
		Country:           "Canada",
		Street:            "536 Namsub Highway",
		City:              "Vancouver",
		Province:          "British Columbia",
		PostCode:          "28142",
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, property.OwnerID)

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO reservations (guest_id, property_id, start_date, end_date)
		VALUES ($1, $2, '2018-09-11', '2018-09-26');`, owner.ID, property.ID)
	require.NoError(t, err)

	_, err = db.Pool.Exec(ctx, `
		INSERT INTO property_reviews (guest_id, property_id, reservation_id, rating, message)
		SELECT $1, $2, id, 4, 'messages' FROM reservations WHERE property_id = $2;`, owner.ID, property.ID)
	require.NoError(t, err)

	t.Run("search", func(t *testing.T) {
		minPrice := decimal.NewFromInt(50)
		rating := 4

		listings, err := properties.GetAllProperties(ctx, model.SearchCriteria{
			City:                 "ancou",
			MinimumPricePerNight: &minPrice,
			MinimumRating:        &rating,
		}, 10)
		require.NoError(t, err)
		require.Len(t, listings, 1)
		assert.Equal(t, property.ID, listings[0].ID)
		assert.Equal(t, 4.0, listings[0].AverageRating)

		maxPrice := decimal.NewFromInt(50)
		none, err := properties.GetAllProperties(ctx, model.SearchCriteria{MaximumPricePerNight: &maxPrice}, 10)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("past reservations", func(t *testing.T) {
		past, err := reservations.GetAllReservations(ctx, owner.ID, 10)
		require.NoError(t, err)
		require.Len(t, past, 1)
		assert.Equal(t, property.ID, past[0].Property.ID)
		assert.Equal(t, 2018, past[0].StartDate.Year())
	})
}
