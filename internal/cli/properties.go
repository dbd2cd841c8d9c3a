package cli

import (
	"context"
	"fmt"

	"github.com/deppfellow/lightbnb/internal/lib/utils"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPropertiesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Search and add properties",
	}
	cmd.AddCommand(newPropertiesSearchCommand(a), newPropertiesAddCommand(a))
	return cmd
}

func newPropertiesSearchCommand(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search properties, cheapest first",
		Args:  cobra.NoArgs,
	}
	addSearchFlags(cmd.Flags())
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of properties (default 10)")

	cmd.RunE = a.run("properties/search", func(ctx context.Context) error {
		criteria, err := criteriaFromFlags(cmd.Flags())
		if err != nil {
			return err
		}

		if err := a.connect(ctx); err != nil {
			return err
		}

		listings, err := a.services.Properties.Search(ctx, criteria, limit)
		if err != nil {
			return err
		}
		return utils.WriteJSON(a.out, listings)
	})
	return cmd
}

func addSearchFlags(flags *pflag.FlagSet) {
	flags.String("city", "", "city name, matched as a substring")
	flags.Int64("owner-id", 0, "owner user id")
	flags.String("min-price", "", "minimum price per night in whole units")
	flags.String("max-price", "", "maximum price per night in whole units")
	flags.Int("min-rating", 0, "minimum review rating")
}

// criteriaFromFlags sets a criterion only for flags given on the command
// line, so an explicit zero still filters.
func criteriaFromFlags(flags *pflag.FlagSet) (model.SearchCriteria, error) {
	var criteria model.SearchCriteria

	if flags.Changed("city") {
		city, err := flags.GetString("city")
		if err != nil {
			return criteria, err
		}
		criteria.City = city
	}

	if flags.Changed("owner-id") {
		ownerID, err := flags.GetInt64("owner-id")
		if err != nil {
			return criteria, err
		}
		criteria.OwnerID = &ownerID
	}

	var err error
	if criteria.MinimumPricePerNight, err = priceFlag(flags, "min-price"); err != nil {
		return criteria, err
	}
	if criteria.MaximumPricePerNight, err = priceFlag(flags, "max-price"); err != nil {
		return criteria, err
	}

	if flags.Changed("min-rating") {
		rating, err := flags.GetInt("min-rating")
		if err != nil {
			return criteria, err
		}
		criteria.MinimumRating = &rating
	}

	return criteria, nil
}

func priceFlag(flags *pflag.FlagSet, name string) (*decimal.Decimal, error) {
	if !flags.Changed(name) {
		return nil, nil
	}

	raw, err := flags.GetString(name)
	if err != nil {
		return nil, err
	}

	price, err := parsePrice(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, raw, err)
	}
	return &price, nil
}

// parsePrice reads a whole-unit price and checks that it converts to cents.
func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if _, err := model.ToMinorUnits(price); err != nil {
		return decimal.Decimal{}, err
	}
	return price, nil
}

func newPropertiesAddCommand(a *app) *cobra.Command {
	var (
		input model.NewProperty
		price string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a property",
		Args:  cobra.NoArgs,
	}
	flags := cmd.Flags()
	flags.Int64Var(&input.OwnerID, "owner-id", 0, "owner user id")
	flags.StringVar(&input.Title, "title", "", "listing title")
	flags.StringVar(&input.Description, "description", "", "listing description")
	flags.StringVar(&input.ThumbnailPhotoURL, "thumbnail-photo-url", "", "thumbnail photo URL")
	flags.StringVar(&input.CoverPhotoURL, "cover-photo-url", "", "cover photo URL")
	flags.StringVar(&price, "price", "0", "price per night in whole units")
	flags.IntVar(&input.ParkingSpaces, "parking-spaces", 0, "number of parking spaces")
	flags.IntVar(&input.NumberOfBathrooms, "bathrooms", 0, "number of bathrooms")
	flags.IntVar(&input.NumberOfBedrooms, "bedrooms", 0, "number of bedrooms")
	flags.StringVar(&input.Country, "country", "", "country")
	flags.StringVar(&input.Street, "street", "", "street address")
	flags.StringVar(&input.City, "city", "", "city")
	flags.StringVar(&input.Province, "province", "", "province")
	flags.StringVar(&input.PostCode, "post-code", "", "post code")

	cmd.RunE = a.run("properties/add", func(ctx context.Context) error {
		cost, err := decimal.NewFromString(price)
		if err != nil {
			return fmt.Errorf("invalid --price %q: %w", price, err)
		}
		if input.CostPerNight, err = model.ToMinorUnits(cost); err != nil {
			return fmt.Errorf("invalid --price %q: %w", price, err)
		}

		if err := a.connect(ctx); err != nil {
			return err
		}

		created, err := a.services.Properties.Add(ctx, input)
		if err != nil {
			return err
		}
		return utils.WriteJSON(a.out, created)
	})
	return cmd
}
