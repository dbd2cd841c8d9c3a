package model

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultLimit is the number of rows returned when the caller gives none.
const DefaultLimit = 10

var (
	minorUnitsPerWhole = decimal.NewFromInt(100)
	maxMinorUnits      = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits      = decimal.NewFromInt(math.MinInt64)
)

// ErrPriceOutOfRange is returned for prices whose cent value does not fit
// in an int64.
var ErrPriceOutOfRange = errors.New("price out of range")

// SearchCriteria are the optional filters of a property search. A nil
// pointer or an empty City means "not filtered".
//
// Prices are in whole currency units; they are converted to the minor units
// stored in properties.cost_per_night before being sent to the database.
type SearchCriteria struct {
	City                 string           `json:"city,omitempty"`
	OwnerID              *int64           `json:"owner_id,omitempty"`
	MinimumPricePerNight *decimal.Decimal `json:"minimum_price_per_night,omitempty"`
	MaximumPricePerNight *decimal.Decimal `json:"maximum_price_per_night,omitempty"`
	MinimumRating        *int             `json:"minimum_rating,omitempty"`
}

// IsEmpty reports whether no filter is set.
func (c SearchCriteria) IsEmpty() bool {
	return c.City == "" &&
		c.OwnerID == nil &&
		c.MinimumPricePerNight == nil &&
		c.MaximumPricePerNight == nil &&
		c.MinimumRating == nil
}

// ToMinorUnits converts a whole-unit price into cents, truncating anything
// below one cent. Prices beyond the int64 range fail with ErrPriceOutOfRange.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	cents := price.Mul(minorUnitsPerWhole).Truncate(0)
	if cents.GreaterThan(maxMinorUnits) || cents.LessThan(minMinorUnits) {
		return 0, fmt.Errorf("%w: %s", ErrPriceOutOfRange, price.String())
	}
	return cents.IntPart(), nil
}

// FromMinorUnits converts cents back into whole units.
func FromMinorUnits(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// NormalizeLimit applies DefaultLimit to absent or non-positive limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
