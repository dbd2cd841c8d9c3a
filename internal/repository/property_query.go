package repository

import (
	"fmt"
	"strings"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
)

// propertyColumns lists the properties columns in scan order. description is
// the only nullable one.
const propertyColumns = `properties.id, properties.owner_id, properties.title, COALESCE(properties.description, '') AS description,
	properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
	properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
	properties.country, properties.street, properties.city, properties.province, properties.post_code`

const searchPropertiesBase = `
	SELECT ` + propertyColumns + `,
		avg(property_reviews.rating)::float8 AS average_rating
	FROM properties
	JOIN property_reviews ON properties.id = property_reviews.property_id`

// propertySearch accumulates predicates and their arguments. Each condition
// is formatted with the index of the argument appended with it, so the
// placeholder numbering cannot drift.
type propertySearch struct {
	conditions []string
	args       []any
}

func (q *propertySearch) addCondition(format string, arg any) {
	q.args = append(q.args, arg)
	q.conditions = append(q.conditions, fmt.Sprintf(format, len(q.args)))
}

// whereClause joins the conditions with AND and introduces them with a
// single WHERE, or returns "" when there are none.
func (q *propertySearch) whereClause() string {
	if len(q.conditions) == 0 {
		return ""
	}
	return "\n\tWHERE " + strings.Join(q.conditions, "\n\tAND ")
}

// likeEscaper makes LIKE metacharacters in user input match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// buildPropertySearch turns criteria into one parameterized statement.
// Criteria are applied in a fixed order: city, owner, minimum price,
// maximum price, minimum rating. The limit argument is always last.
//
// A price that cannot be expressed in cents is a 400 before any statement
// is built.
func buildPropertySearch(criteria model.SearchCriteria, limit int) (string, []any, error) {
	q := &propertySearch{}

	if criteria.City != "" {
		q.addCondition(`properties.city LIKE $%d ESCAPE '\'`, "%"+likeEscaper.Replace(criteria.City)+"%")
	}
	if criteria.OwnerID != nil {
		q.addCondition("properties.owner_id = $%d", *criteria.OwnerID)
	}
	if criteria.MinimumPricePerNight != nil {
		cents, err := model.ToMinorUnits(*criteria.MinimumPricePerNight)
		if err != nil {
			return "", nil, invalidPriceError("minimum_price_per_night")
		}
		q.addCondition("properties.cost_per_night >= $%d", cents)
	}
	if criteria.MaximumPricePerNight != nil {
		cents, err := model.ToMinorUnits(*criteria.MaximumPricePerNight)
		if err != nil {
			return "", nil, invalidPriceError("maximum_price_per_night")
		}
		q.addCondition("properties.cost_per_night <= $%d", cents)
	}
	if criteria.MinimumRating != nil {
		q.addCondition("property_reviews.rating >= $%d", *criteria.MinimumRating)
	}

	q.args = append(q.args, model.NormalizeLimit(limit))

	var sb strings.Builder
	sb.WriteString(searchPropertiesBase)
	sb.WriteString(q.whereClause())
	sb.WriteString("\n\tGROUP BY properties.id")
	sb.WriteString("\n\tORDER BY properties.cost_per_night")
	fmt.Fprintf(&sb, "\n\tLIMIT $%d;", len(q.args))

	return sb.String(), q.args, nil
}

func invalidPriceError(field string) error {
	return errs.NewBadRequestError("Invalid search criteria", true, nil, []errs.FieldError{{
		Field: field,
		Error: "is out of range",
	}}, nil)
}
