package db

import (
	"errors"
	"fmt"

	"github.com/xw1nchester/countries-backend/internal/country"
)

var (
	ErrCountryNotFound = errors.New("country not found")
)

// ConstraintError is returned when a write hits a unique index.
// Field is the API name of the offending column, e.g. "isoAlpha2".
type ConstraintError struct {
	Field string
	Err   error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("unique constraint violated on %s: %v", e.Field, e.Err)
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// unique index name suffix -> API field name, shared by both dialects
var constraintFields = map[string]string{
	"iso_alpha2_key":  "isoAlpha2",
	"iso_alpha3_key":  "isoAlpha3",
	"iso_numeric_key": "isoNumeric",
	"short_name_key":  "shortName",
	"full_name_key":   "fullName",
}

const countryColumns = `short_name, full_name, iso_alpha2, iso_alpha3, iso_numeric, population, square`

type row interface {
	Scan(dest ...any) error
}

func scanCountry(r row) (country.Country, error) {
	var c country.Country

	err := r.Scan(
		&c.ShortName,
		&c.FullName,
		&c.IsoAlpha2,
		&c.IsoAlpha3,
		&c.IsoNumeric,
		&c.Population,
		&c.Square,
	)

	return c, err
}
