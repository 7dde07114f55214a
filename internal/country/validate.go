package country

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xw1nchester/countries-backend/internal/apperror"
	"github.com/xw1nchester/countries-backend/pkg/types"
)

const (
	FieldShortName  = "shortName"
	FieldFullName   = "fullName"
	FieldIsoAlpha2  = "isoAlpha2"
	FieldIsoAlpha3  = "isoAlpha3"
	FieldIsoNumeric = "isoNumeric"
	FieldPopulation = "population"
	FieldSquare     = "square"
)

const (
	msgRequired     = "field is required"
	msgAlpha2       = "must be exactly 2 latin letters"
	msgAlpha3       = "must be exactly 3 latin letters"
	msgNumericCode  = "must be a non-negative 3-digit number"
	msgNonNegative  = "must be a non-negative integer"
	msgName         = "must be a string of 1-255 characters"
	msgCodesChanged = "country codes cannot be changed"
)

const (
	alpha2Tag         = "len=2,alpha"
	alpha3Tag         = "len=3,alpha"
	numericCreateTag  = "len=3,number"
	numericEditTag    = "min=1,max=3,number"
	nonNegativeIntTag = "required,number"
	nameTag           = "required,max=255"
)

var validate = validator.New()

// ValidateForCreate checks a full payload. The returned country is normalized
// and only meaningful when no errors are returned.
func ValidateForCreate(in Input) (Country, []apperror.FieldError) {
	var (
		c    Country
		errs []apperror.FieldError
	)

	if in.IsoAlpha2 == nil {
		errs = appendErr(errs, FieldIsoAlpha2, msgRequired)
	} else if c.IsoAlpha2 = NormalizeCode(*in.IsoAlpha2); !valid(c.IsoAlpha2, alpha2Tag) {
		errs = appendErr(errs, FieldIsoAlpha2, msgAlpha2)
	}

	if in.IsoAlpha3 == nil {
		errs = appendErr(errs, FieldIsoAlpha3, msgRequired)
	} else if c.IsoAlpha3 = NormalizeCode(*in.IsoAlpha3); !valid(c.IsoAlpha3, alpha3Tag) {
		errs = appendErr(errs, FieldIsoAlpha3, msgAlpha3)
	}

	if in.IsoNumeric == nil {
		errs = appendErr(errs, FieldIsoNumeric, msgRequired)
	} else if c.IsoNumeric = in.IsoNumeric.String(); !valid(c.IsoNumeric, numericCreateTag) {
		errs = appendErr(errs, FieldIsoNumeric, msgNumericCode)
	}

	var ok bool

	if in.Population == nil {
		errs = appendErr(errs, FieldPopulation, msgRequired)
	} else if c.Population, ok = parseNonNegative(*in.Population); !ok {
		errs = appendErr(errs, FieldPopulation, msgNonNegative)
	}

	if in.Square == nil {
		errs = appendErr(errs, FieldSquare, msgRequired)
	} else if c.Square, ok = parseNonNegative(*in.Square); !ok {
		errs = appendErr(errs, FieldSquare, msgNonNegative)
	}

	if in.ShortName == nil {
		errs = appendErr(errs, FieldShortName, msgRequired)
	} else if c.ShortName = *in.ShortName; !valid(c.ShortName, nameTag) {
		errs = appendErr(errs, FieldShortName, msgName)
	}

	if in.FullName == nil {
		errs = appendErr(errs, FieldFullName, msgRequired)
	} else if c.FullName = *in.FullName; !valid(c.FullName, nameTag) {
		errs = appendErr(errs, FieldFullName, msgName)
	}

	return c, errs
}

// ValidateForEdit merges in over existing. Present fields get the create
// rules, and any identifying code that differs from the stored one is
// reported after the shape violations.
func ValidateForEdit(existing Country, in Input) (Country, []apperror.FieldError) {
	var (
		c    = existing
		errs []apperror.FieldError
	)

	alpha2Valid, alpha3Valid, numericValid := true, true, true

	if in.IsoAlpha2 != nil {
		c.IsoAlpha2 = NormalizeCode(*in.IsoAlpha2)
		if alpha2Valid = valid(c.IsoAlpha2, alpha2Tag); !alpha2Valid {
			errs = appendErr(errs, FieldIsoAlpha2, msgAlpha2)
		}
	}

	if in.IsoAlpha3 != nil {
		c.IsoAlpha3 = NormalizeCode(*in.IsoAlpha3)
		if alpha3Valid = valid(c.IsoAlpha3, alpha3Tag); !alpha3Valid {
			errs = appendErr(errs, FieldIsoAlpha3, msgAlpha3)
		}
	}

	if in.IsoNumeric != nil {
		raw := in.IsoNumeric.String()
		if numericValid = valid(raw, numericEditTag); numericValid {
			c.IsoNumeric = PadNumeric(raw)
		} else {
			c.IsoNumeric = raw
			errs = appendErr(errs, FieldIsoNumeric, msgNumericCode)
		}
	}

	if in.Population != nil {
		population, ok := parseNonNegative(*in.Population)
		if ok {
			c.Population = population
		} else {
			errs = appendErr(errs, FieldPopulation, msgNonNegative)
		}
	}

	if in.Square != nil {
		square, ok := parseNonNegative(*in.Square)
		if ok {
			c.Square = square
		} else {
			errs = appendErr(errs, FieldSquare, msgNonNegative)
		}
	}

	if in.ShortName != nil {
		c.ShortName = *in.ShortName
		if !valid(c.ShortName, nameTag) {
			errs = appendErr(errs, FieldShortName, msgName)
		}
	}

	if in.FullName != nil {
		c.FullName = *in.FullName
		if !valid(c.FullName, nameTag) {
			errs = appendErr(errs, FieldFullName, msgName)
		}
	}

	if alpha2Valid && c.IsoAlpha2 != NormalizeCode(existing.IsoAlpha2) {
		errs = appendErr(errs, FieldIsoAlpha2, msgCodesChanged)
	}
	if alpha3Valid && c.IsoAlpha3 != NormalizeCode(existing.IsoAlpha3) {
		errs = appendErr(errs, FieldIsoAlpha3, msgCodesChanged)
	}
	if numericValid && c.IsoNumeric != PadNumeric(existing.IsoNumeric) {
		errs = appendErr(errs, FieldIsoNumeric, msgCodesChanged)
	}

	return c, errs
}

// PadNumeric left-pads a numeric code with zeros up to 3 digits.
func PadNumeric(code string) string {
	if len(code) >= 3 {
		return code
	}

	return strings.Repeat("0", 3-len(code)) + code
}

func valid(value, tag string) bool {
	return validate.Var(value, tag) == nil
}

func parseNonNegative(v types.NumberOrString) (int64, bool) {
	if !valid(v.String(), nonNegativeIntTag) {
		return 0, false
	}

	n, err := strconv.ParseInt(v.String(), 10, 64)
	if err != nil {
		return 0, false
	}

	return n, true
}

func appendErr(errs []apperror.FieldError, field, message string) []apperror.FieldError {
	return append(errs, apperror.FieldError{Field: field, Message: message})
}
