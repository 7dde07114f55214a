package country

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xw1nchester/countries-backend/internal/apperror"
	"github.com/xw1nchester/countries-backend/pkg/types"
)

var Russia = Country{
	ShortName:  "Russia",
	FullName:   "Russian Federation",
	IsoAlpha2:  "RU",
	IsoAlpha3:  "RUS",
	IsoNumeric: "643",
	Population: 146150789,
	Square:     17125191,
}

func str(v string) *string {
	return &v
}

func num(v string) *types.NumberOrString {
	n := types.NumberOrString(v)
	return &n
}

func validInput() Input {
	return Input{
		ShortName:  str("Russia"),
		FullName:   str("Russian Federation"),
		IsoAlpha2:  str("ru"),
		IsoAlpha3:  str("rus"),
		IsoNumeric: num("643"),
		Population: num("146150789"),
		Square:     num("17125191"),
	}
}

func TestValidateForCreate(t *testing.T) {
	testCases := []struct {
		name           string
		input          func() Input
		expectedErrors []apperror.FieldError
	}{
		{
			name:  "valid",
			input: validInput,
		},
		{
			name: "empty payload reports every field in order",
			input: func() Input {
				return Input{}
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldIsoAlpha2, Message: msgRequired},
				{Field: FieldIsoAlpha3, Message: msgRequired},
				{Field: FieldIsoNumeric, Message: msgRequired},
				{Field: FieldPopulation, Message: msgRequired},
				{Field: FieldSquare, Message: msgRequired},
				{Field: FieldShortName, Message: msgRequired},
				{Field: FieldFullName, Message: msgRequired},
			},
		},
		{
			name: "bad codes accumulate",
			input: func() Input {
				in := validInput()
				in.IsoAlpha2 = str("R1")
				in.IsoAlpha3 = str("RU")
				in.IsoNumeric = num("64")
				return in
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldIsoAlpha2, Message: msgAlpha2},
				{Field: FieldIsoAlpha3, Message: msgAlpha3},
				{Field: FieldIsoNumeric, Message: msgNumericCode},
			},
		},
		{
			name: "non-ascii letters do not fold into codes",
			input: func() Input {
				in := validInput()
				in.IsoAlpha2 = str("ıt")
				in.IsoAlpha3 = str("ıta")
				return in
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldIsoAlpha2, Message: msgAlpha2},
				{Field: FieldIsoAlpha3, Message: msgAlpha3},
			},
		},
		{
			name: "negative numbers",
			input: func() Input {
				in := validInput()
				in.IsoNumeric = num("-12")
				in.Population = num("-1")
				in.Square = num("1.5")
				return in
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldIsoNumeric, Message: msgNumericCode},
				{Field: FieldPopulation, Message: msgNonNegative},
				{Field: FieldSquare, Message: msgNonNegative},
			},
		},
		{
			name: "population overflow",
			input: func() Input {
				in := validInput()
				in.Population = num("99999999999999999999")
				return in
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldPopulation, Message: msgNonNegative},
			},
		},
		{
			name: "names out of range",
			input: func() Input {
				in := validInput()
				in.ShortName = str("")
				in.FullName = str(strings.Repeat("a", 256))
				return in
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldShortName, Message: msgName},
				{Field: FieldFullName, Message: msgName},
			},
		},
		{
			name: "name of 255 multibyte characters",
			input: func() Input {
				in := validInput()
				in.FullName = str(strings.Repeat("я", 255))
				return in
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, errs := ValidateForCreate(tc.input())

			require.Equal(t, tc.expectedErrors, errs)

			if len(tc.expectedErrors) == 0 {
				require.Equal(t, "RU", c.IsoAlpha2)
				require.Equal(t, "RUS", c.IsoAlpha3)
				require.Equal(t, "643", c.IsoNumeric)
			}
		})
	}
}

func TestValidateForCreate_Normalizes(t *testing.T) {
	c, errs := ValidateForCreate(validInput())

	require.Empty(t, errs)
	require.Equal(t, Russia, c)
}

func TestValidateForEdit(t *testing.T) {
	testCases := []struct {
		name           string
		input          Input
		expected       Country
		expectedErrors []apperror.FieldError
	}{
		{
			name:     "empty patch keeps existing",
			input:    Input{},
			expected: Russia,
		},
		{
			name: "population and square only",
			input: Input{
				Population: num("146000000"),
				Square:     num("17000000"),
			},
			expected: func() Country {
				c := Russia
				c.Population = 146000000
				c.Square = 17000000
				return c
			}(),
		},
		{
			name: "same codes in other case and padding are not changes",
			input: Input{
				IsoAlpha2:  str("ru"),
				IsoAlpha3:  str("Rus"),
				IsoNumeric: num("643"),
			},
			expected: Russia,
		},
		{
			name: "names change freely",
			input: Input{
				ShortName: str("Rossiya"),
			},
			expected: func() Country {
				c := Russia
				c.ShortName = "Rossiya"
				return c
			}(),
		},
		{
			name: "alpha3 change",
			input: Input{
				IsoAlpha3: str("RUX"),
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldIsoAlpha3, Message: msgCodesChanged},
			},
		},
		{
			name: "every code changes",
			input: Input{
				IsoAlpha2:  str("rx"),
				IsoAlpha3:  str("rux"),
				IsoNumeric: num("7"),
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldIsoAlpha2, Message: msgCodesChanged},
				{Field: FieldIsoAlpha3, Message: msgCodesChanged},
				{Field: FieldIsoNumeric, Message: msgCodesChanged},
			},
		},
		{
			name: "shape errors precede immutability errors",
			input: Input{
				IsoAlpha2:  str("R"),
				IsoAlpha3:  str("RUX"),
				Population: num("-5"),
				FullName:   str(""),
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldIsoAlpha2, Message: msgAlpha2},
				{Field: FieldPopulation, Message: msgNonNegative},
				{Field: FieldFullName, Message: msgName},
				{Field: FieldIsoAlpha3, Message: msgCodesChanged},
			},
		},
		{
			name: "numeric too long",
			input: Input{
				IsoNumeric: num("0643"),
			},
			expectedErrors: []apperror.FieldError{
				{Field: FieldIsoNumeric, Message: msgNumericCode},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, errs := ValidateForEdit(Russia, tc.input)

			require.Equal(t, tc.expectedErrors, errs)

			if len(tc.expectedErrors) == 0 {
				require.Equal(t, tc.expected, c)
			}
		})
	}
}

func TestValidateForEdit_PadsNumeric(t *testing.T) {
	existing := Country{
		ShortName:  "Afghanistan",
		FullName:   "Islamic Republic of Afghanistan",
		IsoAlpha2:  "AF",
		IsoAlpha3:  "AFG",
		IsoNumeric: "004",
	}

	c, errs := ValidateForEdit(existing, Input{IsoNumeric: num("4")})

	require.Empty(t, errs)
	require.Equal(t, "004", c.IsoNumeric)
}

func TestPadNumeric(t *testing.T) {
	require.Equal(t, "004", PadNumeric("4"))
	require.Equal(t, "040", PadNumeric("40"))
	require.Equal(t, "643", PadNumeric("643"))
}
