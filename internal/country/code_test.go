package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		code     string
		expected CodeType
	}{
		{code: "RU", expected: CodeAlpha2},
		{code: "RUS", expected: CodeAlpha3},
		{code: "643", expected: CodeNumeric},
		{code: "004", expected: CodeNumeric},
		{code: "ru", expected: CodeInvalid},
		{code: "Rus", expected: CodeInvalid},
		{code: "1", expected: CodeInvalid},
		{code: "12", expected: CodeInvalid},
		{code: "1234", expected: CodeInvalid},
		{code: "R", expected: CodeInvalid},
		{code: "RUSS", expected: CodeInvalid},
		{code: "R1", expected: CodeInvalid},
		{code: "-12", expected: CodeInvalid},
		{code: "", expected: CodeInvalid},
		{code: "ÄB", expected: CodeInvalid},
		{code: "RU\n", expected: CodeInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.code))
		})
	}
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, "RU", NormalizeCode("ru"))
	assert.Equal(t, "RUS", NormalizeCode("rUs"))
	assert.Equal(t, "643", NormalizeCode("643"))

	assert.Equal(t, CodeAlpha2, Classify(NormalizeCode("zz")))
}

func TestNormalizeCode_NonASCII(t *testing.T) {
	testCases := []struct {
		code     string
		expected string
	}{
		{code: "ıt", expected: "ıT"},
		{code: "ſe", expected: "ſE"},
		{code: "äb", expected: "äB"},
	}

	for _, tc := range testCases {
		t.Run(tc.code, func(t *testing.T) {
			normalized := NormalizeCode(tc.code)

			assert.Equal(t, tc.expected, normalized)
			assert.Equal(t, CodeInvalid, Classify(normalized))
		})
	}
}

func TestCodeType_String(t *testing.T) {
	assert.Equal(t, "alpha2", CodeAlpha2.String())
	assert.Equal(t, "alpha3", CodeAlpha3.String())
	assert.Equal(t, "numeric", CodeNumeric.String())
	assert.Equal(t, "invalid", CodeInvalid.String())
}
