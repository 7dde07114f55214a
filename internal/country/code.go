package country

import (
	"regexp"
	"strings"
)

type CodeType int

const (
	CodeInvalid CodeType = iota
	CodeAlpha2
	CodeAlpha3
	CodeNumeric
)

var (
	alpha2Rgx  = regexp.MustCompile(`^[A-Z]{2}$`)
	alpha3Rgx  = regexp.MustCompile(`^[A-Z]{3}$`)
	numericRgx = regexp.MustCompile(`^[0-9]{3}$`)
)

func (t CodeType) String() string {
	switch t {
	case CodeAlpha2:
		return "alpha2"
	case CodeAlpha3:
		return "alpha3"
	case CodeNumeric:
		return "numeric"
	default:
		return "invalid"
	}
}

// Classify expects letter codes already uppercased, see NormalizeCode.
func Classify(code string) CodeType {
	switch {
	case alpha2Rgx.MatchString(code):
		return CodeAlpha2
	case alpha3Rgx.MatchString(code):
		return CodeAlpha3
	case numericRgx.MatchString(code):
		return CodeNumeric
	default:
		return CodeInvalid
	}
}

// NormalizeCode uppercases ASCII letters only, so letters like 'ı' or 'ſ'
// never fold into a valid code.
func NormalizeCode(code string) string {
	return strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' {
			return r - ('a' - 'A')
		}
		return r
	}, code)
}
