package country

import "github.com/xw1nchester/countries-backend/pkg/types"

type Country struct {
	ShortName  string `json:"shortName"`
	FullName   string `json:"fullName"`
	IsoAlpha2  string `json:"isoAlpha2"`
	IsoAlpha3  string `json:"isoAlpha3"`
	IsoNumeric string `json:"isoNumeric"`
	Population int64  `json:"population"`
	Square     int64  `json:"square"`
}

// Input is an unvalidated country payload. Nil fields were absent or null.
type Input struct {
	ShortName  *string
	FullName   *string
	IsoAlpha2  *string
	IsoAlpha3  *string
	IsoNumeric *types.NumberOrString
	Population *types.NumberOrString
	Square     *types.NumberOrString
}

type Preview struct {
	ShortName string `json:"shortName"`
	URI       string `json:"uri"`
}
