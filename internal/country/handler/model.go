package handler

import (
	"fmt"
	"net/http"

	"github.com/xw1nchester/countries-backend/internal/country"
	"github.com/xw1nchester/countries-backend/pkg/types"
)

// CountryRequest is shared by create and edit. Absent and null fields stay
// nil; isoNumeric, population and square take a JSON number or a string.
type CountryRequest struct {
	ShortName  *string               `json:"shortName"`
	FullName   *string               `json:"fullName"`
	IsoAlpha2  *string               `json:"isoAlpha2"`
	IsoAlpha3  *string               `json:"isoAlpha3"`
	IsoNumeric *types.NumberOrString `json:"isoNumeric" swaggertype:"string"`
	Population *types.NumberOrString `json:"population" swaggertype:"integer"`
	Square     *types.NumberOrString `json:"square" swaggertype:"integer"`
}

func (cr *CountryRequest) ToDomain() country.Input {
	return country.Input{
		ShortName:  cr.ShortName,
		FullName:   cr.FullName,
		IsoAlpha2:  cr.IsoAlpha2,
		IsoAlpha3:  cr.IsoAlpha3,
		IsoNumeric: cr.IsoNumeric,
		Population: cr.Population,
		Square:     cr.Square,
	}
}

func NewPreview(r *http.Request, c country.Country) country.Preview {
	return country.Preview{
		ShortName: c.ShortName,
		URI:       countryURI(r, c.IsoAlpha2),
	}
}

func NewPreviews(r *http.Request, cs []country.Country) []country.Preview {
	previews := make([]country.Preview, len(cs))
	for i, c := range cs {
		previews[i] = NewPreview(r, c)
	}
	return previews
}

func countryURI(r *http.Request, alpha2 string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	return fmt.Sprintf("%s://%s/api/country/%s", scheme, r.Host, alpha2)
}
