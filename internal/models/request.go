package models

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// SearchRequest carries the raw query string values of /api/search. Optional
// numeric fields stay strings so unparseable values can be dropped instead of
// rejected.
type SearchRequest struct {
	Origin        string `query:"origin" validate:"required"`
	Destination   string `query:"destination" validate:"required"`
	DepartureDate string `query:"departureDate" validate:"required"`
	ReturnDate    string `query:"returnDate"`
	Adults        string `query:"adults"`
	Children      string `query:"children"`
	Infants       string `query:"infants"`
	TravelClass   string `query:"travelClass"`
	NonStop       string `query:"nonStop"`
	Currency      string `query:"currency"`
	MaxPrice      string `query:"maxPrice"`
}

// MissingParamsError lists required query parameters that were absent.
type MissingParamsError struct {
	Fields []string
}

func (e *MissingParamsError) Error() string {
	return "Missing required parameters: " + strings.Join(e.Fields, ", ")
}

var requestValidator = newValidator("query")

func (r *SearchRequest) Validate() error {
	r.Origin = strings.TrimSpace(r.Origin)
	r.Destination = strings.TrimSpace(r.Destination)
	r.DepartureDate = strings.TrimSpace(r.DepartureDate)

	err := requestValidator.Struct(r)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	missing := &MissingParamsError{}
	for _, fe := range verrs {
		missing.Fields = append(missing.Fields, fe.Field())
	}
	return missing
}

// FilterSpec is the client-side filter state. A nil or empty criterion
// matches every offer.
type FilterSpec struct {
	MaxPrice      *float64 `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	Airlines      []string `json:"airlines,omitempty" validate:"omitempty,dive,required"`
	DepartureTime []int    `json:"departureTime,omitempty" validate:"omitempty,len=2,dive,gte=0,lte=24"`
}

// HourRange returns the departure window as [start, end).
func (f *FilterSpec) HourRange() (start, end int, ok bool) {
	if f == nil || len(f.DepartureTime) != 2 {
		return 0, 0, false
	}
	return f.DepartureTime[0], f.DepartureTime[1], true
}

type FilterRequest struct {
	Offers       []FlightOffer `json:"offers"`
	Filters      *FilterSpec   `json:"filters,omitempty"`
	Dictionaries *Dictionaries `json:"dictionaries,omitempty"`
}

// newValidator reports field names using the given struct tag so messages
// match what clients actually send.
func newValidator(tag string) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// NewValidator returns the validator used for JSON request bodies.
func NewValidator() *validator.Validate {
	return newValidator("json")
}
