package models

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

type Endpoint struct {
	IATACode string  `json:"iataCode"`
	Terminal *string `json:"terminal,omitempty"`
	At       string  `json:"at"`
}

type Aircraft struct {
	Code string `json:"code"`
}

type Operating struct {
	CarrierCode string `json:"carrierCode,omitempty"`
	CarrierName string `json:"carrierName,omitempty"`
}

type Segment struct {
	Departure     Endpoint   `json:"departure"`
	Arrival       Endpoint   `json:"arrival"`
	CarrierCode   string     `json:"carrierCode"`
	Number        string     `json:"number"`
	Aircraft      Aircraft   `json:"aircraft"`
	Duration      string     `json:"duration"`
	ID            string     `json:"id"`
	NumberOfStops int        `json:"numberOfStops"`
	Operating     *Operating `json:"operating,omitempty"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Fee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

type Price struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	Fees       []Fee  `json:"fees,omitempty"`
	GrandTotal string `json:"grandTotal"`
}

type PricingOptions struct {
	FareType                []string `json:"fareType"`
	IncludedCheckedBagsOnly bool     `json:"includedCheckedBagsOnly"`
}

// FlightOffer mirrors the upstream flight-offer record. Offers are treated as
// immutable once decoded.
type FlightOffer struct {
	Type                   string         `json:"type"`
	ID                     string         `json:"id"`
	Source                 string         `json:"source"`
	NumberOfBookableSeats  int            `json:"numberOfBookableSeats"`
	Itineraries            []Itinerary    `json:"itineraries"`
	Price                  Price          `json:"price"`
	PricingOptions         PricingOptions `json:"pricingOptions"`
	ValidatingAirlineCodes []string       `json:"validatingAirlineCodes"`
}

type Location struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

type Dictionaries struct {
	Locations  map[string]Location `json:"locations,omitempty"`
	Aircraft   map[string]string   `json:"aircraft,omitempty"`
	Currencies map[string]string   `json:"currencies,omitempty"`
	Carriers   map[string]string   `json:"carriers,omitempty"`
}

var errNonFinitePrice = errors.New("price is not a finite number")

// TotalPrice parses price.total. Upstream sends decimal strings; NaN and
// infinities are rejected like any other unparseable value.
func (o FlightOffer) TotalPrice() (float64, error) {
	p, err := strconv.ParseFloat(o.Price.Total, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, fmt.Errorf("price %q: %w", o.Price.Total, errNonFinitePrice)
	}
	return p, nil
}

// FirstDeparture returns the departure time of the first outbound segment.
func (o FlightOffer) FirstDeparture() (time.Time, bool) {
	if len(o.Itineraries) == 0 || len(o.Itineraries[0].Segments) == 0 {
		return time.Time{}, false
	}
	t, err := ParseLocalTime(o.Itineraries[0].Segments[0].Departure.At)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
