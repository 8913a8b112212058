package models

import "encoding/json"

type ErrorResponse struct {
	Error   string          `json:"error"`
	Message string          `json:"message,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
}

type Airport struct {
	IATA        string `json:"iata"`
	Name        string `json:"name"`
	City        string `json:"city"`
	Country     string `json:"country"`
	CountryCode string `json:"countryCode"`
}

type AirportListResponse struct {
	Data []Airport `json:"data"`
}

type AirportResponse struct {
	Data Airport `json:"data"`
}

type PriceStats struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
}

// PriceBucket is one bar of the price histogram, covering [Low, High).
type PriceBucket struct {
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
	Label string  `json:"range"`
	Count int     `json:"count"`
}

type AirlineFacet struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TimeSlotFacet is a departure-hour preset with the number of offers whose
// first segment leaves within [Start, End).
type TimeSlotFacet struct {
	Label string `json:"label"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Count int    `json:"count"`
}

type FilterResponse struct {
	Data       []FlightOffer   `json:"data"`
	Total      int             `json:"total"`
	Filtered   int             `json:"filtered"`
	PriceStats PriceStats      `json:"priceStats"`
	Histogram  []PriceBucket   `json:"histogram"`
	Airlines   []AirlineFacet  `json:"airlines"`
	TimeSlots  []TimeSlotFacet `json:"timeSlots"`
}
