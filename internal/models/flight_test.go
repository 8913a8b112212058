package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightOffer_TotalPrice(t *testing.T) {
	tests := []struct {
		total   string
		want    float64
		wantErr bool
	}{
		{"355.34", 355.34, false},
		{"0", 0, false},
		{"", 0, true},
		{"n/a", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"+Inf", 0, true},
		{"-infinity", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.total, func(t *testing.T) {
			price, err := FlightOffer{Price: Price{Total: tt.total}}.TotalPrice()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, price)
		})
	}
}
