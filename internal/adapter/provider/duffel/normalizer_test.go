package duffel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalFrom(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func decimalPtr(t *testing.T, s string) *decimal.Decimal {
	d := decimalFrom(t, s)
	return &d
}

func TestParseDurationMinutes(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"PT5H30M", 330},
		{"PT45M", 45},
		{"PT2H", 120},
		{"P1DT2H5M", 1565},
		{"", 0},
		{"5h30m", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDurationMinutes(tt.input))
		})
	}
}

func TestNormalizeOffer_PriceFieldPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		offer wireOffer
		want  string
	}{
		{
			name:  "total_amount wins",
			offer: wireOffer{ID: "off_1", TotalAmount: decimalPtr(t, "300.10"), Price: decimalPtr(t, "1"), TotalCurrency: "USD"},
			want:  "300.10",
		},
		{
			name:  "price when total_amount is absent",
			offer: wireOffer{ID: "off_1", Price: decimalPtr(t, "280.00"), Amount: decimalPtr(t, "1"), Currency: "USD"},
			want:  "280.00",
		},
		{
			name:  "amount as last resort",
			offer: wireOffer{ID: "off_1", Amount: decimalPtr(t, "99.99"), Currency: "EUR"},
			want:  "99.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer, err := normalizeOffer(tt.offer)
			require.NoError(t, err)
			assert.Equal(t, tt.want, offer.TotalAmount.StringFixed(2))
		})
	}
}

func TestNormalizeOffer_Rejects(t *testing.T) {
	_, err := normalizeOffer(wireOffer{ID: "off_1", TotalCurrency: "USD"})
	assert.Error(t, err, "no price")

	_, err = normalizeOffer(wireOffer{ID: "off_1", TotalAmount: decimalPtr(t, "1")})
	assert.Error(t, err, "no currency")

	_, err = normalizeOffer(wireOffer{ID: "off_1", TotalAmount: decimalPtr(t, "1"), TotalCurrency: "USD", ExpiresAt: "tomorrow"})
	assert.Error(t, err, "bad expiry")
}

func TestNormalizeOffer_PassportRequired(t *testing.T) {
	domestic := wireSlice{
		Origin:      wirePlace{IATACode: "LAX", IATACountryCode: "US"},
		Destination: wirePlace{IATACode: "JFK", IATACountryCode: "US"},
	}
	international := wireSlice{
		Origin:      wirePlace{IATACode: "JFK", IATACountryCode: "US"},
		Destination: wirePlace{IATACode: "LHR", IATACountryCode: "GB"},
	}
	base := wireOffer{ID: "off_1", TotalAmount: decimalPtr(t, "100"), TotalCurrency: "USD"}

	offer := base
	offer.Slices = []wireSlice{domestic}
	normalized, err := normalizeOffer(offer)
	require.NoError(t, err)
	assert.False(t, normalized.PassportRequired)

	offer.Slices = []wireSlice{domestic, international}
	normalized, err = normalizeOffer(offer)
	require.NoError(t, err)
	assert.True(t, normalized.PassportRequired)

	offer.Slices = []wireSlice{domestic}
	offer.PassengerIdentityDocumentsRequired = true
	normalized, err = normalizeOffer(offer)
	require.NoError(t, err)
	assert.True(t, normalized.PassportRequired, "provider flag forces documents")
}

func TestNormalizeOffer_ItemizedAmountsNeedBoth(t *testing.T) {
	offer, err := normalizeOffer(wireOffer{
		ID: "off_1", TotalAmount: decimalPtr(t, "100"), TotalCurrency: "USD",
		BaseAmount: decimalPtr(t, "80"),
	})

	require.NoError(t, err)
	assert.Nil(t, offer.BaseAmount)
	assert.Nil(t, offer.TaxAmount)
	assert.True(t, offer.FareBreakdown().Estimated)
}
