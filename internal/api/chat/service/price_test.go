package chatService

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinPrice(t *testing.T) {
	tests := []struct {
		name       string
		priceRange string
		expected   int
	}{
		{
			name:       "peso range with thousands separator",
			priceRange: "₱500-₱1,000",
			expected:   500,
		},
		{
			name:       "single value",
			priceRange: "₱750",
			expected:   750,
		},
		{
			name:       "dollar sign and spaces",
			priceRange: "$200 - $400",
			expected:   200,
		},
		{
			name:       "unparseable sorts last",
			priceRange: "N/A",
			expected:   minPriceUnparseable,
		},
		{
			name:       "empty",
			priceRange: "",
			expected:   minPriceUnparseable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, minPrice(tc.priceRange))
		})
	}
}

func TestMaxPrice(t *testing.T) {
	tests := []struct {
		name       string
		priceRange string
		expected   int
	}{
		{
			name:       "peso range with thousands separator",
			priceRange: "₱500-₱1,000",
			expected:   1000,
		},
		{
			name:       "single value",
			priceRange: "₱750",
			expected:   750,
		},
		{
			name:       "unparseable never wins the max",
			priceRange: "N/A",
			expected:   maxPriceUnparseable,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, maxPrice(tc.priceRange))
		})
	}
}
