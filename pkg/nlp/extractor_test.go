package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCity(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "city in the middle of the text",
			text:     "show me locations in calamba please",
			expected: "calamba",
		},
		{
			name:     "two-word city",
			text:     "hotels in los baños",
			expected: "los baños",
		},
		{
			name:     "vocabulary order wins over text position",
			text:     "from pagsanjan to san pedro",
			expected: "san pedro",
		},
		{
			name:     "uppercase input",
			text:     "WHAT TO EAT IN STA ROSA",
			expected: "sta rosa",
		},
		{
			name:     "no city",
			text:     "show me locations",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractCity(tc.text))
		})
	}
}

func TestExtractLocation(t *testing.T) {
	locations := []string{"Pagsanjan Falls", "Hidden Valley Springs", "Rizal Shrine"}

	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "case-insensitive match",
			text:     "what are the operating hours of pagsanjan falls",
			expected: "Pagsanjan Falls",
		},
		{
			name:     "provider order wins when two locations match",
			text:     "rizal shrine or hidden valley springs",
			expected: "Hidden Valley Springs",
		},
		{
			name:     "no match",
			text:     "tell me about the plaza",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractLocation(tc.text, locations))
		})
	}
}

func TestExtractQuantity(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{
			name:     "digit token",
			text:     "show me 3 locations",
			expected: 3,
		},
		{
			name:     "digit beats spelled word even when the word comes first",
			text:     "two friends want 7 suggestions",
			expected: 7,
		},
		{
			name:     "spelled word",
			text:     "show me five locations",
			expected: 5,
		},
		{
			name:     "compound word",
			text:     "twenty five results please",
			expected: 25,
		},
		{
			name:     "hundred multiplies",
			text:     "two hundred pesos budget",
			expected: 200,
		},
		{
			name:     "no quantity falls back to default",
			text:     "show me locations",
			expected: 5,
		},
		{
			name:     "digits inside words are not tokens",
			text:     "route66 sounds fun",
			expected: 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractQuantity(tc.text, 5))
		})
	}
}

func TestExtractFoodName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		anchor   string
		expected string
	}{
		{
			name:     "name between anchor and in",
			text:     "where can i buy kesong puti in sta rosa",
			anchor:   "where can i buy",
			expected: "kesong puti",
		},
		{
			name:     "no trailing city",
			text:     "where can i buy espasol?",
			anchor:   "where can i buy",
			expected: "espasol",
		},
		{
			name:     "anchor missing",
			text:     "i want some espasol",
			anchor:   "where can i buy",
			expected: "",
		},
		{
			name:     "nothing after anchor",
			text:     "where can i buy",
			anchor:   "where can i buy",
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ExtractFoodName(tc.text, tc.anchor))
		})
	}
}
