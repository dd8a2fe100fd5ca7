package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Intent
	}{
		{
			name:     "famous food",
			text:     "what is the famous food in calamba",
			expected: IntentFamousFood,
		},
		{
			name:     "food location lookup",
			text:     "where can i buy kesong puti in sta rosa",
			expected: IntentFoodLocation,
		},
		{
			name:     "food type lookup",
			text:     "what type of food is espasol in binan",
			expected: IntentFoodType,
		},
		{
			name:     "best accommodation",
			text:     "best hotel in binan",
			expected: IntentBestAccommodation,
		},
		{
			name:     "cheapest accommodation",
			text:     "cheapest accommodation in pagsanjan",
			expected: IntentCheapestAccommodation,
		},
		{
			name:     "most expensive beats plain accommodation",
			text:     "most expensive hotel in calamba",
			expected: IntentMostExpensiveAccommodation,
		},
		{
			name:     "plain accommodation list",
			text:     "where to stay in los baños",
			expected: IntentAccommodationList,
		},
		{
			name:     "available dates",
			text:     "is it open on weekends",
			expected: IntentAvailableDates,
		},
		{
			name:     "best season why",
			text:     "why is this the best season to go",
			expected: IntentBestSeasonWhy,
		},
		{
			name:     "best date",
			text:     "what is the ideal date to go",
			expected: IntentBestDate,
		},
		{
			name:     "best date wins over best season when both present",
			text:     "best date or best season for a trip",
			expected: IntentBestDate,
		},
		{
			name:     "when to visit resolves to best date not best season",
			text:     "when to visit pagsanjan falls",
			expected: IntentBestDate,
		},
		{
			name:     "best season",
			text:     "best time to visit the springs",
			expected: IntentBestSeason,
		},
		{
			name:     "rating",
			text:     "rate the hot springs for me",
			expected: IntentRating,
		},
		{
			name:     "description",
			text:     "tell me about the enchanted kingdom",
			expected: IntentDescription,
		},
		{
			name:     "activities",
			text:     "what can i do at the falls",
			expected: IntentActivities,
		},
		{
			name:     "location list",
			text:     "show me attractions around here",
			expected: IntentLocationList,
		},
		{
			name:     "best locations via nested check",
			text:     "show me the best locations around",
			expected: IntentBestLocations,
		},
		{
			name:     "operating hours only matches after location rule",
			text:     "opening hours please",
			expected: IntentOperatingHours,
		},
		{
			name:     "operating contains rating so the rating rule wins",
			text:     "operating hours of the shrine",
			expected: IntentRating,
		},
		{
			name:     "opening time reaches the operating hours rule",
			text:     "opening time of the shrine",
			expected: IntentOperatingHours,
		},
		{
			name:     "unrecognized",
			text:     "sing me a song",
			expected: IntentUnknown,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Classify(tc.text))
		})
	}
}

func TestClassify_FoodGeneralWinsOverAccommodation(t *testing.T) {
	// "foods" appears in rule 1 and "hotel" in rule 7; rule 1 is
	// evaluated first.
	assert.Equal(t, IntentFamousFood, Classify("foods near the hotel"))
}

func TestIntent_Paginated(t *testing.T) {
	paginated := []Intent{
		IntentFamousFood,
		IntentBestAccommodation,
		IntentCheapestAccommodation,
		IntentMostExpensiveAccommodation,
		IntentAccommodationList,
		IntentLocationList,
		IntentBestLocations,
	}
	for _, intent := range paginated {
		assert.True(t, intent.Paginated(), intent.String())
	}

	oneShot := []Intent{
		IntentUnknown,
		IntentFoodLocation,
		IntentFoodType,
		IntentOperatingHours,
		IntentDescription,
		IntentRating,
		IntentBestSeason,
		IntentBestSeasonWhy,
		IntentBestDate,
		IntentAvailableDates,
		IntentActivities,
	}
	for _, intent := range oneShot {
		assert.False(t, intent.Paginated(), intent.String())
	}
}
