package nlp

import "strings"

// Intent is the classified purpose of a single user turn.
type Intent uint8

const (
	IntentUnknown Intent = iota
	IntentFamousFood
	IntentFoodLocation
	IntentFoodType
	IntentBestAccommodation
	IntentCheapestAccommodation
	IntentMostExpensiveAccommodation
	IntentAccommodationList
	IntentAvailableDates
	IntentBestSeasonWhy
	IntentBestDate
	IntentBestSeason
	IntentRating
	IntentDescription
	IntentActivities
	IntentLocationList
	IntentBestLocations
	IntentOperatingHours
)

var intentNames = map[Intent]string{
	IntentUnknown:                    "unknown",
	IntentFamousFood:                 "famous_food",
	IntentFoodLocation:               "food_location",
	IntentFoodType:                   "food_type",
	IntentBestAccommodation:          "best_accommodation",
	IntentCheapestAccommodation:      "cheapest_accommodation",
	IntentMostExpensiveAccommodation: "most_expensive_accommodation",
	IntentAccommodationList:          "accommodations",
	IntentAvailableDates:             "available_dates",
	IntentBestSeasonWhy:              "best_season_why",
	IntentBestDate:                   "best_date",
	IntentBestSeason:                 "best_season",
	IntentRating:                     "rating",
	IntentDescription:                "description",
	IntentActivities:                 "activities",
	IntentLocationList:               "locations",
	IntentBestLocations:              "best_locations",
	IntentOperatingHours:             "operating_hours",
}

func (i Intent) String() string {
	return intentNames[i]
}

// Paginated reports whether the intent keeps a per-session cursor and
// supports "yes" continuation turns.
func (i Intent) Paginated() bool {
	switch i {
	case IntentFamousFood,
		IntentBestAccommodation,
		IntentCheapestAccommodation,
		IntentMostExpensiveAccommodation,
		IntentAccommodationList,
		IntentLocationList,
		IntentBestLocations:
		return true
	}
	return false
}

type rule struct {
	intent   Intent
	keywords []string
}

// cascade is evaluated top to bottom; the first rule with any keyword
// present as a substring wins. The order is a contract: "when to visit"
// appears in both the best-date and best-season rules, and best-date
// must win because it is listed first.
var cascade = []rule{
	{IntentFamousFood, []string{"famous food", "local food", "what to eat", "foods"}},
	{IntentFoodLocation, []string{"where can i buy", "where to buy"}},
	{IntentFoodType, []string{"what type of food", "type of food"}},
	{IntentBestAccommodation, []string{"best accommodation", "best hotel"}},
	{IntentCheapestAccommodation, []string{"cheapest hotel", "cheapest accommodation"}},
	{IntentMostExpensiveAccommodation, []string{"most expensive hotel", "most expensive accommodation"}},
	{IntentAccommodationList, []string{"accommodation", "where to stay", "hotel"}},
	{IntentAvailableDates, []string{"available date", "when is", "is it open"}},
	{IntentBestSeasonWhy, []string{"why the best season", "why is this the best season", "why visit in this season"}},
	{IntentBestDate, []string{"best date", "ideal date", "when to visit"}},
	{IntentBestSeason, []string{"best season", "best time to visit", "when to visit"}},
	{IntentRating, []string{"rating", "rate", "what is the rating"}},
	{IntentDescription, []string{"what is", "tell me about", "description of"}},
	{IntentActivities, []string{"activity", "activities", "what can i do"}},
	{IntentLocationList, []string{"location", "attraction"}},
	{IntentOperatingHours, []string{"operating hours", "opening hours", "operating time", "opening time"}},
}

// Classify maps a user query to an Intent by first-match keyword lookup.
func Classify(text string) Intent {
	text = strings.ToLower(text)

	for _, r := range cascade {
		for _, keyword := range r.keywords {
			if !strings.Contains(text, keyword) {
				continue
			}

			// The location-list rule carries a nested check: asking for
			// the "best" ones selects the rating-sorted variant.
			if r.intent == IntentLocationList && wantsBestLocations(text) {
				return IntentBestLocations
			}
			return r.intent
		}
	}

	return IntentUnknown
}

func wantsBestLocations(text string) bool {
	return strings.Contains(text, "best location") ||
		strings.Contains(text, "best locations") ||
		strings.Contains(text, "rating")
}
