package entity

type Attraction struct {
	ID            string  `json:"id"`
	City          string  `json:"city"`
	Location      string  `json:"location"`
	Opening       string  `json:"opening"`
	Closing       string  `json:"closing"`
	Activities    string  `json:"activities"`
	Description   string  `json:"description"`
	Rating        float64 `json:"rating"`
	EntranceFee   string  `json:"entrance_fee"`
	BestSeason    string  `json:"best_season"`
	BestSeasonWhy string  `json:"best_season_why"`
	BestDate      string  `json:"best_date"`
	AvailableDays string  `json:"available_days"`
}

type Accommodation struct {
	ID                string  `json:"id"`
	City              string  `json:"city"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	NearestAttraction string  `json:"nearest_attraction"`
	Type              string  `json:"type"`
	Level             string  `json:"level"`
	PhoneNumber       string  `json:"phone_number"`
	Rating            float64 `json:"rating"`
	PriceRange        string  `json:"price_range"`
	OneDayRate        string  `json:"one_day_rate"`
	TwelveHourRate    string  `json:"twelve_hour_rate"`
	SixHourRate       string  `json:"six_hour_rate"`
}

type Food struct {
	ID          string `json:"id"`
	City        string `json:"city"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceRange  string `json:"price_range"`
	Type        string `json:"type"`
	WhereToBuy  string `json:"where_to_buy"`
}
