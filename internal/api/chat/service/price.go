package chatService

import (
	"math"
	"strconv"
	"strings"
)

// priceUnparseable sentinels keep the accommodation sorts total when a
// price range cell holds something like "N/A". An unparseable minimum
// sorts last for "cheapest", an unparseable maximum never wins
// "most expensive".
const (
	minPriceUnparseable = math.MaxInt
	maxPriceUnparseable = 0
)

func minPrice(priceRange string) int {
	bounds := strings.Split(priceRange, "-")
	value, ok := parsePriceToken(bounds[0])
	if !ok {
		return minPriceUnparseable
	}
	return value
}

func maxPrice(priceRange string) int {
	bounds := strings.Split(priceRange, "-")
	value, ok := parsePriceToken(bounds[len(bounds)-1])
	if !ok {
		return maxPriceUnparseable
	}
	return value
}

func parsePriceToken(token string) (int, bool) {
	cleaned := strings.NewReplacer("₱", "", "$", "", ",", "", " ", "").Replace(token)
	value, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, false
	}
	return value, true
}
