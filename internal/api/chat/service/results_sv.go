package chatService

import (
	"LakbayLaguna/internal/api/chat"
	"LakbayLaguna/internal/entity"
	"LakbayLaguna/pkg/nlp"
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// Cursor categories. All four accommodation intents share one cursor,
// matching the single accommodations offset the conversation tracks.
const (
	cursorLocations      = "locations"
	cursorBestLocations  = "best_locations"
	cursorAccommodations = "accommodations"
	cursorFoods          = "foods"
)

const defaultPageSize = 5

const accommodationDetailTail = "For more detail try searching the name and calling the phone number provided"

type accommodationRank uint8

const (
	rankBest accommodationRank = iota
	rankCheapest
	rankMostExpensive
)

// showLocations lists attraction names for a city. The order is
// re-shuffled on every call, so continuation pages may repeat entries;
// the cursor still only moves forward.
func (s *chatService) showLocations(ctx context.Context, sess *entity.ChatSession, city, query string) (string, error) {
	attractions, err := s.attractionsFor(ctx, city)
	if err != nil {
		return "", err
	}
	if len(attractions) == 0 {
		return "Sorry, I couldn't find any locations for this city.", nil
	}

	locations := distinctLocations(attractions)
	rand.Shuffle(len(locations), func(i, j int) {
		locations[i], locations[j] = locations[j], locations[i]
	})

	pageSize := nlp.ExtractQuantity(query, defaultPageSize)
	start := sess.CursorFor(cursorLocations)
	if start >= len(locations) {
		sess.AwaitingMore = false
		return "No more locations to show.", nil
	}

	end := start + pageSize
	if end > len(locations) {
		end = len(locations)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are some locations and attractions in %s:\n", city)
	for _, location := range locations[start:end] {
		fmt.Fprintf(&b, "* %s\n", location)
	}

	sess.SetCursor(cursorLocations, start+pageSize)
	appendMorePrompt(&b, sess, start+pageSize < len(locations), "Would you like to see more?", "No more locations to show.")

	return b.String(), nil
}

// showBestLocations lists attractions sorted by rating, highest first,
// projecting the fields a traveler compares on.
func (s *chatService) showBestLocations(ctx context.Context, sess *entity.ChatSession, city, query string) (string, error) {
	attractions, err := s.attractionsFor(ctx, city)
	if err != nil {
		return "", err
	}
	if len(attractions) == 0 {
		return "Sorry, I couldn't find the best locations for this city.", nil
	}

	sort.SliceStable(attractions, func(i, j int) bool {
		return attractions[i].Rating > attractions[j].Rating
	})

	pageSize := nlp.ExtractQuantity(query, defaultPageSize)
	start := sess.CursorFor(cursorBestLocations)
	if start >= len(attractions) {
		sess.AwaitingMore = false
		return "No more best locations to show.", nil
	}

	end := start + pageSize
	if end > len(attractions) {
		end = len(attractions)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are the best locations in %s based on ratings:\n", city)
	for _, attraction := range attractions[start:end] {
		fmt.Fprintf(&b, "Location: %s\n", attraction.Location)
		fmt.Fprintf(&b, "Rating: %v\n", attraction.Rating)
		fmt.Fprintf(&b, "Entrance Fee: %s\n", attraction.EntranceFee)
		fmt.Fprintf(&b, "Activities: %s\n\n", attraction.Activities)
	}

	sess.SetCursor(cursorBestLocations, start+pageSize)
	appendMorePrompt(&b, sess, start+pageSize < len(attractions), "Would you like to see more?", "No more best locations to show.")

	return b.String(), nil
}

// showAccommodations pages through the city's accommodations in row
// order. The cursor advances by the fixed page size even when the final
// page comes up short; hasMore is computed against the true length so a
// short last page still terminates.
func (s *chatService) showAccommodations(ctx context.Context, sess *entity.ChatSession, city string) (string, error) {
	accommodations, err := s.accommodationsFor(ctx, city)
	if err != nil {
		return "", err
	}
	if len(accommodations) == 0 {
		return fmt.Sprintf("Sorry, no accommodations were found in %s.", city), nil
	}

	start := sess.CursorFor(cursorAccommodations)
	if start >= len(accommodations) {
		sess.AwaitingMore = false
		return "No more accommodations to show.", nil
	}

	end := start + defaultPageSize
	if end > len(accommodations) {
		end = len(accommodations)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are some accommodations available in %s:\n", city)
	for _, accommodation := range accommodations[start:end] {
		writeAccommodation(&b, accommodation)
	}
	b.WriteString(accommodationDetailTail + "\n")

	sess.SetCursor(cursorAccommodations, start+defaultPageSize)
	appendMorePrompt(&b, sess, start+defaultPageSize < len(accommodations), "Would you like to see more?", "No more accommodations to show.")

	return b.String(), nil
}

// showRankedAccommodation answers best / cheapest / most-expensive with
// one venue per turn; a "yes" moves to the next in rank order.
func (s *chatService) showRankedAccommodation(ctx context.Context, sess *entity.ChatSession, city string, rank accommodationRank) (string, error) {
	accommodations, err := s.accommodationsFor(ctx, city)
	if err != nil {
		return "", err
	}
	if len(accommodations) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find accommodation information for %s.", city), nil
	}

	switch rank {
	case rankCheapest:
		sort.SliceStable(accommodations, func(i, j int) bool {
			return minPrice(accommodations[i].PriceRange) < minPrice(accommodations[j].PriceRange)
		})
	case rankMostExpensive:
		sort.SliceStable(accommodations, func(i, j int) bool {
			return maxPrice(accommodations[i].PriceRange) > maxPrice(accommodations[j].PriceRange)
		})
	default:
		sort.SliceStable(accommodations, func(i, j int) bool {
			return accommodations[i].Rating > accommodations[j].Rating
		})
	}

	start := sess.CursorFor(cursorAccommodations)
	if start >= len(accommodations) {
		sess.AwaitingMore = false
		return "No more accommodations to show.", nil
	}

	var b strings.Builder
	switch rank {
	case rankCheapest:
		fmt.Fprintf(&b, "Here is the cheapest accommodation in %s:\n", city)
	case rankMostExpensive:
		fmt.Fprintf(&b, "Here is the most expensive accommodation in %s:\n", city)
	default:
		fmt.Fprintf(&b, "The best accommodation in %s is:\n", city)
	}
	writeAccommodation(&b, accommodations[start])
	b.WriteString(accommodationDetailTail + "\n")

	sess.SetCursor(cursorAccommodations, start+1)
	appendMorePrompt(&b, sess, start+1 < len(accommodations), "Would you like to see more accommodations?", "No more accommodations to show.")

	return b.String(), nil
}

// showFamousFood pages shuffled food records five at a time.
func (s *chatService) showFamousFood(ctx context.Context, sess *entity.ChatSession, city string) (string, error) {
	foods, err := s.foodsFor(ctx, city)
	if err != nil {
		return "", err
	}
	if len(foods) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find any food information for %s.", city), nil
	}

	rand.Shuffle(len(foods), func(i, j int) {
		foods[i], foods[j] = foods[j], foods[i]
	})

	start := sess.CursorFor(cursorFoods)
	if start >= len(foods) {
		sess.AwaitingMore = false
		return "No more famous foods to show. Would you like to start over?", nil
	}

	end := start + defaultPageSize
	if end > len(foods) {
		end = len(foods)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here is a famous food in %s:\n", city)
	for _, food := range foods[start:end] {
		fmt.Fprintf(&b, "%s\n", food.Name)
		fmt.Fprintf(&b, "Description: %s\n", food.Description)
		fmt.Fprintf(&b, "Price Range: %s\n", food.PriceRange)
		fmt.Fprintf(&b, "Type of Food: %s\n\n", food.Type)
	}

	sess.SetCursor(cursorFoods, start+defaultPageSize)
	appendMorePrompt(&b, sess, start+defaultPageSize < len(foods), "Would you like to see more famous foods?", "No more famous foods to show.")

	return b.String(), nil
}

// showFoodLocations answers "where can i buy X in CITY" with every
// matching record at once. Never paginated.
func (s *chatService) showFoodLocations(ctx context.Context, city, query string) (string, error) {
	foodName := firstFoodName(query, "where can i buy", "where to buy")
	if foodName == "" {
		return "Please tell me which food you're looking for, for example: where can I buy kesong puti in sta rosa.", nil
	}

	foods, err := s.searchFoods(ctx, city, foodName)
	if err != nil {
		return "", err
	}
	if len(foods) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find %s in %s. Maybe you can try another food item?", foodName, city), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here are places in %s where you can buy %s:\n", city, foodName)
	for _, food := range foods {
		fmt.Fprintf(&b, "%s\n", food.Name)
		fmt.Fprintf(&b, "You Can Buy It In: %s\n", food.WhereToBuy)
		fmt.Fprintf(&b, "Price Range: %s\n", food.PriceRange)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func (s *chatService) showFoodType(ctx context.Context, city, query string) (string, error) {
	foodName := firstFoodName(query, "what type of food is", "type of food is")
	if foodName == "" {
		return "Please tell me which food you're asking about, for example: what type of food is kesong puti in sta rosa.", nil
	}

	foods, err := s.searchFoods(ctx, city, foodName)
	if err != nil {
		return "", err
	}
	if len(foods) == 0 {
		return fmt.Sprintf("Sorry, I couldn't find %s in %s. Maybe you can try another food item?", foodName, city), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The type of food %s in %s is:\n", foodName, city)
	for _, food := range foods {
		fmt.Fprintf(&b, "Type: %s\n", food.Type)
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

func firstFoodName(query string, anchors ...string) string {
	for _, anchor := range anchors {
		if name := nlp.ExtractFoodName(query, anchor); name != "" {
			return name
		}
	}
	return ""
}

func distinctLocations(attractions []entity.Attraction) []string {
	seen := make(map[string]struct{}, len(attractions))
	var locations []string
	for _, attraction := range attractions {
		if _, ok := seen[attraction.Location]; ok {
			continue
		}
		seen[attraction.Location] = struct{}{}
		locations = append(locations, attraction.Location)
	}
	return locations
}

func writeAccommodation(b *strings.Builder, a entity.Accommodation) {
	fmt.Fprintf(b, "%s\n", a.Name)
	fmt.Fprintf(b, "Description: %s\n", a.Description)
	fmt.Fprintf(b, "Price Range: %s\n", a.PriceRange)
	fmt.Fprintf(b, "One-Day Rate: %s\n", a.OneDayRate)
	fmt.Fprintf(b, "Twelve Hours Rate: %s\n", a.TwelveHourRate)
	fmt.Fprintf(b, "Six Hours Rate: %s\n", a.SixHourRate)
	fmt.Fprintf(b, "Nearest Attraction: %s\n", a.NearestAttraction)
	fmt.Fprintf(b, "Type: %s\n", a.Type)
	fmt.Fprintf(b, "Level: %s\n", a.Level)
	fmt.Fprintf(b, "Phone Number: %s\n", a.PhoneNumber)
	fmt.Fprintf(b, "Rating: %v\n\n", a.Rating)
}

// appendMorePrompt closes a paginated answer and records whether a
// yes/no follow-up is now expected.
func appendMorePrompt(b *strings.Builder, sess *entity.ChatSession, hasMore bool, morePrompt, noMore string) {
	if hasMore {
		b.WriteString(morePrompt)
	} else {
		b.WriteString(noMore)
	}
	sess.AwaitingMore = hasMore
}

// The *For helpers read one category's row-set. Infrastructure
// failures surface as ErrDatasetUnavailable; an empty result is left to
// the caller, which renders a conversational message instead.
func (s *chatService) attractionsFor(ctx context.Context, city string) ([]entity.Attraction, error) {
	client, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, chat.ErrDatasetUnavailable
	}

	attractions, err := client.Attractions.GetByCity(ctx, city)
	if err != nil {
		return nil, chat.ErrDatasetUnavailable
	}
	return attractions, nil
}

func (s *chatService) accommodationsFor(ctx context.Context, city string) ([]entity.Accommodation, error) {
	client, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, chat.ErrDatasetUnavailable
	}

	accommodations, err := client.Accommodations.GetByCity(ctx, city)
	if err != nil {
		return nil, chat.ErrDatasetUnavailable
	}
	return accommodations, nil
}

func (s *chatService) foodsFor(ctx context.Context, city string) ([]entity.Food, error) {
	client, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, chat.ErrDatasetUnavailable
	}

	foods, err := client.Foods.GetByCity(ctx, city)
	if err != nil {
		return nil, chat.ErrDatasetUnavailable
	}
	return foods, nil
}

func (s *chatService) searchFoods(ctx context.Context, city, name string) ([]entity.Food, error) {
	client, err := s.chatRepo.NewClient(false)
	if err != nil {
		return nil, chat.ErrDatasetUnavailable
	}

	foods, err := client.Foods.SearchByName(ctx, city, name)
	if err != nil {
		return nil, chat.ErrDatasetUnavailable
	}
	return foods, nil
}
