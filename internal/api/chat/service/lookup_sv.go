package chatService

import (
	"LakbayLaguna/internal/api/chat"
	"LakbayLaguna/internal/entity"
	"LakbayLaguna/pkg/nlp"
	"context"
	"errors"
	"fmt"
)

// lookupAttraction answers the point-lookup intents: one attraction,
// one fact, no pagination state touched.
func (s *chatService) lookupAttraction(ctx context.Context, city, query string, intent nlp.Intent) (string, error) {
	attractions, err := s.attractionsFor(ctx, city)
	if err != nil {
		return "", err
	}
	if len(attractions) == 0 {
		return "Sorry, I couldn't find information for this city.", nil
	}

	names := make([]string, 0, len(attractions))
	for _, attraction := range attractions {
		names = append(names, attraction.Location)
	}

	location := nlp.ExtractLocation(query, names)
	if location == "" {
		return "Sorry, I couldn't identify the location you're asking about. Please provide a clear location name.", nil
	}

	client, err := s.chatRepo.NewClient(false)
	if err != nil {
		return "", chat.ErrDatasetUnavailable
	}

	attraction, err := client.Attractions.GetByLocation(ctx, city, location)
	if err != nil {
		if errors.Is(err, chat.ErrAttractionNotFound) {
			return fmt.Sprintf("Sorry, I couldn't find any information for %s in %s.", location, city), nil
		}
		return "", chat.ErrDatasetUnavailable
	}

	return renderAttractionFact(attraction, intent), nil
}

func renderAttractionFact(a entity.Attraction, intent nlp.Intent) string {
	switch intent {
	case nlp.IntentOperatingHours:
		return fmt.Sprintf("The operating hours for %s in %s are:\nLocation: %s\nOperating Hours: %sAM - %sPM",
			a.Location, a.City, a.Location, a.Opening, a.Closing)
	case nlp.IntentActivities:
		return fmt.Sprintf("Here are the activities you can do at %s in %s:\n* %s",
			a.Location, a.City, a.Activities)
	case nlp.IntentDescription:
		return fmt.Sprintf("The %s in %s:\n%s", a.Location, a.City, a.Description)
	case nlp.IntentRating:
		return fmt.Sprintf("The rating for %s in %s is:\nRating: %v", a.Location, a.City, a.Rating)
	case nlp.IntentBestSeason:
		return fmt.Sprintf("The best season to visit %s in %s is:\nBest Season: %s\nReason: %s",
			a.Location, a.City, a.BestSeason, a.BestSeasonWhy)
	case nlp.IntentBestSeasonWhy:
		return fmt.Sprintf("Here's why %s in %s should be visited in that season:\nReason: %s",
			a.Location, a.City, a.BestSeasonWhy)
	case nlp.IntentBestDate:
		return fmt.Sprintf("The best date to visit %s in %s is:\nBest Date: %s",
			a.Location, a.City, a.BestDate)
	case nlp.IntentAvailableDates:
		return fmt.Sprintf("The available dates for %s in %s are:\nAvailable Date: %s",
			a.Location, a.City, a.AvailableDays)
	}
	return fmt.Sprintf("The %s in %s:\n%s", a.Location, a.City, a.Description)
}
