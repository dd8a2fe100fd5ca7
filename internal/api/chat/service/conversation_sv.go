package chatService

import (
	"LakbayLaguna/internal/api/chat"
	"LakbayLaguna/internal/entity"
	contextPkg "LakbayLaguna/pkg/context"
	"LakbayLaguna/pkg/nlp"
	"context"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	msgResetAck = "Okay, I won't show more results. Let me know if you need anything else."
	msgAskFirst = "Please ask about locations, best locations, or accommodations first before requesting more."
	msgNoCity   = "Sorry, I couldn't determine the city you're asking about. Please include the city in your question."
	msgUnknown  = "Sorry, I didn't quite get that. Please ask about something you want to know about the place."
)

// HandleTurn resolves one user utterance into a rendered answer. Turns
// for the same user are serialized; the whole read-modify-write of the
// session happens under that user's lock.
func (s *chatService) HandleTurn(ctx context.Context, userID, query string) (string, error) {
	lock := s.lockUser(userID)
	lock.Lock()
	defer lock.Unlock()

	requestID := contextPkg.GetRequestID(ctx)

	sess, found, err := s.sessions.Get(ctx, userID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load chat session")
		return "", chat.ErrSessionStore
	}
	if !found {
		sess = entity.NewChatSession(userID)
	}

	normalized := strings.ToLower(strings.TrimSpace(query))

	// "no" wins over "yes" so "no, thank you" never reads as a
	// continuation. Both are whole-token matches.
	if containsToken(normalized, "no") {
		sess.ResetPagination()
		if err := s.saveSession(ctx, sess); err != nil {
			return "", err
		}
		return msgResetAck, nil
	}

	if containsToken(normalized, "yes") {
		if sess.PendingIntent == nlp.IntentUnknown {
			return msgAskFirst, nil
		}

		answer, err := s.continuePaginated(ctx, &sess, normalized)
		if err != nil {
			return "", err
		}
		if err := s.saveSession(ctx, sess); err != nil {
			return "", err
		}
		return answer, nil
	}

	city := nlp.ExtractCity(normalized)
	if city == "" {
		return msgNoCity, nil
	}

	intent := nlp.Classify(normalized)

	if intent.Paginated() {
		sess.PendingIntent = intent
		sess.ActiveCity = city

		answer, err := s.dispatchPaginated(ctx, &sess, intent, city, normalized)
		if err != nil {
			return "", err
		}
		if err := s.saveSession(ctx, sess); err != nil {
			return "", err
		}
		return answer, nil
	}

	switch intent {
	case nlp.IntentFoodLocation:
		return s.showFoodLocations(ctx, city, normalized)
	case nlp.IntentFoodType:
		return s.showFoodType(ctx, city, normalized)
	case nlp.IntentUnknown:
		return msgUnknown, nil
	default:
		return s.lookupAttraction(ctx, city, normalized, intent)
	}
}

func (s *chatService) dispatchPaginated(ctx context.Context, sess *entity.ChatSession, intent nlp.Intent, city, query string) (string, error) {
	switch intent {
	case nlp.IntentFamousFood:
		return s.showFamousFood(ctx, sess, city)
	case nlp.IntentBestAccommodation:
		return s.showRankedAccommodation(ctx, sess, city, rankBest)
	case nlp.IntentCheapestAccommodation:
		return s.showRankedAccommodation(ctx, sess, city, rankCheapest)
	case nlp.IntentMostExpensiveAccommodation:
		return s.showRankedAccommodation(ctx, sess, city, rankMostExpensive)
	case nlp.IntentAccommodationList:
		return s.showAccommodations(ctx, sess, city)
	case nlp.IntentBestLocations:
		return s.showBestLocations(ctx, sess, city, query)
	default:
		return s.showLocations(ctx, sess, city, query)
	}
}

// continuePaginated re-invokes the paginator bound to the pending
// intent with the stored city. The "yes" text carries no quantity, so
// list pages fall back to the default size.
func (s *chatService) continuePaginated(ctx context.Context, sess *entity.ChatSession, query string) (string, error) {
	return s.dispatchPaginated(ctx, sess, sess.PendingIntent, sess.ActiveCity, query)
}

func (s *chatService) saveSession(ctx context.Context, sess entity.ChatSession) error {
	requestID := contextPkg.GetRequestID(ctx)

	if err := s.sessions.Save(ctx, sess); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to save chat session")
		return chat.ErrSessionStore
	}
	return nil
}

func containsToken(text, token string) bool {
	for _, word := range strings.Fields(text) {
		if strings.Trim(word, ".,!?") == token {
			return true
		}
	}
	return false
}
