package entity

import "LakbayLaguna/pkg/nlp"

// ChatSession is the per-user conversational state. Cursors are keyed by
// result category so switching intents never clobbers another category's
// progress.
type ChatSession struct {
	UserID        string         `json:"user_id"`
	PendingIntent nlp.Intent     `json:"pending_intent"`
	ActiveCity    string         `json:"active_city"`
	Cursors       map[string]int `json:"cursors"`
	AwaitingMore  bool           `json:"awaiting_more"`
}

func NewChatSession(userID string) ChatSession {
	return ChatSession{
		UserID:  userID,
		Cursors: make(map[string]int),
	}
}

func (s *ChatSession) CursorFor(category string) int {
	if s.Cursors == nil {
		return 0
	}
	return s.Cursors[category]
}

func (s *ChatSession) SetCursor(category string, position int) {
	if s.Cursors == nil {
		s.Cursors = make(map[string]int)
	}
	s.Cursors[category] = position
}

// ResetPagination clears everything a "no" turn is supposed to clear.
func (s *ChatSession) ResetPagination() {
	s.PendingIntent = nlp.IntentUnknown
	s.ActiveCity = ""
	s.AwaitingMore = false
	s.Cursors = make(map[string]int)
}
