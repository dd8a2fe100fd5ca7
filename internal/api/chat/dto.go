package chat

type QueryRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Query  string `json:"query" validate:"required"`
}

type QueryResponse struct {
	Response string `json:"response"`
}
