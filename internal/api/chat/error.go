package chat

import "LakbayLaguna/pkg/response"

var (
	ErrAttractionNotFound = response.NewError(404, "attraction not found")
	ErrSessionStore       = response.NewError(500, "failed to access conversation session")
	ErrDatasetUnavailable = response.NewError(500, "failed to read tourism dataset")
)
