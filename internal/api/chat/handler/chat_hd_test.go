package chatHandler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"LakbayLaguna/internal/api/chat"
	"LakbayLaguna/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatService struct {
	answer string
	err    error
}

func (s *stubChatService) HandleTurn(_ context.Context, _, _ string) (string, error) {
	return s.answer, s.err
}

func newTestApp(svc *stubChatService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	handler := New(logger, validator.New(), middleware.New(logger), svc)
	handler.Start(app.Group("/api/v1"))

	return app
}

func postQuery(t *testing.T, app *fiber.App, body interface{}) *http.Response {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/chat/query", bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestQuery_Success(t *testing.T) {
	app := newTestApp(&stubChatService{answer: "Here are some locations and attractions in calamba:"})

	resp := postQuery(t, app, chat.QueryRequest{UserID: "u1", Query: "locations in calamba"})
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body chat.QueryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Here are some locations and attractions in calamba:", body.Response)
}

func TestQuery_ValidationFailures(t *testing.T) {
	app := newTestApp(&stubChatService{answer: "unused"})

	tests := []struct {
		name string
		body chat.QueryRequest
	}{
		{
			name: "missing user id",
			body: chat.QueryRequest{Query: "locations in calamba"},
		},
		{
			name: "missing query",
			body: chat.QueryRequest{UserID: "u1"},
		},
		{
			name: "empty body",
			body: chat.QueryRequest{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := postQuery(t, app, tc.body)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestQuery_ServiceErrorMapsToCode(t *testing.T) {
	app := newTestApp(&stubChatService{err: chat.ErrSessionStore})

	resp := postQuery(t, app, chat.QueryRequest{UserID: "u1", Query: "locations in calamba"})
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
