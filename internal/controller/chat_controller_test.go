package controller

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/dto"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServiceStub records history calls so tests can check what the
// controller passed through.
type chatServiceStub struct {
	historySessionId uuid.UUID
	historyLimit     int
	historyOffset    int
}

func (s *chatServiceStub) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	return &dto.CreateSessionResponse{Id: uuid.New()}, nil
}

func (s *chatServiceStub) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	return &dto.SendChatResponse{}, nil
}

func (s *chatServiceStub) GetChatHistory(ctx context.Context, sessionId uuid.UUID, limit, offset int) ([]*dto.GetChatHistoryResponse, error) {
	s.historySessionId = sessionId
	s.historyLimit = limit
	s.historyOffset = offset
	return nil, nil
}

func (s *chatServiceStub) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	return nil
}

func (s *chatServiceStub) GetUsageStats(ctx context.Context) ([]*dto.UsageStatResponse, error) {
	return nil, nil
}

func newHistoryTestApp() (*fiber.App, *chatServiceStub) {
	stub := &chatServiceStub{}
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewChatController(stub).RegisterRoutes(app.Group("/api"))
	return app, stub
}

func TestHistoryPassesPagination(t *testing.T) {
	app, stub := newHistoryTestApp()
	id := uuid.New()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/"+id.String()+"/history?limit=2&offset=4", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, id, stub.historySessionId)
	assert.Equal(t, 2, stub.historyLimit)
	assert.Equal(t, 4, stub.historyOffset)
}

func TestHistoryDefaultsToFullHistory(t *testing.T) {
	app, stub := newHistoryTestApp()
	id := uuid.New()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/"+id.String()+"/history", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, stub.historyLimit)
	assert.Equal(t, 0, stub.historyOffset)
}

func TestHistoryRejectsBadSessionId(t *testing.T) {
	app, _ := newHistoryTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/not-a-uuid/history", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
