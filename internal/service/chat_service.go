package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/constant"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/dto"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/entity"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/pkg/logger"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/specification"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/unitofwork"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/dialog"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/events"
	pktNats "github.com/ghafer-khalfaoui/ai-chatbot/pkg/nats"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatService interface {
	CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error)
	SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetChatHistory(ctx context.Context, sessionId uuid.UUID, limit, offset int) ([]*dto.GetChatHistoryResponse, error)
	DeleteSession(ctx context.Context, sessionId uuid.UUID) error
	GetUsageStats(ctx context.Context) ([]*dto.UsageStatResponse, error)
}

type chatService struct {
	uowFactory       unitofwork.RepositoryFactory
	router           *dialog.Router
	contexts         *dialog.ContextManager
	publisherService IPublisherService
	natsPub          *pktNats.Publisher
	logger           logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	router *dialog.Router,
	contexts *dialog.ContextManager,
	publisherService IPublisherService,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:       uowFactory,
		router:           router,
		contexts:         contexts,
		publisherService: publisherService,
		natsPub:          natsPub,
		logger:           log,
	}
}

func (cs *chatService) CreateSession(ctx context.Context) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		Title:     "Advising session",
		CreatedAt: now,
	}

	greeting := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleModel,
		Content:       constant.ChatGreeting,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &greeting); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: chatSession.Id}, nil
}

func (cs *chatService) SendChat(ctx context.Context, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	sessionId := request.ChatSessionId

	if sessionId == uuid.Nil {
		created, err := cs.CreateSession(ctx)
		if err != nil {
			return nil, err
		}
		sessionId = created.Id
	} else {
		uow := cs.uowFactory.NewUnitOfWork(ctx)
		sess, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
		if err != nil {
			return nil, err
		}
		if sess == nil {
			return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
		}
	}

	start := time.Now()
	reply := cs.router.HandleTurn(ctx, sessionId.String(), request.Message)
	latency := time.Since(start)

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          constant.ChatMessageRoleUser,
		Content:       request.Message,
		IntentTag:     reply.Intent,
		CreatedAt:     now,
	}
	botMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: sessionId,
		Role:          constant.ChatMessageRoleModel,
		Content:       reply.Text,
		IntentTag:     reply.Intent,
		CreatedAt:     now.Add(1 * time.Millisecond),
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &botMessage); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.publishTurnEvent(ctx, sessionId.String(), reply, latency)

	return &dto.SendChatResponse{
		ChatSessionId: sessionId,
		Reply:         reply.Text,
		Intent:        reply.Intent,
		State:         string(reply.State),
	}, nil
}

// publishTurnEvent is best effort: a broken event bus never fails the
// student's turn.
func (cs *chatService) publishTurnEvent(ctx context.Context, sessionId string, reply dialog.Reply, latency time.Duration) {
	payload, err := json.Marshal(dto.TurnCompletedMessage{
		EventType: events.TypeChatTurnCompleted,
		SessionId: sessionId,
		Intent:    reply.Intent,
		State:     string(reply.State),
		LatencyMs: latency.Milliseconds(),
	})
	if err != nil {
		cs.logger.Error("ChatService", "Failed to marshal turn event", map[string]interface{}{"error": err.Error()})
		return
	}

	if err := cs.publisherService.Publish(ctx, payload); err != nil {
		cs.logger.Warn("ChatService", "Failed to publish turn event", map[string]interface{}{"error": err.Error()})
	}

	if cs.natsPub != nil {
		evt := events.NewTurnCompletedEvent(sessionId, reply.Intent, string(reply.State), latency)
		if err := cs.natsPub.Publish(ctx, evt); err != nil {
			cs.logger.Warn("ChatService", "Failed to mirror turn event to NATS", map[string]interface{}{"error": err.Error()})
		}
	}
}

func (cs *chatService) GetChatHistory(ctx context.Context, sessionId uuid.UUID, limit, offset int) ([]*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	specs := []specification.Specification{
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if limit > 0 {
		specs = append(specs, specification.Pagination{Limit: limit, Offset: offset})
	}

	messages, err := uow.ChatMessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetChatHistoryResponse, 0, len(messages))
	for _, m := range messages {
		response = append(response, &dto.GetChatHistoryResponse{
			Id:        m.Id,
			Role:      m.Role,
			Content:   m.Content,
			IntentTag: m.IntentTag,
			CreatedAt: m.CreatedAt,
		})
	}
	return response, nil
}

func (cs *chatService) DeleteSession(ctx context.Context, sessionId uuid.UUID) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	sess, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: sessionId})
	if err != nil {
		return err
	}
	if sess == nil {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, sessionId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	cs.contexts.Forget(sessionId.String())
	return nil
}

func (cs *chatService) GetUsageStats(ctx context.Context) ([]*dto.UsageStatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	stats, err := uow.UsageStatRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.UsageStatResponse, 0, len(stats))
	for _, s := range stats {
		response = append(response, &dto.UsageStatResponse{
			IntentTag: s.IntentTag,
			Count:     s.Count,
			UpdatedAt: s.UpdatedAt,
		})
	}
	return response, nil
}
