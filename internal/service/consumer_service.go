package service

import (
	"context"
	"encoding/json"

	"github.com/ghafer-khalfaoui/ai-chatbot/internal/dto"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/pkg/logger"
	"github.com/ghafer-khalfaoui/ai-chatbot/internal/repository/unitofwork"
	"github.com/ghafer-khalfaoui/ai-chatbot/pkg/nlp/intent"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService aggregates turn events into per-intent usage
// counters.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.TurnCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal turn event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	tag := payload.Intent
	if tag == "" {
		tag = intent.Unknown
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UsageStatRepository().Increment(ctx, tag); err != nil {
		cs.logger.Error("ConsumerService", "Failed to increment usage counter", map[string]interface{}{"intent": tag, "error": err.Error()})
		msg.Nack()
		return
	}

	msg.Ack()
}
