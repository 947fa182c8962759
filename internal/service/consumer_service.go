package service

import (
	"context"
	"encoding/json"

	"jarvis-assistant-be/internal/dto"
	"jarvis-assistant-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService records corpus activity: every successful indexing run is
// published on the in-process bus and logged here.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		logger:    sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.DocumentsIndexedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal indexed event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("consumer", "Documents indexed", map[string]interface{}{
		"count":        payload.Count,
		"document_ids": payload.DocumentIds,
		"indexed_at":   payload.IndexedAt,
	})
	msg.Ack()
}
