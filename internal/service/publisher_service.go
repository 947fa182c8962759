package service

import (
	"context"
	"encoding/json"

	"jarvis-assistant-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IPublisherService interface {
	PublishDocumentsIndexed(ctx context.Context, payload *dto.DocumentsIndexedMessage) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
}

func NewPublisherService(topicName string, pubSub *gochannel.GoChannel) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
	}
}

func (s *publisherService) PublishDocumentsIndexed(ctx context.Context, payload *dto.DocumentsIndexedMessage) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(uuid.NewString(), data)
	return s.pubSub.Publish(s.topicName, msg)
}
