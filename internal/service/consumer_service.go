package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"noteshare-be/internal/entity"
	"noteshare-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// auditConsumerService drains the domain event topic and persists each
// event as a system_logs row.
type auditConsumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewAuditConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &auditConsumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *auditConsumerService) Consume(ctx context.Context) error {
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

func (cs *auditConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var envelope struct {
		EventType string `json:"event_type"`
	}
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		log.Printf("[ERROR] Failed to unmarshal event message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	logEntry := &entity.SystemLog{
		Id:        uuid.New(),
		EventType: envelope.EventType,
		Payload:   string(msg.Payload),
		CreatedAt: time.Now(),
	}

	if err := uow.SystemLogRepository().Create(ctx, logEntry); err != nil {
		log.Printf("[ERROR] Failed to persist %s event: %v", envelope.EventType, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
