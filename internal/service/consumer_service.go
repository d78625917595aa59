package service

import (
	"context"
	"encoding/json"
	"log"

	"miva-analytics-be/internal/pkg/logger"
	"miva-analytics-be/pkg/events"
	pktNats "miva-analytics-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process audit bus: every event lands in
// the system log (visible under /api/logs) and, when NATS is connected,
// is forwarded to the external audit stream.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sysLogger logger.ILogger
	natsPub   *pktNats.Publisher
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger, natsPub *pktNats.Publisher) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		sysLogger: sysLogger,
		natsPub:   natsPub,
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
	var payload auditMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal audit message: %v", err)
		msg.Ack() // ack invalid messages to prevent infinite retry
		return
	}

	cs.sysLogger.Info("audit", payload.Type, payload.Data)

	if cs.natsPub != nil {
		event := events.BaseEvent{
			Type:       payload.Type,
			Data:       payload.Data,
			OccurredAt: payload.OccurredAt,
		}
		if err := cs.natsPub.Publish(ctx, event); err != nil {
			log.Printf("[WARN] Failed to forward audit event to NATS: %v", err)
		}
	}

	msg.Ack()
}
