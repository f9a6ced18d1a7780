package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"mesa-booking/internal/domain"
	"mesa-booking/internal/service"
)

// KafkaPublisher emits booking lifecycle events keyed by table id, so
// events for the same table stay ordered within a partition.
type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg domain.KafkaMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(msg.TableID)),
		Value: payload,
	})
}

var _ service.EventPublisher = (*KafkaPublisher)(nil)
