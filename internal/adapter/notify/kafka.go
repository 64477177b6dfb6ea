package notify

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier writes status changes to a topic keyed by selection id.
type KafkaNotifier struct {
	writer messageWriter
}

// NewKafkaNotifier constructs a synchronous writer for topic.
func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        false,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// NotifyStatusChange writes change to the topic.
func (n *KafkaNotifier) NotifyStatusChange(ctx context.Context, change model.StatusChange) error {
	body, err := encodeEvent(change)
	if err != nil {
		return err
	}
	return n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.SelectionID.String()),
		Value: body,
		Headers: []kafka.Header{
			{Key: "status", Value: []byte(change.Status)},
		},
	})
}

// Close flushes and closes the writer.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
