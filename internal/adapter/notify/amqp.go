package notify

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPNotifier publishes status changes to a topic exchange.
type AMQPNotifier struct {
	conn     *amqp.Connection
	ch       amqpChannel
	exchange string
}

// NewAMQPNotifier dials the broker and declares a durable topic exchange.
func NewAMQPNotifier(url, exchange string) (*AMQPNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}
	return &AMQPNotifier{conn: conn, ch: ch, exchange: exchange}, nil
}

// NotifyStatusChange publishes change with routing key selection.status.<status>.
func (n *AMQPNotifier) NotifyStatusChange(ctx context.Context, change model.StatusChange) error {
	body, err := encodeEvent(change)
	if err != nil {
		return err
	}
	return n.ch.PublishWithContext(ctx, n.exchange, routingKey(change.Status), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    change.SelectionID.String(),
		Timestamp:    change.ChangedAt,
		Body:         body,
	})
}

// Close closes the channel and the connection.
func (n *AMQPNotifier) Close() error {
	if n.ch != nil {
		_ = n.ch.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}
