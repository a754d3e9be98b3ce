// Package dwh publishes order lifecycle events to the warehouse queue that the
// analytics workers consume.
package dwh

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Event is the message payload for order events.
type Event struct {
	Event   string `json:"event"` // created | updated | deleted
	OrderID int64  `json:"order_id"`
	UserID  int64  `json:"user_id"`
}

type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

func NewPublisher(url, queue string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	// Declare queue (idempotent); must match the consumer side.
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}
	return &Publisher{conn: conn, channel: channel, queue: queue}, nil
}

func (p *Publisher) OrderEvent(ctx context.Context, event string, orderID, userID int64) error {
	body, err := json.Marshal(Event{Event: event, OrderID: orderID, UserID: userID})
	if err != nil {
		return err
	}
	return p.channel.PublishWithContext(ctx, "", p.queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
