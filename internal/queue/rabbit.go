package queue

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// RabbitQueue publishes events to RabbitMQ. Subscribing happens out of
// process in cmd/worker, so Subscribe is not supported here.
type RabbitQueue struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewRabbitQueue connects to RabbitMQ and declares the durable
// customer events queue.
func NewRabbitQueue(url string) (*RabbitQueue, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		CustomerEventsTopic,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &RabbitQueue{conn: conn, ch: ch}, nil
}

func (q *RabbitQueue) Publish(topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.ch.Publish(
		"",
		topic,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (q *RabbitQueue) Subscribe(topic string, handler func(payload any) error) error {
	return fmt.Errorf("subscribe on topic %s is handled by the worker process", topic)
}

func (q *RabbitQueue) Close() {
	if q.ch != nil {
		q.ch.Close()
	}
	if q.conn != nil {
		q.conn.Close()
	}
}

var _ Queue = (*RabbitQueue)(nil)
