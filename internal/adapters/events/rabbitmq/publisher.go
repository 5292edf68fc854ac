// Package rabbitmq publishes workflow events to a RabbitMQ broker. Publish
// failures are returned to the caller, which logs and continues; event
// delivery is best effort and never blocks the originating request outcome.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	portssvc "github.com/EstateDesk/estate_management_app/internal/core/ports/services"
)

const (
	QueueAccountDecided     = "account.decided"
	QueueApplicationDecided = "application.decided"
	QueueContractExecuted   = "contract.executed"
)

// Publisher implements portssvc.EventPublisherSvc over a single AMQP
// connection. The channel is re-opened lazily after a broker hiccup.
type Publisher struct {
	url string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

var _ portssvc.EventPublisherSvc = (*Publisher)(nil)

// NewPublisher dials the broker and declares the workflow queues. Queues are
// durable and messages persistent so events survive broker restarts.
func NewPublisher(url string) (*Publisher, error) {
	p := &Publisher{url: url}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial failed: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq channel open failed: %w", err)
	}
	for _, queue := range []string{QueueAccountDecided, QueueApplicationDecided, QueueContractExecuted} {
		if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
			_ = ch.Close()
			_ = conn.Close()
			return fmt.Errorf("rabbitmq queue declare %q failed: %w", queue, err)
		}
	}
	p.conn = conn
	p.ch = ch
	return nil
}

func (p *Publisher) publish(ctx context.Context, queue string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event failed: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			return err
		}
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := p.ch.PublishWithContext(ctx, "", queue, false, false, pub); err != nil {
		return fmt.Errorf("rabbitmq publish to %q failed: %w", queue, err)
	}
	return nil
}

func (p *Publisher) PublishAccountDecided(ctx context.Context, event portssvc.AccountDecidedEvent) error {
	return p.publish(ctx, QueueAccountDecided, event)
}

func (p *Publisher) PublishApplicationDecided(ctx context.Context, event portssvc.ApplicationDecidedEvent) error {
	return p.publish(ctx, QueueApplicationDecided, event)
}

func (p *Publisher) PublishContractExecuted(ctx context.Context, event portssvc.ContractExecutedEvent) error {
	return p.publish(ctx, QueueContractExecuted, event)
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
