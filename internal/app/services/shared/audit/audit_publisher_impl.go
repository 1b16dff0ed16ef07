package audit

import (
	"context"
	"fmt"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"superadmin-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const defaultConfirmTimeout = 5 * time.Second

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Publisher sends audit events to a durable RabbitMQ queue and waits for the
// broker confirm.
type Publisher struct {
	ch             channel
	log            *zap.Logger
	queueName      string
	confirms       <-chan amqp.Confirmation
	confirmTimeout time.Duration
	now            func() time.Time
	mu             sync.Mutex
}

// NewPublisher declares the audit queue and enables publisher confirms.
func NewPublisher(conn *amqp.Connection, log *zap.Logger, queueName string) (*Publisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Publisher{
		ch:             ch,
		log:            log,
		queueName:      queueName,
		confirms:       ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		confirmTimeout: defaultConfirmTimeout,
		now:            time.Now,
	}, nil
}

// Publish never fails the caller; errors are logged.
func (p *Publisher) Publish(ctx context.Context, event requests.AuditEvent) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if event.RequestID == "" {
		event.RequestID = requestID
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = p.now().UTC()
	}

	if err := p.publish(ctx, event); err != nil {
		p.log.Error("audit.Publisher.Publish error publishing audit event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAuditEventKey, event.Event),
			zap.String(constvars.LoggingQueueNameKey, p.queueName),
			zap.Error(err),
		)
		return
	}

	p.log.Info("audit.Publisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAuditEventKey, event.Event),
		zap.String(constvars.LoggingResourceIDKey, event.ResourceID),
	)
}

func (p *Publisher) publish(ctx context.Context, event requests.AuditEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	// The request may finish before the broker confirms.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.confirmTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Type:         event.Event,
		Timestamp:    event.OccurredAt,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	select {
	case confirmed := <-p.confirms:
		if !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.queueName)
	}
	return nil
}
