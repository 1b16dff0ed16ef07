package audit

import (
	"context"
	"errors"
	"superadmin-service/internal/pkg/constvars"
	"superadmin-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeChannel struct {
	published []amqp.Publishing
	keys      []string
	err       error
	confirms  chan amqp.Confirmation
	ack       bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	if f.confirms != nil {
		f.confirms <- amqp.Confirmation{DeliveryTag: uint64(len(f.published)), Ack: f.ack}
	}
	return nil
}

func newTestPublisher(ch *fakeChannel, log *zap.Logger) *Publisher {
	fixed := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &Publisher{
		ch:             ch,
		log:            log,
		queueName:      "superadmin_audit",
		confirms:       ch.confirms,
		confirmTimeout: 50 * time.Millisecond,
		now:            func() time.Time { return fixed },
	}
}

func TestPublisher_Publish(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-1")

	t.Run("persistent json message on the audit queue", func(t *testing.T) {
		ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), ack: true}
		core, logs := observer.New(zap.InfoLevel)
		p := newTestPublisher(ch, zap.New(core))

		p.Publish(ctx, requests.AuditEvent{Event: constvars.AuditEventOrganizationCreated, AdminID: "admin-1", ResourceID: "org-1"})

		require.Len(t, ch.published, 1)
		msg := ch.published[0]
		assert.Equal(t, "superadmin_audit", ch.keys[0])
		assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
		assert.Equal(t, constvars.AuditEventOrganizationCreated, msg.Type)

		var event requests.AuditEvent
		require.NoError(t, json.Unmarshal(msg.Body, &event))
		assert.Equal(t, "req-1", event.RequestID)
		assert.Equal(t, "org-1", event.ResourceID)
		assert.False(t, event.OccurredAt.IsZero())
		assert.Equal(t, 1, logs.FilterMessage("audit.Publisher.Publish succeeded").Len())
	})

	t.Run("broker failure is logged and swallowed", func(t *testing.T) {
		ch := &fakeChannel{err: errors.New("channel closed")}
		core, logs := observer.New(zap.InfoLevel)
		p := newTestPublisher(ch, zap.New(core))

		assert.NotPanics(t, func() {
			p.Publish(ctx, requests.AuditEvent{Event: constvars.AuditEventBookingCancelled})
		})
		assert.Equal(t, 1, logs.FilterMessage("audit.Publisher.Publish error publishing audit event").Len())
	})

	t.Run("nack is an error", func(t *testing.T) {
		ch := &fakeChannel{confirms: make(chan amqp.Confirmation, 1), ack: false}
		p := newTestPublisher(ch, zap.NewNop())

		err := p.publish(ctx, requests.AuditEvent{Event: constvars.AuditEventBookingCancelled})
		require.Error(t, err)
	})

	t.Run("missing confirm times out", func(t *testing.T) {
		p := newTestPublisher(&fakeChannel{}, zap.NewNop())

		err := p.publish(ctx, requests.AuditEvent{Event: constvars.AuditEventBookingCancelled})
		require.Error(t, err)
	})
}
