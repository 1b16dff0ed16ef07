package messaging

import (
	"context"
	"fmt"
	"net/url"
	"superadmin-service/internal/app/config"
	"superadmin-service/internal/pkg/utils"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker that receives audit events. The connection is
// named so it can be told apart in the management UI.
func NewRabbitMQ(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*amqp091.Connection, error) {
	brokerURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   fmt.Sprintf("%s:%s", driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port),
		Path:   "/" + driverConfig.RabbitMQ.VHost,
	}
	if driverConfig.RabbitMQ.VHost == "/" {
		brokerURL.Path = "/"
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(driverConfig.RabbitMQ.ConnectionName)

	var conn *amqp091.Connection
	backoff := time.Duration(driverConfig.ConnectBackoffInSeconds) * time.Second
	err := utils.Retry(ctx, driverConfig.ConnectAttempts, backoff, func(context.Context) error {
		var err error
		conn, err = amqp091.DialConfig(brokerURL.String(), amqp091.Config{Properties: properties})
		if err != nil {
			log.Warn("RabbitMQ is not reachable yet", zap.String("host", brokerURL.Host), zap.Error(err))
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq at %s: %w", brokerURL.Host, err)
	}

	log.Info("Successfully connected to rabbitMQ", zap.String("host", brokerURL.Host))
	return conn, nil
}
