package service

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MKhiriev/go-forms-auth/internal/config"
	"github.com/MKhiriev/go-forms-auth/internal/logger"
	"github.com/MKhiriev/go-forms-auth/internal/utils"
	"github.com/MKhiriev/go-forms-auth/models"
)

const amqpPluginName = "amqp"

type amqpDeliveryPlugin struct {
	url   string
	queue string

	clock  utils.Clock
	logger *logger.Logger
}

// NewAMQPDeliveryPlugin publishes reset tokens as persistent JSON messages
// to a durable RabbitMQ queue. A mail or SMS worker consuming the queue
// does the actual delivery.
func NewAMQPDeliveryPlugin(cfg config.AMQP, clock utils.Clock, logger *logger.Logger) DeliveryPlugin {
	return &amqpDeliveryPlugin{
		url:    cfg.URL,
		queue:  cfg.Queue,
		clock:  clock,
		logger: logger,
	}
}

func (p *amqpDeliveryPlugin) Name() string {
	return amqpPluginName
}

func (p *amqpDeliveryPlugin) SendPasswordResetToken(ctx context.Context, userName string, additionalClientInfo map[string]string, token string) error {
	log := logger.FromContext(ctx)

	publishing, err := p.publishing(models.PasswordResetMessage{
		UserName:             userName,
		Token:                token,
		AdditionalClientInfo: additionalClientInfo,
		IssuedAt:             p.clock.Now(),
	})
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Err(err).Str("func", "*amqpDeliveryPlugin.SendPasswordResetToken").Msg("rabbitmq dial failed")
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Err(err).Str("func", "*amqpDeliveryPlugin.SendPasswordResetToken").Msg("rabbitmq channel open failed")
		return fmt.Errorf("rabbitmq channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err = ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		log.Err(err).Str("func", "*amqpDeliveryPlugin.SendPasswordResetToken").Str("queue", p.queue).Msg("rabbitmq queue declare failed")
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}

	// default exchange, routing key = queue name
	if err = ch.PublishWithContext(ctx, "", p.queue, false, false, publishing); err != nil {
		log.Err(err).Str("func", "*amqpDeliveryPlugin.SendPasswordResetToken").Str("queue", p.queue).Msg("rabbitmq publish failed")
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	log.Info().Str("func", "*amqpDeliveryPlugin.SendPasswordResetToken").
		Str("user_name", userName).
		Str("queue", p.queue).
		Msg("password reset token published")

	return nil
}

func (p *amqpDeliveryPlugin) publishing(message models.PasswordResetMessage) (amqp.Publishing, error) {
	body, err := json.Marshal(message)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal reset message: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    message.IssuedAt,
		Body:         body,
	}, nil
}
