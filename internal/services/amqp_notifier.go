package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/dto"
	"budget-reconciler/internal/models"

	"github.com/rabbitmq/amqp091-go"
)

const (
	amqpPublishTimeout = 5 * time.Second
	amqpMessageType    = "budget.report"
)

// amqpPublisher is the part of *amqp091.Channel the notifier needs
type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

// AMQPNotifier publishes the report summary as a persistent JSON message
type AMQPNotifier struct {
	conn       *amqp091.Connection
	channel    amqpPublisher
	exchange   string
	routingKey string
	logger     *slog.Logger
}

// NewAMQPNotifier dials the broker and declares a durable topic exchange
func NewAMQPNotifier(cfg config.AMQPConfig, logger *slog.Logger) (*AMQPNotifier, error) {
	conn, err := amqp091.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		cfg.Exchange, // name
		"topic",      // type
		true,         // durable
		false,        // auto-deleted
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	notifier := newAMQPNotifier(channel, cfg, logger)
	notifier.conn = conn
	return notifier, nil
}

func newAMQPNotifier(channel amqpPublisher, cfg config.AMQPConfig, logger *slog.Logger) *AMQPNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &AMQPNotifier{
		channel:    channel,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}
}

func (n *AMQPNotifier) Name() string {
	return "amqp"
}

func (n *AMQPNotifier) Notify(ctx context.Context, report *models.BudgetReport) error {
	body, err := json.Marshal(dto.NewReportSummary(report))
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, amqpPublishTimeout)
	defer cancel()

	err = n.channel.PublishWithContext(
		ctx,
		n.exchange,   // exchange
		n.routingKey, // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    report.RunID.String(),
			Type:         amqpMessageType,
			Timestamp:    report.GeneratedAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	n.logger.Info("published report message",
		"run_id", report.RunID,
		"exchange", n.exchange,
		"routing_key", n.routingKey,
	)
	return nil
}

// Close releases the broker connection
func (n *AMQPNotifier) Close() error {
	if n.conn == nil {
		return nil
	}
	return n.conn.Close()
}
