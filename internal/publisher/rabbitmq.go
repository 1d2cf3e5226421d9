package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"damsync/internal/domain"
)

// RabbitMQ announces sync results to downstream consumers (the
// reporting dashboard and export services read the cache tables and
// refresh on these events).
type RabbitMQ struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
	logger     *slog.Logger
}

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}

	err = ch.QueueBind(
		q.Name,
		cfg.RoutingKey,
		cfg.Exchange,
		false,
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("bind queue: %w", err)
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)

	return &RabbitMQ{
		conn:       conn,
		channel:    ch,
		exchange:   cfg.Exchange,
		routingKey: cfg.RoutingKey,
		logger:     logger,
	}, nil
}

// AssetMessage announces one cached asset touched by a run.
type AssetMessage struct {
	Action    string       `json:"action"` // "synced"
	Site      string       `json:"site"`
	Asset     domain.Asset `json:"asset"`
	Timestamp time.Time    `json:"timestamp"`
}

// RunMessage announces a completed run with its headline numbers.
type RunMessage struct {
	Action        string    `json:"action"` // "run_completed"
	RunUUID       string    `json:"run_uuid"`
	Site          string    `json:"site"`
	Items         int       `json:"items"`
	AssetsDeleted int64     `json:"assets_deleted"`
	ShapesDeleted int64     `json:"shapes_deleted"`
	Timestamp     time.Time `json:"timestamp"`
}

func (r *RabbitMQ) PublishAsset(ctx context.Context, asset *domain.Asset, site string) error {
	msg := AssetMessage{
		Action:    "synced",
		Site:      site,
		Asset:     *asset,
		Timestamp: time.Now().UTC(),
	}

	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published asset event",
		"vs_id", asset.VSID,
		"site", site,
	)
	return nil
}

func (r *RabbitMQ) PublishRunCompleted(ctx context.Context, run *domain.SyncRun, stats *domain.SyncStats) error {
	msg := RunMessage{
		Action:        "run_completed",
		RunUUID:       run.UUID,
		Site:          stats.Site,
		Items:         stats.Items,
		AssetsDeleted: stats.AssetsDeleted,
		ShapesDeleted: stats.ShapesDeleted,
		Timestamp:     time.Now().UTC(),
	}

	if err := r.publish(ctx, msg); err != nil {
		return err
	}

	r.logger.Debug("published run event", "run", run.UUID)
	return nil
}

func (r *RabbitMQ) publish(ctx context.Context, msg any) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	err = r.channel.PublishWithContext(
		ctx,
		r.exchange,
		r.routingKey,
		false,
		false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
