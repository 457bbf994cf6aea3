package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"ordersvc/internal/config"
	"ordersvc/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type OrderCreator interface {
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
}

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderCreator
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, svc OrderCreator) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.Topic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		if err := h.handleCreateOrder(ctx, m); err != nil {
			h.logger.Error("failed to handle message", slog.Any("error", err))
			ordersFailed.Inc()

			if err := h.writeToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			ordersDLQ.Inc()
		} else {
			ordersProcessed.Inc()
		}

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			h.logger.Error("failed to commit message", slog.Any("error", err))
			commitErrors.Inc()
		}
	}
}

func (h *kafkaHandler) handleCreateOrder(ctx context.Context, m kafka.Message) error {
	var order entities.Order
	if err := json.Unmarshal(m.Value, &order); err != nil {
		return fmt.Errorf("failed to unmarshal order: %w", err)
	}

	if err := h.validate.Struct(order); err != nil {
		return fmt.Errorf("invalid order data: %w", err)
	}

	_, err := h.svc.CreateOrder(ctx, order)
	if errors.Is(err, entities.ErrOrderExists) {
		// Redelivered messages are expected, the first write wins.
		h.logger.Debug("skipping duplicate order", slog.String("order_uid", order.OrderUID))
		return nil
	}
	return err
}

func (h *kafkaHandler) writeToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
