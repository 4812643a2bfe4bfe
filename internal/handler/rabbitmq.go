package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"eurocompare/internal/platform/models"
	"eurocompare/internal/platform/rabbitmq"
	"eurocompare/pkg/v1/commander"

	"github.com/rs/zerolog"
)

// Refresher refreshes prices of one product.
type Refresher interface {
	Compare(ctx context.Context, asin string) (models.Comparison, error)
}

// RMQHandler handles RMQ messages.
type RMQHandler struct {
	rmq       *rabbitmq.RabbitMQ
	refresher Refresher
	logger    *zerolog.Logger
}

// NewRMQHandler returns new RMQHandler.
func NewRMQHandler(rmq *rabbitmq.RabbitMQ, refresher Refresher, logger *zerolog.Logger) *RMQHandler {
	return &RMQHandler{
		rmq:       rmq,
		refresher: refresher,
		logger:    logger,
	}
}

// Start starts consuming and handling refresh commands from RMQ.
func (h *RMQHandler) Start(ctx context.Context, queue string) error {
	errorsChan, err := h.rmq.Consume(ctx, queue, func(ctx context.Context, message []byte) error {
		cmd, err := decodeMessage(message)
		if err != nil {
			return err
		}

		h.logger.Debug().
			Str("asin", cmd.ASIN).
			Msg("refresh started")

		comparison, err := h.refresher.Compare(ctx, cmd.ASIN)
		if err != nil {
			return fmt.Errorf("refresh failed: %w", err)
		}

		h.logger.Debug().
			Str("asin", cmd.ASIN).
			Int("successCount", comparison.SuccessCount).
			Msg("refresh finished")

		return nil
	})
	if err != nil {
		return err
	}

	go func() {
		for err := range errorsChan {
			h.logger.Error().
				Err(err).
				Msg("can't handle message")
		}
	}()

	return nil
}

func decodeMessage(msg []byte) (*commander.RefreshCommand, error) {
	var cmd commander.RefreshCommand
	err := json.Unmarshal(msg, &cmd)
	if err != nil {
		return nil, fmt.Errorf("can't decode refresh command: %w", err)
	}

	return &cmd, err
}
