package restaurant_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/service/restaurant"
	"marketplace/pkg/logger"
)

type Handler struct {
	restaurantService        Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, restaurantService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		restaurantService:        restaurantService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("restaurant.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			h.log.Info("restaurant.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one message. Returning true aborts ConsumeClaim
// so a cancelled message is redelivered after the rebalance; false marks the
// message and moves on.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("restaurant.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("restaurant.status.changed processing")

	change := restaurant.StatusChange{
		JobID:  event.OrderID,
		Status: event.Status,
	}

	if err := h.restaurantService.ProcessStatusChange(ctx, change); err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("restaurant.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, restaurant.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("restaurant.status.changed handler message missing order id or status")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("restaurant.status.changed handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("restaurant.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
