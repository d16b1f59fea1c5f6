package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"github.com/nelsontanko/foody-sub000/internal/entities"
	orderservice "github.com/nelsontanko/foody-sub000/internal/service/order"
	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

// Handler потребляет события смены статуса заказа из Kafka и прогоняет
// их через order-сервис. Невалидные и неприменимые события помечаются
// обработанными, чтобы не блокировать партицию.
type Handler struct {
	orders  Service
	log     handlerLogger
	timeout time.Duration
}

func New(log handlerLogger, orders Service, timeout time.Duration) *Handler {
	return &Handler{
		orders:  orders,
		log:     log.With(),
		timeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error { return nil }

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: message channel closed")
				return nil
			}
			if interrupted := h.handleMessage(sess, message); interrupted {
				return nil
			}
		case <-sess.Context().Done():
			// Ребаланс или остановка consumer group.
			h.log.Info("order.status.changed: session closed")
			return nil
		}
	}
}

// handleMessage возвращает true, когда обработку прервала отмена контекста:
// сообщение не помечается и будет вычитано заново.
func (h *Handler) handleMessage(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.timeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		h.log.With(logger.NewField("error", err)).Error("order.status.changed: malformed event")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.status.changed: processing")

	status := entities.OrderStatusType(event.Status)
	order, err := h.orders.ProcessOrderStatusChange(ctx, entities.OrderModify{
		ID:     &event.OrderID,
		Status: &status,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			msgLog.With(logger.NewField("error", err)).Warn("order.status.changed: interrupted, event will be redelivered")
			return true
		}

		switch {
		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.With(logger.NewField("error", err)).Warn("order.status.changed: unknown order")
		case errors.Is(err, orderservice.ErrOrderAlreadyDelivered):
			msgLog.With(logger.NewField("error", err)).Warn("order.status.changed: order already terminal")
		default:
			msgLog.With(logger.NewField("error", err)).Warn("order.status.changed: processing failed")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
