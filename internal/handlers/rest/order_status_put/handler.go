package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nelsontanko/foody-sub000/internal/entities"
	"github.com/nelsontanko/foody-sub000/internal/generated/dto"
	orderservice "github.com/nelsontanko/foody-sub000/internal/service/order"
	"github.com/nelsontanko/foody-sub000/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var statusUpdateDTO dto.OrderStatusUpdate
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	status := entities.OrderStatusType(statusUpdateDTO.Status)

	orderEntity, err := h.service.UpdateOrderStatus(r.Context(), statusUpdateDTO.OrderID, status)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderservice.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderservice.ErrOrderAlreadyDelivered):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	items := make([]dto.OrderItem, len(orderEntity.Items))
	for i, item := range orderEntity.Items {
		items[i] = dto.OrderItem{
			FoodID:    item.FoodID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}
	response := dto.Order{
		ID:                    orderEntity.ID,
		UserID:                orderEntity.UserID,
		RestaurantID:          orderEntity.RestaurantID,
		Status:                orderEntity.Status.String(),
		TotalAmount:           orderEntity.TotalAmount,
		OrderTime:             orderEntity.OrderTime,
		EstimatedDeliveryTime: orderEntity.EstimatedDeliveryTime,
		Items:                 items,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
