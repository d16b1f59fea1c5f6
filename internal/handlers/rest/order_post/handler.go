package order_post

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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	request := entities.OrderRequest{
		Items: make([]entities.OrderItemRequest, 0, len(orderCreateDTO.Items)),
	}
	if orderCreateDTO.Address != nil {
		request.Address = &entities.DeliveryAddress{
			Street:    orderCreateDTO.Address.Street,
			City:      orderCreateDTO.Address.City,
			Country:   orderCreateDTO.Address.Country,
			Latitude:  orderCreateDTO.Address.Latitude,
			Longitude: orderCreateDTO.Address.Longitude,
		}
	}
	for _, item := range orderCreateDTO.Items {
		request.Items = append(request.Items, entities.OrderItemRequest{
			FoodID:   item.FoodID,
			Quantity: item.Quantity,
		})
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), orderCreateDTO.UserID, request)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrInvalidUserID),
			errors.Is(err, orderservice.ErrMissingItems),
			errors.Is(err, orderservice.ErrInvalidQuantity):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, orderservice.ErrAddressNotFound),
			errors.Is(err, orderservice.ErrFoodNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderservice.ErrRestaurantUnavailable):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toOrderDTO(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderDTO(orderEntity *entities.Order) dto.Order {
	items := make([]dto.OrderItem, len(orderEntity.Items))
	for i, item := range orderEntity.Items {
		items[i] = dto.OrderItem{
			FoodID:    item.FoodID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		}
	}

	return dto.Order{
		ID:                    orderEntity.ID,
		UserID:                orderEntity.UserID,
		RestaurantID:          orderEntity.RestaurantID,
		Status:                orderEntity.Status.String(),
		TotalAmount:           orderEntity.TotalAmount,
		OrderTime:             orderEntity.OrderTime,
		EstimatedDeliveryTime: orderEntity.EstimatedDeliveryTime,
		Items:                 items,
	}
}
