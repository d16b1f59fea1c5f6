package restaurant_busy_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nelsontanko/foody-sub000/internal/generated/dto"
	"github.com/nelsontanko/foody-sub000/internal/service/availability"
	orderservice "github.com/nelsontanko/foody-sub000/internal/service/order"
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
	var busyDTO dto.RestaurantBusy
	err := json.NewDecoder(r.Body).Decode(&busyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var until time.Time
	if busyDTO.BusyUntil != nil {
		until = *busyDTO.BusyUntil
	}

	err = h.service.MarkRestaurantBusy(r.Context(), busyDTO.RestaurantID, busyDTO.OrderID, until)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidRestaurantID),
			errors.Is(err, availability.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, availability.ErrRestaurantNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, orderservice.ErrRestaurantAlreadyReserved):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
