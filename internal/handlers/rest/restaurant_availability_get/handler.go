package restaurant_availability_get

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/nelsontanko/foody-sub000/internal/generated/dto"
	"github.com/nelsontanko/foody-sub000/internal/service/availability"
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
	idStr := mux.Vars(r)["id"]
	restaurantID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	available, err := h.service.IsRestaurantAvailable(r.Context(), restaurantID)
	if err != nil {
		h.writeError(w, restaurantID, err)
		return
	}

	response := dto.RestaurantAvailability{
		RestaurantID: restaurantID,
		Available:    available,
	}

	if !available {
		remaining, err := h.service.RemainingBusyTime(r.Context(), restaurantID)
		if err != nil {
			h.writeError(w, restaurantID, err)
			return
		}
		response.RemainingBusyMinutes = int64(math.Ceil(remaining.Minutes()))

		orderID, err := h.service.RestaurantOrderID(r.Context(), restaurantID)
		if err != nil && !errors.Is(err, availability.ErrBusyLockNotFound) {
			h.writeError(w, restaurantID, err)
			return
		}
		if orderID > 0 {
			response.OrderID = &orderID
		}
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

func (h *Handler) writeError(w http.ResponseWriter, restaurantID int64, err error) {
	switch {
	case errors.Is(err, availability.ErrInvalidRestaurantID):
		w.WriteHeader(http.StatusBadRequest)
	default:
		h.log.With(
			logger.NewField("restaurant", restaurantID),
			logger.NewField("error", err),
		).Error("restaurant availability")
		w.WriteHeader(http.StatusInternalServerError)
	}
}
