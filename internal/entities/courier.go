package entities

import "time"

// Courier привязан к ресторану один-к-одному и разделяет с ним
// окно занятости: оба резервируются и освобождаются вместе.
type Courier struct {
	ID            int64
	RestaurantID  int64
	Name          string
	Active        bool
	Available     bool
	AvailableFrom *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CourierModify struct {
	ID            *int64
	RestaurantID  *int64
	Name          *string
	Active        *bool
	Available     *bool
	AvailableFrom *time.Time
}
