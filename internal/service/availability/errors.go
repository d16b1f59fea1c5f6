package availability

import "errors"

var (
	ErrInvalidRestaurantID = errors.New("invalid restaurant id")
	ErrInvalidOrderID      = errors.New("invalid order id")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrCourierNotFound    = errors.New("courier not found")
	ErrBusyLockNotFound   = errors.New("busy lock not found")
)
