package order

import "errors"

var (
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrMissingItems    = errors.New("order must contain at least one item")
	ErrInvalidQuantity = errors.New("item quantity must be positive")
	// ErrUndefinedStatus — для статуса нет обработчика в фабрике.
	ErrUndefinedStatus = errors.New("undefined order status")

	ErrAddressNotFound       = errors.New("delivery address not found")
	ErrAddressExists         = errors.New("address already exists")
	ErrFoodNotFound          = errors.New("food not found")
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyDelivered = errors.New("order already delivered")

	// ErrRestaurantUnavailable — нет ни одного пригодного ресторана.
	ErrRestaurantUnavailable = errors.New("no available restaurants")
	// ErrRestaurantAlreadyReserved — условное резервирование не затронуло
	// строк: параллельный запрос успел раньше.
	ErrRestaurantAlreadyReserved = errors.New("restaurant already reserved")
)
