package entities

import "time"

type Restaurant struct {
	ID            int64
	Name          string
	Active        bool
	Available     bool
	AvailableFrom *time.Time
	AddressID     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RestaurantModify struct {
	ID            *int64
	Name          *string
	Active        *bool
	Available     *bool
	AvailableFrom *time.Time
}

// EligibleRestaurant — ресторан, пригодный для назначения заказа:
// active, available и с известным адресом (координатами).
type EligibleRestaurant struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
}
