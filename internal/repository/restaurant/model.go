package restaurant

import "time"

type RestaurantDB struct {
	ID            int64
	Name          string
	Active        bool
	Available     bool
	AvailableFrom *time.Time
	AddressID     int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type RestaurantModifyDB struct {
	ID            *int64
	Name          *string
	Active        *bool
	Available     *bool
	AvailableFrom *time.Time
}

type EligibleRestaurantDB struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
}
