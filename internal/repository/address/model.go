package address

import "time"

type AddressDB struct {
	ID        int64
	UserID    int64
	Street    string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
