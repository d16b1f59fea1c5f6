package entities

import "time"

// Address используется и как адрес доставки пользователя,
// и как фиксированная точка ресторана для расчета расстояния.
type Address struct {
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

type AddressModify struct {
	ID        *int64
	UserID    *int64
	Street    *string
	City      *string
	Country   *string
	Latitude  *float64
	Longitude *float64
}
