package entities

import "time"

type Food struct {
	ID        int64
	Name      string
	Price     float64
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
