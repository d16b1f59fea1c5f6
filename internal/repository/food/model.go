package food

import "time"

type FoodDB struct {
	ID        int64
	Name      string
	Price     float64
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
