package courier

import "time"

type CourierDB struct {
	ID            int64
	RestaurantID  int64
	Name          string
	Active        bool
	Available     bool
	AvailableFrom *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
