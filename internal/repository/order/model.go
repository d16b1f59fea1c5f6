package order

import "time"

type OrderDB struct {
	ID                    int64
	UserID                int64
	RestaurantID          int64
	AddressID             int64
	TotalAmount           float64
	Status                string
	OrderTime             time.Time
	EstimatedDeliveryTime time.Time
}

type OrderItemDB struct {
	ID        int64
	OrderID   int64
	FoodID    int64
	Quantity  int32
	UnitPrice float64
	Subtotal  float64
}
