package entities

import "time"

type Order struct {
	ID                    int64
	UserID                int64
	RestaurantID          int64
	AddressID             int64
	Items                 []OrderItem
	TotalAmount           float64
	Status                OrderStatusType
	OrderTime             time.Time
	EstimatedDeliveryTime time.Time
}

// OrderItem фиксирует цену на момент заказа: Subtotal = Quantity * UnitPrice,
// последующие изменения цены блюда на заказ не влияют.
type OrderItem struct {
	ID        int64
	OrderID   int64
	FoodID    int64
	Quantity  int32
	UnitPrice float64
	Subtotal  float64
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderPreparing  OrderStatusType = "preparing"
	OrderDelivering OrderStatusType = "delivering"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal сообщает, допускает ли статус дальнейшие переходы.
// После delivered и cancelled заказ не мутируется.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderPreparing, OrderDelivering, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

type OrderModify struct {
	ID                    *int64
	UserID                *int64
	RestaurantID          *int64
	AddressID             *int64
	TotalAmount           *float64
	Status                *OrderStatusType
	OrderTime             *time.Time
	EstimatedDeliveryTime *time.Time
}
