package entities

// OrderRequest — входные данные создания заказа. Address опционален:
// без него берется последний измененный адрес пользователя.
type OrderRequest struct {
	Address *DeliveryAddress
	Items   []OrderItemRequest
}

type DeliveryAddress struct {
	Street    string
	City      string
	Country   string
	Latitude  float64
	Longitude float64
}

type OrderItemRequest struct {
	FoodID   int64
	Quantity int32
}
