package order

import "github.com/nelsontanko/foody-sub000/internal/entities"

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:                    o.ID,
		UserID:                o.UserID,
		RestaurantID:          o.RestaurantID,
		AddressID:             o.AddressID,
		Items:                 ToItemDomainList(items),
		TotalAmount:           o.TotalAmount,
		Status:                entities.OrderStatusType(o.Status),
		OrderTime:             o.OrderTime,
		EstimatedDeliveryTime: o.EstimatedDeliveryTime,
	}
}

func ToItemDomainList(models []OrderItemDB) []entities.OrderItem {
	result := make([]entities.OrderItem, 0, len(models))
	for _, m := range models {
		result = append(result, entities.OrderItem{
			ID:        m.ID,
			OrderID:   m.OrderID,
			FoodID:    m.FoodID,
			Quantity:  m.Quantity,
			UnitPrice: m.UnitPrice,
			Subtotal:  m.Subtotal,
		})
	}
	return result
}
