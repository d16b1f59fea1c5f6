package order

import "github.com/nelsontanko/foody-sub000/internal/entities"

func isValidID(id int64) bool {
	return id > 0
}

func validateItems(items []entities.OrderItemRequest) error {
	if len(items) == 0 {
		return ErrMissingItems
	}
	for _, item := range items {
		if !isValidID(item.FoodID) {
			return ErrFoodNotFound
		}
		if item.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	return nil
}
