package courier

import "github.com/nelsontanko/foody-sub000/internal/entities"

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}
	return &entities.Courier{
		ID:            c.ID,
		RestaurantID:  c.RestaurantID,
		Name:          c.Name,
		Active:        c.Active,
		Available:     c.Available,
		AvailableFrom: c.AvailableFrom,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
