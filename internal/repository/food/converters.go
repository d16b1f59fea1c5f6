package food

import "github.com/nelsontanko/foody-sub000/internal/entities"

func ToDomain(f *FoodDB) *entities.Food {
	if f == nil {
		return nil
	}
	return &entities.Food{
		ID:        f.ID,
		Name:      f.Name,
		Price:     f.Price,
		Available: f.Available,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}
