package restaurant

import "github.com/nelsontanko/foody-sub000/internal/entities"

func ToDomain(r *RestaurantDB) *entities.Restaurant {
	if r == nil {
		return nil
	}
	return &entities.Restaurant{
		ID:            r.ID,
		Name:          r.Name,
		Active:        r.Active,
		Available:     r.Available,
		AvailableFrom: r.AvailableFrom,
		AddressID:     r.AddressID,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromDomainModify(r *entities.RestaurantModify) *RestaurantModifyDB {
	if r == nil {
		return nil
	}
	return &RestaurantModifyDB{
		ID:            r.ID,
		Name:          r.Name,
		Active:        r.Active,
		Available:     r.Available,
		AvailableFrom: r.AvailableFrom,
	}
}

func ToEligibleDomainList(models []EligibleRestaurantDB) []entities.EligibleRestaurant {
	result := make([]entities.EligibleRestaurant, 0, len(models))
	for _, m := range models {
		result = append(result, entities.EligibleRestaurant{
			ID:        m.ID,
			Name:      m.Name,
			Latitude:  m.Latitude,
			Longitude: m.Longitude,
		})
	}
	return result
}
