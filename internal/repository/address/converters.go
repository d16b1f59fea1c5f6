package address

import "github.com/nelsontanko/foody-sub000/internal/entities"

func ToDomain(a *AddressDB) *entities.Address {
	if a == nil {
		return nil
	}
	return &entities.Address{
		ID:        a.ID,
		UserID:    a.UserID,
		Street:    a.Street,
		City:      a.City,
		Country:   a.Country,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
