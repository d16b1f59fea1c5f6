package address

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nelsontanko/foody-sub000/internal/entities"
	"github.com/nelsontanko/foody-sub000/internal/repository"
	orderservice "github.com/nelsontanko/foody-sub000/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, addressEntity entities.Address) (*entities.Address, error) {
	query := `
		INSERT INTO addresses (user_id, street, city, country, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, street, city, country, latitude, longitude, created_at, updated_at
	`

	var addressDB AddressDB
	err := r.querier.QueryRow(
		ctx,
		query,
		addressEntity.UserID,
		addressEntity.Street,
		addressEntity.City,
		addressEntity.Country,
		addressEntity.Latitude,
		addressEntity.Longitude,
	).Scan(
		&addressDB.ID,
		&addressDB.UserID,
		&addressDB.Street,
		&addressDB.City,
		&addressDB.Country,
		&addressDB.Latitude,
		&addressDB.Longitude,
		&addressDB.CreatedAt,
		&addressDB.UpdatedAt,
	)
	if err != nil {
		// параллельный запрос успел создать тот же адрес
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, orderservice.ErrAddressExists
		}
		return nil, fmt.Errorf("unexpected address repository create error: %w", err)
	}

	return ToDomain(&addressDB), nil
}

func (r *Repository) FindByUserAndDetails(ctx context.Context, userID int64, street, city, country string) (*entities.Address, error) {
	query := `
		SELECT id, user_id, street, city, country, latitude, longitude, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		  AND street = $2
		  AND city = $3
		  AND country = $4
	`

	var addressDB AddressDB
	err := r.querier.QueryRow(ctx, query, userID, street, city, country).Scan(
		&addressDB.ID,
		&addressDB.UserID,
		&addressDB.Street,
		&addressDB.City,
		&addressDB.Country,
		&addressDB.Latitude,
		&addressDB.Longitude,
		&addressDB.CreatedAt,
		&addressDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository find error: %w", err)
	}

	return ToDomain(&addressDB), nil
}

// GetMostRecentByUser возвращает последний измененный адрес пользователя —
// он используется как адрес доставки по умолчанию.
func (r *Repository) GetMostRecentByUser(ctx context.Context, userID int64) (*entities.Address, error) {
	query := `
		SELECT id, user_id, street, city, country, latitude, longitude, created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var addressDB AddressDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&addressDB.ID,
		&addressDB.UserID,
		&addressDB.Street,
		&addressDB.City,
		&addressDB.Country,
		&addressDB.Latitude,
		&addressDB.Longitude,
		&addressDB.CreatedAt,
		&addressDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository get most recent error: %w", err)
	}

	return ToDomain(&addressDB), nil
}
