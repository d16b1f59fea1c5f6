package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nelsontanko/foody-sub000/internal/entities"
	"github.com/nelsontanko/foody-sub000/internal/service/availability"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByRestaurant(ctx context.Context, restaurantID int64) (*entities.Courier, error) {
	query := `
		SELECT id, restaurant_id, name, active, available, available_from, created_at, updated_at
		FROM couriers
		WHERE restaurant_id = $1
	`

	var courierDB CourierDB
	err := r.querier.QueryRow(ctx, query, restaurantID).Scan(
		&courierDB.ID,
		&courierDB.RestaurantID,
		&courierDB.Name,
		&courierDB.Active,
		&courierDB.Available,
		&courierDB.AvailableFrom,
		&courierDB.CreatedAt,
		&courierDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, availability.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyrestaurant error: %w", err)
	}

	return ToDomain(&courierDB), nil
}

// ReserveByRestaurant зеркалит резервирование ресторана: курьер переходит
// в занятое состояние с тем же available_from.
func (r *Repository) ReserveByRestaurant(ctx context.Context, restaurantID int64, until time.Time) error {
	query := `
		UPDATE couriers
		SET available = FALSE,
		    available_from = $2,
		    updated_at = NOW()
		WHERE restaurant_id = $1
		  AND active = TRUE
	`

	result, err := r.querier.Exec(ctx, query, restaurantID, until)
	if err != nil {
		return fmt.Errorf("unexpected courier repository reserve error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return availability.ErrCourierNotFound
	}

	return nil
}

func (r *Repository) ReleaseByRestaurant(ctx context.Context, restaurantID int64) error {
	query := `
		UPDATE couriers
		SET available = TRUE,
		    available_from = NULL,
		    updated_at = NOW()
		WHERE restaurant_id = $1
	`

	result, err := r.querier.Exec(ctx, query, restaurantID)
	if err != nil {
		return fmt.Errorf("unexpected courier repository release error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return availability.ErrCourierNotFound
	}

	return nil
}

func (r *Repository) ReleaseExpired(ctx context.Context) (int64, error) {
	query := `
		UPDATE couriers
		SET available = TRUE,
		    available_from = NULL,
		    updated_at = NOW()
		WHERE available = FALSE
		  AND available_from < NOW()
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository release expired error: %w", err)
	}

	return result.RowsAffected(), nil
}
