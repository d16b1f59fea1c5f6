package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/nelsontanko/foody-sub000/internal/entities"
	"github.com/nelsontanko/foody-sub000/internal/service/availability"
	orderservice "github.com/nelsontanko/foody-sub000/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Restaurant, error) {
	query := `
		SELECT id, name, active, available, available_from, address_id, created_at, updated_at
		FROM restaurants
		WHERE id = $1
	`

	var restaurantDB RestaurantDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&restaurantDB.ID,
		&restaurantDB.Name,
		&restaurantDB.Active,
		&restaurantDB.Available,
		&restaurantDB.AvailableFrom,
		&restaurantDB.AddressID,
		&restaurantDB.CreatedAt,
		&restaurantDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, availability.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("unexpected restaurant repository getbyid error: %w", err)
	}

	return ToDomain(&restaurantDB), nil
}

// GetEligible возвращает рестораны, пригодные для назначения заказа:
// active, available и с известным адресом.
func (r *Repository) GetEligible(ctx context.Context) ([]entities.EligibleRestaurant, error) {
	builder := qb.
		Select("r.id", "r.name", "a.latitude", "a.longitude").
		From("restaurants r").
		Join("addresses a ON a.id = r.address_id").
		Where(sq.Eq{"r.active": true}).
		Where(sq.Eq{"r.available": true}).
		OrderBy("r.id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected restaurant repository geteligible error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected restaurant repository geteligible error: %w", err)
	}
	defer rows.Close()

	eligibleModels := make([]EligibleRestaurantDB, 0, 8)
	for rows.Next() {
		var m EligibleRestaurantDB
		err := rows.Scan(&m.ID, &m.Name, &m.Latitude, &m.Longitude)
		if err != nil {
			return nil, fmt.Errorf("unexpected restaurant repository geteligible error: %w", err)
		}
		eligibleModels = append(eligibleModels, m)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected restaurant repository geteligible error: %w", err)
	}

	return ToEligibleDomainList(eligibleModels), nil
}

// Reserve помечает ресторан занятым условным обновлением: ноль затронутых
// строк означает, что параллельный запрос успел раньше.
func (r *Repository) Reserve(ctx context.Context, id int64, until time.Time) error {
	query := `
		UPDATE restaurants
		SET available = FALSE,
		    available_from = $2,
		    updated_at = NOW()
		WHERE id = $1
		  AND active = TRUE
		  AND available = TRUE
	`

	result, err := r.querier.Exec(ctx, query, id, until)
	if err != nil {
		return fmt.Errorf("unexpected restaurant repository reserve error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return orderservice.ErrRestaurantAlreadyReserved
	}

	return nil
}

func (r *Repository) Release(ctx context.Context, id int64) error {
	query := `
		UPDATE restaurants
		SET available = TRUE,
		    available_from = NULL,
		    updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected restaurant repository release error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return availability.ErrRestaurantNotFound
	}

	return nil
}

// ReleaseExpired — фоновая страховка: возвращает в строй рестораны,
// чье окно занятости истекло, независимо от доставки нотификаций.
func (r *Repository) ReleaseExpired(ctx context.Context) (int64, error) {
	query := `
		UPDATE restaurants
		SET available = TRUE,
		    available_from = NULL,
		    updated_at = NOW()
		WHERE available = FALSE
		  AND available_from < NOW()
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected restaurant repository release expired error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) Update(ctx context.Context, restaurantModify entities.RestaurantModify) (*entities.Restaurant, error) {
	modifyModel := FromDomainModify(&restaurantModify)

	builder := qb.
		Update("restaurants")

	if modifyModel.Name != nil {
		builder = builder.Set("name", modifyModel.Name)
	}
	if modifyModel.Active != nil {
		builder = builder.Set("active", modifyModel.Active)
	}
	if modifyModel.Available != nil {
		builder = builder.Set("available", modifyModel.Available)
	}
	if modifyModel.Available != nil || modifyModel.AvailableFrom != nil {
		builder = builder.Set("available_from", modifyModel.AvailableFrom)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": modifyModel.ID}).
		Suffix("RETURNING id, name, active, available, available_from, address_id, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected restaurant repository update error: %w", err)
	}

	var restaurantDB RestaurantDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&restaurantDB.ID,
		&restaurantDB.Name,
		&restaurantDB.Active,
		&restaurantDB.Available,
		&restaurantDB.AvailableFrom,
		&restaurantDB.AddressID,
		&restaurantDB.CreatedAt,
		&restaurantDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, availability.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("unexpected restaurant repository update error: %w", err)
	}

	return ToDomain(&restaurantDB), nil
}
