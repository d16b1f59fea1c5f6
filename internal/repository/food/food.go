package food

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nelsontanko/foody-sub000/internal/entities"
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

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Food, error) {
	query := `
		SELECT id, name, price, available, created_at, updated_at
		FROM foods
		WHERE id = $1
	`

	var foodDB FoodDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&foodDB.ID,
		&foodDB.Name,
		&foodDB.Price,
		&foodDB.Available,
		&foodDB.CreatedAt,
		&foodDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrFoodNotFound
		}
		return nil, fmt.Errorf("unexpected food repository getbyid error: %w", err)
	}

	return ToDomain(&foodDB), nil
}
