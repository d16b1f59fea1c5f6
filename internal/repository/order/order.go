package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/nelsontanko/foody-sub000/internal/entities"
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

// Create вставляет заказ вместе с позициями. Атомарность обеспечивает
// объемлющая транзакция вызывающего (querier берет tx из контекста).
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `
		INSERT INTO orders (user_id, restaurant_id, address_id, total_amount, status, order_time, estimated_delivery_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, user_id, restaurant_id, address_id, total_amount, status, order_time, estimated_delivery_time
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.UserID,
		orderEntity.RestaurantID,
		orderEntity.AddressID,
		orderEntity.TotalAmount,
		orderEntity.Status.String(),
		orderEntity.OrderTime,
		orderEntity.EstimatedDeliveryTime,
	).Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.RestaurantID,
		&orderDB.AddressID,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.OrderTime,
		&orderDB.EstimatedDeliveryTime,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemModels := make([]OrderItemDB, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		itemQuery := `
			INSERT INTO order_items (order_id, food_id, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, order_id, food_id, quantity, unit_price, subtotal
		`

		var itemDB OrderItemDB
		err := r.querier.QueryRow(
			ctx,
			itemQuery,
			orderDB.ID,
			item.FoodID,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
		).Scan(
			&itemDB.ID,
			&itemDB.OrderID,
			&itemDB.FoodID,
			&itemDB.Quantity,
			&itemDB.UnitPrice,
			&itemDB.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create item error: %w", err)
		}
		itemModels = append(itemModels, itemDB)
	}

	return ToDomain(&orderDB, itemModels), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `
		SELECT id, user_id, restaurant_id, address_id, total_amount, status, order_time, estimated_delivery_time
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.RestaurantID,
		&orderDB.AddressID,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.OrderTime,
		&orderDB.EstimatedDeliveryTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	items, err := r.getItems(ctx, orderDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items), nil
}

func (r *Repository) GetByUser(ctx context.Context, userID int64) ([]entities.Order, error) {
	query := `
		SELECT id, user_id, restaurant_id, address_id, total_amount, status, order_time, estimated_delivery_time
		FROM orders
		WHERE user_id = $1
		ORDER BY order_time DESC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyuser error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderDB OrderDB
		err := rows.Scan(
			&orderDB.ID,
			&orderDB.UserID,
			&orderDB.RestaurantID,
			&orderDB.AddressID,
			&orderDB.TotalAmount,
			&orderDB.Status,
			&orderDB.OrderTime,
			&orderDB.EstimatedDeliveryTime,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository getbyuser error: %w", err)
		}
		orderModels = append(orderModels, orderDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyuser error: %w", err)
	}

	orders := make([]entities.Order, 0, len(orderModels))
	for i := range orderModels {
		items, err := r.getItems(ctx, orderModels[i].ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *ToDomain(&orderModels[i], items))
	}

	return orders, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.EstimatedDeliveryTime != nil {
		builder = builder.Set("estimated_delivery_time", orderModify.EstimatedDeliveryTime)
	}
	if orderModify.TotalAmount != nil {
		builder = builder.Set("total_amount", orderModify.TotalAmount)
	}

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING id, user_id, restaurant_id, address_id, total_amount, status, order_time, estimated_delivery_time")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.RestaurantID,
		&orderDB.AddressID,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.OrderTime,
		&orderDB.EstimatedDeliveryTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	items, err := r.getItems(ctx, orderDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items), nil
}

// GetActiveByRestaurant возвращает последний заказ ресторана в статусе
// delivering. Нужен слушателю истечения ключей: redis-нотификация несет
// только имя ключа, заказ восстанавливается по id ресторана.
func (r *Repository) GetActiveByRestaurant(ctx context.Context, restaurantID int64) (*entities.Order, error) {
	query := `
		SELECT id, user_id, restaurant_id, address_id, total_amount, status, order_time, estimated_delivery_time
		FROM orders
		WHERE restaurant_id = $1
		  AND status = 'delivering'
		ORDER BY order_time DESC
		LIMIT 1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, restaurantID).Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.RestaurantID,
		&orderDB.AddressID,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.OrderTime,
		&orderDB.EstimatedDeliveryTime,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, orderservice.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getactivebyrestaurant error: %w", err)
	}

	items, err := r.getItems(ctx, orderDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items), nil
}

func (r *Repository) getItems(ctx context.Context, orderID int64) ([]OrderItemDB, error) {
	query := `
		SELECT id, order_id, food_id, quantity, unit_price, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}
	defer rows.Close()

	itemModels := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var itemDB OrderItemDB
		err := rows.Scan(
			&itemDB.ID,
			&itemDB.OrderID,
			&itemDB.FoodID,
			&itemDB.Quantity,
			&itemDB.UnitPrice,
			&itemDB.Subtotal,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
		}
		itemModels = append(itemModels, itemDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get items error: %w", err)
	}

	return itemModels, nil
}
