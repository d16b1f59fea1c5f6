package status_handle

import (
	"context"
	"fmt"

	"github.com/nelsontanko/foody-sub000/internal/entities"
	"github.com/nelsontanko/foody-sub000/internal/service/order"
)

type StatusHandlerFactory struct {
	releaseService order.ReleaseService
}

func NewStatusHandlerFactory(releaseService order.ReleaseService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		releaseService: releaseService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, orderID int64) error {
	err := f.releaseService.CompleteOrderAndFreeRestaurant(ctx, orderID)
	if err != nil {
		return fmt.Errorf("complete delivered order %d: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID int64) error {
	err := f.releaseService.CancelOrderAndFreeRestaurant(ctx, orderID)
	if err != nil {
		return fmt.Errorf("free restaurant for cancelled order %d: %w", orderID, err)
	}
	return nil
}
