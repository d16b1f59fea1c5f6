package order

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/nelsontanko/foody-sub000/internal/entities"
	"github.com/nelsontanko/foody-sub000/internal/pkg/geo"
)

type Order struct {
	repository      Repository
	restaurants     RestaurantRepository
	addresses       AddressRepository
	foods           FoodRepository
	availability    AvailabilityService
	estimateFactory EstimateFactory
	statusFactory   HandlerFactory
	txManager       TxManager
}

func New(
	repository Repository,
	restaurants RestaurantRepository,
	addresses AddressRepository,
	foods FoodRepository,
	availability AvailabilityService,
	estimateFactory EstimateFactory,
	statusFactory HandlerFactory,
	txManager TxManager,
) *Order {
	return &Order{
		repository:      repository,
		restaurants:     restaurants,
		addresses:       addresses,
		foods:           foods,
		availability:    availability,
		estimateFactory: estimateFactory,
		statusFactory:   statusFactory,
		txManager:       txManager,
	}
}

// CreateOrder: разрешает адрес доставки, выбирает ближайший пригодный
// ресторан, собирает позиции по текущим ценам и резервирует пару
// ресторан+курьер на окно доставки.
func (s *Order) CreateOrder(ctx context.Context, userID int64, request entities.OrderRequest) (*entities.Order, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}
	if err := validateItems(request.Items); err != nil {
		return nil, err
	}

	deliveryAddress, err := s.resolveAddress(ctx, userID, request.Address)
	if err != nil {
		return nil, err
	}

	candidates, err := s.nearestCandidates(ctx, deliveryAddress)
	if err != nil {
		return nil, err
	}

	items, total, err := s.buildItems(ctx, request.Items)
	if err != nil {
		return nil, err
	}

	orderTime := time.Now().UTC()
	estimatedDeliveryTime := s.estimateFactory.Calculate(orderTime)

	var created *entities.Order
	var chosenID int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		for _, candidate := range candidates {
			err := s.availability.ReservePair(ctx, candidate.ID, estimatedDeliveryTime)
			if err != nil {
				// параллельный запрос занял ресторан — пробуем следующий по дистанции
				if errors.Is(err, ErrRestaurantAlreadyReserved) {
					continue
				}
				return err
			}
			chosenID = candidate.ID
			break
		}
		if chosenID == 0 {
			return ErrRestaurantUnavailable
		}

		order, err := s.repository.Create(ctx, entities.Order{
			UserID:                userID,
			RestaurantID:          chosenID,
			AddressID:             deliveryAddress.ID,
			Items:                 items,
			TotalAmount:           total,
			Status:                entities.OrderDelivering,
			OrderTime:             orderTime,
			EstimatedDeliveryTime: estimatedDeliveryTime,
		})
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	// TTL-блокировка вне транзакции: при падении между записями
	// расхождение ограничено TTL и интервалом свипа.
	s.availability.MarkBusyLock(ctx, chosenID, created.ID, estimatedDeliveryTime)

	return created, nil
}

func (s *Order) GetUserOrders(ctx context.Context, userID int64) ([]entities.Order, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}

	orders, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user orders: %w", err)
	}
	return orders, nil
}

func (s *Order) UpdateOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatusType) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("load order: %w", err)
		}

		if order.Status.IsTerminal() {
			return ErrOrderAlreadyDelivered
		}

		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ProcessOrderStatusChange обрабатывает событие смены статуса из топика
// order.status.changed: проверяет существование заказа и диспатчит
// статус через фабрику обработчиков. Статусы без обработчика пропускаются.
func (s *Order) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required")
	}

	order, err := s.repository.GetByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(*orderModify.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order.ID); err != nil {
		return nil, err
	}

	return s.repository.GetByID(ctx, order.ID)
}

// resolveAddress: явный адрес из запроса — найти или создать; иначе
// последний измененный адрес пользователя.
func (s *Order) resolveAddress(ctx context.Context, userID int64, requested *entities.DeliveryAddress) (*entities.Address, error) {
	if requested == nil {
		addressEntity, err := s.addresses.GetMostRecentByUser(ctx, userID)
		if err != nil {
			if errors.Is(err, ErrAddressNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("resolve address: %w", err)
		}
		return addressEntity, nil
	}

	addressEntity, err := s.addresses.FindByUserAndDetails(ctx, userID, requested.Street, requested.City, requested.Country)
	if err == nil {
		return addressEntity, nil
	}
	if !errors.Is(err, ErrAddressNotFound) {
		return nil, fmt.Errorf("resolve address: %w", err)
	}

	addressEntity, err = s.addresses.Create(ctx, entities.Address{
		UserID:    userID,
		Street:    requested.Street,
		City:      requested.City,
		Country:   requested.Country,
		Latitude:  requested.Latitude,
		Longitude: requested.Longitude,
	})
	if err != nil {
		// проигранная гонка создания — адрес уже есть, перечитываем
		if errors.Is(err, ErrAddressExists) {
			return s.addresses.FindByUserAndDetails(ctx, userID, requested.Street, requested.City, requested.Country)
		}
		return nil, fmt.Errorf("create address: %w", err)
	}
	return addressEntity, nil
}

// nearestCandidates возвращает пригодные рестораны по возрастанию
// дистанции до адреса доставки; при равной дистанции побеждает
// меньший id — выбор детерминирован.
func (s *Order) nearestCandidates(ctx context.Context, deliveryAddress *entities.Address) ([]entities.EligibleRestaurant, error) {
	eligible, err := s.restaurants.GetEligible(ctx)
	if err != nil {
		return nil, fmt.Errorf("eligible restaurants: %w", err)
	}
	if len(eligible) == 0 {
		return nil, ErrRestaurantUnavailable
	}

	distances := make(map[int64]float64, len(eligible))
	for _, candidate := range eligible {
		distances[candidate.ID] = geo.Haversine(
			deliveryAddress.Latitude, deliveryAddress.Longitude,
			candidate.Latitude, candidate.Longitude,
		)
	}

	sort.Slice(eligible, func(i, j int) bool {
		di, dj := distances[eligible[i].ID], distances[eligible[j].ID]
		if di != dj {
			return di < dj
		}
		return eligible[i].ID < eligible[j].ID
	})

	return eligible, nil
}

func (s *Order) buildItems(ctx context.Context, requested []entities.OrderItemRequest) ([]entities.OrderItem, float64, error) {
	items := make([]entities.OrderItem, 0, len(requested))
	var total float64

	for _, itemRequest := range requested {
		foodEntity, err := s.foods.GetByID(ctx, itemRequest.FoodID)
		if err != nil {
			if errors.Is(err, ErrFoodNotFound) {
				return nil, 0, fmt.Errorf("food %d: %w", itemRequest.FoodID, err)
			}
			return nil, 0, fmt.Errorf("resolve food %d: %w", itemRequest.FoodID, err)
		}

		subtotal := foodEntity.Price * float64(itemRequest.Quantity)
		items = append(items, entities.OrderItem{
			FoodID:    foodEntity.ID,
			Quantity:  itemRequest.Quantity,
			UnitPrice: foodEntity.Price,
			Subtotal:  subtotal,
		})
		total += subtotal
	}

	return items, total, nil
}
