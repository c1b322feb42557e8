package usecase

import (
	"context"

	"tillroll/internal/domain"
)

type OrderReader interface {
	FindByNumber(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID int, status domain.Status) ([]domain.Order, error)
}

// OrdersQueryUseCase serves the read side of the trigger boundary.
type OrdersQueryUseCase struct {
	orderRepo OrderReader
}

func NewOrdersQueryUseCase(orderRepo OrderReader) *OrdersQueryUseCase {
	return &OrdersQueryUseCase{orderRepo: orderRepo}
}

func (uc *OrdersQueryUseCase) GetOrder(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error) {
	return uc.orderRepo.FindByNumber(ctx, restaurantID, orderNumber)
}

// ListOrders returns the restaurant's orders, newest first. An empty status
// means all statuses.
func (uc *OrdersQueryUseCase) ListOrders(ctx context.Context, restaurantID int, status domain.Status) ([]domain.Order, error) {
	return uc.orderRepo.ListByRestaurant(ctx, restaurantID, status)
}
