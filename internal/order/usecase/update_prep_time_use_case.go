package usecase

import (
	"context"

	"go.uber.org/zap"

	"tillroll/internal/domain"
	apperrors "tillroll/internal/errors"
)

type PrepTimeRepository interface {
	FindByNumber(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error)
	UpdatePrepTime(ctx context.Context, restaurantID int, orderNumber string, minutes int) error
}

// UpdatePrepTimeUseCase adjusts the kitchen's prep-time estimate. The value
// is set on acceptance and stays mutable while the order is being prepared.
type UpdatePrepTimeUseCase struct {
	orderRepo PrepTimeRepository
	logger    *zap.Logger
}

func NewUpdatePrepTimeUseCase(orderRepo PrepTimeRepository, logger *zap.Logger) *UpdatePrepTimeUseCase {
	return &UpdatePrepTimeUseCase{orderRepo: orderRepo, logger: logger}
}

func (uc *UpdatePrepTimeUseCase) UpdatePrepTime(ctx context.Context, restaurantID int, orderNumber string, minutes int) (*domain.Order, error) {
	if minutes <= 0 {
		return nil, apperrors.NewValidationError("invalid prep time", apperrors.ValidationDetail{
			Field:   "prepTimeMinutes",
			Message: "prep time must be a positive number of minutes",
		})
	}

	order, err := uc.orderRepo.FindByNumber(ctx, restaurantID, orderNumber)
	if err != nil {
		return nil, err
	}

	if order.Status != domain.StatusAccepted && order.Status != domain.StatusPreparing {
		return nil, apperrors.NewValidationError("prep time is not adjustable", apperrors.ValidationDetail{
			Field:   "status",
			Message: "prep time can only change while the order is accepted or preparing",
		})
	}

	if err := uc.orderRepo.UpdatePrepTime(ctx, restaurantID, orderNumber, minutes); err != nil {
		return nil, err
	}

	uc.logger.Info("prep time updated",
		zap.String("orderNumber", orderNumber),
		zap.Int("prepTimeMinutes", minutes),
	)

	order.PrepTimeMinutes = &minutes
	return order, nil
}
