package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tillroll/internal/domain"
	apperrors "tillroll/internal/errors"
)

type mockPrepTimeRepository struct {
	FindByNumberFunc   func(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error)
	UpdatePrepTimeFunc func(ctx context.Context, restaurantID int, orderNumber string, minutes int) error
}

func (m *mockPrepTimeRepository) FindByNumber(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error) {
	return m.FindByNumberFunc(ctx, restaurantID, orderNumber)
}

func (m *mockPrepTimeRepository) UpdatePrepTime(ctx context.Context, restaurantID int, orderNumber string, minutes int) error {
	return m.UpdatePrepTimeFunc(ctx, restaurantID, orderNumber, minutes)
}

func TestUpdatePrepTime_Success(t *testing.T) {
	repo := &mockPrepTimeRepository{
		FindByNumberFunc: func(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error) {
			return testOrder(domain.StatusAccepted), nil
		},
		UpdatePrepTimeFunc: func(ctx context.Context, restaurantID int, orderNumber string, minutes int) error {
			return nil
		},
	}

	uc := NewUpdatePrepTimeUseCase(repo, zap.NewNop())

	order, err := uc.UpdatePrepTime(context.Background(), 1, "1001", 35)

	require.NoError(t, err)
	require.NotNil(t, order.PrepTimeMinutes)
	assert.Equal(t, 35, *order.PrepTimeMinutes)
}

func TestUpdatePrepTime_RejectsNonPositiveMinutes(t *testing.T) {
	repo := &mockPrepTimeRepository{
		FindByNumberFunc: func(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error) {
			return nil, errors.New("should not be called")
		},
	}

	uc := NewUpdatePrepTimeUseCase(repo, zap.NewNop())

	for _, minutes := range []int{0, -5} {
		_, err := uc.UpdatePrepTime(context.Background(), 1, "1001", minutes)
		_, ok := apperrors.IsValidationError(err)
		assert.True(t, ok, "expected ValidationError for %d minutes, got %v", minutes, err)
	}
}

func TestUpdatePrepTime_OnlyWhileAcceptedOrPreparing(t *testing.T) {
	for _, status := range []domain.Status{domain.StatusPending, domain.StatusReady, domain.StatusDelivered, domain.StatusCancelled} {
		repo := &mockPrepTimeRepository{
			FindByNumberFunc: func(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error) {
				return testOrder(status), nil
			},
			UpdatePrepTimeFunc: func(ctx context.Context, restaurantID int, orderNumber string, minutes int) error {
				return errors.New("should not be called")
			},
		}

		uc := NewUpdatePrepTimeUseCase(repo, zap.NewNop())

		_, err := uc.UpdatePrepTime(context.Background(), 1, "1001", 30)
		_, ok := apperrors.IsValidationError(err)
		assert.True(t, ok, "expected ValidationError for status %s, got %v", status, err)
	}
}
