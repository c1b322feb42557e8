package usecase

import (
	"context"

	"go.uber.org/zap"

	"tillroll/internal/domain"
	"tillroll/internal/order/service"
	"tillroll/internal/printer"
)

type OrderRepository interface {
	FindByNumber(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error)
	SaveTransition(ctx context.Context, order *domain.Order) error
}

type LifecycleManager interface {
	Transition(order *domain.Order, target domain.Status, actor string, meta service.TransitionMeta) (*domain.Order, error)
}

type PrintCoordinator interface {
	RunJob(ctx context.Context, order *domain.Order, kind printer.ReceiptKind) printer.Result
}

// StatusUpdateResult reports the persisted order plus the outcome of any
// print job the transition triggered. PrintKind is empty when the target
// status triggers no receipt.
type StatusUpdateResult struct {
	Order     *domain.Order
	PrintKind printer.ReceiptKind
	Print     *printer.Result
}

// UpdateOrderStatusUseCase drives one status transition end to end: load,
// validate and apply the transition, persist it, then fire the receipt the
// new status calls for. Printing is a best-effort side effect — the status
// change is committed to storage before the print job runs and survives a
// print failure.
type UpdateOrderStatusUseCase struct {
	orderRepo   OrderRepository
	lifecycle   LifecycleManager
	coordinator PrintCoordinator
	logger      *zap.Logger
}

func NewUpdateOrderStatusUseCase(
	orderRepo OrderRepository,
	lifecycle LifecycleManager,
	coordinator PrintCoordinator,
	logger *zap.Logger,
) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo:   orderRepo,
		lifecycle:   lifecycle,
		coordinator: coordinator,
		logger:      logger,
	}
}

func (uc *UpdateOrderStatusUseCase) UpdateStatus(
	ctx context.Context,
	restaurantID int,
	orderNumber string,
	target domain.Status,
	actor string,
	meta service.TransitionMeta,
) (*StatusUpdateResult, error) {
	order, err := uc.orderRepo.FindByNumber(ctx, restaurantID, orderNumber)
	if err != nil {
		return nil, err
	}

	updated, err := uc.lifecycle.Transition(order, target, actor, meta)
	if err != nil {
		return nil, err
	}

	if err := uc.orderRepo.SaveTransition(ctx, updated); err != nil {
		return nil, err
	}

	result := &StatusUpdateResult{Order: updated}

	kind := receiptKindFor(target)
	if kind == "" {
		return result, nil
	}

	printResult := uc.coordinator.RunJob(ctx, updated, kind)
	result.PrintKind = kind
	result.Print = &printResult

	if !printResult.Success {
		uc.logger.Warn("print job failed after status transition",
			zap.String("orderNumber", orderNumber),
			zap.String("kind", string(kind)),
			zap.Error(printResult.Err),
		)
	}

	return result, nil
}

// receiptKindFor maps a newly entered status to the receipt it triggers:
// kitchen copy on acceptance, delivery copy when the food is ready. Delivery
// completion prints nothing.
func receiptKindFor(target domain.Status) printer.ReceiptKind {
	switch target {
	case domain.StatusAccepted:
		return printer.KindKitchen
	case domain.StatusReady:
		return printer.KindDelivery
	default:
		return ""
	}
}
