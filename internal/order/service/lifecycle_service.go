package service

import (
	"time"

	"go.uber.org/zap"

	"tillroll/internal/domain"
	apperrors "tillroll/internal/errors"
)

// TransitionMeta carries the per-transition inputs: prep time on acceptance,
// a reason for cancel/refund, the refund amount.
type TransitionMeta struct {
	PrepTimeMinutes *int
	Reason          string
	RefundAmount    *float64
}

// Lifecycle enforces the order status state machine: which transitions are
// allowed, what each one requires, and which timestamp it stamps. It never
// touches storage; callers persist the returned order.
type Lifecycle struct {
	defaultPrepTimeMinutes int
	logger                 *zap.Logger
	now                    func() time.Time
}

func NewLifecycle(defaultPrepTimeMinutes int, logger *zap.Logger) *Lifecycle {
	return &Lifecycle{
		defaultPrepTimeMinutes: defaultPrepTimeMinutes,
		logger:                 logger,
		now:                    time.Now,
	}
}

// Transition validates and applies one status change, returning the updated
// order. On any failure the input order is left untouched. Re-applying the
// current status fails with NoOpTransitionError rather than being silently
// ignored, since that signals a caller bug.
func (l *Lifecycle) Transition(order *domain.Order, target domain.Status, actor string, meta TransitionMeta) (*domain.Order, error) {
	if !target.IsValid() {
		return nil, apperrors.NewValidationError("unknown status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of the recognized order statuses",
		})
	}

	if order.Status == target {
		return nil, apperrors.NewNoOpTransitionError(target.String())
	}

	if !order.Status.CanTransitionTo(target) {
		return nil, apperrors.NewInvalidTransitionError(order.Status.String(), target.String())
	}

	if err := l.validateMeta(order, target, meta); err != nil {
		return nil, err
	}

	now := l.now()
	updated := *order
	updated.Status = target
	updated.UpdatedAt = now

	switch target {
	case domain.StatusAccepted:
		prep := l.defaultPrepTimeMinutes
		if meta.PrepTimeMinutes != nil {
			prep = *meta.PrepTimeMinutes
		}
		updated.PrepTimeMinutes = &prep
		stamp(&updated.AcceptedAt, now)
	case domain.StatusReady:
		stamp(&updated.ReadyAt, now)
	case domain.StatusDispatched:
		stamp(&updated.DispatchedAt, now)
	case domain.StatusDelivered:
		stamp(&updated.DeliveredAt, now)
	case domain.StatusCancelled:
		reason := meta.Reason
		cancelledBy := actor
		if cancelledBy == "" {
			cancelledBy = "restaurant"
		}
		updated.CancellationReason = &reason
		updated.CancelledBy = &cancelledBy
		stamp(&updated.CancelledAt, now)
	case domain.StatusRefunded:
		reason := meta.Reason
		updated.RefundReason = &reason
		updated.RefundAmount = meta.RefundAmount
		stamp(&updated.RefundedAt, now)
	}

	l.logger.Info("order transitioned",
		zap.String("orderNumber", order.OrderNumber),
		zap.String("from", order.Status.String()),
		zap.String("to", target.String()),
		zap.String("actor", actor),
	)

	return &updated, nil
}

// validateMeta checks the target-specific requirements before any state is
// touched.
func (l *Lifecycle) validateMeta(order *domain.Order, target domain.Status, meta TransitionMeta) error {
	switch target {
	case domain.StatusAccepted:
		if meta.PrepTimeMinutes != nil && *meta.PrepTimeMinutes <= 0 {
			return apperrors.NewValidationError("invalid prep time", apperrors.ValidationDetail{
				Field:   "prepTimeMinutes",
				Message: "prep time must be a positive number of minutes",
			})
		}
	case domain.StatusCancelled:
		if meta.Reason == "" {
			return apperrors.NewValidationError("cancellation requires a reason", apperrors.ValidationDetail{
				Field:   "reason",
				Message: "cancellation reason must not be empty",
			})
		}
	case domain.StatusRefunded:
		if meta.Reason == "" {
			return apperrors.NewValidationError("refund requires a reason", apperrors.ValidationDetail{
				Field:   "reason",
				Message: "refund reason must not be empty",
			})
		}
		if meta.RefundAmount == nil {
			return apperrors.NewValidationError("refund requires an amount", apperrors.ValidationDetail{
				Field:   "refundAmount",
				Message: "refund amount is required",
			})
		}
		if *meta.RefundAmount <= 0 || *meta.RefundAmount > order.TotalAmount() {
			return apperrors.NewValidationError("invalid refund amount", apperrors.ValidationDetail{
				Field:   "refundAmount",
				Message: "refund amount must be positive and not exceed the order total",
			})
		}
	}
	return nil
}

// stamp sets a status timestamp exactly once; an already-set timestamp is
// never rewritten or cleared.
func stamp(ts **time.Time, now time.Time) {
	if *ts == nil {
		*ts = &now
	}
}
