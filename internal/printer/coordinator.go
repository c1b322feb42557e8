package printer

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"tillroll/internal/domain"
	apperrors "tillroll/internal/errors"
)

// Result is the uniform outcome of a print job. Failures travel as values;
// nothing is thrown across the trigger boundary, because a failed print must
// never abort the order-status transition that requested it.
type Result struct {
	Success bool
	Mock    bool
	Err     error
}

// Coordinator runs one print job at a time against the detected device. A
// job is a buffered transaction: instructions execute strictly in order,
// the first failure aborts the session and discards the buffer, and the
// session always terminates in committed or aborted before RunJob returns.
type Coordinator struct {
	detector *Detector
	renderer *Renderer
	logger   *zap.Logger

	// The device accepts a strict byte stream with no command-level
	// addressing, so two jobs must never interleave. The lock is held for
	// the whole session; a second caller gets DeviceBusy instead of queueing.
	mu sync.Mutex

	lastMu      sync.Mutex
	lastSession *Session
}

func NewCoordinator(detector *Detector, renderer *Renderer, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		detector: detector,
		renderer: renderer,
		logger:   logger,
	}
}

// RunJob renders and prints one receipt for the order. Preconditions are
// checked before any session is opened; a malformed order never reaches the
// device.
func (c *Coordinator) RunJob(ctx context.Context, order *domain.Order, kind ReceiptKind) Result {
	if err := validateJob(order, kind); err != nil {
		return Result{Success: false, Err: err}
	}

	if !c.mu.TryLock() {
		return Result{Success: false, Err: apperrors.NewDeviceBusyError("a print session is already open")}
	}
	defer c.mu.Unlock()

	capability := c.detector.Detect()
	logger := c.logger.With(
		zap.String("orderNumber", order.OrderNumber),
		zap.String("kind", string(kind)),
		zap.String("mode", capability.Mode.String()),
	)

	instructions, err := c.renderer.Render(order, kind)
	if err != nil {
		return Result{Success: false, Err: apperrors.NewValidationError(err.Error())}
	}

	session := NewSession()
	if err := session.Begin(); err != nil {
		return Result{Success: false, Err: apperrors.NewInternalError("opening print session", err)}
	}
	c.rememberSession(session)

	if err := capability.Bridge.EnterBuffer(ctx); err != nil {
		failed := apperrors.NewPrintCommandFailedError("enterBuffer", err)
		c.abort(ctx, capability, session, logger, failed)
		return Result{Success: false, Mock: capability.Mode == ModeMock, Err: failed}
	}

	// Feed and cut terminate every successful job.
	instructions = append(instructions, feed(2), cut(false))

	for _, in := range instructions {
		if err := c.execute(ctx, capability.Bridge, in); err != nil {
			logger.Warn("print instruction failed", zap.String("command", in.Op.String()), zap.Error(err))
			c.abort(ctx, capability, session, logger, err)
			return Result{Success: false, Mock: capability.Mode == ModeMock, Err: err}
		}
		session.Record(in)
	}

	if err := capability.Bridge.CommitBuffer(ctx); err != nil {
		failed := apperrors.NewPrintCommandFailedError("commitBuffer", err)
		c.abort(ctx, capability, session, logger, failed)
		return Result{Success: false, Mock: capability.Mode == ModeMock, Err: failed}
	}

	if err := session.Commit(); err != nil {
		return Result{Success: false, Mock: capability.Mode == ModeMock, Err: apperrors.NewInternalError("committing print session", err)}
	}

	logger.Info("print job committed", zap.Int("instructions", len(session.Log())))
	return Result{Success: true, Mock: capability.Mode == ModeMock}
}

// TestPage prints a short diagnostic page outside the receipt layouts.
func (c *Coordinator) TestPage(ctx context.Context) Result {
	order := &domain.Order{
		OrderNumber: "TEST",
		CreatedAt:   time.Now(),
		Customer:    domain.Customer{Name: "Test Print"},
		Items:       []domain.OrderItem{{Name: "Test line", Quantity: 1, UnitPrice: 0}},
	}
	return c.RunJob(ctx, order, KindCustomer)
}

// LastSession exposes the most recent session's instruction log for
// diagnostic replay.
func (c *Coordinator) LastSession() *Session {
	c.lastMu.Lock()
	defer c.lastMu.Unlock()
	return c.lastSession
}

func (c *Coordinator) rememberSession(s *Session) {
	c.lastMu.Lock()
	c.lastSession = s
	c.lastMu.Unlock()
}

// abort rolls back the device buffer and the session. The rollback itself is
// best-effort: its failure is logged but never replaces the original error.
// A hardware failure also invalidates the detected capability, since the
// device may have been unplugged mid-session.
func (c *Coordinator) abort(ctx context.Context, capability Capability, session *Session, logger *zap.Logger, cause error) {
	if err := capability.Bridge.ExitBuffer(ctx); err != nil {
		logger.Warn("print buffer rollback failed", zap.Error(err), zap.NamedError("originalError", cause))
	}
	if err := session.Abort(); err != nil {
		logger.Warn("session abort failed", zap.Error(err))
	}
	if capability.Mode == ModeHardware {
		c.detector.Invalidate()
	}
	logger.Warn("print job aborted", zap.Error(cause))
}

func (c *Coordinator) execute(ctx context.Context, bridge Bridge, in Instruction) error {
	var err error
	switch in.Op {
	case OpText:
		if err = bridge.SetAlignment(ctx, in.Align); err != nil {
			break
		}
		if err = bridge.SetTextSize(ctx, in.Size); err != nil {
			break
		}
		if err = bridge.SetStyle(ctx, in.Style); err != nil {
			break
		}
		err = bridge.PrintText(ctx, in.Text)
	case OpFeed:
		err = bridge.Feed(ctx, in.Lines)
	case OpCut:
		err = bridge.Cut(ctx, in.FullCut)
	case OpBarcode:
		err = bridge.PrintBarcode(ctx, in.Payload, SymbologyCode128)
	case OpQR:
		if err = bridge.SetAlignment(ctx, in.Align); err != nil {
			break
		}
		err = bridge.PrintQR(ctx, in.Payload)
	}
	if err != nil {
		return apperrors.NewPrintCommandFailedError(in.Op.String(), err)
	}
	return nil
}

func validateJob(order *domain.Order, kind ReceiptKind) error {
	if order == nil {
		return apperrors.NewValidationError("order is required", apperrors.ValidationDetail{
			Field:   "order",
			Message: "order must not be nil",
		})
	}

	var details []apperrors.ValidationDetail
	if order.OrderNumber == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "orderNumber",
			Message: "order number must not be empty",
		})
	}
	if len(order.Items) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "items",
			Message: "order must have at least one item",
		})
	}
	if !kind.IsValid() {
		details = append(details, apperrors.ValidationDetail{
			Field:   "kind",
			Message: "receipt kind must be kitchen, delivery or customer",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("print job validation failed", details...)
	}
	return nil
}
