package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tillroll/internal/domain"
	"tillroll/internal/dto"
	apperrors "tillroll/internal/errors"
	"tillroll/internal/order/service"
	"tillroll/internal/order/usecase"
)

type UpdateOrderStatusUseCase interface {
	UpdateStatus(ctx context.Context, restaurantID int, orderNumber string, target domain.Status, actor string, meta service.TransitionMeta) (*usecase.StatusUpdateResult, error)
}

type OrdersQueryUseCase interface {
	GetOrder(ctx context.Context, restaurantID int, orderNumber string) (*domain.Order, error)
	ListOrders(ctx context.Context, restaurantID int, status domain.Status) ([]domain.Order, error)
}

type UpdatePrepTimeUseCase interface {
	UpdatePrepTime(ctx context.Context, restaurantID int, orderNumber string, minutes int) (*domain.Order, error)
}

type OrderController struct {
	updateStatus UpdateOrderStatusUseCase
	queries      OrdersQueryUseCase
	prepTime     UpdatePrepTimeUseCase
	logger       *zap.Logger
}

func NewOrderController(
	updateStatus UpdateOrderStatusUseCase,
	queries OrdersQueryUseCase,
	prepTime UpdatePrepTimeUseCase,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		updateStatus: updateStatus,
		queries:      queries,
		prepTime:     prepTime,
		logger:       logger,
	}
}

// UpdateStatus is the trigger boundary: PATCH /orders/{orderNumber}/status.
// A print failure never fails the request; the transition is committed
// independently and the print outcome rides along in the response body.
func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID, orderNumber, ok := c.pathParams(w, r, traceID)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	target := domain.Status(req.Status)
	if !target.IsValid() {
		c.writeValidationError(w, traceID, "invalid status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of the recognized order statuses",
		})
		return
	}

	meta := service.TransitionMeta{
		PrepTimeMinutes: req.PrepTimeMinutes,
		Reason:          req.Reason,
		RefundAmount:    req.RefundAmount,
	}

	result, err := c.updateStatus.UpdateStatus(r.Context(), restaurantID, orderNumber, target, req.Actor, meta)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	response := toOrderResponse(traceID, result.Order)
	if result.PrintKind != "" {
		printDTO := &dto.PrintDTO{
			Kind:    string(result.PrintKind),
			Success: result.Print.Success,
			Mock:    result.Print.Mock,
		}
		if result.Print.Err != nil {
			printDTO.Error = result.Print.Err.Error()
		}
		response.Print = printDTO
	}

	c.writeJSON(w, http.StatusOK, response)
}

func (c *OrderController) UpdatePrepTime(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID, orderNumber, ok := c.pathParams(w, r, traceID)
	if !ok {
		return
	}

	var req dto.UpdatePrepTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	order, err := c.prepTime.UpdatePrepTime(r.Context(), restaurantID, orderNumber, req.PrepTimeMinutes)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(traceID, order))
}

func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID, orderNumber, ok := c.pathParams(w, r, traceID)
	if !ok {
		return
	}

	order, err := c.queries.GetOrder(r.Context(), restaurantID, orderNumber)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(traceID, order))
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID, ok := c.restaurantParam(w, r, traceID)
	if !ok {
		return
	}

	status := domain.Status(r.URL.Query().Get("status"))
	if status != "" && !status.IsValid() {
		c.writeValidationError(w, traceID, "invalid status filter", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of the recognized order statuses",
		})
		return
	}

	orders, err := c.queries.ListOrders(r.Context(), restaurantID, status)
	if err != nil {
		c.handleUseCaseError(w, traceID, err, logger)
		return
	}

	response := dto.OrderListResponse{
		TraceID:   traceID,
		Orders:    make([]dto.OrderResponse, len(orders)),
		Timestamp: time.Now().UTC(),
	}
	for i := range orders {
		response.Orders[i] = toOrderResponse(traceID, &orders[i])
	}

	c.writeJSON(w, http.StatusOK, response)
}

func (c *OrderController) pathParams(w http.ResponseWriter, r *http.Request, traceID string) (int, string, bool) {
	restaurantID, ok := c.restaurantParam(w, r, traceID)
	if !ok {
		return 0, "", false
	}

	orderNumber := chi.URLParam(r, "orderNumber")
	if orderNumber == "" {
		c.writeValidationError(w, traceID, "invalid orderNumber", apperrors.ValidationDetail{
			Field:   "orderNumber",
			Message: "orderNumber must not be empty",
		})
		return 0, "", false
	}

	return restaurantID, orderNumber, true
}

func (c *OrderController) restaurantParam(w http.ResponseWriter, r *http.Request, traceID string) (int, bool) {
	restaurantID, err := strconv.Atoi(r.URL.Query().Get("restaurantId"))
	if err != nil || restaurantID <= 0 {
		c.writeValidationError(w, traceID, "invalid restaurantId", apperrors.ValidationDetail{
			Field:   "restaurantId",
			Message: "restaurantId must be a positive integer",
		})
		return 0, false
	}
	return restaurantID, true
}

func (c *OrderController) handleUseCaseError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsInvalidTransitionError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		return
	}

	if _, ok := apperrors.IsNoOpTransitionError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusConflict, "NO_OP_TRANSITION", err.Error())
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func toOrderResponse(traceID string, order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemDTO, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemDTO{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Modifiers: item.Modifiers,
			Note:      item.Note,
		}
	}

	return dto.OrderResponse{
		TraceID:      traceID,
		OrderNumber:  order.OrderNumber,
		RestaurantID: order.RestaurantID,
		Status:       order.Status.String(),
		Customer: dto.CustomerDTO{
			Name:    order.Customer.Name,
			Phone:   order.Customer.Phone,
			Address: order.Customer.Address,
		},
		Items:              items,
		Note:               order.Note,
		TotalAmount:        order.TotalAmount(),
		Tax:                order.Tax,
		Discount:           order.Discount,
		PrepTimeMinutes:    order.PrepTimeMinutes,
		CancellationReason: order.CancellationReason,
		CancelledBy:        order.CancelledBy,
		RefundReason:       order.RefundReason,
		RefundAmount:       order.RefundAmount,
		CreatedAt:          order.CreatedAt,
		AcceptedAt:         order.AcceptedAt,
		ReadyAt:            order.ReadyAt,
		DispatchedAt:       order.DispatchedAt,
		DeliveredAt:        order.DeliveredAt,
		CancelledAt:        order.CancelledAt,
		RefundedAt:         order.RefundedAt,
		Timestamp:          time.Now().UTC(),
	}
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	response := dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Message:   message,
		Code:      code,
		Timestamp: time.Now().UTC(),
	}

	c.writeJSON(w, statusCode, response)
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
