package order

import (
	"database/sql"

	"go.uber.org/zap"

	"tillroll/internal/config"
	"tillroll/internal/order/controller"
	"tillroll/internal/order/repository"
	"tillroll/internal/order/service"
	"tillroll/internal/order/usecase"
	"tillroll/internal/printer"
)

func NewModule(db *sql.DB, cfg *config.Config, coordinator *printer.Coordinator, logger *zap.Logger) *controller.OrderController {
	orderRepo := repository.NewMySQLOrderRepository(db)
	lifecycle := service.NewLifecycle(cfg.Order.DefaultPrepTimeMinutes, logger)

	updateStatus := usecase.NewUpdateOrderStatusUseCase(orderRepo, lifecycle, coordinator, logger)
	queries := usecase.NewOrdersQueryUseCase(orderRepo)
	prepTime := usecase.NewUpdatePrepTimeUseCase(orderRepo, logger)

	return controller.NewOrderController(updateStatus, queries, prepTime, logger)
}
