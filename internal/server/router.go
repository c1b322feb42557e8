package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	ordercontroller "tillroll/internal/order/controller"
	printercontroller "tillroll/internal/printer/controller"
)

func NewRouter(orderCtrl *ordercontroller.OrderController, printerCtrl *printercontroller.PrinterController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Get("/", orderCtrl.ListOrders)
		r.Get("/{orderNumber}", orderCtrl.GetOrder)
		r.Patch("/{orderNumber}/status", orderCtrl.UpdateStatus)
		r.Patch("/{orderNumber}/prep-time", orderCtrl.UpdatePrepTime)
	})

	r.Route("/api/printer", func(r chi.Router) {
		r.Get("/status", printerCtrl.Status)
		r.Post("/test", printerCtrl.TestPrint)
		r.Get("/last-job", printerCtrl.LastJob)
	})

	return r
}
