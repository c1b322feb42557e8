package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tillroll/internal/commons"
	"tillroll/internal/config"
	"tillroll/internal/infrastructure/logger"
	"tillroll/internal/infrastructure/mysql"
	"tillroll/internal/order"
	"tillroll/internal/printer"
	printercontroller "tillroll/internal/printer/controller"
	"tillroll/internal/server"

	"go.uber.org/zap"
)

func main() {
	cfg, err := commons.LoadConfig("internal/config/config.yaml")
	if err != nil {
		cfg, err = config.Load()
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	printModule := printer.NewModule(cfg.Printer, zapLogger)
	printerCtrl := printercontroller.NewPrinterController(
		printModule.Coordinator,
		printModule.Translator,
		printModule.Detector,
		zapLogger,
	)
	orderCtrl := order.NewModule(db, cfg, printModule.Coordinator, zapLogger)

	router := server.NewRouter(orderCtrl, printerCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
