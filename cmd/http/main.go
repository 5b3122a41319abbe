package main

import (
	"context"
	"ecare-automation/internal/app"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/app/delivery/http/controllers"
	"ecare-automation/internal/app/delivery/http/middlewares"
	"ecare-automation/internal/app/delivery/http/routers"
	"ecare-automation/internal/app/drivers/logger"
	"ecare-automation/internal/app/services/core/workflow"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		log.Fatalf("Error loading driver config: %v", err)
	}
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	accessLog := logger.NewLogrusLogger(internalConfig)

	bootstrap, err := app.Connect(context.Background(), driverConfig, internalConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error connecting drivers", zap.Error(err))
	}
	bootstrap.Router = chi.NewRouter()

	if err := bootstrapingTheApp(bootstrap, accessLog); err != nil {
		zapLogger.Fatal("Error wiring application", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	accessLog.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, accessLog *logrus.Logger) error {
	workflowUsecase, err := app.NewWorkflowUsecase(bootstrap)
	if err != nil {
		return err
	}

	scheduler := workflow.NewScheduler(bootstrap.Logger, workflowUsecase, bootstrap.InternalConfig)
	if err := scheduler.Start(context.Background()); err != nil {
		return err
	}
	waitRuns := bootstrap.WorkerStop
	bootstrap.WorkerStop = func() {
		scheduler.Stop()
		waitRuns()
	}

	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	workflowController := controllers.NewWorkflowController(bootstrap.Logger, workflowUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, accessLog, workflowController)
	return nil
}
