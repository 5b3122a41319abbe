package main

import (
	"context"
	"ecare-automation/internal/app"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/drivers/logger"
	"errors"
	"fmt"
	"os"
)

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	if err := newRootCmd(setupWorkflow).Execute(); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// setupWorkflow loads configuration and connects the enabled drivers. The
// returned func closes them.
func setupWorkflow(ctx context.Context) (contracts.WorkflowUsecase, func(), error) {
	driverConfig, err := config.NewDriverConfig()
	if err != nil {
		return nil, nil, err
	}
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		return nil, nil, err
	}

	// stdout carries the run summary
	if driverConfig.Logger.Output == "stdout" {
		driverConfig.Logger.Output = "stderr"
	}
	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return nil, nil, err
	}

	bootstrap, err := app.Connect(ctx, driverConfig, internalConfig, zapLogger)
	if err != nil {
		return nil, nil, err
	}
	usecase, err := app.NewWorkflowUsecase(bootstrap)
	if err != nil {
		_ = bootstrap.Shutdown(context.Background())
		return nil, nil, err
	}
	return usecase, func() { _ = bootstrap.Shutdown(context.Background()) }, nil
}
