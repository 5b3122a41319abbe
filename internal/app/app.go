// Package app connects the configured drivers and assembles the workflow
// service shared by the HTTP server and the CLI.
package app

import (
	"context"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/drivers/database"
	"ecare-automation/internal/app/drivers/messaging"
	"ecare-automation/internal/app/drivers/storage"
	"ecare-automation/internal/app/services/core/runs"
	"ecare-automation/internal/app/services/core/workflow"
	"ecare-automation/internal/app/services/ecare"
	"ecare-automation/internal/app/services/shared/locker"
	"ecare-automation/internal/app/services/shared/redis"
	"ecare-automation/internal/app/services/shared/runqueue"
	reportstorage "ecare-automation/internal/app/services/shared/storage"
	"ecare-automation/internal/app/services/shared/tokencache"

	"go.uber.org/zap"
)

// Connect opens every enabled driver. On error the drivers opened so far are
// closed again.
func Connect(ctx context.Context, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, logger *zap.Logger) (*config.Bootstrap, error) {
	bootstrap := &config.Bootstrap{
		Logger:         logger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	fail := func(err error) (*config.Bootstrap, error) {
		bootstrap.Logger = nil
		_ = bootstrap.Shutdown(context.Background())
		return nil, err
	}

	var err error
	if driverConfig.Redis.Enabled {
		if bootstrap.Redis, err = database.NewRedisClient(ctx, driverConfig); err != nil {
			return fail(err)
		}
	}
	if driverConfig.MongoDB.Enabled {
		if bootstrap.MongoDB, err = database.NewMongoDB(ctx, driverConfig); err != nil {
			return fail(err)
		}
	}
	if driverConfig.RabbitMQ.Enabled {
		if bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig); err != nil {
			return fail(err)
		}
	}
	if driverConfig.Minio.Enabled {
		if bootstrap.Minio, err = storage.NewMinio(driverConfig); err != nil {
			return fail(err)
		}
	}
	return bootstrap, nil
}

// NewWorkflowUsecase wires the workflow against whatever Connect opened,
// using in-process fallbacks for disabled drivers.
func NewWorkflowUsecase(bootstrap *config.Bootstrap) (contracts.WorkflowUsecase, error) {
	logger := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	var (
		lockService contracts.LockerService
		tokenCache  contracts.TokenCache
	)
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		lockService = locker.NewLockService(redisRepository, logger)
		tokenCache = tokencache.NewTokenCache(
			redisRepository,
			internalConfig.Ecare.TokenCacheTTL(),
			internalConfig.Ecare.TokenExpirySkew(),
			logger,
		)
	} else {
		lockService = locker.NewMemoryLockService(logger)
	}

	runRepository := runs.NewRunMemoryRepository()
	if bootstrap.MongoDB != nil {
		runRepository = runs.NewRunMongoRepository(bootstrap.MongoDB)
	}

	reportStorage := reportstorage.NewNoopStorage()
	if bootstrap.Minio != nil {
		reportStorage = reportstorage.NewMinioStorage(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName, logger)
	}

	runEventPublisher := runqueue.NewNoopRunEventPublisher()
	if bootstrap.RabbitMQ != nil {
		publisher, err := runqueue.NewRunEventPublisher(bootstrap.RabbitMQ, logger)
		if err != nil {
			return nil, err
		}
		runEventPublisher = publisher
	}

	newClient := func(env *config.Environment, requestID string) contracts.HealthcareAPIClient {
		return ecare.NewHealthcareAPIClient(env, internalConfig, tokenCache, logger, ecare.Options{RequestID: requestID})
	}

	usecase := workflow.NewWorkflowUsecase(
		runRepository,
		lockService,
		reportStorage,
		runEventPublisher,
		newClient,
		internalConfig,
		logger,
	)
	bootstrap.WorkerStop = usecase.Wait
	return usecase, nil
}
