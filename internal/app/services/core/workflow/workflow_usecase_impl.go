package workflow

import (
	"context"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// ClientFactory builds a healthcare API client for one run.
type ClientFactory func(env *config.Environment, requestID string) contracts.HealthcareAPIClient

type workflowUsecase struct {
	RunRepository     contracts.RunRepository
	LockService       contracts.LockerService
	ReportStorage     contracts.ReportStorage
	RunEventPublisher contracts.RunEventPublisher
	NewClient         ClientFactory
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger

	now func() time.Time
	wg  sync.WaitGroup
}

// preparedRun is a run that holds its tenant lock.
type preparedRun struct {
	ctx       context.Context
	env       *config.Environment
	run       *models.Run
	lockKey   string
	lockValue string
}

func NewWorkflowUsecase(
	runRepository contracts.RunRepository,
	lockService contracts.LockerService,
	reportStorage contracts.ReportStorage,
	runEventPublisher contracts.RunEventPublisher,
	newClient ClientFactory,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.WorkflowUsecase {
	if internalConfig == nil {
		internalConfig = &config.InternalConfig{}
	}
	return &workflowUsecase{
		RunRepository:     runRepository,
		LockService:       lockService,
		ReportStorage:     reportStorage,
		RunEventPublisher: runEventPublisher,
		NewClient:         newClient,
		InternalConfig:    internalConfig,
		Log:               logger,
		now:               time.Now,
	}
}

// Execute runs the complete scenario synchronously. A failed step is
// reported through the returned run, not the error.
func (uc *workflowUsecase) Execute(ctx context.Context, input *models.RunInput) (*models.Run, error) {
	prepared, err := uc.prepare(ctx, input)
	if err != nil {
		return nil, err
	}
	uc.execute(prepared.ctx, prepared)
	return prepared.run, nil
}

// StartRun takes the tenant lock and records the run before returning, then
// executes it in the background under the configured run timeout.
func (uc *workflowUsecase) StartRun(ctx context.Context, request *requests.TriggerRun) (*responses.RunAccepted, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("workflowUsecase.StartRun called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEnvironmentKey, request.Environment),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("workflowUsecase.StartRun invalid request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	prepared, err := uc.prepare(ctx, &models.RunInput{
		RequestID:        requestID,
		Environment:      request.Environment,
		Tag:              request.Tag,
		SkipVerification: request.SkipVerification,
	})
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithTimeout(context.WithoutCancel(prepared.ctx), uc.InternalConfig.Workflow.RunTimeout())
	uc.wg.Add(1)
	go func() {
		defer uc.wg.Done()
		defer cancel()
		uc.execute(runCtx, prepared)
	}()

	return &responses.RunAccepted{
		RunID:       prepared.run.ID,
		Environment: prepared.env.Name,
		TenantID:    prepared.env.TenantID,
	}, nil
}

// Wait blocks until every background run has finished.
func (uc *workflowUsecase) Wait() {
	uc.wg.Wait()
}

func (uc *workflowUsecase) VerifyLogin(ctx context.Context, environment string) (*responses.LoginVerified, error) {
	env, err := config.ResolveEnvironment(environment, uc.InternalConfig)
	if err != nil {
		return nil, err
	}
	ctx = utils.WithRequestID(ctx, utils.GetRequestID(ctx))
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("workflowUsecase.VerifyLogin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEnvironmentKey, env.Name),
	)

	client := uc.NewClient(env, requestID)
	response, err := client.Login(ctx, nil)
	if err != nil {
		uc.Log.Error("workflowUsecase.VerifyLogin error calling client.Login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !response.Succeeded(constvars.EcareSuccessCodeEntity) {
		return nil, exceptions.ErrVerificationFailed(nil, fmt.Sprintf("login returned code %q", response.Code))
	}

	uc.Log.Info(constvars.LoginVerifiedMessage,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTenantIDKey, client.TenantID()),
	)
	return &responses.LoginVerified{
		Environment: env.Name,
		TenantID:    client.TenantID(),
		Code:        response.Code,
	}, nil
}

func (uc *workflowUsecase) FindRun(ctx context.Context, runID string) (*models.Run, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("workflowUsecase.FindRun called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	run, err := uc.RunRepository.FindByID(ctx, runID)
	if err != nil {
		uc.Log.Error("workflowUsecase.FindRun error calling RunRepository.FindByID",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if run == nil {
		return nil, exceptions.ErrRunNotFound(nil, runID)
	}
	return run, nil
}

func (uc *workflowUsecase) FindRecentRuns(ctx context.Context, limit int) ([]models.Run, error) {
	limit = utils.RunsListLimit(limit)

	runs, err := uc.RunRepository.FindRecent(ctx, limit)
	if err != nil {
		uc.Log.Error("workflowUsecase.FindRecentRuns error calling RunRepository.FindRecent",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return nil, err
	}
	return runs, nil
}

func (uc *workflowUsecase) prepare(ctx context.Context, input *models.RunInput) (*preparedRun, error) {
	if err := utils.ValidateStruct(input); err != nil {
		uc.Log.Error("workflowUsecase.prepare invalid run input",
			zap.String(constvars.LoggingRequestIDKey, input.RequestID),
			zap.Error(err),
		)
		return nil, err
	}

	env, err := config.ResolveEnvironment(input.Environment, uc.InternalConfig)
	if err != nil {
		uc.Log.Error("workflowUsecase.prepare error resolving environment",
			zap.String(constvars.LoggingEnvironmentKey, input.Environment),
			zap.Error(err),
		)
		return nil, err
	}

	runID := input.RunID
	if runID == "" {
		runID = utils.GenerateRunID()
	}
	ctx = utils.WithRequestID(ctx, input.RequestID)
	ctx = utils.WithRunID(ctx, runID)
	requestID := utils.GetRequestID(ctx)

	lockKey := fmt.Sprintf(constvars.RedisWorkflowLockKeyFormat, env.TenantID)
	acquired, lockValue, err := uc.LockService.TryLock(ctx, lockKey, uc.InternalConfig.Workflow.LockTTL())
	if err != nil {
		uc.Log.Error("workflowUsecase.prepare error calling LockService.TryLock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		err := exceptions.ErrWorkflowAlreadyRunning(nil, env.TenantID)
		uc.Log.Warn("workflowUsecase.prepare workflow already running",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingTenantIDKey, env.TenantID),
		)
		return nil, err
	}

	run := models.NewRun(runID, requestID, env.Name, env.TenantID, input)
	if err := uc.RunRepository.Create(ctx, run); err != nil {
		uc.logBookkeepingFailure(ctx, constvars.OperationCreateRun, err)
	}

	return &preparedRun{
		ctx:       ctx,
		env:       env,
		run:       run,
		lockKey:   lockKey,
		lockValue: lockValue,
	}, nil
}

func (uc *workflowUsecase) execute(ctx context.Context, prepared *preparedRun) {
	run := prepared.run
	log := uc.Log.With(
		zap.String(constvars.LoggingRequestIDKey, run.RequestID),
		zap.String(constvars.LoggingRunIDKey, run.ID),
		zap.String(constvars.LoggingEnvironmentKey, run.Environment),
	)
	defer uc.unlock(context.WithoutCancel(ctx), prepared)

	log.Info("Starting Complete Healthcare API Workflow",
		zap.String(constvars.LoggingTenantIDKey, run.TenantID),
		zap.Bool("skip_verification", run.SkipVerification),
	)

	client := uc.NewClient(prepared.env, run.RequestID)
	client.SetContext(zap.String(constvars.LoggingRunIDKey, run.ID))

	s := &scenario{
		client: client,
		run:    run,
		now:    uc.now(),
		log:    log,
	}
	s.play(ctx)
	run.Finish()

	if run.Passed() {
		log.Info(constvars.WorkflowRunPassedMessage,
			zap.String(constvars.LoggingRunStatusKey, run.Status),
			zap.String(constvars.LoggingPatientIDKey, run.PatientID),
			zap.String(constvars.LoggingProviderIDKey, run.ProviderID),
			zap.String(constvars.LoggingAppointmentIDKey, run.AppointmentID),
		)
	} else {
		log.Error(constvars.WorkflowRunFailedMessage,
			zap.String(constvars.LoggingRunStatusKey, run.Status),
			zap.String(constvars.LoggingStepKey, run.FailedStep),
			zap.String("error", run.Error),
		)
	}

	uc.record(context.WithoutCancel(ctx), run)
}

// record stores the report, the run and the completion event. Failures are
// logged and leave the verdict untouched.
func (uc *workflowUsecase) record(ctx context.Context, run *models.Run) {
	requestID := utils.GetRequestID(ctx)
	log := uc.Log.With(zap.String(constvars.LoggingRunIDKey, run.ID))

	_ = utils.LogOperation(log, constvars.OperationUploadReport, requestID, func() error {
		reportKey, err := uc.ReportStorage.UploadRunReport(ctx, run)
		run.ReportKey = reportKey
		return err
	})

	_ = utils.LogOperation(log, constvars.OperationUpdateRun, requestID, func() error {
		return uc.RunRepository.Update(ctx, run)
	})

	_ = utils.LogOperation(log, constvars.OperationPublishRunEvent, requestID, func() error {
		publishCtx, cancel := context.WithTimeout(ctx, uc.InternalConfig.Workflow.RunEventTimeout())
		defer cancel()
		return uc.RunEventPublisher.PublishRunCompleted(publishCtx, run)
	})
}

func (uc *workflowUsecase) unlock(ctx context.Context, prepared *preparedRun) {
	if err := uc.LockService.Unlock(ctx, prepared.lockKey, prepared.lockValue); err != nil {
		uc.Log.Warn("workflowUsecase.unlock error calling LockService.Unlock",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, prepared.lockKey),
			zap.Error(err),
		)
	}
}

func (uc *workflowUsecase) logBookkeepingFailure(ctx context.Context, action string, err error) {
	uc.Log.Error(fmt.Sprintf(constvars.RunBookkeepingFailedFormat, action),
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingRunIDKey, utils.GetRunID(ctx)),
		zap.Error(err),
	)
}
