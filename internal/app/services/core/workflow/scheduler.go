package workflow

import (
	"context"
	"ecare-automation/internal/app/config"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/exceptions"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler starts background workflow runs on a cron schedule.
type Scheduler struct {
	log         *zap.Logger
	usecase     contracts.WorkflowUsecase
	spec        string
	environment string
	cron        *cron.Cron
}

func NewScheduler(log *zap.Logger, usecase contracts.WorkflowUsecase, cfg *config.InternalConfig) *Scheduler {
	scheduler := &Scheduler{log: log, usecase: usecase}
	if cfg != nil {
		scheduler.spec = cfg.Workflow.Schedule
		scheduler.environment = cfg.Workflow.ScheduleEnvironment
	}
	return scheduler
}

// Start is a no-op when no schedule is configured.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.spec == "" {
		s.log.Info("workflow.Scheduler disabled, no schedule configured")
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(s.spec, func() { s.runOnce(ctx) }); err != nil {
		return fmt.Errorf("invalid workflow schedule %q: %w", s.spec, err)
	}
	c.Start()
	s.cron = c

	s.log.Info("workflow.Scheduler started",
		zap.String("schedule", s.spec),
		zap.String(constvars.LoggingEnvironmentKey, s.environment),
	)
	return nil
}

// Stop waits for a tick that is already starting a run.
func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.log.Info("workflow.Scheduler stopped")
}

// scheduledTag is unique per tick so each run registers a fresh provider
// email. The result is alphanumeric and fits the 32 character tag limit.
func scheduledTag() string {
	return constvars.ScheduledTagPrefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:constvars.ScheduledTagRandomLength]
}

func (s *Scheduler) runOnce(ctx context.Context) {
	tag := scheduledTag()
	accepted, err := s.usecase.StartRun(ctx, &requests.TriggerRun{Environment: s.environment, Tag: tag})
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusConflict {
			s.log.Info("workflow.Scheduler skipped tick, run already in progress",
				zap.String(constvars.LoggingEnvironmentKey, s.environment),
			)
			return
		}
		s.log.Error("workflow.Scheduler failed to start run",
			zap.String(constvars.LoggingEnvironmentKey, s.environment),
			zap.Error(err),
		)
		return
	}

	s.log.Info("workflow.Scheduler started run",
		zap.String(constvars.LoggingRunIDKey, accepted.RunID),
		zap.String(constvars.LoggingEnvironmentKey, accepted.Environment),
		zap.String(constvars.LoggingRunTagKey, tag),
	)
}
