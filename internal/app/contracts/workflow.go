package contracts

import (
	"context"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
)

type WorkflowUsecase interface {
	Execute(ctx context.Context, input *models.RunInput) (*models.Run, error)
	VerifyLogin(ctx context.Context, environment string) (*responses.LoginVerified, error)
	StartRun(ctx context.Context, request *requests.TriggerRun) (*responses.RunAccepted, error)
	FindRun(ctx context.Context, runID string) (*models.Run, error)
	FindRecentRuns(ctx context.Context, limit int) ([]models.Run, error)
	Wait()
}

type RunRepository interface {
	Create(ctx context.Context, run *models.Run) error
	Update(ctx context.Context, run *models.Run) error
	FindByID(ctx context.Context, runID string) (*models.Run, error)
	FindRecent(ctx context.Context, limit int) ([]models.Run, error)
}
