package contracts

import (
	"context"
	"ecare-automation/internal/app/models"
)

type RunEventPublisher interface {
	PublishRunCompleted(ctx context.Context, run *models.Run) error
}
