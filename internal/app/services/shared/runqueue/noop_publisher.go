package runqueue

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
)

type noopPublisher struct{}

// NewNoopRunEventPublisher stands in when RabbitMQ is disabled.
func NewNoopRunEventPublisher() contracts.RunEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishRunCompleted(ctx context.Context, run *models.Run) error {
	return nil
}
