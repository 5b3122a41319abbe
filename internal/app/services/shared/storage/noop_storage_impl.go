package storage

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
)

type noopStorage struct{}

// NewNoopStorage stands in when MinIO is disabled. Reports are not kept.
func NewNoopStorage() contracts.ReportStorage {
	return noopStorage{}
}

func (noopStorage) UploadRunReport(ctx context.Context, run *models.Run) (string, error) {
	return "", nil
}
