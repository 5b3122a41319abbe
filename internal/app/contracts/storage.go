package contracts

import (
	"context"
	"ecare-automation/internal/app/models"
)

type ReportStorage interface {
	UploadRunReport(ctx context.Context, run *models.Run) (string, error)
}
