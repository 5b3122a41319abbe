package storage

import (
	"bytes"
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/app/models"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger

	bucketOnce sync.Once
	bucketErr  error
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.ReportStorage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// UploadRunReport writes the run summary as JSON and returns its object key.
func (m *minioStorage) UploadRunReport(ctx context.Context, run *models.Run) (string, error) {
	requestID := utils.GetRequestID(ctx)
	objectKey := ReportObjectKey(run)
	m.Log.Info("minioStorage.UploadRunReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, run.ID),
		zap.String(constvars.LoggingBucketKey, m.BucketName),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)

	if err := m.ensureBucket(ctx); err != nil {
		m.Log.Error("minioStorage.UploadRunReport error ensuring bucket",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", err
	}

	report, err := json.MarshalIndent(run.Summary(), "", "  ")
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	_, err = m.MinioClient.PutObject(ctx, m.BucketName, objectKey, bytes.NewReader(report), int64(len(report)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		m.Log.Error("minioStorage.UploadRunReport error calling PutObject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioStorage.UploadRunReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, objectKey),
	)
	return objectKey, nil
}

func (m *minioStorage) ensureBucket(ctx context.Context) error {
	m.bucketOnce.Do(func() {
		exists, err := m.MinioClient.BucketExists(ctx, m.BucketName)
		if err != nil {
			m.bucketErr = exceptions.ErrMinioCreateBucket(err, m.BucketName)
			return
		}
		if exists {
			return
		}
		if err := m.MinioClient.MakeBucket(ctx, m.BucketName, minio.MakeBucketOptions{}); err != nil {
			m.bucketErr = exceptions.ErrMinioCreateBucket(err, m.BucketName)
		}
	})
	return m.bucketErr
}

// ReportObjectKey returns runs/<env>/<yyyy>/<mm>/<dd>/<run_id>.json for the
// day the run started.
func ReportObjectKey(run *models.Run) string {
	return fmt.Sprintf(constvars.RunReportObjectKeyFormat, run.Environment, run.StartedAt.UTC().Format("2006/01/02"), run.ID)
}
