package utils

import (
	"context"
	"time"

	"ecare-automation/internal/pkg/constvars"

	"go.uber.org/zap"
)

func LogOperation(logger *zap.Logger, operation string, requestID string, fn func() error) error {
	start := time.Now()

	logger.Debug("Operation started",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
	)

	err := fn()

	duration := time.Since(start)

	if err != nil {
		logger.Error("Operation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, operation),
			zap.Duration(constvars.LoggingDurationKey, duration),
			zap.Bool(constvars.LoggingSuccessKey, false),
			zap.Error(err),
		)
		return err
	}

	logger.Info("Operation completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.Duration(constvars.LoggingDurationKey, duration),
		zap.Bool(constvars.LoggingSuccessKey, true),
	)

	return nil
}

// LogStep marks the start of a named workflow step.
func LogStep(logger *zap.Logger, step, description string, fields ...zap.Field) {
	allFields := append([]zap.Field{zap.String(constvars.LoggingStepNameKey, step)}, fields...)
	logger.Info("Step: "+description, allFields...)
}

func LogSuccess(logger *zap.Logger, message string, fields ...zap.Field) {
	logger.Info(message, append(fields, zap.Bool(constvars.LoggingSuccessKey, true))...)
}

func LogFailure(logger *zap.Logger, message string, err error, fields ...zap.Field) {
	logger.Error(message, append(fields, zap.Bool(constvars.LoggingSuccessKey, false), zap.Error(err))...)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(constvars.CONTEXT_RUN_ID_KEY).(string); ok {
		return runID
	}
	return ""
}

// WithRequestID returns ctx carrying requestID, generating one when empty.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, requestID)
}

func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, constvars.CONTEXT_RUN_ID_KEY, runID)
}
