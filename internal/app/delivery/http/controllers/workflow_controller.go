package controllers

import (
	"context"
	"ecare-automation/internal/app/contracts"
	"ecare-automation/internal/pkg/constvars"
	"ecare-automation/internal/pkg/dto/requests"
	"ecare-automation/internal/pkg/dto/responses"
	"ecare-automation/internal/pkg/exceptions"
	"ecare-automation/internal/pkg/utils"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const workflowRequestTimeout = 10 * time.Second

type WorkflowController struct {
	Log             *zap.Logger
	WorkflowUsecase contracts.WorkflowUsecase
}

func NewWorkflowController(logger *zap.Logger, workflowUsecase contracts.WorkflowUsecase) *WorkflowController {
	return &WorkflowController{
		Log:             logger,
		WorkflowUsecase: workflowUsecase,
	}
}

func (ctrl *WorkflowController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccessMessage, responses.Health{Status: constvars.HealthStatusOK})
}

func (ctrl *WorkflowController) TriggerRun(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "TriggerRun")
	if !ok {
		return
	}
	ctrl.Log.Info("WorkflowController.TriggerRun called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.TriggerRun)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil && !errors.Is(err, io.EOF) {
		ctrl.Log.Error("WorkflowController.TriggerRun error decoding body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), workflowRequestTimeout)
	defer cancel()

	result, err := ctrl.WorkflowUsecase.StartRun(ctx, request)
	if err != nil {
		ctrl.fail(w, "TriggerRun", requestID, err)
		return
	}

	ctrl.Log.Info("WorkflowController.TriggerRun succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, result.RunID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.TriggerRunSuccessMessage, result)
}

func (ctrl *WorkflowController) ListRuns(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "ListRuns")
	if !ok {
		return
	}
	ctrl.Log.Info("WorkflowController.ListRuns called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	limit := 0
	if raw := r.URL.Query().Get(constvars.QueryParamLimit); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidQueryParam(err, constvars.QueryParamLimit))
			return
		}
		limit = parsed
	}

	ctx, cancel := context.WithTimeout(r.Context(), workflowRequestTimeout)
	defer cancel()

	result, err := ctrl.WorkflowUsecase.FindRecentRuns(ctx, limit)
	if err != nil {
		ctrl.fail(w, "ListRuns", requestID, err)
		return
	}

	ctrl.Log.Info("WorkflowController.ListRuns succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(result)),
	)
	pagination := &responses.Pagination{
		Total:    len(result),
		Page:     constvars.DefaultPage,
		PageSize: utils.RunsListLimit(limit),
	}
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.GetRunsSuccessMessage, pagination, result)
}

func (ctrl *WorkflowController) GetRun(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "GetRun")
	if !ok {
		return
	}
	runID := chi.URLParam(r, constvars.URLParamRunID)
	ctrl.Log.Info("WorkflowController.GetRun called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunIDKey, runID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), workflowRequestTimeout)
	defer cancel()

	result, err := ctrl.WorkflowUsecase.FindRun(ctx, runID)
	if err != nil {
		ctrl.fail(w, "GetRun", requestID, err)
		return
	}

	ctrl.Log.Info("WorkflowController.GetRun succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRunStatusKey, result.Status),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRunSuccessMessage, result)
}

func (ctrl *WorkflowController) requestID(w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	requestID := utils.GetRequestID(r.Context())
	if requestID == "" {
		ctrl.Log.Error("WorkflowController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	return requestID, true
}

func (ctrl *WorkflowController) fail(w http.ResponseWriter, method, requestID string, err error) {
	ctrl.Log.Error("WorkflowController."+method+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
